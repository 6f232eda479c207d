package config

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	fsys := afero.NewMemMapFs()

	path, err := Initialize(fsys, "/home/user/.config/which")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user/.config/which", ConfigurationName), path)

	// Check that the config is valid
	cfg, err := Load(fsys, "/home/user/.config/which")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	t.Run("load from file path", func(t *testing.T) {
		cfg, err := Load(fsys, path)
		assert.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("doesn't overwrite", func(t *testing.T) {
		_, err := Initialize(fsys, "/home/user/.config/which")
		assert.ErrorIs(t, err, fs.ErrExist)
	})
}

func TestInitialize_realFs(t *testing.T) {
	tempDir := t.TempDir()

	_, err := Initialize(afero.NewOsFs(), tempDir)
	require.NoError(t, err)

	_, err = Load(afero.NewOsFs(), tempDir)
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	cases := map[string]struct {
		contents string
		expected *Configuration
		wantErr  string
	}{
		"overrides": {
			contents: "path: /opt/bin\nno_cwd: true\ncanonical: true\nshow_errors: true\nverbosity: 2\ncolor: never\n",
			expected: &Configuration{
				Path:       "/opt/bin",
				NoCwd:      true,
				Canonical:  true,
				ShowErrors: true,
				Verbosity:  2,
				Color:      "never",
			},
		},
		"partial": {
			contents: "verbosity: 1\n",
			expected: &Configuration{Verbosity: 1, Color: "auto"},
		},
		"unknown field": {
			contents: "pathext: .EXE\n",
			wantErr:  "parsing",
		},
		"invalid value": {
			contents: "verbosity: 9\n",
			wantErr:  "invalid",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, "/cfg/"+ConfigurationName, []byte(tc.contents), 0644))

			cfg, err := Load(fsys, "/cfg")
			if tc.wantErr != "" {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tc.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := Load(afero.NewMemMapFs(), "/cfg")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
