package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	// Fields missing from the file keep their default values.
	out := defaultConfig()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	return out, nil
}

// Initialize writes the default configuration into dir, creating it if
// needed. An existing configuration is never overwritten.
func Initialize(fsys afero.Fs, dir string) (string, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ConfigurationName)
	fd, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	if _, err := fd.Write(defaultConfigData); err != nil {
		return "", err
	}
	return path, fd.Close()
}

// UserDir is the directory Initialize writes to by default.
func UserDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Search finds the user's configuration file in the XDG config directories.
func Search() (string, error) {
	return xdg.SearchConfigFile(filepath.Join(AppName, ConfigurationName))
}
