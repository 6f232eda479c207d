package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()
	assert.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "auto", cfg.Color)
	assert.Empty(t, cfg.Path)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate    func(*Configuration)
		wantField string
	}{
		"verbosity too high": {
			mutate:    func(c *Configuration) { c.Verbosity = 4 },
			wantField: "verbosity",
		},
		"negative verbosity": {
			mutate:    func(c *Configuration) { c.Verbosity = -1 },
			wantField: "verbosity",
		},
		"unknown color": {
			mutate:    func(c *Configuration) { c.Color = "sometimes" },
			wantField: "color",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantField)
			}
		})
	}
}
