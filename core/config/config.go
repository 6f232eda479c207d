package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	// AppName is the directory the configuration lives in under the user's
	// config home.
	AppName = "which"

	ConfigurationName = "config.yaml"
)

// Configuration holds the defaults of the which command.
type Configuration struct {
	// Path replaces PATH as the search list when set.
	Path       string `json:"path"`
	NoCwd      bool   `json:"no_cwd"`
	Canonical  bool   `json:"canonical"`
	ShowErrors bool   `json:"show_errors"`
	Verbosity  int    `json:"verbosity" validate:"gte=0,lte=3"`
	Color      string `json:"color" validate:"oneof=auto always never"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built in configuration.
func Default() *Configuration {
	return defaultConfig()
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
