package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/rcp-to-gems/gems"
	"github.com/theoremus-urban-solutions/rcp-to-gems/rcp"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. With an
// empty path it probes the default locations and falls back to defaults when
// no file exists; an explicit path that cannot be read is an error.
func LoadAppConfig(path string) error {
	var cfg AppConfig

	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "./rcp-to-gems/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
	case path == "" && errors.Is(err, fs.ErrNotExist):
		// no config file, defaults only
	default:
		return err
	}

	if err := envconfig.Process("rcpgems", &cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg.Converter); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Converter.OutputSuffix == "" {
		cfg.Converter.OutputSuffix = gems.DefaultSuffix
	}
	names := rcp.DefaultColumnNames()
	if cfg.Converter.Columns.Satellites == "" {
		cfg.Converter.Columns.Satellites = names.Satellites
	}
	if cfg.Converter.Columns.Latitude == "" {
		cfg.Converter.Columns.Latitude = names.Latitude
	}
	if cfg.Converter.Columns.Longitude == "" {
		cfg.Converter.Columns.Longitude = names.Longitude
	}
}

// ColumnNames converts the configured channel names into the reader's form.
func (c ConverterConfig) ColumnNames() rcp.ColumnNames {
	return rcp.ColumnNames{
		Satellites: c.Columns.Satellites,
		Latitude:   c.Columns.Latitude,
		Longitude:  c.Columns.Longitude,
	}
}
