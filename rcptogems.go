package rcptogems

import (
	"github.com/theoremus-urban-solutions/rcp-to-gems/config"
	"github.com/theoremus-urban-solutions/rcp-to-gems/converter"
	"github.com/theoremus-urban-solutions/rcp-to-gems/internal"
)

// Options are the parameters of one conversion run.
type Options = converter.Options

// Converter is the RCP to GEMS conversion pipeline.
type Converter = converter.Converter

// InitLogging configures the application log output.
func InitLogging() {
	internal.InitLogging()
}

// LoadAppConfig loads the application configuration; an empty path probes
// the default locations.
func LoadAppConfig(path string) error {
	return config.LoadAppConfig(path)
}

// DefaultMinSatellites returns the satellite threshold from the loaded
// configuration.
func DefaultMinSatellites() int {
	return config.Config.Converter.MinSatellites
}

// NewConverter creates a converter using the loaded application
// configuration.
func NewConverter() *Converter {
	return converter.NewConverter(config.Config.Converter)
}

// Convert runs one conversion with the loaded configuration and returns the
// output path.
func Convert(opts Options) (string, error) {
	return NewConverter().Convert(opts)
}
