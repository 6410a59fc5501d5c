package config

// ColumnsConfig names the three channels the converter treats specially.
type ColumnsConfig struct {
	Satellites string `yaml:"satellites"`
	Latitude   string `yaml:"latitude"`
	Longitude  string `yaml:"longitude"`
}

// ConverterConfig contains converter-specific configuration
type ConverterConfig struct {
	MinSatellites int           `yaml:"minSatellites" validate:"gte=0"`
	OutputSuffix  string        `yaml:"outputSuffix"`
	Columns       ColumnsConfig `yaml:"columns"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Converter ConverterConfig `yaml:"converter"`
}
