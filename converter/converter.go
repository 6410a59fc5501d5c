package converter

import (
	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/rcp-to-gems/config"
	"github.com/theoremus-urban-solutions/rcp-to-gems/tracking"
)

// Options are the parameters of one conversion run.
type Options struct {
	// InputPath is the RCP log to convert.
	InputPath string `validate:"required"`
	// OutputPath is where the GEMS CSV is written. When empty it is derived
	// from InputPath ("session.log" -> "session_GEMS.csv").
	OutputPath string
	// MinSatellites is the GPS satellite count a row must reach before data
	// is considered valid. Zero accepts the first row.
	MinSatellites int `validate:"gte=0"`
}

// Converter coordinates the reader, the writer, and configuration to produce
// a GEMS CSV from an RCP log.
type Converter struct {
	Cfg      config.ConverterConfig
	Warnings *WarningAggregator
	Stats    *tracking.Tracker

	validate *validator.Validate
}

// NewConverter creates a new converter instance
func NewConverter(cfg config.ConverterConfig) *Converter {
	return &Converter{
		Cfg:      cfg,
		Warnings: NewWarningAggregator(),
		Stats:    tracking.NewTracker(),
		validate: validator.New(),
	}
}
