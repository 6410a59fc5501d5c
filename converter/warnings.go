package converter

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningIllegalCharacter = "illegal_character"
	WarningEmptySatellites  = "empty_satellite_count"
	WarningValueOverflow    = "value_overflow"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during conversion and outputs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with the row number it was seen on.
func (w *WarningAggregator) Add(warningType string, row int) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, fmt.Sprintf("row %d", row))
	}
}

// Count returns how many times a warning type was recorded.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(inputPath string) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		message := w.formatWarningMessage(warningType, inputPath, info)
		log.Printf("%s", message)
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, inputPath string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningIllegalCharacter:
		description = "rows with a non-numeric field"
		action = "Rows dropped from the output"
	case WarningEmptySatellites:
		description = "rows with an empty satellite count during the skip phase"
		action = "Rows skipped without counting toward the threshold"
	case WarningValueOverflow:
		description = "values beyond the GEMS import maximum"
		action = "Values written unchanged; GEMS may clip them"
	default:
		description = warningType
		action = "No action taken"
	}

	examples := strings.Join(info.examples, ", ")
	return fmt.Sprintf("WARNING [%s]: %d %s (e.g. %s). %s.",
		inputPath, info.count, description, examples, action)
}
