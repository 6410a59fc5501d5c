package utils

import (
	"strconv"
)

// RadiansPerDegree is the factor applied to Latitude/Longitude columns.
// GEMS Data Analysis expects GPS coordinates in radians, RCP logs them in
// degrees. The truncated constant matches the value used by the tools that
// consume the output.
const RadiansPerDegree = 0.01745329251

// MaxGEMSValue is the largest value the GEMS CSV import accepts.
const MaxGEMSValue = 2147483

// DegreesToRadians converts a coordinate from degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * RadiansPerDegree
}

// FormatNumber renders a numeric field for the GEMS CSV output.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
