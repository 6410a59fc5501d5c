// Package utils provides internal utility functions for the rcp-to-gems converter.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Unit conversion constants
//   - Numeric formatting for GEMS CSV output
package utils
