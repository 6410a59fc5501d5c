// Package rcptogems converts RaceCapture Pro CSV telemetry logs into GEMS
// Dlog99-compatible CSV files, so sessions can be opened in GEMS Data
// Analysis or AEM Data Analysis.
//
// The heavy lifting lives in the subpackages (rcp, gems, converter, config);
// this package is a thin convenience surface for CLI-style callers.
package rcptogems
