// Package gems writes GEMS Dlog99-compatible CSV files.
//
// Dlog99 is the import format understood by GEMS Data Analysis and AEM Data
// Analysis. It is plain CSV: the channel names on the first row, then one
// numeric row per sample. Time channels are elapsed seconds, GPS coordinates
// are radians. This package only handles the serialization; the unit and
// timestamp conversions live in the converter package.
package gems
