// Package converter is the main entry point for RaceCapture Pro to GEMS
// conversion.
//
// The conversion is one streaming pass over the input log:
//
//  1. Header resolution - unit suffixes are stripped and the GPSSats,
//     Latitude and Longitude columns are located. The header is written to
//     the output immediately. If any of the three columns is missing, the
//     satellite skip phase and the radian conversion are both disabled for
//     the whole run.
//  2. Skip phase - rows are discarded until the satellite count reaches the
//     configured minimum. The qualifying row is kept as the seed row.
//  3. Seed row - the raw values of the first two fields become the time
//     bases; empty cells become 0.0; the time fields are forced to 0.0.
//  4. Streaming loop - each following row has its time fields rebased to
//     elapsed seconds, its coordinates converted to radians, and its empty
//     cells filled from the previous emitted row.
//
// Exactly one row of look-back state is kept; the full log is never held in
// memory. Malformed rows are logged and dropped; any other read failure
// aborts the run with the partial output retained on disk.
//
// # Usage
//
//	cfg := config.Config.Converter
//	conv := converter.NewConverter(cfg)
//	out, err := conv.Convert(converter.Options{
//	    InputPath:     "session.log",
//	    MinSatellites: 5,
//	})
//
// Converter instances are NOT thread-safe. Each run should use its own
// converter instance.
package converter
