// Package rcp provides reading and indexing of RaceCapture Pro CSV telemetry logs.
//
// An RCP log is a CSV file whose header row carries unit suffixes separated
// by a pipe (e.g. "Interval|ms", "Latitude|deg"). Data fields are numeric
// literals, except that a field may be empty when the logger had no sample
// for that channel on that row.
//
// The package is transport agnostic - it accepts any io.Reader and streams
// rows one at a time. It does NOT buffer the full log in memory.
//
// # Basic Usage
//
//	f, _ := os.Open("session.log")
//	defer f.Close()
//
//	r := rcp.NewReader(f)
//	header, err := r.Header()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cols, ok := rcp.ResolveColumns(header, rcp.DefaultColumnNames())
//
//	for {
//	    row, err := r.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if errors.Is(err, rcp.ErrRowParse) {
//	        continue // malformed row, recoverable
//	    }
//	    if err != nil {
//	        log.Fatal(err) // I/O or structural failure
//	    }
//	    _ = row
//	    _ = cols
//	}
//
// # Error Model
//
// Next distinguishes three terminal conditions:
//   - io.EOF: normal end of the log
//   - ErrRowParse: a field that should be numeric is not; the row is lost
//     but the stream remains usable
//   - anything else: structural CSV or I/O failure, the stream is dead
package rcp
