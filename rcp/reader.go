package rcp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrRowParse marks a row whose field should be numeric but is not. The row
// is unusable; the stream is not.
var ErrRowParse = errors.New("illegal character in row")

// Reader streams data rows from an RCP log. Header must be called once
// before the first call to Next.
type Reader struct {
	csv  *csv.Reader
	line int
}

// NewReader wraps r in an RCP log reader.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// FieldsPerRecord left at 0: the header fixes the field count and any
	// row with a different count surfaces as a csv.ParseError, which the
	// pipeline treats as fatal.
	return &Reader{csv: cr}
}

// Header reads the first record and returns it with unit suffixes stripped.
func (r *Reader) Header() ([]string, error) {
	rec, err := r.csv.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	r.line++
	return TruncateHeader(rec), nil
}

// Line returns the record number of the most recently read record, counting
// the header as record 1.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next data row. It returns io.EOF at end of input,
// an error matching ErrRowParse for a row with a non-numeric field, and
// the underlying error for structural CSV or I/O failures.
func (r *Reader) Next() (Row, error) {
	rec, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	r.line++
	row := make(Row, len(rec))
	for i, field := range rec {
		if field == "" {
			row[i] = Value{Empty: true}
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %q", r.line, ErrRowParse, field)
		}
		row[i] = Value{Num: n}
	}
	return row, nil
}
