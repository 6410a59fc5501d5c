package rcp

import "strings"

// Value is one field of a data row. Empty marks a channel with no sample on
// this row; Num is only meaningful when Empty is false.
type Value struct {
	Num   float64
	Empty bool
}

// Row is an ordered sequence of fields. Its length always equals the header
// length for rows returned by Reader.Next.
type Row []Value

// Number returns a non-empty numeric value.
func Number(n float64) Value {
	return Value{Num: n}
}

// Clone returns a copy of the row that shares no storage with the original.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// ColumnNames holds the header names of the three semantic roles the
// converter cares about.
type ColumnNames struct {
	Satellites string
	Latitude   string
	Longitude  string
}

// DefaultColumnNames returns the channel names RaceCapture Pro uses.
func DefaultColumnNames() ColumnNames {
	return ColumnNames{
		Satellites: "GPSSats",
		Latitude:   "Latitude",
		Longitude:  "Longitude",
	}
}

// Columns maps the three semantic roles to positions in the header.
type Columns struct {
	Satellites int
	Latitude   int
	Longitude  int
}

// TruncateHeader strips the unit suffix from each header field, keeping the
// segment before the first pipe ("Interval|ms" -> "Interval").
func TruncateHeader(raw []string) []string {
	out := make([]string, len(raw))
	for i, col := range raw {
		name, _, _ := strings.Cut(col, "|")
		out[i] = name
	}
	return out
}

// ResolveColumns looks up the three role columns in a truncated header.
// Resolution is all-or-nothing: if any of the three names is absent, every
// index is zero and ok is false, which disables both the satellite skip
// phase and the radian conversion downstream. The roles never resolve
// partially.
func ResolveColumns(header []string, names ColumnNames) (Columns, bool) {
	sats := indexOf(header, names.Satellites)
	lat := indexOf(header, names.Latitude)
	lon := indexOf(header, names.Longitude)
	if sats < 0 || lat < 0 || lon < 0 {
		return Columns{}, false
	}
	return Columns{Satellites: sats, Latitude: lat, Longitude: lon}, true
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
