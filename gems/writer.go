package gems

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/theoremus-urban-solutions/rcp-to-gems/rcp"
	"github.com/theoremus-urban-solutions/rcp-to-gems/utils"
)

// DefaultSuffix is appended to the input basename when no output path is
// given, e.g. "session.log" -> "session_GEMS.csv".
const DefaultSuffix = "_GEMS"

// DefaultOutputPath derives the output filename from the input path:
// everything up to the first dot, plus suffix, plus ".csv". An empty suffix
// selects DefaultSuffix.
func DefaultOutputPath(inputPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	base, _, _ := strings.Cut(inputPath, ".")
	return base + suffix + ".csv"
}

// Writer writes a GEMS CSV file. Close must be called on every exit path so
// buffered rows reach disk.
type Writer struct {
	f *os.File
	w *csv.Writer
}

// Create opens (creating or truncating) a GEMS CSV file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return &Writer{f: f, w: csv.NewWriter(f)}, nil
}

// WriteHeader writes the channel-name row unchanged and flushes it, so the
// header is on disk even if no data row ever qualifies.
func (w *Writer) WriteHeader(header []string) error {
	if err := w.w.Write(header); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

// WriteRow serializes one transformed row. Empty values produce an empty
// field; the converter never emits them after gap-filling.
func (w *Writer) WriteRow(row rcp.Row) error {
	rec := make([]string, len(row))
	for i, v := range row {
		if v.Empty {
			continue
		}
		rec[i] = utils.FormatNumber(v.Num)
	}
	return w.w.Write(rec)
}

// Close flushes buffered rows and closes the file.
func (w *Writer) Close() error {
	w.w.Flush()
	flushErr := w.w.Error()
	if err := w.f.Close(); err != nil {
		return err
	}
	return flushErr
}
