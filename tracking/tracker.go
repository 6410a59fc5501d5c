package tracking

import (
	"fmt"
	"log"
	"time"
)

// Tracker accumulates counters for a single conversion run. It is local to
// one Convert call; runs share no state.
type Tracker struct {
	startedAt time.Time

	rowsRead      int
	prefixSkipped int
	dropped       int
	written       int
	gapFilled     int
}

// NewTracker starts a tracker for one run.
func NewTracker() *Tracker {
	return &Tracker{startedAt: time.Now()}
}

// RowRead counts a data row consumed from the input.
func (t *Tracker) RowRead() { t.rowsRead++ }

// PrefixSkipped counts a row discarded while waiting for the satellite
// threshold.
func (t *Tracker) PrefixSkipped() { t.prefixSkipped++ }

// Dropped counts a malformed row discarded during streaming.
func (t *Tracker) Dropped() { t.dropped++ }

// Written counts a row emitted to the output.
func (t *Tracker) Written() { t.written++ }

// GapFilled counts cells substituted from the previous row.
func (t *Tracker) GapFilled(n int) { t.gapFilled += n }

// RowsRead returns the number of data rows consumed.
func (t *Tracker) RowsRead() int { return t.rowsRead }

// RowsWritten returns the number of data rows emitted.
func (t *Tracker) RowsWritten() int { return t.written }

// RowsDropped returns the number of malformed rows discarded.
func (t *Tracker) RowsDropped() int { return t.dropped }

// Summary renders the counters in one line.
func (t *Tracker) Summary() string {
	return fmt.Sprintf("read=%d skippedPrefix=%d dropped=%d written=%d gapFilledCells=%d elapsed=%s",
		t.rowsRead, t.prefixSkipped, t.dropped, t.written, t.gapFilled,
		time.Since(t.startedAt).Round(time.Millisecond))
}

// LogSummary writes the summary to the application log.
func (t *Tracker) LogSummary(inputPath string) {
	log.Printf("converted %s: %s", inputPath, t.Summary())
}
