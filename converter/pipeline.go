package converter

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/theoremus-urban-solutions/rcp-to-gems/gems"
	"github.com/theoremus-urban-solutions/rcp-to-gems/rcp"
	"github.com/theoremus-urban-solutions/rcp-to-gems/utils"
)

// pipelineState is the only state carried across rows: the two time bases
// captured from the seed row and the last emitted row for gap-filling.
type pipelineState struct {
	startTime    int64
	startTimeGPS int64
	previous     rcp.Row
}

// Convert runs the full pipeline and returns the path of the written GEMS
// CSV. On failure the partial output written so far is retained on disk and
// the error is returned.
func (c *Converter) Convert(opts Options) (string, error) {
	if err := c.validate.Struct(opts); err != nil {
		return "", err
	}

	in, err := os.Open(opts.InputPath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = gems.DefaultOutputPath(opts.InputPath, c.Cfg.OutputSuffix)
	}
	w, err := gems.Create(outPath)
	if err != nil {
		return "", err
	}
	closed := false
	defer func() {
		if !closed {
			w.Close()
		}
	}()

	r := rcp.NewReader(in)
	header, err := r.Header()
	if err != nil {
		return "", err
	}
	cols, enabled := rcp.ResolveColumns(header, c.Cfg.ColumnNames())
	if err := w.WriteHeader(header); err != nil {
		return "", err
	}

	seed, err := c.findSeedRow(r, cols, enabled, opts.MinSatellites)
	if errors.Is(err, io.EOF) {
		// No row ever qualified; the header is already on disk and that is
		// the whole output.
		closed = true
		if cerr := w.Close(); cerr != nil {
			return "", cerr
		}
		c.finish(opts.InputPath)
		return outPath, nil
	}
	if err != nil {
		return "", err
	}

	state := c.seedState(seed, cols, enabled)
	if err := w.WriteRow(state.previous); err != nil {
		return "", err
	}
	c.Stats.Written()

	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, rcp.ErrRowParse) {
			log.Printf("Warning: illegal character on row %d", r.Line())
			c.Warnings.Add(WarningIllegalCharacter, r.Line())
			c.Stats.Dropped()
			continue
		}
		if err != nil {
			return "", fmt.Errorf("read error: %w", err)
		}
		c.Stats.RowRead()
		out := c.transformRow(row, &state, cols, enabled, r.Line())
		if err := w.WriteRow(out); err != nil {
			return "", err
		}
		c.Stats.Written()
	}

	closed = true
	if err := w.Close(); err != nil {
		return "", err
	}
	c.finish(opts.InputPath)
	return outPath, nil
}

// findSeedRow consumes rows until one qualifies as the zero basis. With the
// role columns unresolved the first well-formed row qualifies immediately;
// otherwise rows are discarded until the satellite count reaches minSats.
// The qualifying row itself is returned, not discarded. io.EOF means the
// input ran out first.
func (c *Converter) findSeedRow(r *rcp.Reader, cols rcp.Columns, enabled bool, minSats int) (rcp.Row, error) {
	skipped := 0
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			if enabled {
				log.Printf("%d lines skipped, end of file before satellite threshold reached", skipped)
			}
			return nil, io.EOF
		}
		if errors.Is(err, rcp.ErrRowParse) {
			log.Printf("Warning: illegal character on row %d", r.Line())
			c.Warnings.Add(WarningIllegalCharacter, r.Line())
			c.Stats.Dropped()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read error: %w", err)
		}
		c.Stats.RowRead()
		if !enabled {
			return row, nil
		}
		sats := row[cols.Satellites]
		if sats.Empty {
			log.Printf("Warning: empty satellite count on row %d", r.Line())
			c.Warnings.Add(WarningEmptySatellites, r.Line())
			continue
		}
		if sats.Num >= float64(minSats) {
			log.Printf("%d lines skipped", skipped)
			return row, nil
		}
		skipped++
		c.Stats.PrefixSkipped()
	}
}

// seedState builds the pipeline state from the seed row. The time bases are
// the raw values of the first two fields, read before rebasing; the emitted
// row has empty cells zeroed and its time fields forced to exactly 0.0.
func (c *Converter) seedState(seed rcp.Row, cols rcp.Columns, radians bool) pipelineState {
	var state pipelineState
	if !seed[0].Empty {
		state.startTime = int64(seed[0].Num)
	}
	if len(seed) > 1 && !seed[1].Empty {
		state.startTimeGPS = int64(seed[1].Num)
	}

	out := seed.Clone()
	for i, v := range out {
		if v.Empty {
			out[i] = rcp.Number(0)
		}
	}
	out[0] = rcp.Number(0)
	if len(out) > 1 {
		out[1] = rcp.Number(0)
	}
	if radians {
		out[cols.Latitude] = rcp.Number(utils.DegreesToRadians(out[cols.Latitude].Num))
		out[cols.Longitude] = rcp.Number(utils.DegreesToRadians(out[cols.Longitude].Num))
	}
	state.previous = out
	return state
}

// transformRow rebases the time fields, converts coordinates to radians when
// the role columns resolved, and fills empty cells from the previous emitted
// row. The returned row becomes the new look-back row.
func (c *Converter) transformRow(row rcp.Row, state *pipelineState, cols rcp.Columns, radians bool, line int) rcp.Row {
	out := row.Clone()
	if !out[0].Empty {
		out[0] = rcp.Number(float64(int64(out[0].Num)-state.startTime) / 1000.0)
	}
	if len(out) > 1 && !out[1].Empty {
		out[1] = rcp.Number(float64(int64(out[1].Num)-state.startTimeGPS) / 1000.0)
	}
	if radians {
		if !out[cols.Latitude].Empty {
			out[cols.Latitude] = rcp.Number(utils.DegreesToRadians(out[cols.Latitude].Num))
		}
		if !out[cols.Longitude].Empty {
			out[cols.Longitude] = rcp.Number(utils.DegreesToRadians(out[cols.Longitude].Num))
		}
	}

	filled := 0
	for i, v := range out {
		if v.Empty {
			out[i] = state.previous[i]
			filled++
		}
	}
	if filled > 0 {
		c.Stats.GapFilled(filled)
	}
	for _, v := range out {
		if math.Abs(v.Num) > utils.MaxGEMSValue {
			c.Warnings.Add(WarningValueOverflow, line)
			break
		}
	}

	state.previous = out
	return out
}

func (c *Converter) finish(inputPath string) {
	c.Warnings.LogAll(inputPath)
	c.Stats.LogSummary(inputPath)
}
