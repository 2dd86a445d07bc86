// Package report holds the per-tick report sinks: a CSV table, a compressed
// JSONL tick log for replay, and a SQLite index of match results. The match
// driver pushes one row per tick into each attached sink.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"powerupsim/internal/game"
)

// CSVWriter writes one CSV record per tick. The header is derived from the
// first row's cell labels; the agent set is fixed for the whole match, so
// every later row has the same shape.
type CSVWriter struct {
	f         *os.File
	w         *csv.Writer
	wroteHead bool
}

func NewCSV(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv report: %w", err)
	}
	return &CSVWriter{f: f, w: csv.NewWriter(f)}, nil
}

func (c *CSVWriter) WriteRow(row game.Row) error {
	if !c.wroteHead {
		head := []string{"tick", "phase", "red", "blue", "total_red", "total_blue"}
		for _, cell := range row.Cells {
			head = append(head, cell.Label)
		}
		if err := c.w.Write(head); err != nil {
			return err
		}
		c.wroteHead = true
	}

	phase := "teleop"
	if row.Autonomous {
		phase = "auto"
	}
	rec := []string{
		strconv.Itoa(row.Tick),
		phase,
		strconv.Itoa(row.TickScore.Red),
		strconv.Itoa(row.TickScore.Blue),
		strconv.Itoa(row.Total.Red),
		strconv.Itoa(row.Total.Blue),
	}
	for _, cell := range row.Cells {
		rec = append(rec, cell.Value)
	}
	return c.w.Write(rec)
}

func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		_ = c.f.Close()
		return err
	}
	return c.f.Close()
}
