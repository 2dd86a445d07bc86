package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"powerupsim/internal/game"
)

// TickLog records every tick as one JSON line in a zstd-compressed file. A
// match is short, so there is a single file per run and no rotation.
type TickLog struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// TickEntry is the on-disk shape of one tick.
type TickEntry struct {
	Tick       int               `json:"tick"`
	Autonomous bool              `json:"autonomous"`
	Red        int               `json:"red"`
	Blue       int               `json:"blue"`
	TotalRed   int               `json:"total_red"`
	TotalBlue  int               `json:"total_blue"`
	Cells      map[string]string `json:"cells"`
}

func NewTickLog(path string) (*TickLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("tick log: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &TickLog{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

func (l *TickLog) WriteRow(row game.Row) error {
	entry := TickEntry{
		Tick:       row.Tick,
		Autonomous: row.Autonomous,
		Red:        row.TickScore.Red,
		Blue:       row.TickScore.Blue,
		TotalRed:   row.Total.Red,
		TotalBlue:  row.Total.Blue,
		Cells:      map[string]string{},
	}
	for _, cell := range row.Cells {
		entry.Cells[cell.Label] = cell.Value
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := l.w.Write(b); err != nil {
		return err
	}
	return l.w.WriteByte('\n')
}

func (l *TickLog) Close() error {
	var firstErr error
	if err := l.w.Flush(); err != nil {
		firstErr = err
	}
	if err := l.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := l.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
