package report

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"powerupsim/internal/game"
)

// Index is the match results database: one row per match plus the full tick
// record, queryable across runs of the simulator.
type Index struct {
	db *sql.DB
}

const indexSchema = `
CREATE TABLE IF NOT EXISTS matches (
	id         TEXT PRIMARY KEY,
	scenario   TEXT NOT NULL,
	started_at TEXT NOT NULL,
	red        INTEGER,
	blue       INTEGER,
	red_rp     INTEGER,
	blue_rp    INTEGER
);
CREATE TABLE IF NOT EXISTS ticks (
	match_id   TEXT NOT NULL,
	tick       INTEGER NOT NULL,
	autonomous INTEGER NOT NULL,
	red        INTEGER NOT NULL,
	blue       INTEGER NOT NULL,
	cells      TEXT NOT NULL,
	PRIMARY KEY (match_id, tick)
);
`

func OpenIndex(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(indexSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("index schema: %w", err)
	}
	return &Index{db: db}, nil
}

func (x *Index) Close() error { return x.db.Close() }

// BeginMatch registers a new match and returns the sink that records its
// ticks and, at the end, its result.
func (x *Index) BeginMatch(scenario string) (*MatchRecord, error) {
	id := uuid.NewString()
	_, err := x.db.Exec(
		`INSERT INTO matches (id, scenario, started_at) VALUES (?, ?, ?)`,
		id, scenario, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("begin match: %w", err)
	}
	return &MatchRecord{x: x, id: id}, nil
}

// MatchRecord is the per-match sink backed by the index.
type MatchRecord struct {
	x  *Index
	id string
}

func (r *MatchRecord) ID() string { return r.id }

func (r *MatchRecord) WriteRow(row game.Row) error {
	cells := map[string]string{}
	for _, c := range row.Cells {
		cells[c.Label] = c.Value
	}
	b, err := json.Marshal(cells)
	if err != nil {
		return err
	}
	auto := 0
	if row.Autonomous {
		auto = 1
	}
	_, err = r.x.db.Exec(
		`INSERT INTO ticks (match_id, tick, autonomous, red, blue, cells) VALUES (?, ?, ?, ?, ?, ?)`,
		r.id, row.Tick, auto, row.TickScore.Red, row.TickScore.Blue, string(b),
	)
	return err
}

// Finish stores the final score and ranking points on the match row.
func (r *MatchRecord) Finish(res game.Result) error {
	_, err := r.x.db.Exec(
		`UPDATE matches SET red = ?, blue = ?, red_rp = ?, blue_rp = ? WHERE id = ?`,
		res.Score.Red, res.Score.Blue, res.RankingPoints.Red, res.RankingPoints.Blue, r.id,
	)
	return err
}
