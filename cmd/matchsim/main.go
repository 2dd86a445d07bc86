package main

import (
	"flag"
	"log"
	"os"

	"powerupsim/internal/config"
	"powerupsim/internal/game"
	"powerupsim/internal/game/players"
	"powerupsim/internal/report"
)

func main() {
	var (
		configPath = flag.String("config", "", "match config yaml (default: built-in rule-book values)")
		scenario   = flag.String("scenario", "", "scenario override (default: scenario from the config)")
		csvPath    = flag.String("csv", "", "per-tick csv report path (empty to disable)")
		tickLog    = flag.String("ticklog", "", "compressed jsonl tick log path (empty to disable)")
		dbPath     = flag.String("db", "", "sqlite results index path (empty to disable)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[matchsim] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *scenario != "" {
		cfg.Scenario = *scenario
	}

	m := game.NewMatch(cfg.Setup())
	if err := players.Assign(m, cfg.Scenario); err != nil {
		logger.Fatalf("assign players: %v", err)
	}

	var sinks []game.RowSink
	var closers []func() error

	if *csvPath != "" {
		w, err := report.NewCSV(*csvPath)
		if err != nil {
			logger.Fatalf("open csv report: %v", err)
		}
		sinks = append(sinks, w)
		closers = append(closers, w.Close)
	}
	if *tickLog != "" {
		l, err := report.NewTickLog(*tickLog)
		if err != nil {
			logger.Fatalf("open tick log: %v", err)
		}
		sinks = append(sinks, l)
		closers = append(closers, l.Close)
	}

	var rec *report.MatchRecord
	if *dbPath != "" {
		idx, err := report.OpenIndex(*dbPath)
		if err != nil {
			logger.Fatalf("open results index: %v", err)
		}
		closers = append(closers, idx.Close)
		rec, err = idx.BeginMatch(cfg.Scenario)
		if err != nil {
			logger.Fatalf("begin match record: %v", err)
		}
		sinks = append(sinks, rec)
		logger.Printf("match id %s", rec.ID())
	}

	res, err := m.Run(sinks...)
	if err != nil {
		logger.Fatalf("run match: %v", err)
	}
	if rec != nil {
		if err := rec.Finish(res); err != nil {
			logger.Fatalf("record result: %v", err)
		}
	}
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			logger.Fatalf("close sink: %v", err)
		}
	}

	logger.Printf("final score  RED %d  BLUE %d", res.Score.Red, res.Score.Blue)
	logger.Printf("ranking pts  RED %d  BLUE %d", res.RankingPoints.Red, res.RankingPoints.Blue)
}
