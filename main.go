package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/bloom/config"
	"github.com/pthm-cable/bloom/game"
	"github.com/pthm-cable/bloom/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	headlessFPS := flag.Int("headless-fps", 0, "Frame rate reported to the spawn throttle in headless mode (0 = measured)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	debug := flag.Bool("debug", false, "Log every spawn event")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for tree snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:         cfg,
		Seed:           rngSeed,
		StatsWindowSec: *statsWindow,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		SnapshotDir:    *snapshotDir,
	}

	if *headless {
		host := &game.HeadlessHost{FixedFPS: int32(*headlessFPS)}
		opts.Host = host

		g := game.NewGameWithOptions(opts)
		defer g.Unload()
		if *headlessFPS == 0 {
			host.Measure = g.MeasuredFPS
		}

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"headless_fps", *headlessFPS,
		)

		for *maxTicks == 0 || int(g.Tick()) < *maxTicks {
			g.Frame()
		}
		slog.Info("max ticks reached", "tick", g.Tick())
		g.LogSummary()
		return
	}

	window := renderer.Open(cfg)
	defer window.Close()

	opts.Host = window
	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !window.ShouldClose() {
		g.Frame()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
	g.LogSummary()
}
