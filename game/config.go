package game

import "github.com/pthm-cable/bloom/config"

// Options holds configuration for game initialization.
type Options struct {
	Config *config.Config // nil = config.Cfg()
	Host   Host           // nil = HeadlessHost reporting the target frame rate

	Seed           int64
	StatsWindowSec float64 // 0 = Telemetry.StatsWindow
	LogStats       bool
	OutputDir      string // CSV logs and config snapshot; empty disables
	SnapshotDir    string // JSON tree snapshots on bookmarks and on Unload; empty disables
}
