package game

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bloom/components"
	"github.com/pthm-cable/bloom/config"
	"github.com/pthm-cable/bloom/systems"
	"github.com/pthm-cable/bloom/telemetry"
)

// Game holds the complete simulation state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	host  Host

	// Entity mappers
	nodeMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Body,
		components.Tint,
		components.Lineage,
	]
	nodeFilter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Body,
		components.Tint,
		components.Lineage,
	]

	// Individual component mappers for lookups
	posMap     *ecs.Map1[components.Position]
	velMap     *ecs.Map1[components.Velocity]
	bodyMap    *ecs.Map1[components.Body]
	tintMap    *ecs.Map1[components.Tint]
	lineageMap *ecs.Map1[components.Lineage]

	splitter *systems.Splitter
	bounds   systems.Bounds

	// State
	root          ecs.Entity
	census        systems.Census
	tick          int32
	branches      int
	maxGeneration int

	// Telemetry
	rngSeed       int64
	logStats      bool
	snapshotDir   string
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	outputManager *telemetry.OutputManager
}

// NewGame creates a headless game from the global configuration.
func NewGame() *Game {
	return NewGameWithOptions(Options{Seed: 1})
}

// NewGameWithOptions creates a new game instance with the root circle in place.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	windowTicks := cfg.Derived.StatsWindowTick
	if opts.StatsWindowSec > 0 {
		windowTicks = max(int32(opts.StatsWindowSec*float64(cfg.Screen.TargetFPS)), 1)
	}

	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:   cfg,
		world: world,
		rng:   rng,
		host:  opts.Host,
		nodeMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Body,
			components.Tint,
			components.Lineage,
		](world),
		nodeFilter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Body,
			components.Tint,
			components.Lineage,
		](world),
		posMap:     ecs.NewMap1[components.Position](world),
		velMap:     ecs.NewMap1[components.Velocity](world),
		bodyMap:    ecs.NewMap1[components.Body](world),
		tintMap:    ecs.NewMap1[components.Tint](world),
		lineageMap: ecs.NewMap1[components.Lineage](world),
		bounds:     systems.Bounds{Width: cfg.Derived.ArenaW, Height: cfg.Derived.ArenaH},
		census:     systems.NewCensus(),

		rngSeed:       opts.Seed,
		logStats:      opts.LogStats,
		snapshotDir:   opts.SnapshotDir,
		collector:     telemetry.NewCollector(windowTicks, float64(cfg.Screen.TargetFPS)),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarks:     telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistorySize),
	}

	if g.host == nil {
		g.host = &HeadlessHost{FixedFPS: int32(cfg.Screen.TargetFPS)}
	}

	g.splitter = systems.NewSplitter(world, systems.SplitConfig{
		GenerationMax: cfg.Population.GenerationMax,
		MinChildren:   cfg.Population.MinChildren,
		MaxChildren:   cfg.Population.MaxChildren,
		Speed:         cfg.Population.Speed,
		Spread:        cfg.Derived.Spread,
		SpreadOffset:  cfg.Derived.SpreadOffset,
		TargetFPS:     int32(cfg.Screen.TargetFPS),
	}, rng)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	g.root = g.spawnRoot()

	return g
}

// spawnRoot creates generation 0 near the arena center with a random heading.
func (g *Game) spawnRoot() ecs.Entity {
	rc := g.cfg.Root
	angle := g.rng.Float64() * 2 * math.Pi
	c := rc.Color.ToRGBA()

	pos := components.Position{
		X: float64(g.cfg.Screen.Width/2) + rc.OffsetX,
		Y: float64(g.cfg.Screen.Height/2) + rc.OffsetY,
	}
	vel := components.Velocity(r2.Scale(g.cfg.Population.Speed, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}))
	body := components.Body{Radius: rc.Radius, Generation: 0}
	tint := components.Tint{Current: c, Target: c}
	lineage := components.Lineage{ID: 0}

	return g.nodeMapper.NewEntity(&pos, &vel, &body, &tint, &lineage)
}

// Frame runs one full frame: simulate and draw every circle, then the HUD.
func (g *Game) Frame() {
	g.perfCollector.RecordFrame()
	g.perfCollector.StartTick()

	g.host.BeginFrame()
	g.host.Clear(g.cfg.HUD.Background.ToRGBA())

	g.perfCollector.StartPhase(telemetry.PhaseWalk)
	g.walk(g.root, g.host.FPS())

	g.perfCollector.StartPhase(telemetry.PhaseHUD)
	g.drawHUD()

	g.host.EndFrame()
	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// Tick returns the number of frames run so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// NodeCount returns the number of circles ever created, root included.
func (g *Game) NodeCount() uint32 {
	return g.census.Nodes()
}

// Root returns the handle of the generation 0 circle.
func (g *Game) Root() ecs.Entity {
	return g.root
}

// MeasuredFPS returns the frame rate measured from presented frames.
func (g *Game) MeasuredFPS() int32 {
	return g.perfCollector.MeasuredFPS()
}

// Unload writes the final snapshot and closes output files.
func (g *Game) Unload() {
	if g.snapshotDir != "" {
		g.saveSnapshot(nil)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Warn("failed to close output files", "error", err)
	}
}
