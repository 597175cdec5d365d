package game

import (
	"image/color"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bloom/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleTree())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Warn("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Warn("failed to write perf", "error", err)
		}
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Warn("failed to write bookmark", "error", err)
			}
		}
		if g.snapshotDir != "" {
			g.saveSnapshot(&bm)
		}
	}
}

// sampleTree measures the population for a stats window.
func (g *Game) sampleTree() telemetry.TreeSample {
	var s telemetry.TreeSample
	genMax := g.cfg.Population.GenerationMax

	query := g.nodeFilter.Query()
	for query.Next() {
		_, _, body, tint, lineage := query.Get()

		s.Nodes++
		if body.Generation > s.MaxGeneration {
			s.MaxGeneration = body.Generation
		}
		if !lineage.IsLeaf() {
			s.Branches++
			continue
		}

		if body.Generation < genMax {
			s.SpawnableLeaves++
		}
		s.LeafGenerations = append(s.LeafGenerations, body.Generation)
		s.LeafRadii = append(s.LeafRadii, float64(body.Radius))
		s.ColorGaps = append(s.ColorGaps, telemetry.ColorGap(tint.Current, tint.Target))
	}

	return s
}

// Sample measures the current tree.
func (g *Game) Sample() telemetry.TreeSample {
	return g.sampleTree()
}

// saveSnapshot creates and saves a snapshot to disk.
func (g *Game) saveSnapshot(bookmark *telemetry.Bookmark) {
	path, err := telemetry.SaveSnapshot(g.createSnapshot(bookmark), g.snapshotDir)
	if err != nil {
		slog.Warn("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "tick", g.tick, "nodes", g.census.Nodes())
}

// createSnapshot builds a snapshot from the current state.
func (g *Game) createSnapshot(bookmark *telemetry.Bookmark) *telemetry.Snapshot {
	return &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		RNGSeed:     g.rngSeed,
		ArenaWidth:  g.bounds.Width,
		ArenaHeight: g.bounds.Height,
		Tick:        g.tick,
		Nodes:       g.census.Nodes(),
		Root:        g.nodeState(g.root),
		Bookmark:    bookmark,
	}
}

// nodeState serializes the subtree rooted at e.
func (g *Game) nodeState(e ecs.Entity) telemetry.NodeState {
	pos, vel, body, tint, lineage := g.nodeMapper.Get(e)

	state := telemetry.NodeState{
		ID:         lineage.ID,
		Generation: body.Generation,
		X:          pos.X,
		Y:          pos.Y,
		VelX:       vel.X,
		VelY:       vel.Y,
		Radius:     body.Radius,
		Color:      rgba(tint.Current),
		Target:     rgba(tint.Target),
	}

	children := lineage.Children
	if len(children) > 0 {
		state.Children = make([]telemetry.NodeState, len(children))
		for i, child := range children {
			state.Children[i] = g.nodeState(child)
		}
	}

	return state
}

func rgba(c color.RGBA) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}
