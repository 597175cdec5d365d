package game

import (
	"context"
	"log/slog"

	"github.com/mlange-42/ark/ecs"
)

// logSpawnEvent logs a circle turning into a branch.
func (g *Game) logSpawnEvent(parent ecs.Entity, children int, fps int32) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	lineage := g.lineageMap.Get(parent)
	body := g.bodyMap.Get(parent)
	slog.Debug("spawn",
		"tick", g.tick,
		"id", lineage.ID,
		"generation", body.Generation,
		"radius", body.Radius,
		"children", children,
		"first_child_id", g.lineageMap.Get(lineage.Children[0]).ID,
		"fps", fps,
		"nodes", g.census.Nodes(),
	)
}

// logThrottledEvent logs a spawn suppressed by the frame rate.
func (g *Game) logThrottledEvent(e ecs.Entity, fps int32) {
	slog.Debug("spawn throttled",
		"tick", g.tick,
		"id", g.lineageMap.Get(e).ID,
		"fps", fps,
		"target_fps", g.cfg.Screen.TargetFPS,
	)
}

// LogSummary logs the final shape of the tree.
func (g *Game) LogSummary() {
	nodes := int(g.census.Nodes())
	slog.Info("tree summary",
		"tick", g.tick,
		"nodes", nodes,
		"branches", g.branches,
		"leaves", nodes-g.branches,
		"max_generation", g.maxGeneration,
		"generation_max", g.cfg.Population.GenerationMax,
	)
}
