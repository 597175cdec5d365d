package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bloom/systems"
)

// walk visits the subtree rooted at e in post-order: children first, then e.
// The child list is read before recursing, so clusters spawned this frame
// are first visited on the next one. Depth is bounded by the generation limit.
func (g *Game) walk(e ecs.Entity, fps int32) {
	children := g.lineageMap.Get(e).Children
	for _, child := range children {
		g.walk(child, fps)
	}
	g.step(e, fps)
}

// step moves, bounces, spawns, recolors and draws one leaf.
// Branches are dormant and skipped.
func (g *Game) step(e ecs.Entity, fps int32) {
	if !g.lineageMap.Get(e).IsLeaf() {
		return
	}

	pos := g.posMap.Get(e)
	vel := g.velMap.Get(e)
	body := g.bodyMap.Get(e)

	contact := systems.Advance(pos, vel, body.Radius, g.bounds)
	if contact.Hit() {
		g.collector.RecordReflections(contact.Count())
		if g.trySplit(e, contact, fps) {
			// Now a branch: its children act from the next frame on.
			return
		}
	}

	// No entity was created above, so the component pointers are still valid.
	tint := g.tintMap.Get(e)
	systems.UpdateTint(tint, g.cfg.Tint.Blend)

	g.host.DrawCircle(int32(pos.X), int32(pos.Y), float32(body.Radius), tint.Current)
}

// trySplit runs the spawn rules for a wall hit and records the outcome.
// Returns true if e became a branch.
func (g *Game) trySplit(e ecs.Entity, contact systems.Contact, fps int32) bool {
	outcome, n := g.splitter.Split(e, contact.Heading, fps, &g.census)

	switch outcome {
	case systems.SplitSpawned:
		g.collector.RecordSpawn(n)
		g.branches++
		if gen := g.bodyMap.Get(e).Generation + 1; gen > g.maxGeneration {
			g.maxGeneration = gen
		}
		g.logSpawnEvent(e, n, fps)
		return true
	case systems.SplitThrottled:
		g.collector.RecordThrottled()
		g.logThrottledEvent(e, fps)
	case systems.SplitMaxDepth:
		g.collector.RecordMaxDepth()
	}
	return false
}
