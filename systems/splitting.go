package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bloom/components"
)

// SplitOutcome describes what a wall hit did to a circle.
type SplitOutcome uint8

const (
	SplitSpawned   SplitOutcome = iota // Circle became a branch with new children
	SplitThrottled                     // Measured frame rate below target
	SplitMaxDepth                      // Circle is already at the generation limit
	SplitNotLeaf                       // Circle spawned earlier (e.g. first wall of a corner hit)
)

// String returns the outcome name used in logs.
func (o SplitOutcome) String() string {
	switch o {
	case SplitSpawned:
		return "spawned"
	case SplitThrottled:
		return "throttled"
	case SplitMaxDepth:
		return "max_depth"
	case SplitNotLeaf:
		return "not_leaf"
	}
	return "unknown"
}

// SplitConfig holds the cluster rules.
type SplitConfig struct {
	GenerationMax int
	MinChildren   int
	MaxChildren   int
	Speed         float64 // Velocity magnitude of each child
	Spread        float64 // Radians, divided by the child count
	SpreadOffset  float64 // Radians subtracted from the parent heading
	TargetFPS     int32
}

// Census counts every circle ever created, the root included. It only grows.
type Census struct {
	nodes uint32
}

// NewCensus returns a census that already counts the root.
func NewCensus() Census {
	return Census{nodes: 1}
}

// Add records n new circles and returns the ID of the first one.
// IDs are sequential, so the root is 0 and the first child is 1.
func (c *Census) Add(n int) uint32 {
	first := c.nodes
	c.nodes += uint32(n)
	return first
}

// Nodes returns the number of circles created so far.
func (c *Census) Nodes() uint32 {
	return c.nodes
}

// Splitter turns a leaf circle into a branch with a fan of children.
type Splitter struct {
	cfg SplitConfig
	rng *rand.Rand

	mapper     *ecs.Map5[components.Position, components.Velocity, components.Body, components.Tint, components.Lineage]
	posMap     *ecs.Map1[components.Position]
	bodyMap    *ecs.Map1[components.Body]
	tintMap    *ecs.Map1[components.Tint]
	lineageMap *ecs.Map1[components.Lineage]
}

// NewSplitter creates a splitter that spawns into the given world.
func NewSplitter(w *ecs.World, cfg SplitConfig, rng *rand.Rand) *Splitter {
	return &Splitter{
		cfg:        cfg,
		rng:        rng,
		mapper:     ecs.NewMap5[components.Position, components.Velocity, components.Body, components.Tint, components.Lineage](w),
		posMap:     ecs.NewMap1[components.Position](w),
		bodyMap:    ecs.NewMap1[components.Body](w),
		tintMap:    ecs.NewMap1[components.Tint](w),
		lineageMap: ecs.NewMap1[components.Lineage](w),
	}
}

// Split spawns a cluster from circle e if the rules allow it.
// heading is the velocity the fan is centered on, normally the one right
// after the wall reflection. fps is the currently measured frame rate.
// Returns the outcome and the number of children created.
func (s *Splitter) Split(e ecs.Entity, heading components.Velocity, fps int32, census *Census) (SplitOutcome, int) {
	if !s.lineageMap.Get(e).IsLeaf() {
		return SplitNotLeaf, 0
	}
	body := *s.bodyMap.Get(e)
	if body.Generation >= s.cfg.GenerationMax {
		return SplitMaxDepth, 0
	}
	if fps < s.cfg.TargetFPS {
		return SplitThrottled, 0
	}

	k := RandomValue(s.rng, s.cfg.MinChildren, s.cfg.MaxChildren)
	firstID := census.Add(k)

	// Copy parent state before creating entities; component storage may move.
	pos := *s.posMap.Get(e)
	tint := *s.tintMap.Get(e)
	base := headingOf(heading)
	radius := ChildRadius(body.Radius, k)

	children := make([]ecs.Entity, k)
	for i := range k {
		childPos := pos
		childVel := components.Velocity(polar(s.cfg.Speed, FanHeading(base, i, k, s.cfg.Spread, s.cfg.SpreadOffset)))
		childBody := components.Body{Radius: radius, Generation: body.Generation + 1}
		childTint := components.Tint{Current: tint.Current, Target: RandomColor(s.rng)}
		childLineage := components.Lineage{ID: firstID + uint32(i), Parent: e}
		children[i] = s.mapper.NewEntity(&childPos, &childVel, &childBody, &childTint, &childLineage)
	}

	s.lineageMap.Get(e).Children = children
	return SplitSpawned, k
}

func headingOf(v components.Velocity) float64 {
	return heading(v.Vec())
}
