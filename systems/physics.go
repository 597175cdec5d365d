// Package systems contains the per-node rules of the simulation: motion,
// wall reflection, cluster spawning and color animation.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bloom/components"
)

// Bounds represents the arena. The origin is the top-left corner.
type Bounds struct {
	Width, Height float64
}

// Wall identifies an arena edge. Walls combine as a bit set.
type Wall uint8

const (
	WallRight Wall = 1 << iota
	WallLeft
	WallBottom
	WallTop
)

// Contact is the outcome of one motion step.
type Contact struct {
	Walls Wall

	// Heading is the velocity right after the first reflection of the step.
	// Only meaningful when Walls != 0.
	Heading components.Velocity
}

// Hit reports whether any wall was struck.
func (c Contact) Hit() bool {
	return c.Walls != 0
}

// Count returns how many walls were struck in the step.
func (c Contact) Count() int {
	n := 0
	for w := c.Walls; w != 0; w &= w - 1 {
		n++
	}
	return n
}

// Advance integrates one frame of motion and resolves wall contacts.
// Each violated edge clamps the position to radius+1 inside the arena and
// negates the matching velocity component; axes are resolved independently.
func Advance(pos *components.Position, vel *components.Velocity, radius uint32, bounds Bounds) Contact {
	*pos = components.Position(r2.Add(pos.Vec(), vel.Vec()))

	var c Contact
	r := float64(radius)

	if pos.X+r >= bounds.Width {
		pos.X = bounds.Width - r - 1
		vel.X = -vel.X
		c.record(WallRight, *vel)
	}
	if pos.X-r <= 0 {
		pos.X = r + 1
		vel.X = -vel.X
		c.record(WallLeft, *vel)
	}
	if pos.Y+r >= bounds.Height {
		pos.Y = bounds.Height - r - 1
		vel.Y = -vel.Y
		c.record(WallBottom, *vel)
	}
	if pos.Y-r <= 0 {
		pos.Y = r + 1
		vel.Y = -vel.Y
		c.record(WallTop, *vel)
	}

	return c
}

func (c *Contact) record(w Wall, vel components.Velocity) {
	if c.Walls == 0 {
		c.Heading = vel
	}
	c.Walls |= w
}
