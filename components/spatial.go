package components

import "gonum.org/v1/gonum/spatial/r2"

// Position represents a circle's center in arena coordinates.
type Position r2.Vec

// Velocity represents a circle's displacement per frame.
type Velocity r2.Vec

// Vec returns the position as a gonum vector.
func (p Position) Vec() r2.Vec { return r2.Vec(p) }

// Vec returns the velocity as a gonum vector.
func (v Velocity) Vec() r2.Vec { return r2.Vec(v) }
