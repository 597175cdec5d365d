// Package components defines ECS components for the simulation.
package components

import "github.com/mlange-42/ark/ecs"

// Lineage links a circle into the population tree.
// Children are owned handles; Parent is informational only and the zero
// Entity for the root.
type Lineage struct {
	ID       uint32
	Parent   ecs.Entity
	Children []ecs.Entity
}

// IsLeaf reports whether the circle has not spawned yet.
func (l *Lineage) IsLeaf() bool {
	return len(l.Children) == 0
}
