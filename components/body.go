package components

import "image/color"

// Body holds the physical properties of a circle.
type Body struct {
	Radius     uint32
	Generation int // 0 for the root, +1 per spawn level
}

// Tint holds the animated fill color of a circle.
// Current moves toward Target every frame until they are equal.
type Tint struct {
	Current color.RGBA
	Target  color.RGBA
}

// Animating reports whether the fill color still differs from its target.
func (t Tint) Animating() bool {
	return t.Current != t.Target
}
