package systems

import (
	"image/color"
	"math/rand"

	"github.com/pthm-cable/bloom/components"
)

// LerpColor moves each channel of current toward target by amount.
// Channels are truncated back to 8 bits, so small gaps may never close.
func LerpColor(current, target color.RGBA, amount float32) color.RGBA {
	if current == target {
		return current
	}
	return color.RGBA{
		R: lerpChannel(current.R, target.R, amount),
		G: lerpChannel(current.G, target.G, amount),
		B: lerpChannel(current.B, target.B, amount),
		A: lerpChannel(current.A, target.A, amount),
	}
}

func lerpChannel(c, t uint8, amount float32) uint8 {
	return uint8(int(float32(c)*(1-amount) + float32(t)*amount))
}

// UpdateTint advances an animating tint by one frame.
// Exact equality ends the animation; there is no epsilon.
func UpdateTint(tint *components.Tint, amount float32) {
	if tint.Animating() {
		tint.Current = LerpColor(tint.Current, tint.Target, amount)
	}
}

// RandomColor returns a uniformly random opaque color.
func RandomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(RandomValue(rng, 0, 255)),
		G: uint8(RandomValue(rng, 0, 255)),
		B: uint8(RandomValue(rng, 0, 255)),
		A: 255,
	}
}
