package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// RandomValue returns a uniformly random integer in [min, max], both inclusive.
func RandomValue(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// heading returns the direction of v in radians.
func heading(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// polar returns a vector of the given length pointing at angle.
func polar(length, angle float64) r2.Vec {
	return r2.Scale(length, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)})
}

// FanHeading returns the heading of child i in a cluster of k.
// The step is spread/k rather than spread/(k-1), so the fan narrows as k grows
// and never reaches base-offset+spread.
func FanHeading(base float64, i, k int, spread, offset float64) float64 {
	return base - offset + float64(i)*(spread/float64(k))
}

// ChildRadius returns the radius of each of k children so that their total
// area roughly matches the parent's: floor(sqrt(r²/k)) + 1.
func ChildRadius(parent uint32, k int) uint32 {
	r := float64(parent)
	return uint32(math.Sqrt(r*r/float64(k))) + 1
}
