package systems

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/pthm-cable/bloom/components"
)

func TestLerpColor_EqualIsNoOp(t *testing.T) {
	c := color.RGBA{R: 12, G: 34, B: 56, A: 255}
	if got := LerpColor(c, c, 0.025); got != c {
		t.Errorf("expected %v, got %v", c, got)
	}
}

func TestLerpColor_Truncates(t *testing.T) {
	tests := []struct {
		name    string
		current uint8
		target  uint8
		want    uint8
	}{
		{"up from zero", 0, 255, 6},
		{"down from full", 255, 0, 248},
		{"small gap stalls", 250, 255, 250},
		{"near zero", 5, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lerpChannel(tt.current, tt.target, 0.025)
			if got != tt.want {
				t.Errorf("lerpChannel(%d, %d) = %d, want %d", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestLerpColor_NeverOvershoots(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		current := RandomColor(rng)
		target := RandomColor(rng)

		for step := 0; step < 300; step++ {
			next := LerpColor(current, target, 0.025)
			checkChannel(t, "R", current.R, next.R, target.R)
			checkChannel(t, "G", current.G, next.G, target.G)
			checkChannel(t, "B", current.B, next.B, target.B)
			current = next
		}
	}
}

func checkChannel(t *testing.T, name string, before, after, target uint8) {
	t.Helper()
	if dist(after, target) > dist(before, target) {
		t.Fatalf("%s moved away from target: %d -> %d (target %d)", name, before, after, target)
	}
	if (before <= target && after > target) || (before >= target && after < target) {
		t.Fatalf("%s overshot: %d -> %d (target %d)", name, before, after, target)
	}
}

func dist(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestUpdateTint(t *testing.T) {
	target := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	tint := components.Tint{Current: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Target: target}

	UpdateTint(&tint, 0.025)
	if tint.Current.R != 248 {
		t.Errorf("expected R=248 after one frame, got %d", tint.Current.R)
	}

	// Moving down truncates toward the target, so the animation finishes.
	for i := 0; i < 500 && tint.Animating(); i++ {
		UpdateTint(&tint, 0.025)
	}
	if tint.Animating() {
		t.Errorf("expected animation to finish, still at %v", tint.Current)
	}

	// Finished tints stay put.
	UpdateTint(&tint, 0.025)
	if tint.Current != target {
		t.Errorf("expected %v, got %v", target, tint.Current)
	}
}

func TestRandomColor_Opaque(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if c := RandomColor(rng); c.A != 255 {
			t.Fatalf("expected alpha 255, got %d", c.A)
		}
	}
}
