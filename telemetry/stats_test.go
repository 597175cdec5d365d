package telemetry

import (
	"image/color"
	"math"
	"testing"
)

func TestGenerationHistogram(t *testing.T) {
	tests := []struct {
		name        string
		generations []int
		want        [histogramGenerations]int
	}{
		{"empty", nil, [histogramGenerations]int{}},
		{"root only", []int{0}, [histogramGenerations]int{1, 0, 0, 0, 0, 0}},
		{"mixed", []int{1, 1, 2, 5, 5, 5}, [histogramGenerations]int{0, 2, 1, 0, 0, 3}},
		{"deep folded", []int{6, 9, 5}, [histogramGenerations]int{0, 0, 0, 0, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerationHistogram(tt.generations); got != tt.want {
				t.Errorf("GenerationHistogram(%v) = %v, want %v", tt.generations, got, tt.want)
			}
		})
	}
}

func TestComputeRadiusStats(t *testing.T) {
	mean, std := ComputeRadiusStats([]float64{10, 12, 14})
	if math.Abs(mean-12) > 1e-9 {
		t.Errorf("mean = %v, want 12", mean)
	}
	if math.Abs(std-2) > 1e-9 {
		t.Errorf("std = %v, want 2", std)
	}

	mean, std = ComputeRadiusStats([]float64{64})
	if mean != 64 || std != 0 {
		t.Errorf("single radius = (%v, %v), want (64, 0)", mean, std)
	}

	mean, std = ComputeRadiusStats(nil)
	if mean != 0 || std != 0 {
		t.Errorf("empty = (%v, %v), want zeros", mean, std)
	}
}

func TestColorGap(t *testing.T) {
	yellow := color.RGBA{R: 253, G: 249, B: 0, A: 255}
	if got := ColorGap(yellow, yellow); got != 0 {
		t.Errorf("ColorGap(equal) = %v, want 0", got)
	}

	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	grey := color.RGBA{R: 128, G: 128, B: 128, A: 255}

	far := ColorGap(black, white)
	near := ColorGap(grey, white)
	if far <= near || near <= 0 {
		t.Errorf("expected 0 < ColorGap(grey, white)=%v < ColorGap(black, white)=%v", near, far)
	}
	if math.Abs(ColorGap(white, black)-far) > 1e-9 {
		t.Error("ColorGap should be symmetric")
	}
}

func TestComputeGapStats(t *testing.T) {
	animating, mean := ComputeGapStats([]float64{0, 0.2, 0, 0.4})
	if animating != 2 {
		t.Errorf("animating = %d, want 2", animating)
	}
	if math.Abs(mean-0.3) > 1e-9 {
		t.Errorf("mean = %v, want 0.3", mean)
	}

	animating, mean = ComputeGapStats([]float64{0, 0})
	if animating != 0 || mean != 0 {
		t.Errorf("settled = (%d, %v), want zeros", animating, mean)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(400, 40)

	if c.ShouldFlush(399) {
		t.Error("ShouldFlush(399) = true before window end")
	}
	if !c.ShouldFlush(400) {
		t.Error("ShouldFlush(400) = false at window end")
	}

	c.RecordSpawn(3)
	c.RecordSpawn(5)
	c.RecordThrottled()
	c.RecordMaxDepth()
	c.RecordReflections(2)

	sample := TreeSample{
		Nodes:           9,
		Branches:        2,
		MaxGeneration:   2,
		SpawnableLeaves: 7,
		LeafGenerations: []int{1, 1, 2, 2, 2, 2, 2},
		LeafRadii:       []float64{38, 38, 17, 17, 17, 17, 17},
		ColorGaps:       []float64{0, 1.5, 0, 0, 0.5, 0, 0},
	}

	stats := c.Flush(400, sample)

	if stats.SimTimeSec != 10 {
		t.Errorf("SimTimeSec = %v, want 10", stats.SimTimeSec)
	}
	if stats.SpawnEvents != 2 || stats.ChildrenSpawned != 8 {
		t.Errorf("spawns = (%d, %d), want (2, 8)", stats.SpawnEvents, stats.ChildrenSpawned)
	}
	if stats.SpawnsThrottled != 1 || stats.SpawnsAtMaxDepth != 1 || stats.Reflections != 2 {
		t.Errorf("throttled/maxdepth/reflections = (%d, %d, %d), want (1, 1, 2)",
			stats.SpawnsThrottled, stats.SpawnsAtMaxDepth, stats.Reflections)
	}
	if stats.Leaves != 7 || stats.LeavesGen1 != 2 || stats.LeavesGen2 != 5 {
		t.Errorf("leaves = %d (gen1 %d, gen2 %d), want 7 (2, 5)", stats.Leaves, stats.LeavesGen1, stats.LeavesGen2)
	}
	if stats.AnimatingLeaves != 2 || math.Abs(stats.ColorGapMean-1.0) > 1e-9 {
		t.Errorf("animating = (%d, %v), want (2, 1.0)", stats.AnimatingLeaves, stats.ColorGapMean)
	}

	// Counters reset for the next window
	next := c.Flush(800, TreeSample{})
	if next.SpawnEvents != 0 || next.Reflections != 0 || next.SpawnsThrottled != 0 {
		t.Error("expected counters to reset after flush")
	}
	if next.WindowStartTick != 400 {
		t.Errorf("WindowStartTick = %d, want 400", next.WindowStartTick)
	}
}
