package telemetry

import (
	"image/color"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

// histogramGenerations is the number of per-generation leaf columns in the
// CSV. Deeper generations are folded into the last column.
const histogramGenerations = 6

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Tree shape at window end
	Nodes           int `csv:"nodes"`
	Leaves          int `csv:"leaves"`
	Branches        int `csv:"branches"`
	MaxGeneration   int `csv:"max_generation"`
	SpawnableLeaves int `csv:"spawnable_leaves"` // Leaves below the generation limit

	// Events during window
	SpawnEvents      int `csv:"spawn_events"`
	ChildrenSpawned  int `csv:"children_spawned"`
	SpawnsThrottled  int `csv:"spawns_throttled"`
	SpawnsAtMaxDepth int `csv:"spawns_at_max_depth"`
	Reflections      int `csv:"reflections"`

	// Leaves per generation
	LeavesGen0     int `csv:"leaves_gen0"`
	LeavesGen1     int `csv:"leaves_gen1"`
	LeavesGen2     int `csv:"leaves_gen2"`
	LeavesGen3     int `csv:"leaves_gen3"`
	LeavesGen4     int `csv:"leaves_gen4"`
	LeavesGen5Plus int `csv:"leaves_gen5_plus"`

	// Leaf radius distribution
	LeafRadiusMean float64 `csv:"leaf_radius_mean"`
	LeafRadiusStd  float64 `csv:"leaf_radius_std"`

	// Color animation: leaves whose current color has not reached the
	// target, and the mean CIE Lab distance still to cover.
	AnimatingLeaves int     `csv:"animating_leaves"`
	ColorGapMean    float64 `csv:"color_gap_mean"`
}

// TreeSample is the population state the game measures at a window boundary.
type TreeSample struct {
	Nodes           int
	Branches        int
	MaxGeneration   int
	SpawnableLeaves int

	// Per leaf
	LeafGenerations []int
	LeafRadii       []float64
	ColorGaps       []float64 // zero for leaves that are not animating
}

// Leaves returns the number of sampled leaves.
func (s TreeSample) Leaves() int {
	return len(s.LeafGenerations)
}

// ColorGap returns the perceptual distance between two colors in CIE Lab.
// Alpha is ignored.
func ColorGap(a, b color.RGBA) float64 {
	if a == b {
		return 0
	}
	return toColorful(a).DistanceLab(toColorful(b))
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// GenerationHistogram counts leaves per generation, folding generations at
// or beyond the last bucket into it.
func GenerationHistogram(generations []int) [histogramGenerations]int {
	var h [histogramGenerations]int
	for _, g := range generations {
		if g < 0 {
			continue
		}
		if g >= histogramGenerations {
			g = histogramGenerations - 1
		}
		h[g]++
	}
	return h
}

// ComputeRadiusStats returns the mean and sample standard deviation of radii.
func ComputeRadiusStats(radii []float64) (mean, std float64) {
	switch len(radii) {
	case 0:
		return 0, 0
	case 1:
		return radii[0], 0
	}
	return stat.MeanStdDev(radii, nil)
}

// ComputeGapStats returns how many gaps are non-zero and their mean.
func ComputeGapStats(gaps []float64) (animating int, mean float64) {
	var sum float64
	for _, g := range gaps {
		if g > 0 {
			animating++
			sum += g
		}
	}
	if animating == 0 {
		return 0, 0
	}
	return animating, sum / float64(animating)
}

// LogStats logs window statistics using slog.
func (s WindowStats) LogStats() {
	slog.Info("window stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"nodes", s.Nodes,
		"leaves", s.Leaves,
		"branches", s.Branches,
		"max_generation", s.MaxGeneration,
		"spawn_events", s.SpawnEvents,
		"children_spawned", s.ChildrenSpawned,
		"spawns_throttled", s.SpawnsThrottled,
		"reflections", s.Reflections,
		"animating_leaves", s.AnimatingLeaves,
		"color_gap_mean", s.ColorGapMean,
	)
}
