// Package telemetry provides population tracking, bookmarking, CSV output and
// tree snapshots.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	ticksPerSecond      float64

	windowStartTick int32

	// Event counters for current window
	spawnEvents      int
	childrenSpawned  int
	spawnsThrottled  int
	spawnsAtMaxDepth int
	reflections      int
}

// NewCollector creates a new stats collector.
// windowTicks: frames per window
// ticksPerSecond: nominal frame rate, for tick-to-time conversion
func NewCollector(windowTicks int32, ticksPerSecond float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	return &Collector{
		windowDurationTicks: windowTicks,
		ticksPerSecond:      ticksPerSecond,
	}
}

// RecordSpawn records a circle turning into a branch with n children.
func (c *Collector) RecordSpawn(n int) {
	c.spawnEvents++
	c.childrenSpawned += n
}

// RecordThrottled records a wall hit whose spawn was suppressed by the frame rate.
func (c *Collector) RecordThrottled() {
	c.spawnsThrottled++
}

// RecordMaxDepth records a wall hit by a circle at the generation limit.
func (c *Collector) RecordMaxDepth() {
	c.spawnsAtMaxDepth++
}

// RecordReflections records n wall reflections.
func (c *Collector) RecordReflections(n int) {
	c.reflections += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the counters and the sampled tree, and
// resets counters for the next window.
func (c *Collector) Flush(currentTick int32, sample TreeSample) WindowStats {
	hist := GenerationHistogram(sample.LeafGenerations)
	radiusMean, radiusStd := ComputeRadiusStats(sample.LeafRadii)
	animating, gapMean := ComputeGapStats(sample.ColorGaps)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) / c.ticksPerSecond,

		Nodes:           sample.Nodes,
		Leaves:          sample.Leaves(),
		Branches:        sample.Branches,
		MaxGeneration:   sample.MaxGeneration,
		SpawnableLeaves: sample.SpawnableLeaves,

		SpawnEvents:      c.spawnEvents,
		ChildrenSpawned:  c.childrenSpawned,
		SpawnsThrottled:  c.spawnsThrottled,
		SpawnsAtMaxDepth: c.spawnsAtMaxDepth,
		Reflections:      c.reflections,

		LeavesGen0:     hist[0],
		LeavesGen1:     hist[1],
		LeavesGen2:     hist[2],
		LeavesGen3:     hist[3],
		LeavesGen4:     hist[4],
		LeavesGen5Plus: hist[5],

		LeafRadiusMean: radiusMean,
		LeafRadiusStd:  radiusStd,

		AnimatingLeaves: animating,
		ColorGapMean:    gapMean,
	}

	c.windowStartTick = currentTick
	c.spawnEvents = 0
	c.childrenSpawned = 0
	c.spawnsThrottled = 0
	c.spawnsAtMaxDepth = 0
	c.reflections = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
