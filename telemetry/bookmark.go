package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstSpawn      BookmarkType = "first_spawn"
	BookmarkNewGeneration   BookmarkType = "new_generation"
	BookmarkThrottleEngaged BookmarkType = "throttle_engaged"
	BookmarkSpawnBurst      BookmarkType = "spawn_burst"
	BookmarkGrowthSaturated BookmarkType = "growth_saturated"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects milestones in the growth of the tree.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	spawnedOnce   bool
	maxGeneration int
	throttling    bool
	saturated     bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3 // minimum for a meaningful rolling average
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	for _, check := range []func(WindowStats) *Bookmark{
		bd.checkFirstSpawn,
		bd.checkNewGeneration,
		bd.checkThrottleEngaged,
		bd.checkSpawnBurst,
		bd.checkGrowthSaturated,
	} {
		if b := check(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFirstSpawn(stats WindowStats) *Bookmark {
	if bd.spawnedOnce || stats.SpawnEvents == 0 {
		return nil
	}
	bd.spawnedOnce = true

	return &Bookmark{
		Type:        BookmarkFirstSpawn,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("First cluster spawned, %d children in window", stats.ChildrenSpawned),
	}
}

func (bd *BookmarkDetector) checkNewGeneration(stats WindowStats) *Bookmark {
	if stats.MaxGeneration <= bd.maxGeneration {
		return nil
	}
	old := bd.maxGeneration
	bd.maxGeneration = stats.MaxGeneration

	return &Bookmark{
		Type:        BookmarkNewGeneration,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Deepest generation grew from %d to %d", old, stats.MaxGeneration),
	}
}

// checkThrottleEngaged fires on the first window of each throttled streak.
func (bd *BookmarkDetector) checkThrottleEngaged(stats WindowStats) *Bookmark {
	if stats.SpawnsThrottled == 0 {
		bd.throttling = false
		return nil
	}
	if bd.throttling {
		return nil
	}
	bd.throttling = true

	return &Bookmark{
		Type:        BookmarkThrottleEngaged,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Frame rate throttle suppressed %d spawns with %d nodes", stats.SpawnsThrottled, stats.Nodes),
	}
}

func (bd *BookmarkDetector) checkSpawnBurst(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.SpawnEvents
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.SpawnEvents) > avg*2.0 && stats.SpawnEvents >= 5 {
		return &Bookmark{
			Type:        BookmarkSpawnBurst,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d spawn events is %.1fx average (%.1f)", stats.SpawnEvents, float64(stats.SpawnEvents)/avg, avg),
		}
	}

	return nil
}

// checkGrowthSaturated fires once when no leaf can spawn any more.
func (bd *BookmarkDetector) checkGrowthSaturated(stats WindowStats) *Bookmark {
	if bd.saturated || stats.Branches == 0 || stats.SpawnableLeaves > 0 {
		return nil
	}
	bd.saturated = true

	return &Bookmark{
		Type:        BookmarkGrowthSaturated,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("All %d leaves reached generation %d; the tree is final", stats.Leaves, stats.MaxGeneration),
	}
}
