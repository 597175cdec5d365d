package telemetry

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version:     SnapshotVersion,
		RNGSeed:     42,
		ArenaWidth:  1024,
		ArenaHeight: 576,
		Tick:        1000,
		Nodes:       4,
		Root: NodeState{
			ID:     0,
			X:      900,
			Y:      238,
			VelX:   -3.5,
			VelY:   3.57,
			Radius: 64,
			Color:  [4]uint8{253, 249, 0, 255},
			Target: [4]uint8{253, 249, 0, 255},
			Children: []NodeState{
				{ID: 1, Generation: 1, Radius: 37, Color: [4]uint8{253, 249, 0, 255}, Target: [4]uint8{10, 20, 30, 255}},
				{ID: 2, Generation: 1, Radius: 37, Color: [4]uint8{253, 249, 0, 255}, Target: [4]uint8{40, 50, 60, 255}},
				{ID: 3, Generation: 1, Radius: 37, Color: [4]uint8{253, 249, 0, 255}, Target: [4]uint8{70, 80, 90, 255}},
			},
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if filepath.Base(path) != "snapshot_1000.json" {
		t.Errorf("unexpected filename %q", filepath.Base(path))
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.Version != SnapshotVersion {
		t.Errorf("Version = %d, want %d", loaded.Version, SnapshotVersion)
	}
	if loaded.Nodes != 4 {
		t.Errorf("Nodes = %d, want 4", loaded.Nodes)
	}
	if got := loaded.Root.Count(); got != 4 {
		t.Errorf("Root.Count() = %d, want 4", got)
	}
	if loaded.Root.Children[2].Target != [4]uint8{70, 80, 90, 255} {
		t.Errorf("child target = %v", loaded.Root.Children[2].Target)
	}
	if loaded.Root.VelX != -3.5 {
		t.Errorf("VelX = %v, want -3.5", loaded.Root.VelX)
	}
}

func TestSnapshotWithBookmark(t *testing.T) {
	snapshot := &Snapshot{
		Version:  SnapshotVersion,
		Tick:     2400,
		Root:     NodeState{Radius: 64},
		Bookmark: &Bookmark{Type: BookmarkGrowthSaturated, Tick: 2400, Description: "done"},
	}

	path, err := SaveSnapshot(snapshot, t.TempDir())
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if !strings.HasSuffix(path, "snapshot_2400_growth_saturated.json") {
		t.Errorf("unexpected path %q", path)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Bookmark == nil || loaded.Bookmark.Type != BookmarkGrowthSaturated {
		t.Errorf("bookmark = %+v, want growth_saturated", loaded.Bookmark)
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing snapshot")
	}
}
