package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/bloom/config"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// A nil manager is a no-op sink
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("WriteTelemetry on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	rows := []WindowStats{
		{WindowEndTick: 400, Nodes: 1, Leaves: 1, LeavesGen0: 1},
		{WindowEndTick: 800, Nodes: 6, Leaves: 5, Branches: 1, SpawnEvents: 1, ChildrenSpawned: 5, LeavesGen1: 5},
	}
	for _, r := range rows {
		if err := om.WriteTelemetry(r); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkFirstSpawn, Tick: 800, Description: "first"}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 800); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "window_end"); n != 1 {
		t.Errorf("header written %d times, want 1", n)
	}

	var got []WindowStats
	if err := gocsv.UnmarshalBytes(data, &got); err != nil {
		t.Fatalf("UnmarshalBytes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("read %d rows, want 2", len(got))
	}
	if got[1].ChildrenSpawned != 5 || got[1].LeavesGen1 != 5 {
		t.Errorf("second row = %+v, want 5 children in gen1", got[1])
	}

	var marks []Bookmark
	bdata, err := os.ReadFile(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if err := gocsv.UnmarshalBytes(bdata, &marks); err != nil {
		t.Fatalf("UnmarshalBytes bookmarks: %v", err)
	}
	if len(marks) != 1 || marks[0].Type != BookmarkFirstSpawn {
		t.Errorf("bookmarks = %+v, want one first_spawn", marks)
	}

	if _, err := os.Stat(filepath.Join(dir, "perf.csv")); err != nil {
		t.Errorf("perf.csv missing: %v", err)
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	reloaded, err := config.Load(filepath.Join(om.Dir(), "config.yaml"))
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if reloaded.Population.GenerationMax != cfg.Population.GenerationMax {
		t.Errorf("generation_max = %d, want %d", reloaded.Population.GenerationMax, cfg.Population.GenerationMax)
	}
}
