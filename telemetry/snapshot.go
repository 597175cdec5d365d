package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the whole population tree at one frame.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`

	ArenaWidth  float64 `json:"arena_width"`
	ArenaHeight float64 `json:"arena_height"`

	Tick  int32  `json:"tick"`
	Nodes uint32 `json:"nodes"` // Circles created so far, root included

	Root NodeState `json:"root"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// NodeState holds one circle and, recursively, everything it spawned.
type NodeState struct {
	ID         uint32 `json:"id"`
	Generation int    `json:"generation"`

	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VelX float64 `json:"vel_x"`
	VelY float64 `json:"vel_y"`

	Radius uint32   `json:"radius"`
	Color  [4]uint8 `json:"color"`
	Target [4]uint8 `json:"target"`

	Children []NodeState `json:"children,omitempty"`
}

// Count returns the number of circles in the subtree rooted at n.
func (n *NodeState) Count() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].Count()
	}
	return total
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
