package scene

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"maze3d"
)

// Snapshot is the JSON form of an occupancy grid: its size and the list of
// wall cells.
type Snapshot struct {
	Size      [3]int           `json:"size"`
	Adjacency maze3d.Adjacency `json:"adjacency,omitempty"`
	Blocked   []maze3d.Coord   `json:"blocked"`
}

// UnmarshalJSON decodes a snapshot, requiring a three-axis size. Blocked
// cells must have exactly three components.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw struct {
		Size      []int            `json:"size"`
		Adjacency maze3d.Adjacency `json:"adjacency"`
		Blocked   []maze3d.Coord   `json:"blocked"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Size) != 3 {
		return fmt.Errorf("%w: snapshot size has %d values, want 3",
			maze3d.ErrInvalidConfiguration, len(raw.Size))
	}
	*s = Snapshot{
		Size:      [3]int{raw.Size[0], raw.Size[1], raw.Size[2]},
		Adjacency: raw.Adjacency,
		Blocked:   raw.Blocked,
	}
	return nil
}

// NewSnapshot captures an engine's grid and adjacency class.
func NewSnapshot(engine *maze3d.Engine) Snapshot {
	grid := engine.Grid()
	snapshot := Snapshot{
		Size:      grid.Dims(),
		Adjacency: engine.Adjacency(),
		Blocked:   make([]maze3d.Coord, 0, grid.Blocked()),
	}
	for x, plane := range grid.Occupancy() {
		for y, row := range plane {
			for z, wall := range row {
				if wall {
					snapshot.Blocked = append(snapshot.Blocked, maze3d.Coord{x, y, z})
				}
			}
		}
	}
	return snapshot
}

// Occupancy expands the snapshot back into an [x][y][z] grid.
func (s Snapshot) Occupancy() ([][][]bool, error) {
	for axis, n := range s.Size {
		if n <= 0 {
			return nil, fmt.Errorf("%w: snapshot size %v has a non-positive axis %d",
				maze3d.ErrInvalidConfiguration, s.Size, axis)
		}
	}
	occupancy := Empty(s.Size)
	for _, cell := range s.Blocked {
		for axis := 0; axis < 3; axis++ {
			if cell[axis] < 0 || cell[axis] >= s.Size[axis] {
				return nil, fmt.Errorf("%w: blocked cell %v outside snapshot size %v",
					maze3d.ErrInvalidConfiguration, cell, s.Size)
			}
		}
		occupancy[cell[0]][cell[1]][cell[2]] = true
	}
	return occupancy, nil
}

// Engine rebuilds a search engine from the snapshot. A snapshot without an
// adjacency class uses face adjacency.
func (s Snapshot) Engine(options ...maze3d.Option) (*maze3d.Engine, error) {
	occupancy, err := s.Occupancy()
	if err != nil {
		return nil, err
	}
	adjacency := s.Adjacency
	if adjacency == 0 {
		adjacency = maze3d.FaceAdjacent
	}
	return maze3d.New(occupancy, adjacency, options...)
}

// SaveSnapshot serializes and saves the snapshot to a JSON file
func SaveSnapshot(snapshot Snapshot, filename string) error {
	log.Printf("💾 Saving grid snapshot to %s...\n", filename)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ Snapshot saved (%d bytes)\n", len(data))
	return nil
}

// LoadSnapshot deserializes and loads a snapshot from a JSON file
func LoadSnapshot(filename string) (*Snapshot, error) {
	log.Printf("📂 Loading grid snapshot from %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var snapshot Snapshot
	err = json.Unmarshal(data, &snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	log.Printf("   ✅ Snapshot loaded: size %v, %d blocked cells\n", snapshot.Size, len(snapshot.Blocked))
	return &snapshot, nil
}
