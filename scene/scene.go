package scene

import (
	"fmt"
	"log"
	"time"

	"maze3d"
)

// Box is an axis-aligned block of cells, inclusive on both corners. A Clear
// box carves free space out of anything else in the scene.
type Box struct {
	Name     string
	Min, Max maze3d.Coord
	Clear    bool
}

// Scene describes a grid by its size and the obstacles inside it.
type Scene struct {
	Size       [3]int
	Adjacency  maze3d.Adjacency
	Boxes      []Box
	Footprints []Footprint

	// SimplifyTolerance, when positive, runs Douglas-Peucker over every
	// footprint before rasterising.
	SimplifyTolerance float64
}

// Occupancy rasterises the scene into an [x][y][z] wall grid. A cell is a
// wall when a solid box or a footprint covers it and no clear box does.
func (s *Scene) Occupancy() ([][][]bool, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	log.Printf("🧱 Rasterising scene %dx%dx%d...\n", s.Size[0], s.Size[1], s.Size[2])
	log.Printf("   Boxes: %d, footprints: %d\n", len(s.Boxes), len(s.Footprints))

	occupancy := Empty(s.Size)
	for _, footprint := range s.Footprints {
		if s.SimplifyTolerance > 0 {
			footprint = footprint.Simplified(s.SimplifyTolerance)
		}
		footprint.rasterise(occupancy)
	}

	index := newObstacleIndex(s.Boxes)
	blocked := 0
	for x := range occupancy {
		for y := range occupancy[x] {
			for z := range occupancy[x][y] {
				cell := maze3d.Coord{x, y, z}
				wall := occupancy[x][y][z] || index.solidAt(cell)
				if wall && index.clearAt(cell) {
					wall = false
				}
				occupancy[x][y][z] = wall
				if wall {
					blocked++
				}
			}
		}
	}

	log.Printf("   ✅ Scene rasterised: %d blocked cells\n", blocked)
	log.Printf("   ⏱️  Build time: %.3f seconds\n", time.Since(startTime).Seconds())
	return occupancy, nil
}

// Engine rasterises the scene and builds a search engine on it.
func (s *Scene) Engine(options ...maze3d.Option) (*maze3d.Engine, error) {
	occupancy, err := s.Occupancy()
	if err != nil {
		return nil, err
	}
	return maze3d.New(occupancy, s.Adjacency, options...)
}

func (s *Scene) validate() error {
	for axis, n := range s.Size {
		if n <= 0 {
			return fmt.Errorf("%w: scene size %v has a non-positive axis %d",
				maze3d.ErrInvalidConfiguration, s.Size, axis)
		}
	}
	if !s.Adjacency.Valid() {
		return fmt.Errorf("%w: scene adjacency %d, want 1, 2 or 3",
			maze3d.ErrInvalidConfiguration, s.Adjacency)
	}
	for _, box := range s.Boxes {
		for axis := 0; axis < 3; axis++ {
			if box.Min[axis] > box.Max[axis] {
				return fmt.Errorf("%w: box %q has min %v above max %v",
					maze3d.ErrInvalidConfiguration, box.Name, box.Min, box.Max)
			}
		}
	}
	for _, footprint := range s.Footprints {
		if footprint.ZMin > footprint.ZMax {
			return fmt.Errorf("%w: footprint %q has z range [%d, %d]",
				maze3d.ErrInvalidConfiguration, footprint.Name, footprint.ZMin, footprint.ZMax)
		}
	}
	return nil
}

// Empty returns an all-free [x][y][z] grid of the given size.
func Empty(size [3]int) [][][]bool {
	occupancy := make([][][]bool, size[0])
	for x := range occupancy {
		occupancy[x] = make([][]bool, size[1])
		for y := range occupancy[x] {
			occupancy[x][y] = make([]bool, size[2])
		}
	}
	return occupancy
}
