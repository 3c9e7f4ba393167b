package scene

import (
	"math/rand"
	"time"

	"maze3d"
)

// Random fills a grid of the given size with walls: each cell becomes a
// wall when a uniform draw exceeds 1-fill, so fill is the expected wall
// ratio. A zero seed picks one from the clock.
func Random(size [3]int, fill float64, seed int64) [][][]bool {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	occupancy := Empty(size)
	for x := range occupancy {
		for y := range occupancy[x] {
			for z := range occupancy[x][y] {
				occupancy[x][y][z] = rng.Float64() > 1-fill
			}
		}
	}
	return occupancy
}

// Open forces the given cells free. Cells outside the grid are ignored.
func Open(occupancy [][][]bool, cells ...maze3d.Coord) {
	for _, cell := range cells {
		if cell[0] < 0 || cell[0] >= len(occupancy) {
			continue
		}
		plane := occupancy[cell[0]]
		if cell[1] < 0 || cell[1] >= len(plane) {
			continue
		}
		row := plane[cell[1]]
		if cell[2] < 0 || cell[2] >= len(row) {
			continue
		}
		row[cell[2]] = false
	}
}
