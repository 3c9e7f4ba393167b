package maze3d

import "fmt"

// Grid is an immutable 3D occupancy grid. A true cell is a wall.
type Grid struct {
	dims  [3]int
	cells []bool // flat index (x*M + y)*K + z
}

// NewGrid copies occupancy into a Grid. occupancy is indexed as
// occupancy[x][y][z]; every axis must be non-empty and the array must not be
// ragged.
func NewGrid(occupancy [][][]bool) (*Grid, error) {
	n := len(occupancy)
	if n == 0 {
		return nil, fmt.Errorf("%w: grid has an empty x axis", ErrInvalidConfiguration)
	}
	m := len(occupancy[0])
	if m == 0 {
		return nil, fmt.Errorf("%w: grid has an empty y axis", ErrInvalidConfiguration)
	}
	k := len(occupancy[0][0])
	if k == 0 {
		return nil, fmt.Errorf("%w: grid has an empty z axis", ErrInvalidConfiguration)
	}

	grid := &Grid{
		dims:  [3]int{n, m, k},
		cells: make([]bool, n*m*k),
	}
	for x, plane := range occupancy {
		if len(plane) != m {
			return nil, fmt.Errorf("%w: ragged grid, plane x=%d has %d rows, want %d",
				ErrInvalidConfiguration, x, len(plane), m)
		}
		for y, row := range plane {
			if len(row) != k {
				return nil, fmt.Errorf("%w: ragged grid, row [%d %d] has %d cells, want %d",
					ErrInvalidConfiguration, x, y, len(row), k)
			}
			copy(grid.cells[(x*m+y)*k:], row)
		}
	}
	return grid, nil
}

// Dims returns the grid size along x, y and z.
func (g *Grid) Dims() [3]int { return g.dims }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether every axis of c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	for axis := 0; axis < 3; axis++ {
		if c[axis] < 0 || c[axis] >= g.dims[axis] {
			return false
		}
	}
	return true
}

// IsFree reports whether c is inside the grid and not a wall.
func (g *Grid) IsFree(c Coord) bool {
	return g.InBounds(c) && !g.cells[g.index(c)]
}

// Blocked counts the wall cells.
func (g *Grid) Blocked() int {
	count := 0
	for _, wall := range g.cells {
		if wall {
			count++
		}
	}
	return count
}

// Occupancy returns a fresh [x][y][z] copy of the grid.
func (g *Grid) Occupancy() [][][]bool {
	n, m, k := g.dims[0], g.dims[1], g.dims[2]
	occupancy := make([][][]bool, n)
	for x := range occupancy {
		occupancy[x] = make([][]bool, m)
		for y := range occupancy[x] {
			row := make([]bool, k)
			copy(row, g.cells[(x*m+y)*k:(x*m+y+1)*k])
			occupancy[x][y] = row
		}
	}
	return occupancy
}

// index flattens an in-bounds coordinate.
func (g *Grid) index(c Coord) int {
	return (c[0]*g.dims[1]+c[1])*g.dims[2] + c[2]
}
