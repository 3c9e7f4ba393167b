package maze3d

// emptyOccupancy returns an all-free [n][m][k] grid.
func emptyOccupancy(n, m, k int) [][][]bool {
	occupancy := make([][][]bool, n)
	for x := range occupancy {
		occupancy[x] = make([][]bool, m)
		for y := range occupancy[x] {
			occupancy[x][y] = make([]bool, k)
		}
	}
	return occupancy
}

// fill sets every cell in the inclusive box [from, to] to wall.
func fill(occupancy [][][]bool, from, to Coord, wall bool) {
	for x := from[0]; x <= to[0]; x++ {
		for y := from[1]; y <= to[1]; y++ {
			for z := from[2]; z <= to[2]; z++ {
				occupancy[x][y][z] = wall
			}
		}
	}
}

// planeWall is the 5x5x5 grid with the whole y=2 plane blocked.
func planeWall() [][][]bool {
	occupancy := emptyOccupancy(5, 5, 5)
	fill(occupancy, Coord{0, 2, 0}, Coord{4, 2, 4}, true)
	return occupancy
}

// cornered is the 7x7x1 grid where start sits inside a U-shaped wall that
// opens away from the goal.
func cornered() [][][]bool {
	occupancy := emptyOccupancy(7, 7, 1)
	fill(occupancy, Coord{1, 1, 0}, Coord{1, 4, 0}, true)
	fill(occupancy, Coord{5, 1, 0}, Coord{5, 4, 0}, true)
	fill(occupancy, Coord{2, 4, 0}, Coord{4, 4, 0}, true)
	return occupancy
}

// twoWalls has two staggered walls on y=1 and y=3, each with a gap at the
// opposite end.
func twoWalls() [][][]bool {
	occupancy := emptyOccupancy(5, 5, 5)
	fill(occupancy, Coord{0, 1, 0}, Coord{3, 1, 4}, true)
	fill(occupancy, Coord{1, 3, 0}, Coord{4, 3, 4}, true)
	return occupancy
}
