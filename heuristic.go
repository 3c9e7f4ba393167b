package maze3d

import (
	"math"
	"sort"
)

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, goal Coord) float64

var (
	sqrt2 = math.Sqrt2
	sqrt3 = math.Sqrt(3)
)

// Manhattan is |dx| + |dy| + |dz|.
func Manhattan(from, goal Coord) float64 {
	d := absDeltas(from, goal)
	return float64(d[0] + d[1] + d[2])
}

// Diagonal is the octile distance generalised to 3D:
// (√3-√2)·dmin + (√2-1)·dmid + dmax.
func Diagonal(from, goal Coord) float64 {
	d := absDeltas(from, goal)
	sort.Ints(d[:])
	return (sqrt3-sqrt2)*float64(d[0]) + (sqrt2-1)*float64(d[1]) + float64(d[2])
}

// Euclidean is the straight-line distance.
func Euclidean(from, goal Coord) float64 {
	d := absDeltas(from, goal)
	return math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
}

// HeuristicFor picks the heuristic matching an adjacency class. Only
// Manhattan is admissible against the uniform step cost of 1; the other two
// assume cheaper diagonals and can overestimate.
func HeuristicFor(adjacency Adjacency) Heuristic {
	switch adjacency {
	case EdgeAdjacent:
		return Diagonal
	case CornerAdjacent:
		return Euclidean
	default:
		return Manhattan
	}
}

func absDeltas(a, b Coord) [3]int {
	var d [3]int
	for axis := 0; axis < 3; axis++ {
		v := a[axis] - b[axis]
		if v < 0 {
			v = -v
		}
		d[axis] = v
	}
	return d
}
