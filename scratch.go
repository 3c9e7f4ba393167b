package maze3d

import "math"

// unreached marks a cell with no known distance from the start.
const unreached = math.MaxInt

// searchState is the per-call scratch of one search run. It is never stored
// on the Engine.
type searchState struct {
	visited  []bool // BFS only
	distance []int  // A* only
	cameFrom map[Coord]Coord
	expanded int
}

func newSearchState() *searchState {
	return &searchState{cameFrom: make(map[Coord]Coord)}
}

// withVisited allocates the visited markers, every cell unmarked.
func (s *searchState) withVisited(size int) *searchState {
	s.visited = make([]bool, size)
	return s
}

// withDistances allocates the distance table, every cell unreached.
func (s *searchState) withDistances(size int) *searchState {
	s.distance = make([]int, size)
	for i := range s.distance {
		s.distance[i] = unreached
	}
	return s
}
