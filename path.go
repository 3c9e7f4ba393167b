package maze3d

import "fmt"

// reconstructPath follows cameFrom from goal back to start and returns the
// cells in start-to-goal order. A walk longer than limit cells, or one that
// hits a cell without a predecessor, means the map is corrupt.
func reconstructPath(cameFrom map[Coord]Coord, start, goal Coord, limit int) ([]Coord, error) {
	path := []Coord{goal}
	current := goal
	for current != start {
		previous, exists := cameFrom[current]
		if !exists {
			return nil, fmt.Errorf("%w: no predecessor for %v on the way back to %v",
				ErrCorruptPredecessors, current, start)
		}
		if len(path) >= limit {
			return nil, fmt.Errorf("%w: walk from %v did not reach %v within %d cells",
				ErrCorruptPredecessors, goal, start, limit)
		}
		path = append(path, previous)
		current = previous
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
