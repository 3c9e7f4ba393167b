package maze3d

// solveBFS runs a breadth-first search from start. It reports whether goal
// was dequeued; the predecessor map is left in state.
func (e *Engine) solveBFS(state *searchState, start, goal Coord) bool {
	queue := []Coord{start}
	state.visited[e.grid.index(start)] = true

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		state.expanded++
		if current == goal {
			return true
		}

		for _, move := range e.moves {
			neighbor := current.Add(move)
			if !e.grid.IsFree(neighbor) {
				continue
			}
			idx := e.grid.index(neighbor)
			if state.visited[idx] {
				continue
			}
			// Mark on enqueue so no cell is queued twice.
			state.visited[idx] = true
			state.cameFrom[neighbor] = current
			queue = append(queue, neighbor)
		}
	}
	return false
}
