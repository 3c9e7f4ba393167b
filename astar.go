package maze3d

import (
	"container/heap"
	"math"
)

// solveAStar runs best-first search ordered by floor(g + h). A cell may sit
// in the open set several times; older entries are expanded again when
// popped, but the strict g comparison keeps them from rewriting anything.
func (e *Engine) solveAStar(state *searchState, start, goal Coord) bool {
	openSet := &priorityQueue{}
	heap.Init(openSet)
	heap.Push(openSet, queueItem{Cell: start, Priority: 0})
	state.distance[e.grid.index(start)] = 0

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(queueItem).Cell
		currentIdx := e.grid.index(current)
		state.expanded++

		// Check if we reached the goal
		if current == goal {
			return true
		}

		tentativeG := state.distance[currentIdx] + 1
		for _, move := range e.moves {
			neighbor := current.Add(move)
			if !e.grid.IsFree(neighbor) {
				continue
			}
			idx := e.grid.index(neighbor)
			if tentativeG >= state.distance[idx] {
				continue
			}
			state.distance[idx] = tentativeG
			state.cameFrom[neighbor] = current
			priority := int(math.Floor(float64(tentativeG) + e.heuristic(neighbor, goal)))
			heap.Push(openSet, queueItem{Cell: neighbor, Priority: priority})
		}
	}

	// No path found
	return false
}
