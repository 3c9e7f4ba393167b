package maze3d

// queueItem is one frontier entry of the A* open set.
type queueItem struct {
	Cell     Coord
	Priority int // floor(g + h)
}

// priorityQueue implements heap.Interface for A*. Entries with equal
// priority come out in lexicographic cell order so ties resolve the same way
// on every run.
type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Cell.Less(pq[j].Cell)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
