package maze3d

import "fmt"

// Adjacency is the number of axes allowed to change in a single move.
type Adjacency int

const (
	// FaceAdjacent allows the 6 moves through a shared face.
	FaceAdjacent Adjacency = 1
	// EdgeAdjacent adds the 12 moves through a shared edge.
	EdgeAdjacent Adjacency = 2
	// CornerAdjacent adds the 8 moves through a shared corner.
	CornerAdjacent Adjacency = 3
)

// Valid reports whether a is one of the three supported classes.
func (a Adjacency) Valid() bool {
	return a >= FaceAdjacent && a <= CornerAdjacent
}

// Moves lists every move allowed under the adjacency class. The order is
// fixed (dx, then dy, then dz, each over -1, 0, 1) because it decides which
// of several equally short paths a search returns.
func Moves(adjacency Adjacency) ([]Move, error) {
	if !adjacency.Valid() {
		return nil, fmt.Errorf("%w: adjacency class %d, want 1, 2 or 3",
			ErrInvalidConfiguration, adjacency)
	}

	moves := make([]Move, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				move := Move{dx, dy, dz}
				if axes := move.Axes(); axes > 0 && axes <= int(adjacency) {
					moves = append(moves, move)
				}
			}
		}
	}
	return moves, nil
}
