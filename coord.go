package maze3d

import (
	"encoding/json"
	"fmt"
)

// Coord identifies a cell as (x, y, z).
type Coord [3]int

// Move is a unit delta between two neighbouring cells.
type Move [3]int

// Add returns the cell reached from c by applying m.
func (c Coord) Add(m Move) Coord {
	return Coord{c[0] + m[0], c[1] + m[1], c[2] + m[2]}
}

// Sub returns the delta that leads from other to c.
func (c Coord) Sub(other Coord) Move {
	return Move{c[0] - other[0], c[1] - other[1], c[2] - other[2]}
}

// Less orders coordinates lexicographically on (x, y, z).
func (c Coord) Less(other Coord) bool {
	for axis := 0; axis < 3; axis++ {
		if c[axis] != other[axis] {
			return c[axis] < other[axis]
		}
	}
	return false
}

// UnmarshalJSON decodes a cell from a JSON array of exactly three integers.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, err)
	}
	if len(values) != 3 {
		return fmt.Errorf("%w: got %d components, want 3", ErrInvalidCoordinate, len(values))
	}
	*c = Coord{values[0], values[1], values[2]}
	return nil
}

func (c Coord) String() string {
	return fmt.Sprintf("[%d %d %d]", c[0], c[1], c[2])
}

// Axes returns the number of nonzero components of m.
func (m Move) Axes() int {
	n := 0
	for _, d := range m {
		if d != 0 {
			n++
		}
	}
	return n
}
