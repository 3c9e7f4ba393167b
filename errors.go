package maze3d

import "errors"

var (
	// ErrInvalidConfiguration is returned when an engine or grid cannot be
	// built from the supplied occupancy data or adjacency class.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidCoordinate is returned when a start or goal cell is outside
	// the grid or blocked.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidStrategy is returned for an unknown search strategy.
	ErrInvalidStrategy = errors.New("invalid strategy")

	// ErrCorruptPredecessors means a search reported success but its
	// predecessor map does not lead from the goal back to the start.
	// It signals an engine bug and is never used for "no path".
	ErrCorruptPredecessors = errors.New("corrupt predecessor map")
)
