package maze3d

import (
	"fmt"
	"strings"
)

// Strategy selects the search algorithm used by FindPath.
type Strategy int

const (
	// BFS is breadth-first search; it always returns a shortest path.
	BFS Strategy = iota + 1
	// AStar is best-first search on floor(g + h).
	AStar
)

func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case AStar:
		return "a_star"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name to a Strategy. It accepts "bfs",
// "a_star", "astar" and "a*", case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "a_star", "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
	}
}

// Result contains the outcome of a search. Found is false when the goal is
// unreachable; that is a normal outcome and comes with a nil error.
type Result struct {
	Path          []Coord
	Found         bool
	ExpandedNodes int
}

// Steps is the number of moves on the path, or -1 when no path was found.
func (r Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Options defines engine parameters beyond the grid and adjacency class.
type Options struct {
	Heuristic Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the heuristic chosen from the adjacency class.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// Engine searches one grid under one adjacency class. It holds no per-search
// state, so concurrent FindPath calls are safe.
type Engine struct {
	grid      *Grid
	adjacency Adjacency
	moves     []Move
	heuristic Heuristic
}

// New builds a grid from occupancy and an engine on top of it.
func New(occupancy [][][]bool, adjacency Adjacency, options ...Option) (*Engine, error) {
	grid, err := NewGrid(occupancy)
	if err != nil {
		return nil, err
	}
	return NewEngine(grid, adjacency, options...)
}

// NewEngine builds an engine over an existing grid.
func NewEngine(grid *Grid, adjacency Adjacency, options ...Option) (*Engine, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidConfiguration)
	}
	moves, err := Moves(adjacency)
	if err != nil {
		return nil, err
	}

	engineOptions := Options{Heuristic: HeuristicFor(adjacency)}
	for _, option := range options {
		option(&engineOptions)
	}
	if engineOptions.Heuristic == nil {
		engineOptions.Heuristic = HeuristicFor(adjacency)
	}

	return &Engine{
		grid:      grid,
		adjacency: adjacency,
		moves:     moves,
		heuristic: engineOptions.Heuristic,
	}, nil
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *Grid { return e.grid }

// Adjacency returns the configured adjacency class.
func (e *Engine) Adjacency() Adjacency { return e.adjacency }

// Moves returns a copy of the engine's move set, in expansion order.
func (e *Engine) Moves() []Move {
	moves := make([]Move, len(e.moves))
	copy(moves, e.moves)
	return moves
}

// FindPath searches for a path from start to goal. An unreachable goal is
// reported as Result{Found: false} with a nil error. Errors are returned for
// out-of-bounds or blocked endpoints, unknown strategies, and corrupt
// internal state.
func (e *Engine) FindPath(start, goal Coord, strategy Strategy) (Result, error) {
	if err := e.checkEndpoint("start", start); err != nil {
		return Result{}, err
	}
	if err := e.checkEndpoint("goal", goal); err != nil {
		return Result{}, err
	}

	state := newSearchState()
	var solved bool
	switch strategy {
	case BFS:
		solved = e.solveBFS(state.withVisited(e.grid.Len()), start, goal)
	case AStar:
		solved = e.solveAStar(state.withDistances(e.grid.Len()), start, goal)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidStrategy, strategy)
	}
	return e.result(state, start, goal, solved)
}

// result turns a finished search into a Result. A predecessor map that does
// not lead back to start is an error, never a missing path.
func (e *Engine) result(state *searchState, start, goal Coord, solved bool) (Result, error) {
	if !solved {
		return Result{ExpandedNodes: state.expanded}, nil
	}

	path, err := reconstructPath(state.cameFrom, start, goal, e.grid.Len())
	if err != nil {
		return Result{}, err
	}
	return Result{
		Path:          path,
		Found:         true,
		ExpandedNodes: state.expanded,
	}, nil
}

// ValidatePath checks that path is a walk through free cells where every
// step is one of the engine's moves.
func (e *Engine) ValidatePath(path []Coord) error {
	for i, cell := range path {
		if !e.grid.IsFree(cell) {
			return fmt.Errorf("%w: path cell %d %v is not a free cell", ErrInvalidCoordinate, i, cell)
		}
		if i == 0 {
			continue
		}
		if !e.isMove(cell.Sub(path[i-1])) {
			return fmt.Errorf("%w: step %d from %v to %v is not a move under adjacency %d",
				ErrInvalidCoordinate, i, path[i-1], cell, e.adjacency)
		}
	}
	return nil
}

func (e *Engine) checkEndpoint(role string, c Coord) error {
	if !e.grid.InBounds(c) {
		return fmt.Errorf("%w: %s %v outside grid %v", ErrInvalidCoordinate, role, c, e.grid.Dims())
	}
	if !e.grid.IsFree(c) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidCoordinate, role, c)
	}
	return nil
}

func (e *Engine) isMove(delta Move) bool {
	for _, move := range e.moves {
		if move == delta {
			return true
		}
	}
	return false
}
