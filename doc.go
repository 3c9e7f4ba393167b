// Package maze3d finds routes between two cells of a three-dimensional
// occupancy grid.
//
// An Engine is built once from a grid and an adjacency class and can then
// answer any number of FindPath calls, with either of two strategies:
//
//   - BFS: breadth-first search, always returns a shortest path in moves.
//   - AStar: best-first search guided by a distance heuristic chosen from
//     the adjacency class.
//
// Every call allocates its own scratch state, so a single Engine may be
// shared between goroutines.
package maze3d
