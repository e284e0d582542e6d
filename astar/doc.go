// Package astar implements A* shortest-path search over a gridpath/grid
// Grid: an eight-connected, admissible-heuristic search that returns the
// least-cost route between two registered cells, optionally biased away
// from previously produced routes so repeated calls yield visually
// distinct alternatives.
//
// Overview:
//
//   - FindPath computes the minimum-cost path from one cell to another,
//     using a priority queue ordered by f = g + h and a Euclidean
//     admissible heuristic scaled by PathCost.
//   - Edge cost between adjacent cells averages their effective weights,
//     so crossing an expensive cell costs the same from either side.
//   - Functional options configure an optional length cutoff, an
//     attribute-weight table, and an existing-path corridor bias.
//
// Complexity:
//
//   - Time:  O((R + E) log R) where R = reachable registered cells and
//     E = edges explored (each cell has up to eight neighbours).
//   - Each cell is finalized (marked Visited) at most once.
//   - Each relaxation may push a new heap entry: lazy decrease-key,
//     stale entries are discarded on pop rather than removed in place.
//   - Space: O(R) for the grid's own bookkeeping fields, plus O(E)
//     worst-case entries resident in the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNotRegistered: from or to is not a registered cell.
//   - ErrInvalidConfig: PathCost < 0, MaxLength < 0,
//     ExistingPathMultiplier < 1, or ExistingPathRadius < 0.
//   - grid.ErrOutOfBounds, wrapped with the offending position, is
//     returned when from or to lies outside the grid.
//
// A failed search (queue exhausted before reaching to) is not an error:
// FindPath returns (nil, nil), matching NoPathAvailable's non-fatal
// policy.
package astar
