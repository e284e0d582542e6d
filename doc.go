// Package gridpath finds least-cost routes across a dense, rasterized
// grid of weighted terrain and lets repeated queries between the same
// two points diverge into visually distinct alternatives.
//
// Subpackages:
//
//	geom/      — integer 2D points, distances, the INVALID sentinel
//	attribute/ — the closed terrain-tag enumeration and its bitmask
//	grid/      — the dense structure-of-arrays cell store and weight derivation
//	astar/     — the A* search itself, with functional options
//	smooth/    — post-hoc collapsing of collinear, iso-cost path segments
//
// A typical caller builds a grid, registers cells with base weights and
// attributes, then calls astar.FindPath. This package's own
// FindAlternatePaths is a convenience wrapper for the common case of
// wanting several increasingly-distinct routes between the same two
// points in one call.
package gridpath
