// Package grid implements the dense structure-of-arrays cell store that
// backs grid path-finding: registration, per-cell field accessors,
// Moore-neighbourhood enumeration, transient-state reset, and the two
// weight-derivation passes (attribute adjustment and existing-path
// corridor bias) that run before each A* search.
//
// Grid holds one flat slice per field (registered, base/effective
// weight, attribute mask, visit state, parent, cost, heuristic, path
// length), indexed row-major as y*Width+x. This is ~5x lighter and far
// more cache-friendly at the sizes this engine targets (millions of
// cells) than a per-cell object graph would be — see the teacher's own
// gridgraph package for the same structure-of-arrays-over-dense-grid
// approach, generalized here from a single int value-per-cell to the
// nine per-cell fields listed above.
//
// Grid owns only data and the two pre-search weight derivations; the
// search itself lives in package astar, and post-hoc smoothing in
// package smooth.
package grid
