// Package geom provides the integer coordinate type and distance
// primitives shared by the grid, astar, and smooth packages.
//
// Pos is a plain (X, Y) pair identifying a cell in a dense grid. Distances
// are Euclidean; Dist is used wherever a real-valued edge length or
// heuristic is needed, DistSq wherever only relative comparison matters.
package geom
