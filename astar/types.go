package astar

import (
	"errors"

	"gridpath/attribute"
	"gridpath/geom"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNotRegistered indicates from or to is not a registered cell.
	ErrNotRegistered = errors.New("astar: endpoint is not a registered cell")

	// ErrInvalidConfig indicates a statically-invalid option combination.
	ErrInvalidConfig = errors.New("astar: invalid configuration")
)

// Options configures one FindPath call.
//
// MaxLength               – optional cutoff on path_length; nil means unbounded.
// PathCost                – per-unit-distance weight scaling the edge cost and
//
//	the heuristic. Must be >= 0. Default 0.
//
// AttributeWeights        – additive per-attribute weight contribution,
//
//	applied fresh from base_weight at the start of every call.
//
// ExistingPaths           – previously produced paths to bias away from.
// ExistingPathMultiplier  – corridor weight multiplier at depth 0. Must be
//
//	>= 1. Default 1 (no-op).
//
// ExistingPathRadius      – corridor BFS radius, in eight-connected hops.
type Options struct {
	MaxLength              *float64
	PathCost               float64
	AttributeWeights       attribute.Weights
	ExistingPaths          [][]geom.Pos
	ExistingPathMultiplier float64
	ExistingPathRadius     int
}

// Option is a functional option for FindPath.
type Option func(*Options)

// DefaultOptions returns the zero-bias configuration: no length cutoff,
// zero path cost, no attribute weights, no existing-path corridor.
func DefaultOptions() Options {
	return Options{
		MaxLength:              nil,
		PathCost:               0,
		AttributeWeights:       nil,
		ExistingPaths:          nil,
		ExistingPathMultiplier: 1,
		ExistingPathRadius:     0,
	}
}

// WithMaxLength caps the search to paths of path_length <= max. Negative
// values are rejected by FindPath with ErrInvalidConfig; this constructor
// does not panic, since the limit is ordinary caller-supplied data, not
// a statically-known programmer error.
func WithMaxLength(max float64) Option {
	return func(o *Options) {
		o.MaxLength = &max
	}
}

// WithPathCost sets the per-unit-distance cost contribution used in both
// edge relaxation and the heuristic.
func WithPathCost(cost float64) Option {
	return func(o *Options) {
		o.PathCost = cost
	}
}

// WithAttributeWeights supplies the per-attribute additive weight table
// applied to every registered cell before the search runs.
func WithAttributeWeights(w attribute.Weights) Option {
	return func(o *Options) {
		o.AttributeWeights = w
	}
}

// WithExistingPaths biases the search away from paths, scaling the
// effective weight of cells within radius hops by multiplier at depth 0,
// falling off linearly to 1 at depth == radius.
func WithExistingPaths(paths [][]geom.Pos, multiplier float64, radius int) Option {
	return func(o *Options) {
		o.ExistingPaths = paths
		o.ExistingPathMultiplier = multiplier
		o.ExistingPathRadius = radius
	}
}
