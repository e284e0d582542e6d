package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a non-positive width or height at construction.
	ErrInvalidDimension = errors.New("grid: width and height must both be positive")
	// ErrOutOfBounds indicates a position outside [0,Width)x[0,Height).
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNotRegistered indicates an operation referenced a cell that is not registered.
	ErrNotRegistered = errors.New("grid: cell is not registered")
	// ErrInvalidConfig indicates an invalid weight-derivation parameter.
	ErrInvalidConfig = errors.New("grid: invalid configuration")
	// ErrReconstructionBeforeSearch indicates PathTo was called before any search ran.
	ErrReconstructionBeforeSearch = errors.New("grid: must run a search before reconstructing a path")
)

// VisitState is the A* bookkeeping state of a cell during one search.
type VisitState uint8

const (
	// Undiscovered is the default state: the cell has not yet been reached.
	Undiscovered VisitState = iota
	// Discovered means the cell is queued with a known parent, but not finalized.
	Discovered
	// Visited means the cell's cost has been finalized; it will not be relaxed again.
	Visited
)

// String renders the state for debugging and test failure messages.
func (s VisitState) String() string {
	switch s {
	case Undiscovered:
		return "Undiscovered"
	case Discovered:
		return "Discovered"
	case Visited:
		return "Visited"
	default:
		return "VisitState(?)"
	}
}
