package grid

import (
	"fmt"

	"gridpath/attribute"
	"gridpath/geom"
)

// neighbourOffsets enumerates the Moore (eight-connected) neighbourhood,
// starting north and proceeding clockwise. Precomputed once, mirroring
// the teacher's gridgraph.neighborOffsets.
var neighbourOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Grid is a dense, fixed-size store of cell data, laid out as one flat
// array per field (structure of arrays) rather than one struct per
// cell. See the package doc for the rationale.
//
// A Grid is not safe for concurrent use: a search owns exclusive access
// to its bookkeeping fields for the duration of one FindPath call (§5).
type Grid struct {
	width, height int

	registered    []bool
	baseWeight    []float64
	weight        []float64
	attributeMask []attribute.Mask
	visitState    []VisitState
	parent        []geom.Pos
	cost          []float64
	heuristic     []float64
	pathLength    []float64

	ranSearch bool
}

// New constructs a Grid of the given dimensions with all cells
// unregistered. Both width and height must be positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	n := width * height
	g := &Grid{
		width:         width,
		height:        height,
		registered:    make([]bool, n),
		baseWeight:    make([]float64, n),
		weight:        make([]float64, n),
		attributeMask: make([]attribute.Mask, n),
		visitState:    make([]VisitState, n),
		parent:        make([]geom.Pos, n),
		cost:          make([]float64, n),
		heuristic:     make([]float64, n),
		pathLength:    make([]float64, n),
	}
	for i := range g.parent {
		g.parent[i] = geom.Invalid
	}

	return g, nil
}

// Width returns the grid's fixed column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's fixed row count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether pos lies within [0,Width) x [0,Height).
func (g *Grid) InBounds(pos geom.Pos) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// index maps an in-bounds position to its row-major flat index.
func (g *Grid) index(pos geom.Pos) int {
	return pos.Y*g.width + pos.X
}

func (g *Grid) checkBounds(pos geom.Pos) error {
	if !g.InBounds(pos) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, g.width, g.height)
	}

	return nil
}

// Register marks pos as participating in search, sets its base weight
// (effective weight starts equal to it), and installs the given
// attribute tags. Replaces any previous registration at pos.
func (g *Grid) Register(pos geom.Pos, baseWeight float64, attrs ...attribute.TileAttribute) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}

	idx := g.index(pos)
	g.registered[idx] = true
	g.baseWeight[idx] = baseWeight
	g.weight[idx] = baseWeight
	g.attributeMask[idx] = attribute.MaskOf(attrs...)

	return nil
}

// Deregister clears the registered flag at pos. Idempotent: calling it
// on an already-unregistered or never-registered cell is a no-op aside
// from the bounds check. Other fields become semantically ignored, per
// invariant 1.
func (g *Grid) Deregister(pos geom.Pos) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.registered[g.index(pos)] = false

	return nil
}

// Registered reports whether pos is registered.
func (g *Grid) Registered(pos geom.Pos) (bool, error) {
	if err := g.checkBounds(pos); err != nil {
		return false, err
	}

	return g.registered[g.index(pos)], nil
}

// BaseWeight returns the intrinsic terrain cost registered at pos.
func (g *Grid) BaseWeight(pos geom.Pos) (float64, error) {
	if err := g.checkBounds(pos); err != nil {
		return 0, err
	}

	return g.baseWeight[g.index(pos)], nil
}

// SetBaseWeight overwrites the intrinsic terrain cost at pos. Does not
// touch the effective Weight; call a weight-derivation pass (or
// Register again) to propagate the change.
func (g *Grid) SetBaseWeight(pos geom.Pos, value float64) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.baseWeight[g.index(pos)] = value

	return nil
}

// Weight returns the effective traversal cost at pos, after any
// attribute/corridor adjustment.
func (g *Grid) Weight(pos geom.Pos) (float64, error) {
	if err := g.checkBounds(pos); err != nil {
		return 0, err
	}

	return g.weight[g.index(pos)], nil
}

// SetWeight directly overwrites the effective weight at pos. Exposed
// for callers building custom weight-derivation passes; the built-in
// DeriveWeights/ApplyExistingPathCorridor write the effective weights
// directly rather than through it.
func (g *Grid) SetWeight(pos geom.Pos, value float64) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.weight[g.index(pos)] = value

	return nil
}

// AttributeMask returns the attribute bitset at pos.
func (g *Grid) AttributeMask(pos geom.Pos) (attribute.Mask, error) {
	if err := g.checkBounds(pos); err != nil {
		return 0, err
	}

	return g.attributeMask[g.index(pos)], nil
}

// SetAttributeMask overwrites the attribute bitset at pos.
func (g *Grid) SetAttributeMask(pos geom.Pos, mask attribute.Mask) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.attributeMask[g.index(pos)] = mask

	return nil
}

// VisitState returns the current A* bookkeeping state at pos.
func (g *Grid) VisitState(pos geom.Pos) (VisitState, error) {
	if err := g.checkBounds(pos); err != nil {
		return Undiscovered, err
	}

	return g.visitState[g.index(pos)], nil
}

// SetVisitState overwrites the A* bookkeeping state at pos.
func (g *Grid) SetVisitState(pos geom.Pos, s VisitState) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.visitState[g.index(pos)] = s

	return nil
}

// Parent returns the predecessor recorded at pos along the best known
// path, or geom.Invalid if none.
func (g *Grid) Parent(pos geom.Pos) (geom.Pos, error) {
	if err := g.checkBounds(pos); err != nil {
		return geom.Invalid, err
	}

	return g.parent[g.index(pos)], nil
}

// SetParent overwrites the predecessor recorded at pos.
func (g *Grid) SetParent(pos, parent geom.Pos) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.parent[g.index(pos)] = parent

	return nil
}

// Cost returns the accumulated g-cost (without heuristic) at pos.
func (g *Grid) Cost(pos geom.Pos) (float64, error) {
	if err := g.checkBounds(pos); err != nil {
		return 0, err
	}

	return g.cost[g.index(pos)], nil
}

// SetCost overwrites the accumulated g-cost at pos.
func (g *Grid) SetCost(pos geom.Pos, value float64) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.cost[g.index(pos)] = value

	return nil
}

// Heuristic returns the cached h(cell -> goal) at pos.
func (g *Grid) Heuristic(pos geom.Pos) (float64, error) {
	if err := g.checkBounds(pos); err != nil {
		return 0, err
	}

	return g.heuristic[g.index(pos)], nil
}

// SetHeuristic overwrites the cached heuristic at pos.
func (g *Grid) SetHeuristic(pos geom.Pos, value float64) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.heuristic[g.index(pos)] = value

	return nil
}

// PathLength returns the Euclidean length of the best known path to pos.
func (g *Grid) PathLength(pos geom.Pos) (float64, error) {
	if err := g.checkBounds(pos); err != nil {
		return 0, err
	}

	return g.pathLength[g.index(pos)], nil
}

// SetPathLength overwrites the Euclidean path length recorded at pos.
func (g *Grid) SetPathLength(pos geom.Pos, value float64) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	g.pathLength[g.index(pos)] = value

	return nil
}

// Neighbours returns the up-to-eight registered, in-bounds neighbours of
// pos (Moore neighbourhood), excluding pos itself. Unregistered cells
// never appear, per invariant 1.
func (g *Grid) Neighbours(pos geom.Pos) []geom.Pos {
	neighbours := make([]geom.Pos, 0, 8)
	for _, d := range neighbourOffsets {
		n := geom.Pos{X: pos.X + d[0], Y: pos.Y + d[1]}
		if !g.InBounds(n) {
			continue
		}
		if !g.registered[g.index(n)] {
			continue
		}
		neighbours = append(neighbours, n)
	}

	return neighbours
}

// Reset restores all transient A* bookkeeping fields (visit state,
// parent, cost, heuristic, path length) to their defaults. It does not
// touch registered, base weight, effective weight, or attribute mask —
// those are sticky across searches, per invariant 3 and §7.
func (g *Grid) Reset() {
	for i := range g.visitState {
		g.visitState[i] = Undiscovered
		g.parent[i] = geom.Invalid
		g.cost[i] = 0
		g.heuristic[i] = 0
		g.pathLength[i] = 0
	}
	g.ranSearch = false
}

// BeginSearch marks the grid as having had at least one search run on
// it, which is the precondition PathTo checks. Called by package astar
// at the start of FindPath, after any reset, win or lose — a failed
// search still leaves partial bookkeeping that PathTo can walk.
func (g *Grid) BeginSearch() {
	g.ranSearch = true
}

// PathTo reconstructs the path from the start of the last search to
// pos, by walking parent pointers and reversing. Valid for any cell
// touched by the most recent FindPath call, not just its goal — it only
// requires that a search has run since the last Reset.
func (g *Grid) PathTo(pos geom.Pos) ([]geom.Pos, error) {
	if !g.ranSearch {
		return nil, ErrReconstructionBeforeSearch
	}
	if err := g.checkBounds(pos); err != nil {
		return nil, err
	}

	path := []geom.Pos{pos}
	for cur := pos; ; {
		parent := g.parent[g.index(cur)]
		if !parent.IsValid() {
			break
		}
		path = append(path, parent)
		cur = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
