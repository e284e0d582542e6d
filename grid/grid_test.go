package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gridpath/attribute"
	"gridpath/geom"
	"gridpath/grid"
)

func TestNewInvalidDimensions(t *testing.T) {
	_, err := grid.New(0, 5)
	require.ErrorIs(t, err, grid.ErrInvalidDimension)

	_, err = grid.New(5, -1)
	require.ErrorIs(t, err, grid.ErrInvalidDimension)
}

func TestNewValid(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 4, g.Height())
}

func TestRegisterDeregister(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	pos := geom.Pos{X: 2, Y: 2}
	reg, err := g.Registered(pos)
	require.NoError(t, err)
	require.False(t, reg)

	require.NoError(t, g.Register(pos, 7, attribute.Waterdeel))
	reg, err = g.Registered(pos)
	require.NoError(t, err)
	require.True(t, reg)

	w, err := g.Weight(pos)
	require.NoError(t, err)
	require.Equal(t, 7.0, w)

	mask, err := g.AttributeMask(pos)
	require.NoError(t, err)
	require.True(t, mask.Has(attribute.Waterdeel))

	require.NoError(t, g.Deregister(pos))
	reg, err = g.Registered(pos)
	require.NoError(t, err)
	require.False(t, reg)

	// Idempotent.
	require.NoError(t, g.Deregister(pos))
}

func TestRegisterReplacesPrevious(t *testing.T) {
	g, _ := grid.New(3, 3)
	pos := geom.Pos{X: 1, Y: 1}
	require.NoError(t, g.Register(pos, 5, attribute.Pand))
	require.NoError(t, g.Register(pos, 2))

	w, _ := g.Weight(pos)
	require.Equal(t, 2.0, w)
	mask, _ := g.AttributeMask(pos)
	require.False(t, mask.Has(attribute.Pand))
}

func TestOutOfBounds(t *testing.T) {
	g, _ := grid.New(3, 3)
	_, err := g.Weight(geom.Pos{X: 3, Y: 0})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = g.Weight(geom.Pos{X: -1, Y: 0})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestNeighboursCornerExcludesUnregisteredAndOOB(t *testing.T) {
	g, _ := grid.New(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.NoError(t, g.Register(geom.Pos{X: x, Y: y}, 1))
		}
	}
	// Deregister one neighbour of the corner.
	require.NoError(t, g.Deregister(geom.Pos{X: 1, Y: 1}))

	neighbours := g.Neighbours(geom.Pos{X: 0, Y: 0})
	// Corner (0,0) has 3 in-bounds Moore neighbours: (1,0),(1,1),(0,1).
	// (1,1) was deregistered, so only 2 remain.
	require.Len(t, neighbours, 2)
	require.ElementsMatch(t, []geom.Pos{{X: 1, Y: 0}, {X: 0, Y: 1}}, neighbours)
}

func TestNeighboursCenterFull(t *testing.T) {
	g, _ := grid.New(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			require.NoError(t, g.Register(geom.Pos{X: x, Y: y}, 1))
		}
	}
	require.Len(t, g.Neighbours(geom.Pos{X: 2, Y: 2}), 8)
}

func TestResetPreservesStickyFields(t *testing.T) {
	g, _ := grid.New(3, 3)
	pos := geom.Pos{X: 1, Y: 1}
	require.NoError(t, g.Register(pos, 9, attribute.Pand))
	require.NoError(t, g.SetWeight(pos, 42))
	require.NoError(t, g.SetVisitState(pos, grid.Visited))
	require.NoError(t, g.SetParent(pos, geom.Pos{X: 0, Y: 0}))
	require.NoError(t, g.SetCost(pos, 3))

	g.Reset()

	reg, _ := g.Registered(pos)
	require.True(t, reg, "Reset must not touch registered")
	base, _ := g.BaseWeight(pos)
	require.Equal(t, 9.0, base, "Reset must not touch base weight")
	w, _ := g.Weight(pos)
	require.Equal(t, 42.0, w, "Reset must not touch effective weight")
	mask, _ := g.AttributeMask(pos)
	require.True(t, mask.Has(attribute.Pand), "Reset must not touch attribute mask")

	vs, _ := g.VisitState(pos)
	require.Equal(t, grid.Undiscovered, vs)
	parent, _ := g.Parent(pos)
	require.Equal(t, geom.Invalid, parent)
	cost, _ := g.Cost(pos)
	require.Equal(t, 0.0, cost)
}

func TestPathToBeforeSearch(t *testing.T) {
	g, _ := grid.New(3, 3)
	require.NoError(t, g.Register(geom.Pos{X: 0, Y: 0}, 0))
	_, err := g.PathTo(geom.Pos{X: 0, Y: 0})
	require.ErrorIs(t, err, grid.ErrReconstructionBeforeSearch)
}

func TestPathToReconstructsChain(t *testing.T) {
	g, _ := grid.New(3, 3)
	a := geom.Pos{X: 0, Y: 0}
	b := geom.Pos{X: 1, Y: 0}
	c := geom.Pos{X: 2, Y: 0}
	for _, p := range []geom.Pos{a, b, c} {
		require.NoError(t, g.Register(p, 0))
	}
	g.BeginSearch()
	require.NoError(t, g.SetParent(b, a))
	require.NoError(t, g.SetParent(c, b))

	path, err := g.PathTo(c)
	require.NoError(t, err)
	require.Equal(t, []geom.Pos{a, b, c}, path)
}

func TestPathToSingleCellNoParent(t *testing.T) {
	g, _ := grid.New(1, 1)
	pos := geom.Pos{X: 0, Y: 0}
	require.NoError(t, g.Register(pos, 0))
	g.BeginSearch()

	path, err := g.PathTo(pos)
	require.NoError(t, err)
	require.Equal(t, []geom.Pos{pos}, path)
}
