package smooth

import (
	"math"

	"gridpath/geom"
	"gridpath/grid"
)

// boundaryTolerance is the slack, in cell-widths, applied on either side
// of the raycast line when checking the cells it passes near (§4.6).
const boundaryTolerance = 0.1

// Smooth walks path with an anchor/candidate pair: whenever the
// straight shortcut from the anchor to the cell past the candidate is
// admissible (every cell it crosses shares one weight), the candidate
// is dropped and the shortcut is tried again one cell further; otherwise
// the anchor advances to the candidate and the candidate advances by
// one. Endpoints and relative order are always preserved.
func Smooth(g *grid.Grid, path []geom.Pos) []geom.Pos {
	out := make([]geom.Pos, len(path))
	copy(out, path)

	if len(out) < 3 {
		return out
	}

	anchor := 0
	candidate := 1
	for candidate+1 < len(out) {
		if admissibleShortcut(g, out[anchor], out[candidate+1]) {
			out = append(out[:candidate], out[candidate+1:]...)
		} else {
			anchor = candidate
			candidate++
		}
	}

	return out
}

// admissibleShortcut reports whether the straight segment from a to b
// traverses only cells of a single, identical weight.
func admissibleShortcut(g *grid.Grid, a, b geom.Pos) bool {
	switch {
	case a.X == b.X:
		return sameWeightColumn(g, a.X, a.Y, b.Y)
	case a.Y == b.Y:
		return sameWeightRow(g, a.Y, a.X, b.X)
	default:
		return sameWeightDiagonal(g, a, b)
	}
}

func weightAt(g *grid.Grid, x, y int) (float64, bool) {
	w, err := g.Weight(geom.Pos{X: x, Y: y})
	if err != nil {
		return 0, false
	}

	return w, true
}

// sameWeightColumn checks every cell in column x between y1 and y2
// against the weight of the endpoint with the larger y, which is the
// reference and is not compared with itself.
func sameWeightColumn(g *grid.Grid, x, y1, y2 int) bool {
	lo, hi := minMax(y1, y2)
	ref, ok := weightAt(g, x, hi)
	if !ok {
		return false
	}
	for y := lo; y < hi; y++ {
		w, ok := weightAt(g, x, y)
		if !ok || w != ref {
			return false
		}
	}

	return true
}

// sameWeightRow is sameWeightColumn's transpose.
func sameWeightRow(g *grid.Grid, y, x1, x2 int) bool {
	lo, hi := minMax(x1, x2)
	ref, ok := weightAt(g, hi, y)
	if !ok {
		return false
	}
	for x := lo; x < hi; x++ {
		w, ok := weightAt(g, x, y)
		if !ok || w != ref {
			return false
		}
	}

	return true
}

// sameWeightDiagonal walks the line from a to b one y-row at a time,
// checking every cell the line crosses in that row (via the inner x
// stepping in checkLayer below) plus a small boundary tolerance on
// either side. Works for any non-axis-aligned slope: a steep line
// advances x by less than one cell per row, a shallow line advances by
// several, both handled by the same fractional/whole-cell stepping.
func sameWeightDiagonal(g *grid.Grid, a, b geom.Pos) bool {
	x1, y1, x2, y2 := a.X, a.Y, b.X, b.Y

	ref, ok := weightAt(g, x2, y2)
	if !ok {
		return false
	}

	slope := math.Abs(float64(y2-y1) / float64(x2-x1))
	xSign := sign(x2 - x1)
	ySign := sign(y2 - y1)

	x := float64(x1) + 0.5
	y := y1

	checkLayer := func(dx float64) bool {
		if w, ok := weightAt(g, int(math.Floor(x-float64(xSign)*boundaryTolerance)), y); !ok || w != ref {
			return false
		}
		if w, ok := weightAt(g, int(math.Floor(x)), y); !ok || w != ref {
			return false
		}
		for dx > 0 {
			if dx >= 1 {
				x += float64(xSign)
				dx--
			} else {
				x += float64(xSign) * dx
				dx = 0
			}
			if w, ok := weightAt(g, int(math.Floor(x)), y); !ok || w != ref {
				return false
			}
		}
		if w, ok := weightAt(g, int(math.Floor(x+float64(xSign)*boundaryTolerance)), y); !ok || w != ref {
			return false
		}
		y += ySign

		return true
	}

	if !checkLayer(0.5 / slope) {
		return false
	}
	for i := 0; i < abs(y2-y1)-1; i++ {
		if !checkLayer(1 / slope) {
			return false
		}
	}

	return checkLayer(0.5 / slope)
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}

	return b, a
}

func abs(a int) int {
	if a < 0 {
		return -a
	}

	return a
}

func sign(a int) int {
	if a < 0 {
		return -1
	}

	return 1
}
