// Package smooth collapses collinear, iso-cost runs out of a
// reconstructed gridpath/astar path, trading step-for-step granularity
// for fewer, longer straight segments that are cheaper to serialize and
// nicer to render.
//
// Smooth never mutates the Grid it reads from and never changes a
// path's endpoints or cell order; it only removes intermediate cells
// whose straight-line shortcut would traverse cells of a single,
// identical effective weight.
package smooth
