// Package attribute defines the closed enumeration of terrain/object
// tags a grid cell may carry (TileAttribute), a compact bitset for
// storing zero or more tags per cell (Mask), and the weight table an
// attribute-adjustment pass reads from (Weights).
//
// The engine never interprets what a tag means — it only tests
// membership (Mask.Has) and sums caller-supplied weights (Weights). The
// concrete vocabulary below is the full set used by the rasterizer this
// package's cells originate from: BGT ("Basisregistratie Grootschalige
// Topografie") layer categories — waterways, road surfaces by function,
// vegetated/unvegetated terrain, buildings, vegetation objects, and
// separations (walls, fences, quays). With 61 tags, a single uint64
// Mask covers the whole vocabulary with room to spare (§4.2, §9 "with
// ≤64 tags, a 64-bit mask per cell suffices").
package attribute
