// Package geometry turns vector outlines of administrative regions into a
// symmetric adjacency relation.
//
// What:
//
//   - ParsePath reads SVG-style path data (M/L/H/V/Z plus the curve and arc
//     commands, absolute and relative) into closed orb.Ring outlines.
//     Curve and arc commands contribute only their end point.
//   - Degenerate outlines (fewer than 4 vertices once closed and de-duplicated)
//     are dropped.
//   - Touches reports whether two shapes share boundary points without any
//     interior overlap.
//   - BuildAdjacency parses every region, pre-filters candidate pairs with an
//     orb/quadtree of bound centres, and records every touching pair in both
//     directions.
//
// Failure semantics:
//
//	A region whose path cannot be parsed, or whose outlines are all degenerate,
//	is excluded from the Adjacency map and reported through the logger. It is
//	never an error for the caller: absence from the map means "no known
//	neighbours".
//
// Complexity:
//
//   - ParsePath:      O(len(d)).
//   - Touches:        O(s_a × s_b) segment tests, s = segment counts.
//   - BuildAdjacency: O(n²) Touches calls in the worst case. The quadtree
//     prunes pairs whose bounds cannot intersect, which keeps state-level
//     county counts cheap; very large n still degrades quadratically.
//
// Exact touching is required: outlines separated by small rendering gaps are
// not adjacent unless the gap is within Epsilon.
//
// Errors:
//
//   - ErrBadPath: malformed path data (unknown command, missing coordinates).
//   - ErrDegenerate: a path produced no usable outline.
package geometry
