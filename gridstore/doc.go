// Package gridstore implements the uniform spatial hash that enforces
// minimum separation between streamline sample points and answers
// approximate radius queries.
//
// What:
//
//   - GridStorage buckets world-space points into square cells of side
//     dsep (the separation distance).
//   - IsValidSample tests a candidate against every stored point in the
//     3×3 cell neighborhood (the separation guarantee).
//   - NearbyPoints returns all points in a square of cells around a
//     query, a superset of the exact circular query; callers needing
//     exactness post-filter.
//
// Why:
//
//   - The tracer calls IsValidSample at every integration step; cell
//     bucketing makes that O(points in 9 cells) instead of O(all points).
//
// Quirks:
//
//   - Out-of-bounds world coordinates remap to cell (0,0) instead of
//     erroring; see SampleCoords.
//   - Cells are append-only during a generation pass; there is no
//     deletion.
//
// Errors:
//
//   - ErrEmptyWorld: world dimensions are not positive.
//   - ErrInvalidSeparation: dsep is not positive.
//
// Complexity: AddSample O(1); IsValidSample O(k) for k points in the
// 3×3 neighborhood; NearbyPoints O(k) for k points in the covered cells.
package gridstore
