// Package geom provides the 2D primitives the generation pipeline is
// built on: a plain-value Vector, polygon-ring utilities, and
// shape-preserving polyline simplification.
//
// What:
//
//   - Vector: (x, y) value type with standard algebra; never aliased,
//     every operation returns a fresh value.
//   - Polygon: closed ordered ring of Vectors with no fixed winding;
//     area, perimeter, centroid, containment, inward/outward offsetting,
//     and recursive longest-edge subdivision.
//   - Simplify: Ramer–Douglas–Peucker decimation within a tolerance.
//
// Why:
//
//   - Streamline tracing, graph construction, and block extraction all
//     exchange plain point sequences; one owned value type keeps handoffs
//     alias-free.
//
// Complexity:
//
//   - Vector ops: O(1).
//   - Polygon ops: O(n) except Subdivide, which is O(n·k) for k output
//     pieces.
//   - Simplify: O(n²) worst case, O(n log n) typical.
//
// Degenerate inputs (zero-length normalize, zero divisor, collapsed
// offset rings) are logged through tensorway.Logger and degrade to
// zero/empty results; nothing in this package panics.
package geom
