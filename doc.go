// Package tensorway procedurally generates road-network-like planar
// layouts (streamlines, an intersection graph, and city-block polygons)
// from a continuous directional field over a 2D world.
//
// 🚀 What is tensorway?
//
//	A deterministic, dependency-light library that brings together:
//		• geom:       2D vectors, polygon rings, polyline simplification
//		• field:      doubled-angle tensors, Grid/Radial basis fields, noise
//		• integrate:  Euler and RK4 field integrators
//		• gridstore:  uniform spatial hash with separation guarantees
//		• streamline: seeded streamline tracing with dangling-end joining
//		• graph:      planar node/edge graph built from traced streamlines
//		• blocks:     face extraction with shrink and recursive subdivision
//
// ✨ Why choose tensorway?
//
//   - Deterministic – every random draw is seed-derived, never time-based
//   - Resumable – one-unit-of-work steppers for cooperative scheduling
//   - Degrades, never aborts – degenerate inputs shrink the output instead
//     of failing the pipeline
//   - Plain outputs – point sequences and index adjacency, no wire formats
//
// Data flow:
//
//	parameters → field.TensorField → streamline.Generator
//	           → graph.Graph → blocks.Finder → polygons
//
// Rendering, serialization, config loading, and park/building layout are
// external collaborators consuming the plain point sequences this module
// produces.
package tensorway
