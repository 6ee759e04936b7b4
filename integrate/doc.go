// Package integrate turns tensor-field samples into streamline step
// displacements.
//
// What:
//
//   - FieldIntegrator: samples the field's major or minor eigendirection
//     at a point and advances by one step of length dstep.
//   - Methods (closed set): Euler, one sample scaled by dstep; RK4, the
//     classic weighted combination k1 + 4·k23 + k4 scaled by dstep/6,
//     where k23 is a single sample at point+(dstep/2, dstep/2) reused for
//     both middle stages. The shared-midpoint simplification is the
//     contract and must not be "fixed" into textbook RK4.
//
// Why:
//
//   - The streamline tracer needs a pluggable step rule; RK4 smooths
//     curvature at corners at three field samples per step, Euler is the
//     cheap one-sample fallback.
//
// Degenerate field points sample as the zero vector; integration of a
// zero sample yields a zero displacement, which the tracer treats as a
// stop condition.
//
// Complexity: Euler O(1) field sample per step, RK4 O(3).
package integrate
