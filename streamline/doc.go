// Package streamline traces evenly-spaced streamlines through a tensor
// field: seeding, bidirectional integration, separation enforcement, and
// dangling-end joining.
//
// What:
//
//   - Generator owns two spatial grids (major/minor families), seeds
//     candidate points, traces each seed forward and backward with a
//     field integrator, and accepts streamlines that stay separated and
//     long enough.
//   - JoinDanglingStreamlines extends open ends toward nearby samples
//     within a look-ahead distance and an angular window, then decimates
//     every streamline into its simplified exported form.
//
// Why:
//
//   - The traced set is the road network skeleton; its spacing and
//     joining quality decide everything the graph and block stages can
//     extract.
//
// Acceptance rules:
//
//   - Seeds must clear both family grids at dsep (cross-family
//     separation); traced steps only their own family at the tighter
//     dtest, so tracing packs denser than seeding.
//   - A step must stay in bounds, sample a non-degenerate field vector
//     (squared length > 0.001), and not collide with the streamline's own
//     older points.
//   - A streamline is accepted only with more than 5 points; accepted
//     points register in the owning grid and constrain all later work.
//
// Execution modes:
//
//   - CreateAllStreamlines runs the whole pass synchronously.
//   - Update performs one bounded unit (one streamline trace, then one
//     joining pass) per call; state is always valid at unit boundaries,
//     and cancellation is simply not calling Update again.
//
// Options:
//
//   - WithSeed(seed): deterministic randomness; seed==0 uses a fixed
//     default, never time.
//   - WithEndpointSeeds(): reuse open streamline endpoints as candidate
//     seeds for the opposite family.
//
// Errors:
//
//   - ErrNilIntegrator, ErrInvalidStep at construction; grid sentinels
//     from gridstore pass through. A dstep > dsep misconfiguration is
//     logged and generation continues with degraded packing.
package streamline
