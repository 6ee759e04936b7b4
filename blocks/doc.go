// Package blocks extracts closed faces from the planar road graph and
// refines them into city-block polygons.
//
// What:
//
//   - Finder walks every unconsumed directed edge with the rightmost-turn
//     rule: at each node take the outgoing edge with the smallest positive
//     angle relative to the incoming heading. A walk closes when it
//     revisits a node of the current walk; the closing suffix is the face.
//   - Directed edges used by a closed walk are consumed from the node
//     adjacency so no later walk reuses them in the same direction.
//   - Raw faces are filtered by their average point: on land and outside
//     parks. Two refinement generations follow: Shrink (inward offset)
//     and Divide (recursive bisection down to a minimum block area).
//
// Why:
//
//   - Faces of the road graph are the candidate city blocks; shrinking
//     carves the street width, dividing carves lots.
//
// Execution modes:
//
//   - FindPolygons / Shrink / Divide run each stage as a batch.
//   - Update performs one bounded unit per call (the face walk pass, then
//     one shrink, then one divide), so a host can interleave refinement
//     with other work. State is valid at every unit boundary.
//
// Options:
//
//   - WithSeed(seed): deterministic division randomness; seed==0 uses a
//     fixed default, never time.
//
// Errors:
//
//   - None returned. A consumed edge missing from an adjacency list is an
//     invariant violation: logged, that walk's consumption skips it, and
//     extraction proceeds.
package blocks
