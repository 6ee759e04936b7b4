// Package graph builds a planar node/edge graph from traced streamline
// polylines: segment intersection detection, fuzzy node merging, and
// projection-sorted edge linking.
//
// What:
//
//   - New takes the simplified streamline point sequences and produces
//     one Node per polyline vertex and per pairwise segment intersection.
//   - A new node landing within a small fuzzy radius of an existing node
//     merges into it instead of duplicating; independently traced
//     streamlines meet only approximately.
//   - Every original segment is subdivided at the nodes that lie along
//     it: nodes are sorted by projection onto the segment direction and
//     consecutive pairs become graph neighbors.
//   - WithPruneDangling removes degree-≤1 nodes recursively, propagating
//     to newly exposed leaves.
//
// Why:
//
//   - The face extractor needs true planar adjacency: a long segment
//     crossed in its middle must become two edges, and near-coincident
//     endpoints must be one node, or rightmost-turn walks leak.
//
// Complexity:
//
//   - Intersection detection is a sort-sweep over segment bounding boxes:
//     O(S log S + S·k) for S segments with k local overlaps. Node lookup
//     is a uniform hash bucket per cell.
//
// Errors:
//
//   - None. Empty or degenerate input yields an empty graph.
package graph
