package graph

import (
	"math"
	"sort"

	"github.com/katalvlaran/tensorway/geom"
)

// segment is one polyline edge, tagged with its source polyline so
// trivially-shared endpoints of consecutive segments are not reported
// as crossings.
type segment struct {
	from, to geom.Vector
	polyline int
	index    int
	minX     float64
	maxX     float64
	minY     float64
	maxY     float64
}

// Graph is the planar graph over a streamline set. Nodes live in an
// arena; adjacency references arena indices so faces can consume edges
// without invalidating anything.
type Graph struct {
	nodes         []*Node
	intersections []geom.Vector

	// Uniform hash buckets for fuzzy node lookup.
	buckets  map[[2]int][]int
	cellSize float64
}

// New builds the planar graph of the given polylines. dstep sizes the
// node-lookup buckets and should match the tracing step; any positive
// value works. Empty input yields an empty graph; construction never
// fails.
// Complexity: O(S log S + S·k + N) for S segments, k local bounding-box
// overlaps, N nodes.
func New(polylines [][]geom.Vector, dstep float64, opts ...Option) *Graph {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	cell := dstep
	if cell <= 0 {
		cell = 1
	}
	g := &Graph{
		buckets:  make(map[[2]int][]int),
		cellSize: cell,
	}

	// 1. Flatten the polylines into tagged segments.
	segments := collectSegments(polylines)

	// 2. One node per segment endpoint, fuzzy-merged, with the incident
	// segments recorded on the node.
	for si, s := range segments {
		g.addNode(s.from, si)
		g.addNode(s.to, si)
	}

	// 3. Pairwise crossings via a sort-sweep over bounding boxes; each
	// crossing becomes a node incident to both segments.
	g.findIntersections(segments)

	// 4. Subdivide each segment at its nodes: sort by projection onto
	// the segment direction, link consecutive pairs.
	g.linkSegments(segments)

	// 5. Optional recursive leaf removal.
	if o.PruneDangling {
		g.pruneDangling()
	}

	g.ResetAdjacency()
	return g
}

// Nodes returns the node arena. Dead nodes stay in place with empty
// adjacency so indices remain stable.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Node returns the arena node at index i.
func (g *Graph) Node(i int) *Node { return g.nodes[i] }

// Intersections returns every detected segment crossing point, in
// detection order, before fuzzy merging.
func (g *Graph) Intersections() []geom.Vector { return g.intersections }

// ResetAdjacency rebuilds every live node's consumable Adj list from the
// immutable neighbor sets, sorted for determinism. Call it to run a
// second face extraction over the same graph.
func (g *Graph) ResetAdjacency() {
	for _, n := range g.nodes {
		if n.dead {
			n.Adj = nil
			continue
		}
		n.Adj = n.Adj[:0]
		for ni := range n.neighbors {
			n.Adj = append(n.Adj, ni)
		}
		sort.Ints(n.Adj)
	}
}

// collectSegments flattens polylines into tagged segments with cached
// bounding boxes. Zero-length segments are dropped.
func collectSegments(polylines [][]geom.Vector) []segment {
	var out []segment
	for pi, line := range polylines {
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			if a == b {
				continue
			}
			out = append(out, segment{
				from:     a,
				to:       b,
				polyline: pi,
				index:    i,
				minX:     math.Min(a.X, b.X),
				maxX:     math.Max(a.X, b.X),
				minY:     math.Min(a.Y, b.Y),
				maxY:     math.Max(a.Y, b.Y),
			})
		}
	}
	return out
}

// bucketKey maps a position to its lookup bucket.
func (g *Graph) bucketKey(v geom.Vector) [2]int {
	return [2]int{
		int(math.Floor(v.X / g.cellSize)),
		int(math.Floor(v.Y / g.cellSize)),
	}
}

// addNode records that segment si passes through position v, creating a
// node or fuzzy-merging into an existing one within nodeMergeRadius. It
// returns the arena index.
func (g *Graph) addNode(v geom.Vector, si int) int {
	const radiusSq = nodeMergeRadius * nodeMergeRadius

	key := g.bucketKey(v)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, ni := range g.buckets[[2]int{key[0] + dx, key[1] + dy}] {
				if g.nodes[ni].Value.DistanceToSq(v) < radiusSq {
					g.nodes[ni].segments[si] = struct{}{}
					return ni
				}
			}
		}
	}

	n := &Node{
		Value:     v,
		neighbors: make(map[int]struct{}),
		segments:  map[int]struct{}{si: {}},
	}
	g.nodes = append(g.nodes, n)
	ni := len(g.nodes) - 1
	g.buckets[key] = append(g.buckets[key], ni)
	return ni
}

// findIntersections sweeps the segments sorted by minX, testing each
// pair whose x-ranges overlap, then y-ranges, then the exact crossing.
// Consecutive segments of one polyline share an endpoint node already
// and are skipped.
func (g *Graph) findIntersections(segments []segment) {
	order := make([]int, len(segments))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return segments[order[a]].minX < segments[order[b]].minX
	})

	for oi, si := range order {
		a := &segments[si]
		for _, sj := range order[oi+1:] {
			b := &segments[sj]
			if b.minX > a.maxX {
				break
			}
			if b.minY > a.maxY || b.maxY < a.minY {
				continue
			}
			if a.polyline == b.polyline && abs(a.index-b.index) <= 1 {
				continue
			}
			if p, ok := segmentIntersection(a.from, a.to, b.from, b.to); ok {
				g.intersections = append(g.intersections, p)
				g.addNode(p, si)
				g.addNode(p, sj)
			}
		}
	}
}

// segmentIntersection solves the parametric crossing of closed segments
// ab and cd. Collinear overlap reports no crossing.
func segmentIntersection(a, b, c, d geom.Vector) (geom.Vector, bool) {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := r.Cross(s)
	if denom == 0 {
		return geom.Zero(), false
	}
	ca := c.Sub(a)
	t := ca.Cross(s) / denom
	u := ca.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return geom.Zero(), false
	}
	return a.Add(r.Scale(t)), true
}

// linkSegments turns each original segment into graph edges: the nodes
// incident to the segment, ordered by projection onto the segment
// direction, are linked pairwise.
func (g *Graph) linkSegments(segments []segment) {
	// Invert node→segments into segment→nodes.
	bySegment := make([][]int, len(segments))
	for ni, n := range g.nodes {
		for si := range n.segments {
			bySegment[si] = append(bySegment[si], ni)
		}
	}

	for si, nodeIdx := range bySegment {
		if len(nodeIdx) < 2 {
			continue
		}
		from := segments[si].from
		dir := segments[si].to.Sub(from)
		sort.Slice(nodeIdx, func(a, b int) bool {
			ta := g.nodes[nodeIdx[a]].Value.Sub(from).Dot(dir)
			tb := g.nodes[nodeIdx[b]].Value.Sub(from).Dot(dir)
			return ta < tb
		})
		for i := 1; i < len(nodeIdx); i++ {
			g.link(nodeIdx[i-1], nodeIdx[i])
		}
	}
}

// link records an undirected edge between arena indices a and b.
func (g *Graph) link(a, b int) {
	if a == b {
		return
	}
	g.nodes[a].neighbors[b] = struct{}{}
	g.nodes[b].neighbors[a] = struct{}{}
}

// pruneDangling removes degree-≤1 nodes recursively: unlinking a leaf
// may expose its neighbor as the next leaf.
func (g *Graph) pruneDangling() {
	var queue []int
	for ni, n := range g.nodes {
		if len(n.neighbors) <= 1 {
			queue = append(queue, ni)
		}
	}

	for len(queue) > 0 {
		ni := queue[0]
		queue = queue[1:]
		n := g.nodes[ni]
		if n.dead {
			continue
		}
		n.dead = true
		for other := range n.neighbors {
			delete(g.nodes[other].neighbors, ni)
			if !g.nodes[other].dead && len(g.nodes[other].neighbors) <= 1 {
				queue = append(queue, other)
			}
		}
		n.neighbors = make(map[int]struct{})
	}
}

// abs is integer absolute value.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
