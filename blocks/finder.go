package blocks

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tensorway"
	"github.com/katalvlaran/tensorway/field"
	"github.com/katalvlaran/tensorway/geom"
	"github.com/katalvlaran/tensorway/graph"
)

// Finder extracts and refines block polygons from a planar graph. Face
// extraction consumes the graph's directed adjacency destructively; run
// graph.ResetAdjacency before reusing the graph.
type Finder struct {
	g      *graph.Graph
	field  *field.TensorField
	params Params
	rng    *rand.Rand

	raw     []geom.Polygon
	shrunk  []geom.Polygon
	divided []geom.Polygon

	// Incremental stepper state.
	found       bool
	shrinkQueue []geom.Polygon
	divideQueue []geom.Polygon
	shrinkInit  bool
	divideInit  bool
}

// NewFinder constructs a Finder over g. tf may be nil, disabling the
// land/park filter, useful for synthetic graphs.
func NewFinder(g *graph.Graph, tf *field.TensorField, params Params, opts ...Option) *Finder {
	if params.MaxLength <= 0 {
		params.MaxLength = defaultMaxLength
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Finder{
		g:      g,
		field:  tf,
		params: params,
		rng:    rngFromSeed(o.Seed),
	}
}

// Raw returns the filtered faces of the extraction pass.
func (f *Finder) Raw() []geom.Polygon { return f.raw }

// Shrunk returns the inward-offset generation.
func (f *Finder) Shrunk() []geom.Polygon { return f.shrunk }

// Divided returns the recursively divided generation.
func (f *Finder) Divided() []geom.Polygon { return f.divided }

// Polygons returns the most refined generation available: divided, else
// shrunk, else raw.
func (f *Finder) Polygons() []geom.Polygon {
	switch {
	case f.divided != nil:
		return f.divided
	case f.shrunk != nil:
		return f.shrunk
	default:
		return f.raw
	}
}

// FindPolygons runs the face extraction pass: a rightmost-turn walk from
// every unconsumed directed edge, closed walks consumed and kept, then
// the land/park filter. Returns the filtered faces.
// Complexity: O(E × MaxLength) over directed edges E.
func (f *Finder) FindPolygons() []geom.Polygon {
	var faces []geom.Polygon

	nodes := f.g.Nodes()
	for ni, n := range nodes {
		if n.Dead() || len(n.Adj) < 2 {
			continue
		}
		// Snapshot: consumption mutates n.Adj underneath the loop.
		starts := append([]int(nil), n.Adj...)
		for _, next := range starts {
			if !contains(n.Adj, next) {
				continue
			}
			cycle := f.walk(ni, next)
			if cycle == nil || len(cycle) >= f.params.MaxLength {
				continue
			}
			if !f.consume(cycle) {
				// Invariant violation: abandon this walk, others proceed.
				continue
			}

			face := make(geom.Polygon, len(cycle))
			for i, idx := range cycle {
				face[i] = nodes[idx].Value
			}
			faces = append(faces, face)
		}
	}

	f.raw = f.filter(faces)
	f.found = true
	return f.raw
}

// walk traces one rightmost-turn walk from the directed edge from→to.
// It returns the closing cycle of arena indices, or nil on a dead end or
// an overlong walk.
func (f *Finder) walk(from, to int) []int {
	visited := []int{from, to}
	for {
		if len(visited) > f.params.MaxLength {
			return nil
		}
		next := f.rightmostNode(visited[len(visited)-2], visited[len(visited)-1])
		if next < 0 {
			return nil
		}
		if idx := indexOf(visited, next); idx >= 0 {
			return visited[idx:]
		}
		visited = append(visited, next)
	}
}

// rightmostNode picks the neighbor of at with the smallest positive
// angle measured counterclockwise from the backwards heading at→from,
// the rightmost turn. Returns -1 at a dead end.
func (f *Finder) rightmostNode(from, at int) int {
	nodes := f.g.Nodes()
	atNode := nodes[at]
	if len(atNode.Adj) == 0 {
		return -1
	}

	backwards := nodes[from].Value.Sub(atNode.Value)
	transformAngle := math.Atan2(backwards.Y, backwards.X)

	best := -1
	smallest := 2 * math.Pi
	for _, ni := range atNode.Adj {
		if ni == from {
			continue
		}
		v := nodes[ni].Value.Sub(atNode.Value)
		angle := math.Atan2(v.Y, v.X) - transformAngle
		if angle < 0 {
			angle += 2 * math.Pi
		}
		if angle < smallest {
			smallest = angle
			best = ni
		}
	}
	return best
}

// consume removes each directed edge of the cycle from its node's Adj
// list. A missing edge is an invariant violation: logged, and the cycle
// is reported inconsistent so the caller abandons the face. Edges
// removed before the violation stay removed; they were walked.
func (f *Finder) consume(cycle []int) bool {
	nodes := f.g.Nodes()
	ok := true
	for i, a := range cycle {
		b := cycle[(i+1)%len(cycle)]
		idx := indexOf(nodes[a].Adj, b)
		if idx < 0 {
			tensorway.Logger().Error("blocks: adjacency missing during face extraction",
				"node", nodes[a].Value, "neighbor", nodes[b].Value)
			ok = false
			continue
		}
		nodes[a].Adj = append(nodes[a].Adj[:idx], nodes[a].Adj[idx+1:]...)
	}
	return ok
}

// filter keeps faces whose average point is on land and outside parks.
// A nil field keeps everything.
func (f *Finder) filter(faces []geom.Polygon) []geom.Polygon {
	if f.field == nil {
		return faces
	}
	out := faces[:0]
	for _, face := range faces {
		avg := face.AveragePoint()
		if f.field.OnLand(avg) && !f.field.InParks(avg) {
			out = append(out, face)
		}
	}
	return out
}

// Shrink offsets every raw face inward by ShrinkSpacing, dropping faces
// whose offset collapses. Runs FindPolygons first if needed.
func (f *Finder) Shrink() []geom.Polygon {
	if !f.found {
		f.FindPolygons()
	}
	f.shrunk = make([]geom.Polygon, 0, len(f.raw))
	for _, p := range f.raw {
		if shrunk := p.Resize(-f.params.ShrinkSpacing); shrunk != nil {
			f.shrunk = append(f.shrunk, shrunk)
		}
	}
	f.shrinkInit = true
	f.shrinkQueue = nil
	return f.shrunk
}

// Divide recursively bisects the latest generation (shrunk if present,
// else raw) down to MinArea-sized blocks. ChanceNoDivide leaves a block
// whole. Sliver discards happen inside the subdivision.
func (f *Finder) Divide() []geom.Polygon {
	if !f.found {
		f.FindPolygons()
	}
	src := f.shrunk
	if src == nil {
		src = f.raw
	}
	f.divided = make([]geom.Polygon, 0, len(src))
	for _, p := range src {
		f.divideOne(p)
	}
	f.divideInit = true
	f.divideQueue = nil
	return f.divided
}

// divideOne appends the division of one polygon to the divided
// generation.
func (f *Finder) divideOne(p geom.Polygon) {
	if f.params.ChanceNoDivide > 0 && f.rng.Float64() < f.params.ChanceNoDivide {
		f.divided = append(f.divided, p)
		return
	}
	f.divided = append(f.divided, p.Subdivide(f.params.MinArea, f.rng)...)
}

// Update performs one bounded unit of work and reports whether any work
// remains: the extraction pass first, then one shrink per call, then one
// divide per call. State is valid to read at every boundary.
func (f *Finder) Update() bool {
	// 1. Extraction pass.
	if !f.found {
		f.FindPolygons()
		return true
	}

	// 2. One shrink.
	if !f.shrinkInit {
		f.shrinkQueue = append([]geom.Polygon(nil), f.raw...)
		f.shrunk = make([]geom.Polygon, 0, len(f.raw))
		f.shrinkInit = true
	}
	if len(f.shrinkQueue) > 0 {
		p := f.shrinkQueue[0]
		f.shrinkQueue = f.shrinkQueue[1:]
		if shrunk := p.Resize(-f.params.ShrinkSpacing); shrunk != nil {
			f.shrunk = append(f.shrunk, shrunk)
		}
		return true
	}

	// 3. One divide.
	if !f.divideInit {
		f.divideQueue = append([]geom.Polygon(nil), f.shrunk...)
		f.divided = make([]geom.Polygon, 0, len(f.shrunk))
		f.divideInit = true
	}
	if len(f.divideQueue) > 0 {
		p := f.divideQueue[0]
		f.divideQueue = f.divideQueue[1:]
		f.divideOne(p)
		return true
	}
	return false
}

// contains reports whether xs holds x.
func contains(xs []int, x int) bool {
	return indexOf(xs, x) >= 0
}

// indexOf returns the position of x in xs, or -1.
func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
