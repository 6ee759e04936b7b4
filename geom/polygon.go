package geom

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tensorway"
)

// Polygon is a closed ordered ring of points. The closing edge from the
// last point back to the first is implicit, and no winding is guaranteed:
// every derived quantity must be orientation-insensitive or detect the
// orientation itself.
type Polygon []Vector

// Area returns the unsigned area of the ring (shoelace formula).
// Complexity: O(n).
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

// signedArea is positive for counter-clockwise rings.
func (p Polygon) signedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i, cur := range p {
		next := p[(i+1)%len(p)]
		sum += cur.X*next.Y - next.X*cur.Y
	}
	return sum / 2
}

// Perimeter returns the total edge length including the closing edge.
// Complexity: O(n).
func (p Polygon) Perimeter() float64 {
	var sum float64
	for i, cur := range p {
		sum += cur.DistanceTo(p[(i+1)%len(p)])
	}
	return sum
}

// AveragePoint returns the arithmetic mean of the ring's points, or the
// zero vector for an empty ring.
func (p Polygon) AveragePoint() Vector {
	if len(p) == 0 {
		return Zero()
	}
	var sum Vector
	for _, v := range p {
		sum = sum.Add(v)
	}
	return sum.DivScalar(float64(len(p)))
}

// Contains reports whether point lies strictly inside the ring, by ray
// casting. An empty or degenerate ring contains nothing.
// Complexity: O(n).
func (p Polygon) Contains(point Vector) bool {
	if len(p) < 3 {
		return false
	}
	inside := false
	j := len(p) - 1
	for i := 0; i < len(p); i++ {
		pi, pj := p[i], p[j]
		if (pi.Y > point.Y) != (pj.Y > point.Y) &&
			point.X < (pj.X-pi.X)*(point.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PointInRectangle reports whether point lies inside the axis-aligned
// rectangle at origin with the given dimensions (inclusive bounds).
func PointInRectangle(point, origin, dimensions Vector) bool {
	return origin.X <= point.X && point.X <= origin.X+dimensions.X &&
		origin.Y <= point.Y && point.Y <= origin.Y+dimensions.Y
}

// Resize offsets the ring by spacing: positive grows it, negative shrinks
// it. Each edge is displaced along its outward normal and consecutive
// offset lines are re-intersected (mitred). Rings that collapse (too few
// points, non-finite vertices, flipped orientation, or a shrink that did
// not lose area) yield nil.
// Complexity: O(n).
func (p Polygon) Resize(spacing float64) Polygon {
	if len(p) < 3 {
		return nil
	}
	signed := p.signedArea()
	if signed == 0 {
		return nil
	}
	// Outward normal of edge dir (dx,dy): (dy,-dx) for CCW, (-dy,dx) for CW.
	normalSign := 1.0
	if signed < 0 {
		normalSign = -1.0
	}

	n := len(p)
	// Offset line per edge: a point on the displaced edge plus its
	// direction. Zero-length edges carry no offset line and are dropped
	// here, so a repeated vertex in the input collapses to one vertex in
	// the output instead of polluting the re-intersection below.
	points := make([]Vector, 0, n)
	dirs := make([]Vector, 0, n)
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		dir := b.Sub(a)
		if dir.LengthSq() == 0 {
			continue
		}
		unit := dir.Normalize()
		outward := Vector{X: unit.Y * normalSign, Y: -unit.X * normalSign}
		points = append(points, a.Add(outward.Scale(spacing)))
		dirs = append(dirs, dir)
	}
	m := len(points)
	if m < 3 {
		return nil
	}

	out := make(Polygon, 0, m)
	for i := 0; i < m; i++ {
		prev := (i - 1 + m) % m
		v, ok := lineIntersection(points[prev], dirs[prev], points[i], dirs[i])
		if !ok {
			// Parallel or degenerate neighbors: fall back to the edge start.
			v = points[i]
		}
		if math.IsNaN(v.X) || math.IsInf(v.X, 0) || math.IsNaN(v.Y) || math.IsInf(v.Y, 0) {
			tensorway.Logger().Warn("geom: resize produced non-finite vertex")
			return nil
		}
		out = append(out, v)
	}

	newSigned := out.signedArea()
	if newSigned == 0 || (newSigned > 0) != (signed > 0) {
		return nil
	}
	if spacing < 0 && math.Abs(newSigned) >= math.Abs(signed) {
		return nil
	}
	return out
}

// lineIntersection intersects the infinite lines a+t·da and b+s·db.
// ok is false when the lines are parallel.
func lineIntersection(a, da, b, db Vector) (Vector, bool) {
	denom := da.Cross(db)
	if math.Abs(denom) < 1e-12 {
		return Zero(), false
	}
	t := b.Sub(a).Cross(db) / denom
	return a.Add(da.Scale(t)), true
}

// maxSubdivideDepth bounds the subdivision recursion; a well-formed
// bisection halves the area each level, so real inputs never get close.
const maxSubdivideDepth = 64

// Subdivide recursively bisects the ring perpendicular to its longest
// edge until every piece fits the area constraints:
//
//   - area < 0.5·minArea          → piece discarded
//   - area/perimeter² < 0.04      → degenerate sliver, discarded
//   - area < 2·minArea            → piece kept as-is
//   - otherwise                   → bisected at a point offset by a random
//     fraction in [0.4, 0.6] along the longest edge, both halves recursed
//
// rng drives only the bisection offset; pass a seeded source for
// reproducible output.
func (p Polygon) Subdivide(minArea float64, rng *rand.Rand) []Polygon {
	return p.subdivide(minArea, rng, 0)
}

func (p Polygon) subdivide(minArea float64, rng *rand.Rand, depth int) []Polygon {
	area := p.Area()
	if area < 0.5*minArea {
		return nil
	}
	perimeter := p.Perimeter()
	if perimeter == 0 || area/(perimeter*perimeter) < 0.04 {
		return nil
	}
	if area < 2*minArea {
		return []Polygon{p}
	}
	if depth >= maxSubdivideDepth {
		tensorway.Logger().Warn("geom: subdivide recursion limit reached")
		return []Polygon{p}
	}

	// 1. Longest edge of the ring.
	longest := 0
	longestSq := 0.0
	for i := range p {
		d := p[i].DistanceToSq(p[(i+1)%len(p)])
		if d > longestSq {
			longestSq = d
			longest = i
		}
	}

	// 2. Bisection line: perpendicular to the longest edge, through a
	// point offset by a random fraction in [0.4, 0.6] along it.
	a, b := p[longest], p[(longest+1)%len(p)]
	edge := b.Sub(a)
	deviation := 0.4 + 0.2*rng.Float64()
	pivot := a.Add(edge.Scale(deviation))
	perpendicular := Vector{X: -edge.Y, Y: edge.X}

	left, right := p.split(pivot, perpendicular)
	if len(left) < 3 || len(right) < 3 {
		tensorway.Logger().Warn("geom: subdivide produced degenerate halves")
		return nil
	}

	out := left.subdivide(minArea, rng, depth+1)
	return append(out, right.subdivide(minArea, rng, depth+1)...)
}

// split cuts the ring with the infinite line through pivot along dir and
// returns the two resulting rings (points on the positive and negative
// side, with crossing points inserted into both).
func (p Polygon) split(pivot, dir Vector) (Polygon, Polygon) {
	var left, right Polygon
	n := len(p)
	side := func(v Vector) float64 { return dir.Cross(v.Sub(pivot)) }

	for i := 0; i < n; i++ {
		cur, next := p[i], p[(i+1)%n]
		sc := side(cur)
		if sc >= 0 {
			left = append(left, cur)
		}
		if sc <= 0 {
			right = append(right, cur)
		}
		sn := side(next)
		if (sc > 0 && sn < 0) || (sc < 0 && sn > 0) {
			// Edge crosses the cut: insert the crossing into both halves.
			if x, ok := lineIntersection(pivot, dir, cur, next.Sub(cur)); ok {
				left = append(left, x)
				right = append(right, x)
			}
		}
	}
	return left, right
}
