package streamline

import (
	"math"

	"github.com/katalvlaran/tensorway/geom"
)

// JoinDanglingStreamlines extends every open streamline end toward the
// best nearby sample of either family, then fills the simplified
// exported form of every streamline. Splice points are registered in the
// owning grid so later joins see them.
// Complexity: O(S × K) where K is the look-ahead neighborhood size.
func (g *Generator) JoinDanglingStreamlines() {
	for _, s := range g.all {
		// 1. Closed circles have no dangling ends.
		if len(s.Points) >= 2 && s.Points[0] == s.Points[len(s.Points)-1] {
			continue
		}
		if len(s.Points) < 5 {
			continue
		}

		// 2. Extend the start. The inward reference point gives the
		// outward heading of the dangling end; the splice already ends at
		// the join target.
		start := s.Points[0]
		if newStart, ok := g.bestNextPoint(start, s.Points[4]); ok {
			splice := g.pointsBetween(start, newStart)
			prefix := make([]geom.Vector, 0, len(splice)+len(s.Points))
			for i := len(splice) - 1; i >= 0; i-- {
				prefix = append(prefix, splice[i])
			}
			s.Points = append(prefix, s.Points...)
			g.grid(s.Major).AddPolyline(splice)
		}

		// 3. Extend the end symmetrically.
		end := s.Points[len(s.Points)-1]
		if newEnd, ok := g.bestNextPoint(end, s.Points[len(s.Points)-4]); ok {
			splice := g.pointsBetween(end, newEnd)
			s.Points = append(s.Points, splice...)
			g.grid(s.Major).AddPolyline(splice)
		}
	}

	// 4. Decimate every streamline into its exported form.
	for _, s := range g.all {
		s.Simplified = g.simplifyStreamline(s.Points)
	}
}

// bestNextPoint finds the sample the dangling end at point should join,
// searching both family grids within DLookahead. previousPoint is an
// inward point of the same streamline; the outward direction is
// point − previousPoint.
//
// Selection: a sample closer than √(2·dstep²) is taken immediately;
// otherwise the angularly closest forward-side sample within JoinAngle
// wins. The winner is nudged past itself along the joining direction so
// the graph stage registers a crossing rather than a touch.
func (g *Generator) bestNextPoint(point, previousPoint geom.Vector) (geom.Vector, bool) {
	nearby := g.majorGrid.NearbyPoints(point, g.params.DLookahead)
	nearby = append(nearby, g.minorGrid.NearbyPoints(point, g.params.DLookahead)...)

	direction := point.Sub(previousPoint)

	var closest geom.Vector
	found := false
	closestDistance := math.Inf(1)
	for _, sample := range nearby {
		if sample == point || sample == previousPoint {
			continue
		}
		diff := sample.Sub(point)
		// Behind the dangling end; joining there would double back.
		if diff.Dot(direction) < 0 {
			continue
		}

		// Within two steps: accept immediately.
		dSq := diff.LengthSq()
		if dSq < 2*g.dstepSq {
			closest = sample
			found = true
			break
		}

		angle := math.Abs(geom.AngleBetween(direction, diff))
		if angle < g.params.JoinAngle && dSq < closestDistance {
			closestDistance = dSq
			closest = sample
			found = true
		}
	}

	if found {
		closest = closest.Add(direction.SetLength(g.params.SimplifyTolerance * 4))
	}
	return closest, found
}

// pointsBetween samples the field along the straight gap from v1 to v2
// at roughly dstep spacing. v1 itself is excluded and the final sample
// lands exactly on v2, so splicing the result onto a streamline ends it
// at the join target with no duplicate of the anchor. Sampling stops at
// the first degenerate field point so a join never crosses water.
func (g *Generator) pointsBetween(v1, v2 geom.Vector) []geom.Vector {
	n := int(v1.DistanceTo(v2) / g.params.Dstep)
	if n == 0 {
		return nil
	}

	stepVector := v2.Sub(v1)
	out := make([]geom.Vector, 0, n)
	for i := 1; i <= n; i++ {
		next := v1.Add(stepVector.Scale(float64(i) / float64(n)))
		if g.integrator.Integrate(next, true).LengthSq() > 0.001 {
			out = append(out, next)
		} else {
			return out
		}
	}
	return out
}
