package geom

// Simplify decimates a polyline with Ramer–Douglas–Peucker: points whose
// perpendicular distance to the simplified shape stays within tolerance
// are dropped. Endpoints are always preserved; a tolerance of 0 returns
// a fresh copy. Complexity: O(n²) worst case.
func Simplify(line []Vector, tolerance float64) []Vector {
	if len(line) <= 2 || tolerance <= 0 {
		out := make([]Vector, len(line))
		copy(out, line)
		return out
	}
	keep := make([]bool, len(line))
	keep[0], keep[len(line)-1] = true, true
	simplifySection(line, 0, len(line)-1, tolerance*tolerance, keep)

	out := make([]Vector, 0, len(line))
	for i, v := range line {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}

func simplifySection(line []Vector, first, last int, tolSq float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxDistSq := 0.0
	index := first
	for i := first + 1; i < last; i++ {
		d := segmentDistanceSq(line[i], line[first], line[last])
		if d > maxDistSq {
			maxDistSq = d
			index = i
		}
	}
	if maxDistSq > tolSq {
		keep[index] = true
		simplifySection(line, first, index, tolSq, keep)
		simplifySection(line, index, last, tolSq, keep)
	}
}

// segmentDistanceSq returns the squared distance from p to segment a–b.
func segmentDistanceSq(p, a, b Vector) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.DistanceToSq(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.DistanceToSq(a.Add(ab.Scale(t)))
}
