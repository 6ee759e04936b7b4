package field

import (
	"math"

	"github.com/katalvlaran/tensorway/geom"
)

// Tensor is a 2×2 traceless symmetric matrix in doubled-angle form:
// r scaling [cos 2θ, sin 2θ]. θ is only meaningful up to π: the tensor
// encodes a line, not a vector. The angle is recomputed eagerly on every
// mutation, so Theta never reads stale.
type Tensor struct {
	r      float64
	matrix [2]float64
	theta  float64
}

// NewTensor builds a tensor from its magnitude and doubled-angle matrix.
func NewTensor(r float64, matrix [2]float64) *Tensor {
	t := &Tensor{r: r, matrix: matrix}
	t.theta = t.calculateTheta()
	return t
}

// ZeroTensor returns the degenerate "no field here" sentinel.
func ZeroTensor() *Tensor {
	return NewTensor(0, [2]float64{0, 0})
}

// R returns the tensor magnitude. R==0 marks a degenerate point.
func (t *Tensor) R() float64 { return t.r }

// Theta returns the line angle in [0, π) (up to π-periodicity).
func (t *Tensor) Theta() float64 { return t.theta }

// Add accumulates o into t, weighted by both magnitudes. With smooth the
// result is renormalized to unit scale (r becomes the resultant magnitude
// and the matrix is divided by it), which keeps repeated accumulation
// stable. Without smooth the raw summed matrix is kept and r is pinned to
// 2: θ depends only on the matrix ratio, so the exact r value matters
// only on the normalized path.
func (t *Tensor) Add(o *Tensor, smooth bool) *Tensor {
	for i := range t.matrix {
		t.matrix[i] = t.matrix[i]*t.r + o.matrix[i]*o.r
	}
	if smooth {
		t.r = math.Hypot(t.matrix[0], t.matrix[1])
		if t.r != 0 {
			t.matrix[0] /= t.r
			t.matrix[1] /= t.r
		}
	} else {
		t.r = 2
	}
	t.theta = t.calculateTheta()
	return t
}

// Scale multiplies the tensor magnitude by s.
func (t *Tensor) Scale(s float64) *Tensor {
	t.r *= s
	t.theta = t.calculateTheta()
	return t
}

// Rotate adds theta to the line angle, wrapping the result into [0, π)
// to respect π-periodicity, and rewrites the matrix from the new angle.
func (t *Tensor) Rotate(theta float64) *Tensor {
	if theta == 0 {
		return t
	}
	newTheta := math.Mod(t.theta+theta, math.Pi)
	if newTheta < 0 {
		newTheta += math.Pi
	}
	t.matrix[0] = math.Cos(2*newTheta) * t.r
	t.matrix[1] = math.Sin(2*newTheta) * t.r
	t.theta = newTheta
	return t
}

// Major returns the unit eigendirection at angle θ, or the zero vector at
// a degenerate point.
func (t *Tensor) Major() geom.Vector {
	if t.r == 0 {
		return geom.Zero()
	}
	return geom.Vector{X: math.Cos(t.theta), Y: math.Sin(t.theta)}
}

// Minor returns the unit eigendirection at θ+π/2, or the zero vector at
// a degenerate point.
func (t *Tensor) Minor() geom.Vector {
	if t.r == 0 {
		return geom.Zero()
	}
	angle := t.theta + math.Pi/2
	return geom.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (t *Tensor) calculateTheta() float64 {
	if t.r == 0 {
		return 0
	}
	return math.Atan2(t.matrix[1]/t.r, t.matrix[0]/t.r) / 2
}
