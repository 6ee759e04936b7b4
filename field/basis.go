package field

import (
	"math"

	"github.com/katalvlaran/tensorway/geom"
)

// Kind selects the basis-field variant. The set is closed: every kind has
// exactly one tensor shape.
type Kind int

const (
	// KindGrid produces uniform grid-like lines at a fixed angle theta.
	KindGrid Kind = iota
	// KindRadial produces concentric/radial lines around the centre.
	KindRadial
)

// BasisField is one local contributor to the tensor field: a centre, an
// influence radius (size), a decay exponent, and for Grid a line angle.
// Fields are immutable except through the setters, which also keep the
// mirrored parameter map (Params) in sync for external UIs.
type BasisField struct {
	kind   Kind
	centre geom.Vector
	size   float64
	decay  float64
	theta  float64 // KindGrid only
	params map[string]float64
}

// NewGrid returns a grid basis field with line angle theta (radians).
// size must be positive.
func NewGrid(centre geom.Vector, size, decay, theta float64) *BasisField {
	b := &BasisField{kind: KindGrid, centre: centre, size: size, decay: decay, theta: theta}
	b.params = map[string]float64{
		"x": centre.X, "y": centre.Y, "size": size, "decay": decay, "theta": theta,
	}
	return b
}

// NewRadial returns a radial basis field. size must be positive.
func NewRadial(centre geom.Vector, size, decay float64) *BasisField {
	b := &BasisField{kind: KindRadial, centre: centre, size: size, decay: decay}
	b.params = map[string]float64{
		"x": centre.X, "y": centre.Y, "size": size, "decay": decay,
	}
	return b
}

// Kind returns the field variant.
func (b *BasisField) Kind() Kind { return b.kind }

// Centre returns a copy of the field centre.
func (b *BasisField) Centre() geom.Vector { return b.centre }

// SetCentre moves the field centre.
func (b *BasisField) SetCentre(centre geom.Vector) {
	b.centre = centre
	b.params["x"] = centre.X
	b.params["y"] = centre.Y
}

// Size returns the influence radius.
func (b *BasisField) Size() float64 { return b.size }

// SetSize updates the influence radius.
func (b *BasisField) SetSize(size float64) {
	b.size = size
	b.params["size"] = size
}

// Decay returns the decay exponent.
func (b *BasisField) Decay() float64 { return b.decay }

// SetDecay updates the decay exponent.
func (b *BasisField) SetDecay(decay float64) {
	b.decay = decay
	b.params["decay"] = decay
}

// Theta returns the grid line angle; zero for radial fields.
func (b *BasisField) Theta() float64 { return b.theta }

// SetTheta updates the grid line angle. It has no effect on the tensor of
// a radial field.
func (b *BasisField) SetTheta(theta float64) {
	b.theta = theta
	b.params["theta"] = theta
}

// Params exposes the live parameter map mirrored by the setters.
func (b *BasisField) Params() map[string]float64 { return b.params }

// Tensor returns the unweighted tensor of the field at point.
func (b *BasisField) Tensor(point geom.Vector) *Tensor {
	switch b.kind {
	case KindRadial:
		t := point.Sub(b.centre)
		return NewTensor(1, [2]float64{t.Y*t.Y - t.X*t.X, -2 * t.X * t.Y})
	default: // KindGrid: constant over space
		return NewTensor(1, [2]float64{math.Cos(2 * b.theta), math.Sin(2 * b.theta)})
	}
}

// TensorWeight returns the influence of the field at point. Let
// d = ‖point − centre‖ / size. Smooth weighting is d^(−decay): unbounded
// near the centre and never exactly zero. Non-smooth weighting is
// max(0, 1−d)^decay with a hard cutoff at d ≥ 1 when decay == 0.
func (b *BasisField) TensorWeight(point geom.Vector, smooth bool) float64 {
	d := point.Sub(b.centre).Length() / b.size
	if smooth {
		return math.Pow(d, -b.decay)
	}
	if b.decay == 0 && d >= 1 {
		return 0
	}
	return math.Pow(math.Max(0, 1-d), b.decay)
}

// WeightedTensor returns Tensor(point) scaled by TensorWeight.
func (b *BasisField) WeightedTensor(point geom.Vector, smooth bool) *Tensor {
	return b.Tensor(point).Scale(b.TensorWeight(point, smooth))
}
