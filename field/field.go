package field

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/tensorway"
	"github.com/katalvlaran/tensorway/geom"
)

// TensorField aggregates basis fields, noise parameters, and externally
// supplied land-mask polygons (sea, river, parks), and samples one
// combined Tensor per point. Accumulation is commutative, so basis-field
// order never affects the result.
//
// The field is built once per generation pass and mutated only to add or
// remove basis fields, toggle noise, or temporarily swap land masks
// (e.g. river tracing hides the sea mask, then restores it).
type TensorField struct {
	basisFields []*BasisField
	noise       opensimplex.Noise
	noiseParams NoiseParams

	parks       []geom.Polygon
	sea         geom.Polygon
	river       geom.Polygon
	ignoreRiver bool

	smooth bool
}

// NewTensorField builds an empty field with the given noise parameters.
func NewTensorField(noiseParams NoiseParams, opts ...Option) *TensorField {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	seed := o.Seed
	if seed == 0 {
		seed = defaultNoiseSeed
	}

	// 2. Assemble the field.
	return &TensorField{
		noise:       opensimplex.New(seed),
		noiseParams: noiseParams,
		smooth:      o.Smooth,
	}
}

// EnableGlobalNoise turns on the global rotation channel with the given
// angle (degrees) and spatial size.
func (tf *TensorField) EnableGlobalNoise(angle, size float64) {
	tf.noiseParams.GlobalNoise = true
	tf.noiseParams.NoiseAngleGlobal = angle
	tf.noiseParams.NoiseSizeGlobal = size
}

// DisableGlobalNoise turns the global rotation channel off.
func (tf *TensorField) DisableGlobalNoise() {
	tf.noiseParams.GlobalNoise = false
}

// AddGrid appends a grid basis field. Non-positive sizes are logged and
// ignored.
func (tf *TensorField) AddGrid(centre geom.Vector, size, decay, theta float64) {
	if size <= 0 {
		tensorway.Logger().Warn("field: ignoring grid field with non-positive size", "size", size)
		return
	}
	tf.AddField(NewGrid(centre, size, decay, theta))
}

// AddRadial appends a radial basis field. Non-positive sizes are logged
// and ignored.
func (tf *TensorField) AddRadial(centre geom.Vector, size, decay float64) {
	if size <= 0 {
		tensorway.Logger().Warn("field: ignoring radial field with non-positive size", "size", size)
		return
	}
	tf.AddField(NewRadial(centre, size, decay))
}

// AddField appends a basis field.
func (tf *TensorField) AddField(b *BasisField) {
	tf.basisFields = append(tf.basisFields, b)
}

// RemoveField removes a previously added basis field, if present.
func (tf *TensorField) RemoveField(b *BasisField) {
	for i, existing := range tf.basisFields {
		if existing == b {
			tf.basisFields = append(tf.basisFields[:i], tf.basisFields[i+1:]...)
			return
		}
	}
}

// Reset drops all basis fields and land masks.
func (tf *TensorField) Reset() {
	tf.basisFields = nil
	tf.parks = nil
	tf.sea = nil
	tf.river = nil
}

// BasisFields returns the current basis-field list.
func (tf *TensorField) BasisFields() []*BasisField { return tf.basisFields }

// CentrePoints returns the centres of all basis fields.
func (tf *TensorField) CentrePoints() []geom.Vector {
	out := make([]geom.Vector, len(tf.basisFields))
	for i, b := range tf.basisFields {
		out[i] = b.Centre()
	}
	return out
}

// SetSea installs the sea mask. The polygon is owned by the caller; the
// core never constructs land masks.
func (tf *TensorField) SetSea(sea geom.Polygon) { tf.sea = sea }

// Sea returns the current sea mask.
func (tf *TensorField) Sea() geom.Polygon { return tf.sea }

// SetRiver installs the river mask.
func (tf *TensorField) SetRiver(river geom.Polygon) { tf.river = river }

// River returns the current river mask.
func (tf *TensorField) River() geom.Polygon { return tf.river }

// SetParks installs the park polygons.
func (tf *TensorField) SetParks(parks []geom.Polygon) { tf.parks = parks }

// Parks returns the current park polygons.
func (tf *TensorField) Parks() []geom.Polygon { return tf.parks }

// SetIgnoreRiver toggles whether the river mask counts as water. River
// tracing sets this while integrating along the river, then restores it.
func (tf *TensorField) SetIgnoreRiver(ignore bool) { tf.ignoreRiver = ignore }

// SetSmooth toggles smooth accumulation for subsequent samples.
func (tf *TensorField) SetSmooth(smooth bool) { tf.smooth = smooth }

// Smooth reports whether smooth accumulation is active.
func (tf *TensorField) Smooth() bool { return tf.smooth }

// SamplePoint returns the combined tensor at point.
//
// Water points return the zero tensor, the degenerate sentinel that
// stops integrators. With no basis fields the result is a default
// uniform field (unit tensor, zero matrix). Park and global noise apply
// rotational perturbations after accumulation.
func (tf *TensorField) SamplePoint(point geom.Vector) *Tensor {
	if !tf.OnLand(point) {
		return ZeroTensor()
	}

	if len(tf.basisFields) == 0 {
		return NewTensor(1, [2]float64{0, 0})
	}

	acc := ZeroTensor()
	for _, b := range tf.basisFields {
		acc.Add(b.WeightedTensor(point, tf.smooth), tf.smooth)
	}

	// Rotational noise for parks, range scaled by noiseAnglePark.
	if tf.InParks(point) {
		acc.Rotate(tf.rotationalNoise(point, tf.noiseParams.NoiseSizePark, tf.noiseParams.NoiseAnglePark))
	}
	if tf.noiseParams.GlobalNoise {
		acc.Rotate(tf.rotationalNoise(point, tf.noiseParams.NoiseSizeGlobal, tf.noiseParams.NoiseAngleGlobal))
	}
	return acc
}

// rotationalNoise samples the coherent noise at point/noiseSize and
// scales it to radians by noiseAngle (degrees).
func (tf *TensorField) rotationalNoise(point geom.Vector, noiseSize, noiseAngle float64) float64 {
	if noiseSize == 0 {
		tensorway.Logger().Warn("field: rotational noise with zero size")
		return 0
	}
	return tf.noise.Eval2(point.X/noiseSize, point.Y/noiseSize) * noiseAngle * math.Pi / 180
}

// OnLand reports whether point is outside the sea mask and, unless
// rivers are ignored, outside the river mask.
func (tf *TensorField) OnLand(point geom.Vector) bool {
	inSea := tf.sea.Contains(point)
	if tf.ignoreRiver {
		return !inSea
	}
	return !inSea && !tf.river.Contains(point)
}

// InParks reports whether point lies inside any park polygon.
func (tf *TensorField) InParks(point geom.Vector) bool {
	for _, park := range tf.parks {
		if park.Contains(point) {
			return true
		}
	}
	return false
}
