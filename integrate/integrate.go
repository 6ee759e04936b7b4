package integrate

import (
	"github.com/katalvlaran/tensorway/field"
	"github.com/katalvlaran/tensorway/geom"
)

// Method selects the integration rule. The set is closed.
type Method int

const (
	// Euler advances by a single field sample scaled by dstep.
	Euler Method = iota
	// RK4 advances by (k1 + 4·k23 + k4)·dstep/6 with a shared midpoint
	// sample for the two middle stages.
	RK4
)

// FieldIntegrator advances points through a tensor field with a fixed
// step length.
type FieldIntegrator struct {
	field  *field.TensorField
	method Method
	dstep  float64
}

// NewEuler returns an Euler integrator over tf with step length dstep.
func NewEuler(tf *field.TensorField, dstep float64) *FieldIntegrator {
	return &FieldIntegrator{field: tf, method: Euler, dstep: dstep}
}

// NewRK4 returns an RK4 integrator over tf with step length dstep.
func NewRK4(tf *field.TensorField, dstep float64) *FieldIntegrator {
	return &FieldIntegrator{field: tf, method: RK4, dstep: dstep}
}

// Method returns the active integration rule.
func (fi *FieldIntegrator) Method() Method { return fi.method }

// SampleFieldVector samples the field at point and returns the major or
// minor unit eigendirection; the zero vector at degenerate points.
func (fi *FieldIntegrator) SampleFieldVector(point geom.Vector, major bool) geom.Vector {
	tensor := fi.field.SamplePoint(point)
	if major {
		return tensor.Major()
	}
	return tensor.Minor()
}

// OnLand reports whether point is on land in the underlying field.
func (fi *FieldIntegrator) OnLand(point geom.Vector) bool {
	return fi.field.OnLand(point)
}

// Integrate returns the step displacement from point along the major or
// minor family. Identical inputs always yield identical output.
func (fi *FieldIntegrator) Integrate(point geom.Vector, major bool) geom.Vector {
	if fi.method == Euler {
		return fi.SampleFieldVector(point, major).Scale(fi.dstep)
	}

	// RK4 with the shared midpoint sample.
	k1 := fi.SampleFieldVector(point, major)
	k23 := fi.SampleFieldVector(point.Add(geom.FromScalar(fi.dstep/2)), major)
	k4 := fi.SampleFieldVector(point.Add(geom.FromScalar(fi.dstep)), major)

	return k1.Add(k23.Scale(4)).Add(k4).Scale(fi.dstep / 6)
}
