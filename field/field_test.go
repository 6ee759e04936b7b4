package field_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tensorway/field"
	"github.com/katalvlaran/tensorway/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, side float64) geom.Polygon {
	return geom.Polygon{
		{X: x, Y: y}, {X: x + side, Y: y}, {X: x + side, Y: y + side}, {X: x, Y: y + side},
	}
}

//----------------------------------------------------------------------------//
// Sampling
//----------------------------------------------------------------------------//

// TestTensorField_SeaIsDegenerate: inside the sea mask the sample is the
// zero tensor, both eigendirections zero.
func TestTensorField_SeaIsDegenerate(t *testing.T) {
	tf := field.NewTensorField(field.NoiseParams{})
	tf.AddGrid(geom.Vector{X: 50, Y: 50}, 1000, 0, 0)
	tf.SetSea(square(0, 0, 20))

	tensor := tf.SamplePoint(geom.Vector{X: 10, Y: 10})
	assert.Equal(t, 0.0, tensor.R())
	assert.Equal(t, geom.Zero(), tensor.Major())
	assert.Equal(t, geom.Zero(), tensor.Minor())

	land := tf.SamplePoint(geom.Vector{X: 500, Y: 500})
	assert.NotEqual(t, 0.0, land.R())
}

// TestTensorField_RiverToggle: the river counts as water unless ignored.
func TestTensorField_RiverToggle(t *testing.T) {
	tf := field.NewTensorField(field.NoiseParams{})
	tf.SetRiver(square(0, 0, 20))
	p := geom.Vector{X: 10, Y: 10}

	require.False(t, tf.OnLand(p))
	tf.SetIgnoreRiver(true)
	require.True(t, tf.OnLand(p))
	tf.SetIgnoreRiver(false)
	require.False(t, tf.OnLand(p))
}

// TestTensorField_EmptyDefaultsToUniformGrid: with no basis fields the
// sample is the degenerate uniform field (unit tensor, zero matrix).
func TestTensorField_EmptyDefaultsToUniformGrid(t *testing.T) {
	tf := field.NewTensorField(field.NoiseParams{})
	tensor := tf.SamplePoint(geom.Vector{X: 1, Y: 2})
	assert.Equal(t, 1.0, tensor.R())
	assert.Equal(t, 0.0, tensor.Theta())
	assert.InDelta(t, 1.0, tensor.Major().X, 1e-12)
}

// TestTensorField_GridAccumulation: a single grid field at θ gives major
// direction θ everywhere on land.
func TestTensorField_GridAccumulation(t *testing.T) {
	tf := field.NewTensorField(field.NoiseParams{})
	tf.AddGrid(geom.Vector{X: 500, Y: 500}, 1000, 30, math.Pi/4)

	for _, p := range []geom.Vector{{X: 100, Y: 100}, {X: 600, Y: 200}, {X: 900, Y: 900}} {
		major := tf.SamplePoint(p).Major()
		assert.InDelta(t, math.Pi/4, math.Abs(major.Angle()), 1e-6, "at %v", p)
	}
}

// TestTensorField_ParkNoiseRotates: inside a park the direction is
// perturbed; outside it is untouched.
func TestTensorField_ParkNoiseRotates(t *testing.T) {
	np := field.NoiseParams{NoiseSizePark: 50, NoiseAnglePark: 45}
	tf := field.NewTensorField(np, field.WithSeed(42))
	tf.AddGrid(geom.Vector{X: 500, Y: 500}, 1000, 30, 0)
	tf.SetParks([]geom.Polygon{square(0, 0, 100)})

	outside := tf.SamplePoint(geom.Vector{X: 500, Y: 500}).Theta()
	assert.InDelta(t, 0.0, outside, 1e-9)

	// Not every park point perturbs (the noise can be ~0); scan for one.
	perturbed := false
	for x := 10.0; x < 90 && !perturbed; x += 7 {
		inside := tf.SamplePoint(geom.Vector{X: x, Y: 40}).Theta()
		if math.Abs(inside) > 1e-4 && math.Abs(inside-math.Pi) > 1e-4 {
			perturbed = true
		}
	}
	assert.True(t, perturbed, "park noise never perturbed the field")
}

// TestTensorField_NoiseDeterminism: identical seeds ⇒ identical samples.
func TestTensorField_NoiseDeterminism(t *testing.T) {
	build := func() *field.TensorField {
		tf := field.NewTensorField(
			field.NoiseParams{NoiseSizeGlobal: 80, NoiseAngleGlobal: 30},
			field.WithSeed(7),
		)
		tf.AddGrid(geom.Vector{X: 500, Y: 500}, 1000, 30, 0.3)
		tf.EnableGlobalNoise(30, 80)
		return tf
	}
	a, b := build(), build()
	for _, p := range []geom.Vector{{X: 13, Y: 37}, {X: 400, Y: 250}, {X: 901, Y: 17}} {
		assert.Equal(t, a.SamplePoint(p).Theta(), b.SamplePoint(p).Theta(), "at %v", p)
	}
}

// TestTensorField_FieldManagement covers add/remove/reset bookkeeping.
func TestTensorField_FieldManagement(t *testing.T) {
	tf := field.NewTensorField(field.NoiseParams{})
	tf.AddGrid(geom.Vector{X: 1, Y: 1}, 100, 0, 0)
	tf.AddRadial(geom.Vector{X: 2, Y: 2}, 100, 0)
	require.Len(t, tf.BasisFields(), 2)
	assert.Equal(t, []geom.Vector{{X: 1, Y: 1}, {X: 2, Y: 2}}, tf.CentrePoints())

	tf.RemoveField(tf.BasisFields()[0])
	require.Len(t, tf.BasisFields(), 1)
	assert.Equal(t, field.KindRadial, tf.BasisFields()[0].Kind())

	// Invalid sizes are ignored.
	tf.AddGrid(geom.Zero(), 0, 0, 0)
	tf.AddRadial(geom.Zero(), -5, 0)
	require.Len(t, tf.BasisFields(), 1)

	tf.Reset()
	assert.Empty(t, tf.BasisFields())
}
