package integrate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tensorway/field"
	"github.com/katalvlaran/tensorway/geom"
	"github.com/katalvlaran/tensorway/integrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformField is a single grid field at theta covering the whole world.
func uniformField(theta float64) *field.TensorField {
	tf := field.NewTensorField(field.NoiseParams{})
	tf.AddGrid(geom.Vector{X: 500, Y: 500}, 1000, 0, theta)
	return tf
}

// TestEuler_StepIsSampleTimesDstep: Euler equals the unit direction
// scaled by dstep.
func TestEuler_StepIsSampleTimesDstep(t *testing.T) {
	fi := integrate.NewEuler(uniformField(0), 2.5)
	step := fi.Integrate(geom.Vector{X: 100, Y: 100}, true)
	assert.InDelta(t, 2.5, step.X, 1e-9)
	assert.InDelta(t, 0.0, step.Y, 1e-9)

	minor := fi.Integrate(geom.Vector{X: 100, Y: 100}, false)
	assert.InDelta(t, 0.0, minor.X, 1e-9)
	assert.InDelta(t, 2.5, math.Abs(minor.Y), 1e-9)
}

// TestRK4_UniformFieldMatchesEuler: in a uniform field all three samples
// agree, so (k1+4·k23+k4)·dstep/6 collapses to direction·dstep.
func TestRK4_UniformFieldMatchesEuler(t *testing.T) {
	theta := 0.4
	p := geom.Vector{X: 300, Y: 300}
	euler := integrate.NewEuler(uniformField(theta), 1.5).Integrate(p, true)
	rk4 := integrate.NewRK4(uniformField(theta), 1.5).Integrate(p, true)
	assert.InDelta(t, euler.X, rk4.X, 1e-9)
	assert.InDelta(t, euler.Y, rk4.Y, 1e-9)
	assert.InDelta(t, 1.5, rk4.Length(), 1e-9)
}

// TestRK4_Deterministic: identical (field, point, params) ⇒ identical
// output.
func TestRK4_Deterministic(t *testing.T) {
	build := func() geom.Vector {
		tf := field.NewTensorField(
			field.NoiseParams{GlobalNoise: true, NoiseSizeGlobal: 60, NoiseAngleGlobal: 20},
			field.WithSeed(11),
		)
		tf.AddGrid(geom.Vector{X: 200, Y: 700}, 800, 10, 0.7)
		tf.AddRadial(geom.Vector{X: 600, Y: 300}, 400, 3)
		return integrate.NewRK4(tf, 1).Integrate(geom.Vector{X: 333, Y: 444}, true)
	}
	assert.Equal(t, build(), build())
}

// TestIntegrate_DegenerateStops: water samples integrate to the zero
// displacement.
func TestIntegrate_DegenerateStops(t *testing.T) {
	tf := uniformField(0)
	tf.SetSea(geom.Polygon{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}})

	fi := integrate.NewRK4(tf, 1)
	require.False(t, fi.OnLand(geom.Vector{X: 10, Y: 10}))
	step := fi.Integrate(geom.Vector{X: 10, Y: 10}, true)
	assert.Equal(t, 0.0, step.LengthSq())
}
