package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tensorway/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Vector algebra
//----------------------------------------------------------------------------//

// TestVector_ValueSemantics verifies that operations never mutate their
// receiver.
func TestVector_ValueSemantics(t *testing.T) {
	v := geom.Vector{X: 1, Y: 2}
	_ = v.Add(geom.Vector{X: 3, Y: 4})
	_ = v.Scale(10)
	_ = v.Normalize()
	assert.Equal(t, geom.Vector{X: 1, Y: 2}, v)
}

// TestVector_Algebra checks the basic identities used everywhere else.
func TestVector_Algebra(t *testing.T) {
	a := geom.Vector{X: 3, Y: 4}
	b := geom.Vector{X: -1, Y: 2}

	assert.Equal(t, geom.Vector{X: 2, Y: 6}, a.Add(b))
	assert.Equal(t, geom.Vector{X: 4, Y: 2}, a.Sub(b))
	assert.InDelta(t, 5.0, a.Length(), 1e-12)
	assert.InDelta(t, 25.0, a.LengthSq(), 1e-12)
	assert.InDelta(t, 5.0, a.Dot(b), 1e-12)
	assert.InDelta(t, 10.0, a.Cross(b), 1e-12)
	assert.InDelta(t, 1.0, a.Normalize().Length(), 1e-12)
	assert.InDelta(t, 7.0, a.SetLength(7).Length(), 1e-12)
}

// TestVector_NormalizeZero verifies the zero-vector guard: no fault,
// zero result.
func TestVector_NormalizeZero(t *testing.T) {
	z := geom.Zero()
	assert.Equal(t, geom.Zero(), z.Normalize())
	assert.Equal(t, geom.Zero(), z.SetLength(5))
	assert.Equal(t, z, z.DivScalar(0))
}

// TestAngleBetween verifies the (−π, π] wrap.
func TestAngleBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Vector
		want float64
	}{
		{"Quarter", geom.Vector{X: 0, Y: 1}, geom.Vector{X: 1, Y: 0}, math.Pi / 2},
		{"QuarterNeg", geom.Vector{X: 1, Y: 0}, geom.Vector{X: 0, Y: 1}, -math.Pi / 2},
		{"WrapDown", geom.Vector{X: -1, Y: -1e-9}, geom.Vector{X: 1, Y: -1e-9}, math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.AngleBetween(tc.a, tc.b)
			assert.InDelta(t, tc.want, got, 1e-6)
			assert.True(t, got > -math.Pi && got <= math.Pi)
		})
	}
}

// TestIsLeft checks the half-plane test against a vertical line.
func TestIsLeft(t *testing.T) {
	origin := geom.Zero()
	up := geom.Vector{X: 0, Y: 1}
	require.True(t, geom.IsLeft(origin, up, geom.Vector{X: -1, Y: 5}))
	require.False(t, geom.IsLeft(origin, up, geom.Vector{X: 1, Y: 5}))
}

// TestVector_RotateAround rotates a point a quarter turn about a centre.
func TestVector_RotateAround(t *testing.T) {
	got := geom.Vector{X: 2, Y: 1}.RotateAround(geom.Vector{X: 1, Y: 1}, math.Pi/2)
	assert.InDelta(t, 1.0, got.X, 1e-12)
	assert.InDelta(t, 2.0, got.Y, 1e-12)
}
