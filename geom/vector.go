package geom

import (
	"math"

	"github.com/katalvlaran/tensorway"
)

// Vector is a 2D point or displacement. It is a value type: every method
// returns a new Vector and no operation mutates the receiver, so values
// may be handed between owners freely.
type Vector struct {
	X, Y float64
}

// Zero returns the zero vector.
func Zero() Vector { return Vector{} }

// FromScalar returns (s, s).
func FromScalar(s float64) Vector { return Vector{X: s, Y: s} }

// Add returns v + o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

// Sub returns v − o.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

// DivScalar returns v divided by s. Division by zero is logged and
// returns v unchanged, matching the pipeline's degrade-don't-fail rule.
func (v Vector) DivScalar(s float64) Vector {
	if s == 0 {
		tensorway.Logger().Warn("geom: vector division by zero")
		return v
	}
	return v.Scale(1 / s)
}

// Negate returns −v.
func (v Vector) Negate() Vector { return v.Scale(-1) }

// Dot returns the dot product v·o.
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the 2D cross product (z-component) v×o.
func (v Vector) Cross(o Vector) float64 { return v.X*o.Y - v.Y*o.X }

// Length returns ‖v‖.
func (v Vector) Length() float64 { return math.Sqrt(v.LengthSq()) }

// LengthSq returns ‖v‖².
func (v Vector) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector) DistanceTo(o Vector) float64 {
	return math.Sqrt(v.DistanceToSq(o))
}

// DistanceToSq returns the squared Euclidean distance between v and o.
// Hot path: called at every integration step.
func (v Vector) DistanceToSq(o Vector) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// Normalize returns v scaled to unit length. The zero vector is logged
// and returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		tensorway.Logger().Warn("geom: normalizing zero vector")
		return v
	}
	return v.Scale(1 / l)
}

// SetLength returns v rescaled to the given length.
func (v Vector) SetLength(length float64) Vector {
	return v.Normalize().Scale(length)
}

// Angle returns the angle to the positive x-axis in (−π, π].
func (v Vector) Angle() float64 { return math.Atan2(v.Y, v.X) }

// RotateAround returns v rotated about centre by angle radians.
func (v Vector) RotateAround(centre Vector, angle float64) Vector {
	cos, sin := math.Cos(angle), math.Sin(angle)
	x, y := v.X-centre.X, v.Y-centre.Y
	return Vector{
		X: x*cos - y*sin + centre.X,
		Y: x*sin + y*cos + centre.Y,
	}
}

// AngleBetween returns the signed angle from b to a, wrapped to (−π, π].
func AngleBetween(a, b Vector) float64 {
	angle := a.Angle() - b.Angle()
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// IsLeft reports whether point lies to the left of the directed line
// through linePoint along lineDirection.
func IsLeft(linePoint, lineDirection, point Vector) bool {
	perpendicular := Vector{X: lineDirection.Y, Y: -lineDirection.X}
	return point.Sub(linePoint).Dot(perpendicular) < 0
}
