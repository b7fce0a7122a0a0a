// Package physics provides the 2D vector, bounding-box and broad-phase helpers
// used by the entity update and collision passes.
package physics

import "math"

// Vector is an immutable 2D vector.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// DefaultDirection is substituted when a zero vector has to be normalized.
var DefaultDirection = Vector{X: 1, Y: 0}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// TryNormalize returns the unit vector of v. ok is false for the zero vector
// (or a vector with non-finite components), in which case the zero vector is
// returned.
func (v Vector) TryNormalize() (Vector, bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vector{}, false
	}
	return Vector{X: v.X / l, Y: v.Y / l}, true
}

// Normalize returns the unit vector of v, or DefaultDirection when v has no
// direction. It never returns NaN components.
func (v Vector) Normalize() Vector {
	if n, ok := v.TryNormalize(); ok {
		return n
	}
	return DefaultDirection
}

// FromAngle returns the unit vector for an angle in degrees
// (0 = +X, counter-clockwise positive).
func FromAngle(degrees float64) Vector {
	rad := degrees * math.Pi / 180
	return Vector{X: math.Cos(rad), Y: math.Sin(rad)}
}

// MoveTowards moves from towards to by at most maxStep. If the target is
// within maxStep it is returned exactly, so the result never overshoots.
func MoveTowards(from, to, maxStep float64) float64 {
	if math.Abs(to-from) < maxStep {
		return to
	}
	if to > from {
		return from + maxStep
	}
	if to < from {
		return from - maxStep
	}
	return to
}
