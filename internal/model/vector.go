package model

import "math"

// Vec2 — точка или направление на 2D-плоскости мира.
// Value type, передаётся по значению.
type Vec2 struct {
	X float64
	Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v × k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Len()
}

// IsZero reports whether the vector is shorter than 1e-9.
func (v Vec2) IsZero() bool {
	return v.Len() < 1e-9
}

// Normalize returns the unit vector, or the zero vector if v is zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// AngleTo returns the unsigned angle between v and o in degrees, in [0, 180].
// Zero vectors yield 0.
func (v Vec2) AngleTo(o Vec2) float64 {
	a, b := v.Normalize(), o.Normalize()
	if a.IsZero() || b.IsZero() {
		return 0
	}
	cos := max(-1, min(1, a.Dot(b)))
	return math.Acos(cos) * 180 / math.Pi
}

// WithinArc reports whether point lies within radius of origin and within
// arc/2 degrees of facing. A point at the origin is always inside.
func WithinArc(origin, facing, point Vec2, radius, arc float64) bool {
	offset := point.Sub(origin)
	if offset.Len() > radius {
		return false
	}
	if offset.IsZero() {
		return true
	}
	return facing.AngleTo(offset) <= arc/2
}
