package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Add returns a + b.
func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v multiplied by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	l := Length(v)
	if l == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}
}

// Round snaps v to the nearest integer pixel.
func Round(v dmath.Vec2) (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

// InRect reports whether p lies inside the rectangle [min, max], edges included.
func InRect(p, min, max dmath.Vec2) bool {
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}
