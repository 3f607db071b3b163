package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D vector: an offset, extent or velocity. See Pos2 for points.
type Vec2 struct {
	X, Y float32
}

// V2 returns a new Vec2 with the given components.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Splat returns a Vec2 with both components set to s.
func Splat(s float32) Vec2 { return Vec2{X: s, Y: s} }

// Infinity returns a Vec2 with both components +Inf.
func Infinity() Vec2 {
	inf := math32.Inf(1)
	return Vec2{X: inf, Y: inf}
}

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Div(s float32) Vec2 { return Vec2{v.X / s, v.Y / s} }
func (v Vec2) Neg() Vec2          { return Vec2{-v.X, -v.Y} }
func (v Vec2) IsZero() bool       { return v.X == 0 && v.Y == 0 }

// Length returns the Euclidean magnitude of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Div(l)
}

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{math32.Min(v.X, o.X), math32.Min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{math32.Max(v.X, o.X), math32.Max(v.Y, o.Y)}
}

// Round returns v with both components rounded to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{math32.Round(v.X), math32.Round(v.Y)}
}

// Ceil returns v with both components rounded up.
func (v Vec2) Ceil() Vec2 {
	return Vec2{math32.Ceil(v.X), math32.Ceil(v.Y)}
}

// Floor returns v with both components rounded down.
func (v Vec2) Floor() Vec2 {
	return Vec2{math32.Floor(v.X), math32.Floor(v.Y)}
}
