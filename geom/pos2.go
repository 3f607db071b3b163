package geom

import "github.com/chewxy/math32"

// Pos2 is a point in 2D screen space, in logical pixels.
// Points and vectors are kept distinct: pos - pos = vec, pos + vec = pos.
type Pos2 struct {
	X, Y float32
}

// P2 returns a new Pos2 with the given coordinates.
func P2(x, y float32) Pos2 { return Pos2{X: x, Y: y} }

func (p Pos2) Add(v Vec2) Pos2  { return Pos2{p.X + v.X, p.Y + v.Y} }
func (p Pos2) Sub(o Pos2) Vec2  { return Vec2{p.X - o.X, p.Y - o.Y} }
func (p Pos2) SubV(v Vec2) Pos2 { return Pos2{p.X - v.X, p.Y - v.Y} }

// Vec returns the position as an offset from the origin.
func (p Pos2) Vec() Vec2 { return Vec2{p.X, p.Y} }

// Min returns the component-wise minimum of p and o.
func (p Pos2) Min(o Pos2) Pos2 {
	return Pos2{math32.Min(p.X, o.X), math32.Min(p.Y, o.Y)}
}

// Max returns the component-wise maximum of p and o.
func (p Pos2) Max(o Pos2) Pos2 {
	return Pos2{math32.Max(p.X, o.X), math32.Max(p.Y, o.Y)}
}

// Round returns p with both coordinates rounded to the nearest integer,
// snapping to the pixel grid to avoid sub-pixel blur.
func (p Pos2) Round() Pos2 {
	return Pos2{math32.Round(p.X), math32.Round(p.Y)}
}

// DistanceTo returns the Euclidean distance from p to o.
func (p Pos2) DistanceTo(o Pos2) float32 {
	return o.Sub(p).Length()
}
