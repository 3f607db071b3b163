package geom

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle spanning Min to Max (inclusive edges).
// A Rect with Max < Min on either axis is negative (contains nothing).
type Rect struct {
	Min Pos2
	Max Pos2
}

// RectFromMinMax returns the rectangle spanning the two corners.
func RectFromMinMax(min, max Pos2) Rect { return Rect{Min: min, Max: max} }

// RectFromMinSize returns the rectangle with the given top-left corner and size.
func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize returns the rectangle centered on c with the given size.
func RectFromCenterSize(c Pos2, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: c.SubV(half), Max: c.Add(half)}
}

// Everything returns the infinite rectangle: clips nothing, contains all.
func Everything() Rect {
	inf := math32.Inf(1)
	return Rect{Min: Pos2{-inf, -inf}, Max: Pos2{inf, inf}}
}

// Nothing returns a rectangle that contains no point and can be grown
// with Union/ExpandToInclude.
func Nothing() Rect {
	inf := math32.Inf(1)
	return Rect{Min: Pos2{inf, inf}, Max: Pos2{-inf, -inf}}
}

func (r Rect) Size() Vec2      { return r.Max.Sub(r.Min) }
func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Pos2 {
	return Pos2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// RightBottom returns the bottom-right corner.
func (r Rect) RightBottom() Pos2 { return r.Max }

// Contains reports whether p lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Pos2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Intersect returns the overlap of r and o; a negative rect if disjoint.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{Min: r.Min.Max(o.Min), Max: r.Max.Min(o.Max)}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

// Expand grows the rectangle by d on all four sides.
func (r Rect) Expand(d float32) Rect {
	return Rect{Min: r.Min.SubV(Splat(d)), Max: r.Max.Add(Splat(d))}
}

// Translate moves the rectangle by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// ExpandToInclude grows the rectangle so it contains p.
func (r Rect) ExpandToInclude(p Pos2) Rect {
	return Rect{Min: r.Min.Min(p), Max: r.Max.Max(p)}
}

// IsEmpty reports whether the rectangle spans no area on either axis.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}
