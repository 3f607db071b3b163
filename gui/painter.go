package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// Painter appends paint commands to one layer's buffer under a fixed clip
// rectangle. Cheap to copy; all painters for a layer share the same buffer.
type Painter struct {
	ctx   *Context
	layer LayerID
	clip  geom.Rect
}

// NewPainter returns a painter for the given layer and clip rectangle.
func NewPainter(ctx *Context, layer LayerID, clip geom.Rect) Painter {
	return Painter{ctx: ctx, layer: layer, clip: clip}
}

// WithClip returns a copy of the painter using a different clip rectangle.
func (p Painter) WithClip(clip geom.Rect) Painter {
	p.clip = clip
	return p
}

// ClipRect returns the painter's clip rectangle.
func (p Painter) ClipRect() geom.Rect { return p.clip }

// Add appends a command, returning its index for later patching with Set.
func (p Painter) Add(cmd PaintCmd) PaintCmdIdx {
	return p.ctx.graphics.List(p.layer).Add(p.clip, cmd)
}

// Set overwrites a command previously reserved with Add.
func (p Painter) Set(idx PaintCmdIdx, cmd PaintCmd) {
	p.ctx.graphics.List(p.layer).Set(idx, p.clip, cmd)
}

// Rect paints a filled, stroked rectangle.
func (p Painter) Rect(rect geom.Rect, cornerRadius float32, fill Color, stroke Stroke) {
	p.Add(RectCmd{Rect: rect, CornerRadius: cornerRadius, Fill: fill, Stroke: stroke})
}

// LineSegment paints a line from a to b.
func (p Painter) LineSegment(a, b geom.Pos2, stroke Stroke) {
	p.Add(LineCmd{Points: [2]geom.Pos2{a, b}, Stroke: stroke})
}

// RoundPosToPixels snaps a position to the pixel grid.
func (p Painter) RoundPosToPixels(pos geom.Pos2) geom.Pos2 { return pos.Round() }

// RoundVecToPixels snaps an extent to the pixel grid.
func (p Painter) RoundVecToPixels(v geom.Vec2) geom.Vec2 { return v.Round() }
