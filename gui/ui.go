package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// Ui is the region a widget closure builds content into: a layer, a clip
// rectangle and a top-to-bottom layout cursor. It is deliberately minimal;
// rich layout (wrapping, alignment, grids) lives with the widgets, not the
// retained-state core.
type Ui struct {
	ctx   *Context
	layer LayerID
	id    ID

	// rect is the maximum region content may occupy.
	rect geom.Rect
	clip geom.Rect

	cursor geom.Pos2
	// boundsMax tracks how far content actually reached.
	boundsMax  geom.Pos2
	childCount int
}

// NewUi returns a top-level Ui on the given layer covering maxRect.
func NewUi(ctx *Context, layer LayerID, id ID, maxRect geom.Rect) *Ui {
	return &Ui{
		ctx:       ctx,
		layer:     layer,
		id:        id,
		rect:      maxRect,
		clip:      geom.Everything(),
		cursor:    maxRect.Min,
		boundsMax: maxRect.Min,
	}
}

// Ctx returns the owning context.
func (u *Ui) Ctx() *Context { return u.ctx }

// Layer returns the layer this Ui paints to.
func (u *Ui) Layer() LayerID { return u.layer }

// ID returns the Ui's own identity, the base for child identities.
func (u *Ui) ID() ID { return u.id }

// ClipRect returns the rectangle content is clipped to.
func (u *Ui) ClipRect() geom.Rect { return u.clip }

// SetClipRect replaces the clip rectangle for subsequent painting.
func (u *Ui) SetClipRect(clip geom.Rect) { u.clip = clip }

// TopLeft returns the origin of the region.
func (u *Ui) TopLeft() geom.Pos2 { return u.rect.Min }

// AvailableMin returns where the next widget will be placed.
func (u *Ui) AvailableMin() geom.Pos2 { return u.cursor }

// BoundingSize returns the extent content has reached so far, measured
// from the region origin.
func (u *Ui) BoundingSize() geom.Vec2 {
	return u.boundsMax.Sub(u.rect.Min)
}

// ExpandToInclude grows the measured content bounds to cover r.
func (u *Ui) ExpandToInclude(r geom.Rect) {
	u.boundsMax = u.boundsMax.Max(r.Max)
}

// AllocateSpace claims a widget-sized rectangle at the cursor, advances
// the cursor below it and grows the content bounds. Returns the claimed
// rectangle.
func (u *Ui) AllocateSpace(size geom.Vec2) geom.Rect {
	r := geom.RectFromMinSize(u.cursor, size)
	u.cursor.Y = r.Max.Y
	u.ExpandToInclude(r)
	return r
}

// ChildUi returns a nested Ui over rect, inheriting layer and clip.
func (u *Ui) ChildUi(rect geom.Rect) *Ui {
	u.childCount++
	child := NewUi(u.ctx, u.layer, u.id.WithInt(u.childCount), rect)
	child.clip = u.clip
	return child
}

// MakeChildID derives a stable identity for a sub-widget of this region.
func (u *Ui) MakeChildID(key string) ID {
	return u.id.With(key)
}

// Painter returns a painter targeting this Ui's layer and clip rectangle.
func (u *Ui) Painter() Painter {
	return NewPainter(u.ctx, u.layer, u.clip)
}

// Interact runs mouse arbitration for a rectangle inside this region.
func (u *Ui) Interact(rect geom.Rect, id ID, sense Sense) Response {
	return u.ctx.Interact(u.layer, u.clip, rect, &id, sense)
}

// InteractHover is for display-only rectangles: hover state, no capture.
func (u *Ui) InteractHover(rect geom.Rect) Response {
	return u.ctx.Interact(u.layer, u.clip, rect, nil, SenseNothing())
}
