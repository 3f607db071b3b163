package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// Sense is what a widget wants from the mouse.
type Sense struct {
	Click bool
	Drag  bool
}

func SenseNothing() Sense      { return Sense{} }
func SenseClick() Sense        { return Sense{Click: true} }
func SenseDrag() Sense         { return Sense{Drag: true} }
func SenseClickAndDrag() Sense { return Sense{Click: true, Drag: true} }

// Any reports whether the widget wants interaction at all.
func (s Sense) Any() bool { return s.Click || s.Drag }

// Response reports what happened to a widget this frame.
type Response struct {
	// Rect is the rectangle that was interacted with.
	Rect geom.Rect
	// Hovered is true when the mouse is over the rectangle and no region
	// higher in the z-stack claims that position.
	Hovered bool
	// Clicked is true on the frame the button is released over the widget
	// that captured the press.
	Clicked bool
	// Active is true while this widget owns the press: from the frame the
	// button went down on it until (but not including) the release frame.
	// A drag stays active even when the mouse leaves the rectangle.
	Active bool
}

// Interact arbitrates the mouse for one widget rectangle this frame.
//
// Hover resolves by z-order: the widget is hovered only if its layer is
// the topmost one claiming the mouse position (or no layer claims it).
// Activity is exclusive: a single ID owns the press from mouse-down until
// release, and a press on another widget while one is active does not
// steal ownership. Pass a nil id for display-only widgets that can hover
// but never capture.
func (c *Context) Interact(layer LayerID, clip, rect geom.Rect, id *ID, sense Sense) Response {
	c.mu.Lock()
	defer c.mu.Unlock()

	mouse := c.input.Mouse
	resp := Response{Rect: rect}

	if mouse.HasPos && rect.Contains(mouse.Pos) && clip.Contains(mouse.Pos) && layer.AllowInteraction() {
		if top, claimed := c.memory.Areas.LayerAt(mouse.Pos); !claimed || top == layer {
			resp.Hovered = true
		}
	}

	if id == nil || !sense.Any() {
		return resp
	}

	if c.activeID != nil && *c.activeID == *id {
		if mouse.Released {
			resp.Clicked = sense.Click && resp.Hovered
			c.activeID = nil
		} else {
			resp.Active = true
		}
		return resp
	}

	if mouse.Pressed && resp.Hovered && c.activeID == nil {
		active := *id
		c.activeID = &active
		resp.Active = true
	}

	return resp
}

// ActiveID exposes the identity currently owning the mouse press, if any.
// Meant for host-side diagnostics (e.g. detecting two widgets resolving to
// the same identity); widgets should use Interact instead.
func (c *Context) ActiveID() (ID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeID == nil {
		return 0, false
	}
	return *c.activeID, true
}
