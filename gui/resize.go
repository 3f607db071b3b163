package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// ResizeState is the retained sizing of one resizable region.
type ResizeState struct {
	// DesiredSize is what the user picked by dragging the corner. It may
	// be smaller or larger than what content actually needs.
	DesiredSize geom.Vec2
	// LastContentSize is the measured content extent from last frame.
	LastContentSize geom.Vec2
	// RequestedSize is a one-shot external override (e.g. from a window
	// wanting a specific size next frame). Cleared after it applies.
	RequestedSize *geom.Vec2
}

// Resize is a region resizable by dragging its bottom-right corner.
// The user's desired size is reconciled against measured content size
// every frame so shrinking never clips content mid-transition.
type Resize struct {
	id          *ID
	resizable   bool
	minSize     geom.Vec2
	defaultSize geom.Vec2
	withStroke  bool
}

// NewResize declares a resizable region with default sizing.
func NewResize() Resize {
	return Resize{
		resizable:   true,
		minSize:     geom.Splat(16),
		defaultSize: geom.V2(320, 128),
		withStroke:  true,
	}
}

// ID assigns an explicit identity; otherwise one derives from the parent Ui.
func (r Resize) ID(id ID) Resize {
	r.id = &id
	return r
}

// DefaultWidth sets the suggested width; actual width follows contents.
func (r Resize) DefaultWidth(w float32) Resize {
	r.defaultSize.X = w
	return r
}

// DefaultHeight sets the suggested height; actual height follows contents.
func (r Resize) DefaultHeight(h float32) Resize {
	r.defaultSize.Y = h
	return r
}

// DefaultSize sets the suggested initial size.
func (r Resize) DefaultSize(size geom.Vec2) Resize {
	r.defaultSize = size
	return r
}

// MinSize sets the floor the region never shrinks below.
func (r Resize) MinSize(size geom.Vec2) Resize {
	r.minSize = size
	return r
}

// Resizable controls the corner drag handle. A region can still
// auto-size when false.
func (r Resize) Resizable(resizable bool) Resize {
	r.resizable = resizable
	return r
}

// IsResizable reports whether the corner handle is offered.
func (r Resize) IsResizable() bool { return r.resizable }

// AutoSized makes the region exactly the size of its contents.
func (r Resize) AutoSized() Resize {
	r.minSize = geom.Vec2{}
	r.defaultSize = geom.Infinity()
	r.resizable = false
	return r
}

// FixedSize pins the region to one size, not resizable.
func (r Resize) FixedSize(size geom.Vec2) Resize {
	r.defaultSize = size
	r.minSize = size
	r.resizable = false
	return r
}

// WithStroke controls the outline showing the region's extent.
func (r Resize) WithStroke(withStroke bool) Resize {
	r.withStroke = withStroke
	return r
}

type preparedResize struct {
	id         ID
	state      ResizeState
	cornerResp *Response
	strokeIdx  PaintCmdIdx
	hasStroke  bool
	contentUi  *Ui
}

func (r Resize) begin(ui *Ui) preparedResize {
	ctx := ui.Ctx()
	id := ui.MakeChildID("resize")
	if r.id != nil {
		id = *r.id
	}

	state, ok := ctx.Memory().ResizeState(id)
	if !ok {
		// First show: retained sizing is created mid-frame, so ask for a
		// follow-up frame to counter the one-frame measurement lag.
		ctx.RequestRepaint()
		state = ResizeState{DesiredSize: r.defaultSize.Max(r.minSize)}
	}
	state.DesiredSize = state.DesiredSize.Max(r.minSize)

	position := ui.AvailableMin()
	style := ctx.Style()

	var cornerResp *Response
	if r.resizable {
		cornerSize := geom.Splat(style.ResizeCornerSize)
		cornerRect := geom.RectFromMinSize(
			position.Add(state.DesiredSize).SubV(cornerSize), cornerSize)
		resp := ui.Interact(cornerRect, id.With("corner"), SenseDrag())

		if resp.Active {
			if mouse := ctx.Input().Mouse; mouse.HasPos {
				// Center the cursor in the grab target instead of
				// snapping the corner exactly under the pointer.
				state.DesiredSize = mouse.Pos.Sub(position).
					Add(resp.Rect.Size().Mul(0.5))
			}
		}
		cornerResp = &resp
	}

	if state.RequestedSize != nil {
		state.DesiredSize = *state.RequestedSize
		state.RequestedSize = nil
	}
	state.DesiredSize = state.DesiredSize.Max(r.minSize)

	innerRect := geom.RectFromMinSize(position, state.DesiredSize)

	// Shrinking DesiredSize must not shrink the clip below what last
	// frame's content actually needed, or content still laid out larger
	// would be clipped mid-transition.
	contentClip := innerRect.Expand(style.ClipRectMargin)
	contentClip.Max = contentClip.Max.Max(
		innerRect.Min.Add(state.LastContentSize).Add(geom.Splat(style.ClipRectMargin)))
	contentClip = contentClip.Intersect(ui.ClipRect())

	prep := preparedResize{id: id, state: state, cornerResp: cornerResp}

	// The outline only shows alongside the corner handle.
	if r.withStroke && r.resizable {
		// Its extent is only known after layout; reserve a slot now and
		// patch it in end.
		prep.strokeIdx = ui.Painter().Add(NoopCmd{})
		prep.hasStroke = true
	}

	contentUi := ui.ChildUi(innerRect)
	contentUi.SetClipRect(contentClip)
	prep.contentUi = contentUi
	return prep
}

// Show lays out content inside the resizable region.
func (r Resize) Show(ui *Ui, addContents func(*Ui)) {
	prep := r.begin(ui)
	addContents(prep.contentUi)
	r.end(ui, prep)
}

func (r Resize) end(ui *Ui, prep preparedResize) {
	ctx := ui.Ctx()
	state := prep.state
	state.LastContentSize = prep.contentUi.BoundingSize().Ceil()

	if r.withStroke || r.resizable {
		// We show how large we are, so we must follow the contents.
		state.DesiredSize = state.DesiredSize.Max(state.LastContentSize)
		state.DesiredSize = state.DesiredSize.Round()
		ui.AllocateSpace(state.DesiredSize)
	} else {
		ui.AllocateSpace(state.LastContentSize)
	}

	style := ctx.Style()

	if prep.hasStroke {
		rect := geom.RectFromMinSize(prep.contentUi.TopLeft(), state.DesiredSize)
		rect = rect.Expand(2) // breathing room for content
		ui.Painter().Set(prep.strokeIdx, RectCmd{
			Rect:         rect,
			CornerRadius: 3,
			Stroke:       style.ThinStroke,
		})
	}

	if prep.cornerResp != nil {
		paintResizeCorner(ui, prep.cornerResp.Rect, style.InteractStroke)
		if prep.cornerResp.Hovered || prep.cornerResp.Active {
			ctx.SetCursorIcon(CursorResizeNWSE)
		}
	}

	ctx.Memory().SetResizeState(prep.id, state)
}

// paintResizeCorner hatches diagonal lines into the corner hit-box.
func paintResizeCorner(ui *Ui, rect geom.Rect, stroke Stroke) {
	painter := ui.Painter()
	corner := painter.RoundPosToPixels(rect.RightBottom())
	for w := float32(2); w <= rect.Width() && w <= rect.Height(); w += 4 {
		painter.LineSegment(
			geom.P2(corner.X-w, corner.Y),
			geom.P2(corner.X, corner.Y-w),
			stroke,
		)
	}
}
