package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// Area drag physics and clamping.
const (
	// areaStopSpeed is the velocity below which a thrown region rests,
	// in pixels per second.
	areaStopSpeed = 20.0
	// areaFrictionCoeff decelerates a thrown region, px/s^2.
	areaFrictionCoeff = 1000.0
	// areaScreenMargin is how much of a region must stay on screen.
	areaScreenMargin = 32.0
)

// Area is a floating region with no parent: the foundation for windows,
// popups and tooltips. It has no frame or own size; content decides the
// extent, and placement is retained across frames under the Area's ID.
// Declared fresh every frame in builder style, shown with Show.
type Area struct {
	id           ID
	movable      bool
	interactable bool
	order        Order
	defaultPos   *geom.Pos2
	fixedPos     *geom.Pos2
}

// NewArea declares a floating region identified by id.
func NewArea(id ID) Area {
	return Area{
		id:           id,
		movable:      true,
		interactable: true,
		order:        OrderMiddle,
	}
}

// Layer returns the paint/z-order slot this area occupies.
func (a Area) Layer() LayerID {
	return LayerID{Order: a.order, ID: a.id}
}

// Movable sets whether the region can be dragged. Movable implies
// interactable.
func (a Area) Movable(movable bool) Area {
	a.movable = movable
	a.interactable = a.interactable || movable
	return a
}

// IsMovable reports whether dragging is enabled.
func (a Area) IsMovable() bool { return a.movable }

// Interactable set to false lets clicks fall through to whatever is
// behind. Good for tooltips. Forces non-movable.
func (a Area) Interactable(interactable bool) Area {
	a.interactable = interactable
	a.movable = a.movable && interactable
	return a
}

// Order places the region in a tier; OrderForeground keeps it above all
// normal regions.
func (a Area) Order(order Order) Area {
	a.order = order
	return a
}

// DefaultPos is where the region first appears. Ignored once placement
// has been retained.
func (a Area) DefaultPos(pos geom.Pos2) Area {
	a.defaultPos = &pos
	return a
}

// FixedPos pins the region, overriding retained placement every frame.
// Forces non-movable.
func (a Area) FixedPos(pos geom.Pos2) Area {
	a.defaultPos = &pos
	a.fixedPos = &pos
	a.movable = false
	return a
}

type preparedArea struct {
	layer   LayerID
	state   AreaState
	movable bool
}

func (a Area) begin(ctx *Context) preparedArea {
	defaultPos := geom.P2(100, 100)
	if a.defaultPos != nil {
		defaultPos = *a.defaultPos
	}

	state, ok := ctx.Memory().Areas.Get(a.id)
	if !ok {
		state = AreaState{
			Pos:          defaultPos,
			Interactable: a.interactable,
		}
	}
	if a.fixedPos != nil {
		state.Pos = *a.fixedPos
	}
	state.Pos = state.Pos.Round()
	state.Interactable = a.interactable

	return preparedArea{layer: a.Layer(), state: state, movable: a.movable}
}

// Show builds the region's content and runs the per-frame placement
// protocol: measure content, handle drag or momentum, clamp to screen,
// re-stack and persist. Returns the move-handle response.
func (a Area) Show(ctx *Context, addContents func(*Ui)) Response {
	prep := a.begin(ctx)
	ui := prep.contentUi(ctx)
	addContents(ui)
	return prep.end(ctx, ui)
}

func (p preparedArea) contentUi(ctx *Context) *Ui {
	// Content grows unconstrained; the measured bounds become the size.
	return NewUi(ctx, p.layer, p.layer.ID,
		geom.RectFromMinSize(p.state.Pos, geom.Infinity()))
}

func (p preparedArea) end(ctx *Context, contentUi *Ui) Response {
	state := p.state
	state.Size = contentUi.BoundingSize().Ceil()

	rect := geom.RectFromMinSize(state.Pos, state.Size)
	input := ctx.Input()

	var moveResp Response
	if p.movable {
		// The whole region doubles as the move handle.
		moveID := p.layer.ID.With("move")
		moveResp = ctx.Interact(p.layer, geom.Everything(), rect, &moveID, SenseClickAndDrag())
	} else {
		moveResp = ctx.Interact(p.layer, geom.Everything(), rect, nil, SenseNothing())
	}

	if moveResp.Active {
		state.Pos = state.Pos.Add(input.Mouse.Delta)
		state.Vel = input.Mouse.Velocity
	} else {
		// Thrown regions coast and decelerate instead of stopping dead.
		friction := areaFrictionCoeff * input.DT
		speed := state.Vel.Length()
		if friction > speed || speed < areaStopSpeed {
			state.Vel = geom.Vec2{}
		} else {
			state.Vel = state.Vel.Sub(state.Vel.Normalized().Mul(friction))
			state.Pos = state.Pos.Add(state.Vel.Mul(input.DT))
		}
	}

	// Keep at least areaScreenMargin pixels of the region on screen.
	// A zero-size screen degrades to a clamped position, never an error.
	margin := float32(areaScreenMargin)
	state.Pos = state.Pos.Max(geom.P2(margin-state.Size.X, margin-state.Size.Y))
	state.Pos = state.Pos.Min(geom.P2(input.ScreenSize.X-margin, input.ScreenSize.Y-margin))
	state.Pos = state.Pos.Round()

	areas := ctx.Memory().Areas
	if moveResp.Active || mousePressedOnArea(ctx, p.layer) || !areas.VisibleLastFrame(p.layer) {
		areas.MoveToTop(p.layer)
	}
	areas.Set(p.layer, state)

	return moveResp
}

func mousePressedOnArea(ctx *Context, layer LayerID) bool {
	mouse := ctx.Input().Mouse
	if !mouse.HasPos || !mouse.Pressed {
		return false
	}
	top, ok := ctx.Memory().Areas.LayerAt(mouse.Pos)
	return ok && top == layer
}
