package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cronusdmd/easy-gui-template/geom"
)

// showArea declares an area with fixed-extent content and returns the
// move-handle response.
func showArea(ctx *Context, a Area, content geom.Vec2) Response {
	return a.Show(ctx, func(ui *Ui) {
		ui.AllocateSpace(content)
	})
}

func TestAreaDragAndMomentumEndToEnd(t *testing.T) {
	ctx := NewContext()
	area := NewArea(NewID("win")).DefaultPos(geom.P2(100, 100))
	layer := area.Layer()
	content := geom.V2(50, 30)

	// Frame 1: first show. Content measures 50x30; position untouched;
	// newly shown regions start on top.
	frame(ctx, 0.0, geom.P2(110, 115), false)
	showArea(ctx, area, content)
	endFrame(ctx)

	state, ok := ctx.Memory().Areas.Get(layer.ID)
	assert.True(t, ok)
	assert.Equal(t, geom.P2(100, 100), state.Pos)
	assert.Equal(t, geom.V2(50, 30), state.Size)
	assert.Equal(t, []LayerID{layer}, ctx.Memory().Areas.Order())

	// Frame 2: press inside the area and drag by (10,-5).
	frame(ctx, 0.1, geom.P2(120, 110), true)
	resp := showArea(ctx, area, content)
	endFrame(ctx)

	assert.True(t, resp.Active)
	state, _ = ctx.Memory().Areas.Get(layer.ID)
	assert.Equal(t, geom.P2(110, 95), state.Pos)
	assert.InDelta(t, 100, state.Vel.X, 1e-3)
	assert.InDelta(t, -50, state.Vel.Y, 1e-3)

	// Frame 3: release. |vel| ~111.8 exceeds both the stop speed and the
	// friction impulse (1000*0.1=100), so the region coasts: velocity
	// shrinks by 100 along its direction and position advances.
	frame(ctx, 0.2, geom.P2(120, 110), false)
	resp = showArea(ctx, area, content)
	endFrame(ctx)

	assert.False(t, resp.Active)
	state, _ = ctx.Memory().Areas.Get(layer.ID)
	assert.InDelta(t, 10.557, state.Vel.X, 1e-2)
	assert.InDelta(t, -5.279, state.Vel.Y, 1e-2)
	assert.Equal(t, geom.P2(111, 94), state.Pos, "advanced by vel*dt, pixel-rounded")

	// Frame 4: |vel| is now below the stop speed and snaps to zero.
	frame(ctx, 0.3, geom.P2(120, 110), false)
	showArea(ctx, area, content)
	endFrame(ctx)

	state, _ = ctx.Memory().Areas.Get(layer.ID)
	assert.Equal(t, geom.Vec2{}, state.Vel)
	assert.Equal(t, geom.P2(111, 94), state.Pos)
}

func TestAreaMomentumAlwaysTerminates(t *testing.T) {
	ctx := NewContext()
	area := NewArea(NewID("thrown")).DefaultPos(geom.P2(300, 300))
	layer := area.Layer()

	frame(ctx, 0.0, geom.P2(0, 0), false)
	showArea(ctx, area, geom.V2(40, 40))
	endFrame(ctx)

	// Throw it.
	state, _ := ctx.Memory().Areas.Get(layer.ID)
	state.Vel = geom.V2(500, 0)
	ctx.Memory().Areas.Set(layer, state)

	tm := 0.1
	stoppedAt := -1
	for i := 0; i < 50; i++ {
		frame(ctx, tm, geom.P2(0, 0), false)
		showArea(ctx, area, geom.V2(40, 40))
		endFrame(ctx)
		tm += 0.1

		state, _ = ctx.Memory().Areas.Get(layer.ID)
		if state.Vel.IsZero() {
			stoppedAt = i
			break
		}
	}
	assert.GreaterOrEqual(t, stoppedAt, 0, "velocity must reach exactly zero")
	assert.Less(t, stoppedAt, 10, "friction 1000 px/s^2 stops 500 px/s fast")

	// Once at rest the position never moves again.
	rested, _ := ctx.Memory().Areas.Get(layer.ID)
	for i := 0; i < 3; i++ {
		frame(ctx, tm, geom.P2(0, 0), false)
		showArea(ctx, area, geom.V2(40, 40))
		endFrame(ctx)
		tm += 0.1
	}
	state, _ = ctx.Memory().Areas.Get(layer.ID)
	assert.Equal(t, rested.Pos, state.Pos)
}

func TestAreaClampKeepsMarginOnScreen(t *testing.T) {
	ctx := NewContext()
	content := geom.V2(50, 30)

	area := NewArea(NewID("offscreen")).DefaultPos(geom.P2(-500, 900))
	frame(ctx, 0.0, geom.P2(0, 0), false)
	showArea(ctx, area, content)
	endFrame(ctx)

	state, _ := ctx.Memory().Areas.Get(NewID("offscreen"))
	screen := geom.V2(800, 600)
	margin := float32(areaScreenMargin)

	assert.GreaterOrEqual(t, state.Pos.X, margin-state.Size.X)
	assert.LessOrEqual(t, state.Pos.X, screen.X-margin)
	assert.GreaterOrEqual(t, state.Pos.Y, margin-state.Size.Y)
	assert.LessOrEqual(t, state.Pos.Y, screen.Y-margin)
	assert.Equal(t, geom.P2(margin-content.X, screen.Y-margin), state.Pos)
}

func TestAreaZeroScreenDegrades(t *testing.T) {
	ctx := NewContext()
	area := NewArea(NewID("tiny")).DefaultPos(geom.P2(100, 100))

	ctx.BeginFrame(RawInput{HasMouse: false, ScreenSize: geom.Vec2{}, Time: 0})
	showArea(ctx, area, geom.V2(50, 30))
	endFrame(ctx)

	// Upper clamp wins on a degenerate screen; no panic, no error.
	state, _ := ctx.Memory().Areas.Get(NewID("tiny"))
	assert.Equal(t, geom.P2(-areaScreenMargin, -areaScreenMargin), state.Pos)
}

func TestAreaFixedPosOverridesRetained(t *testing.T) {
	ctx := NewContext()
	id := NewID("pinned")

	frame(ctx, 0.0, geom.P2(0, 0), false)
	showArea(ctx, NewArea(id).DefaultPos(geom.P2(100, 100)), geom.V2(40, 40))
	endFrame(ctx)

	frame(ctx, 0.1, geom.P2(0, 0), false)
	showArea(ctx, NewArea(id).FixedPos(geom.P2(50, 60)), geom.V2(40, 40))
	endFrame(ctx)

	state, _ := ctx.Memory().Areas.Get(id)
	assert.Equal(t, geom.P2(50, 60), state.Pos)
}

func TestAreaPressPromotesToTop(t *testing.T) {
	ctx := NewContext()
	a := NewArea(NewID("a")).DefaultPos(geom.P2(0, 0))
	b := NewArea(NewID("b")).DefaultPos(geom.P2(10, 10))
	content := geom.V2(100, 100)

	step := func(tm float64, pos geom.Pos2, down bool) {
		frame(ctx, tm, pos, down)
		showArea(ctx, a, content)
		showArea(ctx, b, content)
		endFrame(ctx)
	}

	step(0.0, geom.P2(300, 300), false)
	assert.Equal(t, []LayerID{a.Layer(), b.Layer()}, ctx.Memory().Areas.Order())

	// Press (without moving) at a point only A covers: A comes to the top.
	step(0.1, geom.P2(5, 5), false)
	step(0.2, geom.P2(5, 5), true)
	assert.Equal(t, []LayerID{b.Layer(), a.Layer()}, ctx.Memory().Areas.Order())
	step(0.3, geom.P2(5, 5), false)

	// Press where both overlap: the topmost (now A) keeps its place.
	step(0.4, geom.P2(50, 50), false)
	step(0.5, geom.P2(50, 50), true)
	assert.Equal(t, []LayerID{b.Layer(), a.Layer()}, ctx.Memory().Areas.Order())
}

func TestAreaNewlyShownStartsOnTop(t *testing.T) {
	ctx := NewContext()
	a := NewArea(NewID("a")).DefaultPos(geom.P2(0, 0))
	b := NewArea(NewID("b")).DefaultPos(geom.P2(200, 0))
	c := NewArea(NewID("c")).DefaultPos(geom.P2(400, 0))
	content := geom.V2(50, 50)

	for i := 0; i < 2; i++ {
		frame(ctx, float64(i)*0.1, geom.P2(700, 500), false)
		showArea(ctx, a, content)
		showArea(ctx, b, content)
		endFrame(ctx)
	}

	frame(ctx, 0.2, geom.P2(700, 500), false)
	showArea(ctx, a, content)
	showArea(ctx, b, content)
	showArea(ctx, c, content)
	endFrame(ctx)

	order := ctx.Memory().Areas.Order()
	assert.Equal(t, c.Layer(), order[len(order)-1], "new region lands on top")
}

func TestShowTooltipIsPassThrough(t *testing.T) {
	ctx := NewContext()

	frame(ctx, 0.0, geom.P2(200, 200), false)
	ShowTooltip(ctx, func(ui *Ui) {
		r := ui.AllocateSpace(geom.V2(120, 30))
		ui.Painter().Rect(r, 0, ColorBlack, Stroke{})
	})
	cmds := ctx.EndFrame()
	assert.Len(t, cmds, 1)

	state, ok := ctx.Memory().Areas.Get(TooltipID())
	assert.True(t, ok)
	assert.False(t, state.Interactable)
	assert.Equal(t, geom.P2(216, 216), state.Pos, "offset from the pointer")

	// Clicks go straight through to whatever is behind.
	frame(ctx, 0.1, geom.P2(220, 220), false)
	_, claimed := ctx.Memory().Areas.LayerAt(geom.P2(220, 220))
	assert.False(t, claimed)
	endFrame(ctx)
}
