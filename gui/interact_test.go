package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cronusdmd/easy-gui-template/geom"
)

// frame advances the context one frame with the given pointer state.
func frame(c *Context, t float64, pos geom.Pos2, down bool) {
	c.BeginFrame(RawInput{
		HasMouse:   true,
		MousePos:   pos,
		MouseDown:  down,
		ScreenSize: geom.V2(800, 600),
		Time:       t,
	})
}

func endFrame(c *Context) { c.EndFrame() }

func TestInteractPressCaptures(t *testing.T) {
	ctx := NewContext()
	layer := BackgroundLayer()
	rect := geom.RectFromMinSize(geom.P2(10, 10), geom.Splat(50))
	id := NewID("button")

	frame(ctx, 0.0, geom.P2(20, 20), false)
	resp := ctx.Interact(layer, geom.Everything(), rect, &id, SenseClick())
	assert.True(t, resp.Hovered)
	assert.False(t, resp.Active)
	endFrame(ctx)

	frame(ctx, 0.1, geom.P2(20, 20), true)
	resp = ctx.Interact(layer, geom.Everything(), rect, &id, SenseClick())
	assert.True(t, resp.Active)

	got, ok := ctx.ActiveID()
	assert.True(t, ok)
	assert.Equal(t, id, got)
	endFrame(ctx)

	// Release over the widget: a click.
	frame(ctx, 0.2, geom.P2(20, 20), false)
	resp = ctx.Interact(layer, geom.Everything(), rect, &id, SenseClick())
	assert.True(t, resp.Clicked)
	assert.False(t, resp.Active)
	_, ok = ctx.ActiveID()
	assert.False(t, ok)
}

func TestInteractDragSurvivesLeavingRect(t *testing.T) {
	ctx := NewContext()
	layer := BackgroundLayer()
	rect := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(50))
	id := NewID("handle")

	frame(ctx, 0.0, geom.P2(25, 25), true)
	resp := ctx.Interact(layer, geom.Everything(), rect, &id, SenseDrag())
	assert.True(t, resp.Active)
	endFrame(ctx)

	// Mouse far outside the rectangle, button still held: the drag
	// stays attached to its origin.
	frame(ctx, 0.1, geom.P2(400, 400), true)
	resp = ctx.Interact(layer, geom.Everything(), rect, &id, SenseDrag())
	assert.True(t, resp.Active)
	assert.False(t, resp.Hovered)
	endFrame(ctx)

	frame(ctx, 0.2, geom.P2(400, 400), false)
	resp = ctx.Interact(layer, geom.Everything(), rect, &id, SenseDrag())
	assert.False(t, resp.Active)
	assert.False(t, resp.Clicked, "release away from the widget is no click")
}

func TestInteractNoSteal(t *testing.T) {
	ctx := NewContext()
	layer := BackgroundLayer()
	rect := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(100))
	first := NewID("first")
	second := NewID("second")

	frame(ctx, 0.0, geom.P2(50, 50), true)
	resp := ctx.Interact(layer, geom.Everything(), rect, &first, SenseClickAndDrag())
	assert.True(t, resp.Active)

	// Same press, overlapping widget later in the pass: no capture.
	resp = ctx.Interact(layer, geom.Everything(), rect, &second, SenseClickAndDrag())
	assert.False(t, resp.Active)
	endFrame(ctx)

	// Still held next frame: ownership unchanged.
	frame(ctx, 0.1, geom.P2(50, 50), true)
	resp = ctx.Interact(layer, geom.Everything(), rect, &second, SenseClickAndDrag())
	assert.False(t, resp.Active)
	resp = ctx.Interact(layer, geom.Everything(), rect, &first, SenseClickAndDrag())
	assert.True(t, resp.Active)
}

func TestInteractReleaseClearsVanishedOwner(t *testing.T) {
	ctx := NewContext()
	rect := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(50))
	ghost := NewID("ghost")
	other := NewID("other")

	frame(ctx, 0.0, geom.P2(25, 25), true)
	resp := ctx.Interact(BackgroundLayer(), geom.Everything(), rect, &ghost, SenseDrag())
	assert.True(t, resp.Active)
	endFrame(ctx)

	// The owner stops being declared while the button is still held,
	// then the button is released with nobody watching.
	frame(ctx, 0.1, geom.P2(25, 25), true)
	endFrame(ctx)
	frame(ctx, 0.2, geom.P2(25, 25), false)
	endFrame(ctx)

	// A new press must capture: the old ownership ended with the release.
	frame(ctx, 0.3, geom.P2(25, 25), true)
	resp = ctx.Interact(BackgroundLayer(), geom.Everything(), rect, &other, SenseDrag())
	assert.True(t, resp.Active)
	got, ok := ctx.ActiveID()
	assert.True(t, ok)
	assert.Equal(t, other, got)
	endFrame(ctx)

	// And once that press is released and gone, nothing stays active.
	frame(ctx, 0.4, geom.P2(25, 25), false)
	endFrame(ctx)
	frame(ctx, 0.5, geom.P2(25, 25), false)
	_, ok = ctx.ActiveID()
	assert.False(t, ok)
}

func TestInteractHoverBlockedByHigherRegion(t *testing.T) {
	ctx := NewContext()
	over := middleLayer("over")
	coveredRect := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(100))
	ctx.Memory().Areas.Set(over, AreaState{
		Pos: coveredRect.Min, Size: coveredRect.Size(), Interactable: true,
	})

	frame(ctx, 0.0, geom.P2(50, 50), false)
	id := NewID("underneath")
	resp := ctx.Interact(BackgroundLayer(), geom.Everything(), coveredRect, &id, SenseClick())
	assert.False(t, resp.Hovered, "a floating region claims the mouse")

	// The region itself is hovered at that spot.
	resp = ctx.Interact(over, geom.Everything(), coveredRect, &id, SenseClick())
	assert.True(t, resp.Hovered)
}

func TestInteractTooltipLayerNeverHovered(t *testing.T) {
	ctx := NewContext()
	tip := LayerID{Order: OrderTooltip, ID: TooltipID()}
	rect := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(100))

	frame(ctx, 0.0, geom.P2(50, 50), false)
	id := NewID("tip-content")
	resp := ctx.Interact(tip, geom.Everything(), rect, &id, SenseClick())
	assert.False(t, resp.Hovered)

	frame(ctx, 0.1, geom.P2(50, 50), true)
	resp = ctx.Interact(tip, geom.Everything(), rect, &id, SenseClick())
	assert.False(t, resp.Active, "tooltip tier cannot capture a press")
}

func TestInteractNilIDOnlyHovers(t *testing.T) {
	ctx := NewContext()
	rect := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(100))

	frame(ctx, 0.0, geom.P2(50, 50), true)
	resp := ctx.Interact(BackgroundLayer(), geom.Everything(), rect, nil, SenseNothing())
	assert.True(t, resp.Hovered)
	assert.False(t, resp.Active)
	_, ok := ctx.ActiveID()
	assert.False(t, ok)
}

func TestInteractClipGatesHover(t *testing.T) {
	ctx := NewContext()
	rect := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(100))
	clip := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(10))

	frame(ctx, 0.0, geom.P2(50, 50), false)
	id := NewID("clipped")
	resp := ctx.Interact(BackgroundLayer(), clip, rect, &id, SenseClick())
	assert.False(t, resp.Hovered, "mouse outside the clip rect")
}
