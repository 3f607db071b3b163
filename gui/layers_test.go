package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/cronusdmd/easy-gui-template/geom"
)

func rectAt(x float32) RectCmd {
	return RectCmd{Rect: geom.RectFromMinSize(geom.P2(x, 0), geom.Splat(10))}
}

func TestPaintListAddSet(t *testing.T) {
	var list PaintList
	clip := geom.Everything()

	idx := list.Add(clip, NoopCmd{})
	list.Add(clip, rectAt(1))

	// Reserve-then-fill: frame painted behind contents once their extent
	// is known, without a second pass.
	list.Set(idx, clip, rectAt(0))

	assert.Equal(t, ClippedCmd{Clip: clip, Cmd: rectAt(0)}, list.cmds[0])
	assert.Equal(t, ClippedCmd{Clip: clip, Cmd: rectAt(1)}, list.cmds[1])

	assert.Panics(t, func() { list.Set(PaintCmdIdx(99), clip, rectAt(2)) })
}

func TestPaintListTranslate(t *testing.T) {
	var list PaintList
	clip := geom.RectFromMinSize(geom.P2(0, 0), geom.Splat(100))
	list.Add(clip, rectAt(5))
	list.Add(clip, LineCmd{Points: [2]geom.Pos2{geom.P2(0, 0), geom.P2(1, 1)}})

	list.Translate(geom.V2(10, 20))

	got := list.cmds[0]
	assert.Equal(t, geom.P2(10, 20), got.Clip.Min)
	assert.Equal(t, geom.P2(15, 20), got.Cmd.(RectCmd).Rect.Min)
	assert.Equal(t, geom.P2(11, 21), list.cmds[1].Cmd.(LineCmd).Points[1])
}

func TestDrainTierThenExplicitOrder(t *testing.T) {
	g := NewGraphicLayers()
	clip := geom.Everything()

	back := LayerID{Order: OrderBackground, ID: NewID("back")}
	winA := LayerID{Order: OrderMiddle, ID: NewID("a")}
	winB := LayerID{Order: OrderMiddle, ID: NewID("b")}
	tip := LayerID{Order: OrderTooltip, ID: TooltipID()}

	// Paint in a scrambled declaration order.
	g.List(tip).Add(clip, rectAt(4))
	g.List(winA).Add(clip, rectAt(2))
	g.List(back).Add(clip, rectAt(1))
	g.List(winB).Add(clip, rectAt(3))

	// Explicit z-order says B is above A.
	got := g.Drain([]LayerID{winB, winA})

	want := []ClippedCmd{
		{Clip: clip, Cmd: rectAt(1)}, // background tier first
		{Clip: clip, Cmd: rectAt(3)}, // then middle tier in explicit order
		{Clip: clip, Cmd: rectAt(2)},
		{Clip: clip, Cmd: rectAt(4)}, // tooltip tier last
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drain order mismatch (-want +got):\n%s", diff)
	}
}

func TestDrainEmitsLayersMissingFromExplicitOrder(t *testing.T) {
	g := NewGraphicLayers()
	clip := geom.Everything()

	ordered := LayerID{Order: OrderMiddle, ID: NewID("ordered")}
	stray := LayerID{Order: OrderMiddle, ID: NewID("stray")}
	g.List(stray).Add(clip, rectAt(2))
	g.List(ordered).Add(clip, rectAt(1))

	got := g.Drain([]LayerID{ordered})

	// Every painted region shows exactly once; unordered ones follow the
	// explicitly ordered ones.
	want := []ClippedCmd{
		{Clip: clip, Cmd: rectAt(1)},
		{Clip: clip, Cmd: rectAt(2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drain mismatch (-want +got):\n%s", diff)
	}
}

func TestDrainPrunesAbandonedBuffers(t *testing.T) {
	g := NewGraphicLayers()
	layer := LayerID{Order: OrderMiddle, ID: NewID("fleeting")}

	g.List(layer).Add(geom.Everything(), rectAt(0))
	assert.Len(t, g.Drain(nil), 1)

	// Nothing appended this frame: the buffer is defunct and gets freed.
	assert.Empty(t, g.Drain(nil))
	_, stillThere := g.lists[OrderMiddle][layer.ID]
	assert.False(t, stillThere, "abandoned buffer should be pruned")
	assert.Empty(t, g.inserted[OrderMiddle])
}

func TestOrderInteraction(t *testing.T) {
	for _, o := range allOrders {
		if o == OrderTooltip {
			assert.False(t, o.AllowInteraction())
		} else {
			assert.True(t, o.AllowInteraction(), "order %d", o)
		}
	}
}
