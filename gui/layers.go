package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// Order is the coarse paint/interaction tier of a layer.
// Tiers paint in ascending order: Background first, Debug last.
type Order int

const (
	// OrderBackground paints behind all floating regions.
	OrderBackground Order = iota
	// OrderMiddle holds normal movable regions, reordered by click.
	OrderMiddle
	// OrderForeground holds popups and menus painted on top of regions.
	OrderForeground
	// OrderTooltip floats above everything interactive. Never receives hits.
	OrderTooltip
	// OrderDebug is always painted last.
	OrderDebug

	orderCount
)

var allOrders = [orderCount]Order{
	OrderBackground, OrderMiddle, OrderForeground, OrderTooltip, OrderDebug,
}

// AllowInteraction reports whether layers in this tier can receive the mouse.
func (o Order) AllowInteraction() bool {
	return o != OrderTooltip
}

// LayerID identifies one floating region's paint buffer and, for
// interactive tiers, its slot in the z-stack.
type LayerID struct {
	Order Order
	ID    ID
}

// BackgroundLayer is the layer of the whole-screen background region.
func BackgroundLayer() LayerID {
	return LayerID{Order: OrderBackground, ID: BackgroundID()}
}

// DebugLayer is the always-on-top overlay layer.
func DebugLayer() LayerID {
	return LayerID{Order: OrderDebug, ID: NewID("debug")}
}

// AllowInteraction reports whether this layer can receive the mouse.
func (l LayerID) AllowInteraction() bool { return l.Order.AllowInteraction() }

// PaintCmdIdx addresses one command inside a PaintList, for retroactive
// patching via PaintList.Set.
type PaintCmdIdx int

// PaintList is the ordered paint buffer of one layer.
type PaintList struct {
	cmds []ClippedCmd
}

// IsEmpty reports whether nothing has been added since the last drain.
func (p *PaintList) IsEmpty() bool { return len(p.cmds) == 0 }

// Add appends a command and returns its index for later patching with Set.
func (p *PaintList) Add(clip geom.Rect, cmd PaintCmd) PaintCmdIdx {
	idx := PaintCmdIdx(len(p.cmds))
	p.cmds = append(p.cmds, ClippedCmd{Clip: clip, Cmd: cmd})
	return idx
}

// Extend appends several commands under one clip rectangle.
func (p *PaintList) Extend(clip geom.Rect, cmds ...PaintCmd) {
	for _, cmd := range cmds {
		p.cmds = append(p.cmds, ClippedCmd{Clip: clip, Cmd: cmd})
	}
}

// Set overwrites a previously added command.
//
// Sometimes you want to paint a frame behind some contents but don't know
// how large it needs to be until the contents have been laid out and
// painted. Reserve a slot with Add(clip, NoopCmd{}) first, then patch it
// here once the extent is known. Panics if idx was not returned by Add
// since the last drain; that is a programmer error.
func (p *PaintList) Set(idx PaintCmdIdx, clip geom.Rect, cmd PaintCmd) {
	if int(idx) < 0 || int(idx) >= len(p.cmds) {
		panic("gui: PaintList.Set with stale or invalid PaintCmdIdx")
	}
	p.cmds[idx] = ClippedCmd{Clip: clip, Cmd: cmd}
}

// Translate moves every queued command and clip rectangle by d, in place.
func (p *PaintList) Translate(d geom.Vec2) {
	for i := range p.cmds {
		p.cmds[i].Clip = p.cmds[i].Clip.Translate(d)
		p.cmds[i].Cmd = p.cmds[i].Cmd.TranslateCmd(d)
	}
}

func (p *PaintList) drainInto(out []ClippedCmd) []ClippedCmd {
	out = append(out, p.cmds...)
	p.cmds = p.cmds[:0]
	return out
}

// GraphicLayers holds the per-tier, per-region paint buffers of the frame
// under construction.
type GraphicLayers struct {
	lists [orderCount]map[ID]*PaintList
	// Map iteration order is random; keep insertion order per tier so
	// regions missing from the explicit z-order still drain stably.
	inserted [orderCount][]ID
}

// NewGraphicLayers returns an empty set of paint buffers.
func NewGraphicLayers() *GraphicLayers {
	g := &GraphicLayers{}
	for i := range g.lists {
		g.lists[i] = make(map[ID]*PaintList)
	}
	return g
}

// List returns the paint buffer of the given layer, creating it on first use.
func (g *GraphicLayers) List(layer LayerID) *PaintList {
	m := g.lists[layer.Order]
	if p, ok := m[layer.ID]; ok {
		return p
	}
	p := &PaintList{}
	m[layer.ID] = p
	g.inserted[layer.Order] = append(g.inserted[layer.Order], layer.ID)
	return p
}

// Drain flattens all buffers into one paint-ordered command sequence and
// leaves every buffer empty.
//
// Tiers are emitted in ascending order. Within a tier, layers present in
// explicitOrder come first, bottom to top; layers that were painted to but
// never entered the explicit z-order (e.g. non-interactive regions) follow
// in the order they were first touched this frame. Every non-empty buffer
// is emitted exactly once.
//
// A buffer still empty when Drain runs was not painted to this frame: it
// belongs to a region that stopped being shown, and is pruned to bound
// memory growth.
func (g *GraphicLayers) Drain(explicitOrder []LayerID) []ClippedCmd {
	var all []ClippedCmd

	for _, order := range allOrders {
		m := g.lists[order]

		// Prune abandoned buffers before emitting.
		kept := g.inserted[order][:0]
		for _, id := range g.inserted[order] {
			if p, ok := m[id]; ok && !p.IsEmpty() {
				kept = append(kept, id)
			} else {
				delete(m, id)
			}
		}
		g.inserted[order] = kept

		for _, layer := range explicitOrder {
			if layer.Order != order {
				continue
			}
			if p, ok := m[layer.ID]; ok {
				all = p.drainInto(all)
			}
		}

		// Regions shown this frame but absent from the explicit order
		// still get painted, after the ordered ones.
		for _, id := range g.inserted[order] {
			if p := m[id]; !p.IsEmpty() {
				all = p.drainInto(all)
			}
		}
	}

	return all
}
