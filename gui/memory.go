package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// AreaState is the retained placement of one floating region.
type AreaState struct {
	// Pos is the top-left corner, pixel-aligned.
	Pos geom.Pos2
	// Size is the content extent measured last frame. Used for hit tests.
	Size geom.Vec2
	// Interactable is false for regions clicks should pass through,
	// such as tooltips.
	Interactable bool
	// Vel carries drag momentum between frames. Never persisted to disk.
	Vel geom.Vec2
}

// Rect returns the region's screen rectangle.
func (s AreaState) Rect() geom.Rect {
	return geom.RectFromMinSize(s.Pos, s.Size)
}

// Areas retains floating-region placements and their z-order across frames.
// Entries are never evicted: a region that stops being shown goes dormant
// and resumes where it was if shown again. Hosts that care can layer their
// own eviction on top.
type Areas struct {
	areas map[ID]AreaState
	// order is bottom-to-top within each tier. Append-only except for
	// MoveToTop; each LayerID appears at most once.
	order          []LayerID
	visibleLast    map[LayerID]bool
	visibleCurrent map[LayerID]bool
}

func newAreas() *Areas {
	return &Areas{
		areas:          make(map[ID]AreaState),
		visibleLast:    make(map[LayerID]bool),
		visibleCurrent: make(map[LayerID]bool),
	}
}

// Count returns the number of retained area entries.
func (a *Areas) Count() int { return len(a.areas) }

// Get returns the retained state for id, if any.
func (a *Areas) Get(id ID) (AreaState, bool) {
	s, ok := a.areas[id]
	return s, ok
}

// Set stores the state for the layer and marks it visible this frame,
// registering it in the z-order if it is new.
func (a *Areas) Set(layer LayerID, state AreaState) {
	a.visibleCurrent[layer] = true
	a.areas[layer.ID] = state
	for _, l := range a.order {
		if l == layer {
			return
		}
	}
	a.order = append(a.order, layer)
}

// restore writes state without touching visibility or z-order. Used when
// loading persisted placements: the region enters the z-order when first
// shown, like any newly shown region.
func (a *Areas) restore(id ID, state AreaState) {
	a.areas[id] = state
}

// Order returns the z-order list, bottom to top. Callers must not mutate it.
func (a *Areas) Order() []LayerID { return a.order }

// MoveToTop re-stacks the layer above everything else in its tier.
func (a *Areas) MoveToTop(layer LayerID) {
	a.visibleCurrent[layer] = true
	for i, l := range a.order {
		if l == layer {
			if i == len(a.order)-1 {
				return
			}
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	a.order = append(a.order, layer)
}

// VisibleLastFrame reports whether the layer was shown during the previous
// completed frame. Newly shown regions start on top of their tier.
func (a *Areas) VisibleLastFrame(layer LayerID) bool {
	return a.visibleLast[layer]
}

// beginFrame rotates visibility bookkeeping at the start of a frame.
func (a *Areas) beginFrame() {
	a.visibleLast, a.visibleCurrent = a.visibleCurrent, a.visibleLast
	clear(a.visibleCurrent)
}

// LayerAt resolves which layer owns the mouse at pos: the topmost
// interactable region in the topmost interactive tier whose rectangle
// contains pos. Tooltip-tier layers never receive hits.
func (a *Areas) LayerAt(pos geom.Pos2) (LayerID, bool) {
	var best LayerID
	bestIdx := -1
	for i, layer := range a.order {
		if !layer.AllowInteraction() {
			continue
		}
		state, ok := a.areas[layer.ID]
		if !ok || !state.Interactable {
			continue
		}
		if !state.Rect().Contains(pos) {
			continue
		}
		if bestIdx < 0 || layer.Order > best.Order ||
			(layer.Order == best.Order && i > bestIdx) {
			best = layer
			bestIdx = i
		}
	}
	return best, bestIdx >= 0
}

// Memory is the process-scoped persistent store: every stateful widget
// kind gets its own map from ID to state. Nothing in here is ever evicted.
type Memory struct {
	Areas  *Areas
	resize map[ID]ResizeState
	// data is the extension point for other stateful widgets
	// (collapsing headers, scroll offsets, text cursors, ...).
	data map[ID]any
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		Areas:  newAreas(),
		resize: make(map[ID]ResizeState),
		data:   make(map[ID]any),
	}
}

// ResizeState returns the retained resize state for id, if any.
func (m *Memory) ResizeState(id ID) (ResizeState, bool) {
	s, ok := m.resize[id]
	return s, ok
}

// SetResizeState stores resize state for id.
func (m *Memory) SetResizeState(id ID, s ResizeState) {
	m.resize[id] = s
}

// Data returns generic widget state stored under id, if any.
func (m *Memory) Data(id ID) (any, bool) {
	v, ok := m.data[id]
	return v, ok
}

// SetData stores generic widget state under id.
func (m *Memory) SetData(id ID, v any) {
	m.data[id] = v
}
