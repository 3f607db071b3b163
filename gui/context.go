package gui

import (
	"sync"

	"github.com/cronusdmd/easy-gui-template/geom"
)

// Context owns everything that outlives a frame: the persistent store, the
// z-order model, the paint buffers and the single active-interaction
// marker. One Context serves one UI; exactly one frame may be under
// construction at a time.
//
// Widgets touch the Context through short acquire-mutate-release calls, so
// nested widget closures can each briefly reach shared state. The mutex
// protects those entry points if the host builds frames from different
// goroutines over time; it is a locking discipline, not frame parallelism.
type Context struct {
	mu       sync.Mutex
	memory   *Memory
	graphics *GraphicLayers
	style    Style

	input     Input
	lastRaw   RawInput
	hasRaw    bool
	mouseHist []mouseSample

	activeID *ID
	output   Output
	measurer TextMeasurer
}

// NewContext returns a Context with empty memory and default style.
func NewContext() *Context {
	return &Context{
		memory:   NewMemory(),
		graphics: NewGraphicLayers(),
		style:    DefaultStyle(),
	}
}

// BeginFrame starts a new frame from the host-gathered raw input:
// visibility bookkeeping rotates, per-frame output resets, and deltas and
// velocity are derived against the previous frame.
func (c *Context) BeginFrame(raw RawInput) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.input, c.mouseHist = deriveInput(c.lastRaw, raw, c.hasRaw, c.mouseHist)
	c.lastRaw = raw
	c.hasRaw = true

	// Clear stale ownership: an owner that stopped being declared never
	// observes the release. The marker survives the release frame itself
	// so a still-declared owner can report the click.
	if m := c.input.Mouse; m.Pressed || (!m.Down && !m.Released) {
		c.activeID = nil
	}

	c.output = Output{}
	c.memory.Areas.beginFrame()
}

// EndFrame finishes the frame: all paint buffers drain into one
// paint-ordered sequence following the retained z-order, and abandoned
// buffers are pruned. Skipping EndFrame leaves visibility bookkeeping
// stale, which re-promotes every region on its next show.
func (c *Context) EndFrame() []ClippedCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.graphics.Drain(c.memory.Areas.Order())
}

// Input returns the processed input for the frame under construction.
func (c *Context) Input() Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Memory returns the persistent state store. Single frame pass only.
func (c *Context) Memory() *Memory { return c.memory }

// Layers returns the frame's paint buffers. Single frame pass only.
func (c *Context) Layers() *GraphicLayers { return c.graphics }

// Style returns the active style.
func (c *Context) Style() Style {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.style
}

// SetStyle replaces the style.
func (c *Context) SetStyle(s Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.style = s
}

// SetCursorIcon sets the cursor the host should show after this frame.
func (c *Context) SetCursorIcon(icon CursorIcon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.output.CursorIcon = icon
}

// RequestRepaint asks the host for a prompt follow-up frame, used when
// state changed mid-measurement and visuals would otherwise lag a frame.
func (c *Context) RequestRepaint() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.output.NeedsRepaint = true
}

// Output returns the per-frame host instructions accumulated so far.
func (c *Context) Output() Output {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output
}

// SetTextMeasurer installs the font collaborator used for sizing text.
func (c *Context) SetTextMeasurer(m TextMeasurer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.measurer = m
}

// MeasureText returns the extent of text at the given size, or a rough
// monospace estimate when no measurer is installed.
func (c *Context) MeasureText(text string, size float32) geom.Vec2 {
	c.mu.Lock()
	m := c.measurer
	c.mu.Unlock()
	if m != nil {
		return m.Measure(text, size)
	}
	return geom.V2(float32(len(text))*size*0.6, size)
}
