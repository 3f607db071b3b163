// Package platform captures mouse and window state from GLFW and feeds it
// to the gui core as RawInput once per frame.
package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cronusdmd/easy-gui-template/geom"
	"github.com/cronusdmd/easy-gui-template/gui"
)

// Config for window creation.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window owns the GLFW window and GL context and accumulates input
// between frames.
type Window struct {
	w *glfw.Window

	mouseX, mouseY float64
	mouseInside    bool
	mouseDown      bool

	cursors map[gui.CursorIcon]*glfw.Cursor
	cursor  gui.CursorIcon
}

// NewWindow creates the window and GL context. Must be called on the main
// thread before any GL calls.
func NewWindow(cfg Config) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	pw := &Window{w: win, mouseInside: true}

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		pw.mouseX, pw.mouseY = x, y
	})
	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		pw.mouseInside = entered
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if b == glfw.MouseButtonLeft {
			pw.mouseDown = action != glfw.Release
		}
	})

	pw.cursors = map[gui.CursorIcon]*glfw.Cursor{
		gui.CursorDefault:      glfw.CreateStandardCursor(glfw.ArrowCursor),
		gui.CursorPointingHand: glfw.CreateStandardCursor(glfw.HandCursor),
		gui.CursorResizeNWSE:   glfw.CreateStandardCursor(glfw.CrosshairCursor),
	}

	return pw, nil
}

// PollInput pumps OS events and snapshots the input state for one frame.
func (w *Window) PollInput() gui.RawInput {
	glfw.PollEvents()
	width, height := w.w.GetSize()
	return gui.RawInput{
		HasMouse:   w.mouseInside,
		MousePos:   geom.P2(float32(w.mouseX), float32(w.mouseY)),
		MouseDown:  w.mouseDown,
		ScreenSize: geom.V2(float32(width), float32(height)),
		Time:       glfw.GetTime(),
	}
}

// ApplyOutput shows the cursor the core asked for this frame.
func (w *Window) ApplyOutput(out gui.Output) {
	if out.CursorIcon == w.cursor {
		return
	}
	w.cursor = out.CursorIcon
	if c, ok := w.cursors[out.CursorIcon]; ok {
		w.w.SetCursor(c)
	}
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool { return w.w.ShouldClose() }

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() { w.w.SwapBuffers() }

// FramebufferSize returns the drawable size in device pixels.
func (w *Window) FramebufferSize() (int, int) { return w.w.GetFramebufferSize() }

// SetTitle updates the window title.
func (w *Window) SetTitle(t string) { w.w.SetTitle(t) }

// Terminate destroys the window and shuts GLFW down.
func (w *Window) Terminate() {
	for _, c := range w.cursors {
		c.Destroy()
	}
	glfw.Terminate()
}
