package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// RawInput is what the host gathers from the platform once per frame.
// The core only reads it; deltas and velocities are derived internally by
// comparing against the previous frame.
type RawInput struct {
	// HasMouse is false when the pointer has left the window.
	HasMouse bool
	MousePos geom.Pos2
	// MouseDown is the state of the primary button.
	MouseDown bool
	// ScreenSize is the viewport in logical pixels.
	ScreenSize geom.Vec2
	// Time is seconds since an arbitrary epoch, monotonic.
	Time float64
}

// MouseState is the per-frame derived pointer state.
type MouseState struct {
	HasPos bool
	Pos    geom.Pos2
	Down   bool
	// Pressed is true only on the frame the button went down.
	Pressed bool
	// Released is true only on the frame the button went up.
	Released bool
	// Delta is the pointer movement since last frame.
	Delta geom.Vec2
	// Velocity is the instantaneous pointer speed in pixels/second,
	// measured over a short trailing window.
	Velocity geom.Vec2
}

// Input is the processed per-frame input handed to widgets.
type Input struct {
	Mouse      MouseState
	ScreenSize geom.Vec2
	// DT is the seconds elapsed since the previous frame.
	DT   float32
	Time float64
}

// ScreenRect returns the viewport as a rectangle anchored at the origin.
func (in Input) ScreenRect() geom.Rect {
	return geom.RectFromMinSize(geom.Pos2{}, in.ScreenSize)
}

// velocityWindow is how far back pointer samples count toward velocity.
const velocityWindow = 0.1

type mouseSample struct {
	time float64
	pos  geom.Pos2
}

// deriveInput folds the new raw input against the previous frame's.
// history accumulates recent pointer samples for velocity estimation and
// is returned trimmed to the window.
func deriveInput(last, now RawInput, hadLast bool, history []mouseSample) (Input, []mouseSample) {
	var m MouseState
	m.HasPos = now.HasMouse
	m.Pos = now.MousePos
	m.Down = now.MouseDown
	if hadLast {
		m.Pressed = now.MouseDown && !last.MouseDown
		m.Released = !now.MouseDown && last.MouseDown
		if now.HasMouse && last.HasMouse {
			m.Delta = now.MousePos.Sub(last.MousePos)
		}
	} else {
		m.Pressed = now.MouseDown
	}

	if now.HasMouse {
		history = append(history, mouseSample{time: now.Time, pos: now.MousePos})
	} else {
		history = history[:0]
	}
	cutoff := now.Time - velocityWindow
	for len(history) > 0 && history[0].time < cutoff {
		history = history[1:]
	}
	if n := len(history); n >= 2 {
		dt := float32(history[n-1].time - history[0].time)
		if dt > 0 {
			m.Velocity = history[n-1].pos.Sub(history[0].pos).Div(dt)
		}
	}

	in := Input{
		Mouse:      m,
		ScreenSize: now.ScreenSize,
		Time:       now.Time,
	}
	if hadLast {
		in.DT = float32(now.Time - last.Time)
	}
	return in, history
}
