package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// Color is straight RGBA in [0..1], matching what GPU backends want.
type Color [4]float32

var (
	ColorTransparent = Color{}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorGray        = Color{0.5, 0.5, 0.5, 1}
	ColorDarkGray    = Color{0.2, 0.2, 0.2, 1}
)

// IsVisible reports whether the color has any alpha at all.
func (c Color) IsVisible() bool { return c[3] > 0 }

// Stroke describes an outline: width in pixels plus color.
type Stroke struct {
	Width float32
	Color Color
}

// IsVisible reports whether drawing the stroke would show anything.
func (s Stroke) IsVisible() bool { return s.Width > 0 && s.Color.IsVisible() }

// PaintCmd is one drawing command. The core never interprets commands;
// it only buffers them in paint order and hands them to the backend.
type PaintCmd interface {
	// TranslateCmd returns the command moved by d.
	TranslateCmd(d geom.Vec2) PaintCmd
}

// NoopCmd draws nothing. It is the placeholder used to reserve a slot in a
// PaintList that is filled in later the same frame (see PaintList.Set).
type NoopCmd struct{}

func (c NoopCmd) TranslateCmd(geom.Vec2) PaintCmd { return c }

// RectCmd fills and/or outlines a rectangle.
type RectCmd struct {
	Rect         geom.Rect
	CornerRadius float32
	Fill         Color
	Stroke       Stroke
}

func (c RectCmd) TranslateCmd(d geom.Vec2) PaintCmd {
	c.Rect = c.Rect.Translate(d)
	return c
}

// LineCmd draws a line segment.
type LineCmd struct {
	Points [2]geom.Pos2
	Stroke Stroke
}

func (c LineCmd) TranslateCmd(d geom.Vec2) PaintCmd {
	c.Points[0] = c.Points[0].Add(d)
	c.Points[1] = c.Points[1].Add(d)
	return c
}

// ClippedCmd pairs a paint command with the clip rectangle it must be
// drawn under. This is what a frame drains to and what backends consume.
type ClippedCmd struct {
	Clip geom.Rect
	Cmd  PaintCmd
}

// TextMeasurer is the seam to the font/shaping collaborator. The core only
// needs measured extents to size regions; glyph rendering happens elsewhere.
type TextMeasurer interface {
	Measure(text string, size float32) geom.Vec2
}
