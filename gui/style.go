package gui

// CursorIcon is the pointer shape the host should show after the frame.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
	CursorResizeNWSE
)

// Style holds the few layout-affecting visual parameters the core needs.
// Actual theming (colors, fonts) belongs to the widgets built on top.
type Style struct {
	// ResizeCornerSize is the side of the drag hit-box at the
	// bottom-right corner of resizable regions.
	ResizeCornerSize float32
	// ClipRectMargin is breathing room added around content clips so
	// anti-aliased edges and shadows aren't cut off.
	ClipRectMargin float32
	// ThinStroke outlines resizable regions.
	ThinStroke Stroke
	// InteractStroke draws affordances like the resize corner.
	InteractStroke Stroke
}

// DefaultStyle returns the style used unless the host overrides it.
func DefaultStyle() Style {
	return Style{
		ResizeCornerSize: 16,
		ClipRectMargin:   3,
		ThinStroke:       Stroke{Width: 1, Color: ColorGray},
		InteractStroke:   Stroke{Width: 2, Color: ColorWhite},
	}
}

// Output is what the core wants the host to do after the frame, besides
// painting: which cursor to show, and whether to schedule another frame
// promptly because retained state changed mid-measurement.
type Output struct {
	CursorIcon   CursorIcon
	NeedsRepaint bool
}
