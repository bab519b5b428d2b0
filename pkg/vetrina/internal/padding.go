package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// InsetRect returns rect shrunk by the padding on each side. Width and
// height never go below zero.
func (p Padding) InsetRect(rect sdl.Rect) sdl.Rect {
	out := sdl.Rect{
		X: rect.X + p.Left,
		Y: rect.Y + p.Top,
		W: rect.W - p.Left - p.Right,
		H: rect.H - p.Top - p.Bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}
