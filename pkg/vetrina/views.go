package vetrina

import (
	"strings"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSize selects one of the shell's loaded font sizes.
type FontSize int

const (
	FontSmall FontSize = iota
	FontMedium
	FontLarge
)

func fontFor(size FontSize) *ttf.Font {
	switch size {
	case FontLarge:
		return internal.Fonts.LargeFont
	case FontMedium:
		return internal.Fonts.MediumFont
	default:
		return internal.Fonts.SmallFont
	}
}

// DrawText draws one line of text at (x, y) with the shell's font set and
// returns the rendered size. Views use it to draw their own content
// without loading fonts themselves. With no usable font it draws nothing.
func DrawText(renderer *sdl.Renderer, text string, size FontSize, color sdl.Color, x, y int32) (int32, int32) {
	texture := internal.RenderText(renderer, text, fontFor(size), color)
	if texture == nil {
		return 0, 0
	}
	defer texture.Destroy()

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w, h
}

// MeasureText returns the size DrawText would render text at.
func MeasureText(text string, size FontSize) (int32, int32) {
	font := fontFor(size)
	if font == nil || text == "" {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// Palette is the active theme's chrome colors, for Views that want to
// match the shell.
type Palette struct {
	Accent     sdl.Color
	Text       sdl.Color
	Hint       sdl.Color
	Chrome     sdl.Color
	Background sdl.Color
}

// ActivePalette returns the colors of the theme selected at Init.
func ActivePalette() Palette {
	theme := internal.GetTheme()
	return Palette{
		Accent:     theme.AccentColor,
		Text:       theme.TextColor,
		Hint:       theme.HintColor,
		Chrome:     theme.ChromeColor,
		Background: theme.BackgroundColor,
	}
}

// Label is a ready-made View for plain text content: a body of wrapped
// lines, optionally titled for the navigation chrome. Good enough for
// sheets, about screens and placeholders without writing a custom View.
type Label struct {
	Title string   // navigation title; "" means untitled
	Lines []string // body text, drawn top to bottom
	Align constants.TextAlign
}

// NavigationTitle implements Titled.
func (l *Label) NavigationTitle() string { return l.Title }

// Draw implements View.
func (l *Label) Draw(renderer *sdl.Renderer, bounds sdl.Rect) {
	content := internal.UniformPadding(24).InsetRect(bounds)
	if content.W <= 0 || content.H <= 0 {
		return
	}

	x := content.X
	switch l.Align {
	case constants.TextAlignCenter:
		x = content.X + content.W/2
	case constants.TextAlignRight:
		x = content.X + content.W
	}

	internal.RenderMultilineText(renderer, strings.Join(l.Lines, "\n"),
		internal.Fonts.SmallFont, content.W, x, content.Y,
		internal.GetTheme().TextColor, l.Align)
}
