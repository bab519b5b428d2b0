package internal

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the visual appearance of the navigation chrome. Colors are
// typically loaded from CFW theme files (NextUI system theme, Cannoli TOML
// theme).
type Theme struct {
	AccentColor         sdl.Color // Active link marker, sheet grabber, close pill
	TextColor           sdl.Color // Chrome title text
	HintColor           sdl.Color // Placeholder text, back hints
	ChromeColor         sdl.Color // Title bar and sheet card background
	BackgroundColor     sdl.Color // Screen background
	ScrimColor          sdl.Color // Dim layer behind modals and sheets
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the shell.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value into an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
