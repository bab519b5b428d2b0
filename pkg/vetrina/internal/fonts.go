package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the shell's loaded fonts. Any of them may be nil when no
// usable font file was found; the text helpers treat a nil font as
// "nothing to draw" so the shell stays total without one.
type FontSet struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

// Fonts is the active font set, loaded by Init from the theme's font path.
var Fonts FontSet

// FontSizes selects the point sizes loaded into the font set.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

// DefaultFontSizes are tuned for 1024x768 handheld panels.
var DefaultFontSizes = FontSizes{Large: 32, Medium: 24, Small: 18}

// Fallbacks for dev machines where the CFW font paths do not exist.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

func initFonts(sizes FontSizes) {
	path := resolveFontPath()
	if path == "" {
		GetInternalLogger().Error("No usable font found; chrome text disabled",
			"theme_font", GetTheme().FontPath)
		return
	}

	GetInternalLogger().Debug("Loading fonts", "path", path)

	Fonts = FontSet{
		LargeFont:  openFont(path, sizes.Large),
		MediumFont: openFont(path, sizes.Medium),
		SmallFont:  openFont(path, sizes.Small),
	}
}

func openFont(path string, size int) *ttf.Font {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		GetInternalLogger().Error("Failed to open font", "path", path, "size", size, "error", err)
		return nil
	}
	return font
}

func resolveFontPath() string {
	if path := GetTheme().FontPath; path != "" && fileExists(path) {
		return path
	}
	for _, path := range fallbackFontPaths {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
