// Package cannoli provides the shell profile for the Cannoli custom
// firmware. Cannoli is a community-developed CFW for retro handheld gaming
// devices; its shells predate stack-bound navigation containers, so apps
// running on it get the link-chained rendering model.
package cannoli

import (
	"os"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/internal"
	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultThemePath is where Cannoli installs the user theme file on the SD
// card.
const DefaultThemePath = "/mnt/SDCARD/System/theme/vetrina.toml"

// DefaultFontPath is Cannoli's system font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// themeFile is the TOML shape of a Cannoli theme. Colors are hex strings
// ("#RRGGBB", "0xRRGGBB" or bare "RRGGBB"); missing keys keep the built-in
// defaults.
type themeFile struct {
	Accent          string `toml:"accent"`
	Text            string `toml:"text"`
	Hint            string `toml:"hint"`
	Chrome          string `toml:"chrome"`
	Background      string `toml:"background"`
	Scrim           string `toml:"scrim"`
	Font            string `toml:"font"`
	BackgroundImage string `toml:"background_image"`
}

// InitCannoliTheme builds the Cannoli theme: built-in defaults overridden
// by whatever the theme file at themePath provides. A missing or broken
// file is routine (fresh SD cards have none) and keeps the defaults.
func InitCannoliTheme(themePath, fontPath string) internal.Theme {
	theme := internal.Theme{
		AccentColor:     internal.HexToColor(0x008080),
		TextColor:       internal.HexToColor(0x1A1A1A),
		HintColor:       internal.HexToColor(0x666666),
		ChromeColor:     internal.HexToColor(0xF2F2F2),
		BackgroundColor: internal.HexToColor(0xFFFFFF),
		ScrimColor:      internal.HexToColor(0x000000),
		FontPath:        fontPath,
	}

	file, ok := loadThemeFile(themePath)
	if !ok {
		return theme
	}

	applyColor(&theme.AccentColor, file.Accent)
	applyColor(&theme.TextColor, file.Text)
	applyColor(&theme.HintColor, file.Hint)
	applyColor(&theme.ChromeColor, file.Chrome)
	applyColor(&theme.BackgroundColor, file.Background)
	applyColor(&theme.ScrimColor, file.Scrim)
	if file.Font != "" {
		theme.FontPath = file.Font
	}
	if file.BackgroundImage != "" {
		theme.BackgroundImagePath = file.BackgroundImage
	}

	return theme
}

func loadThemeFile(path string) (themeFile, bool) {
	var file themeFile
	if path == "" {
		return file, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return file, false
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		internal.GetInternalLogger().Warn("Ignoring broken Cannoli theme file", "path", path, "error", err)
		return file, false
	}
	return file, true
}

func applyColor(dst *sdl.Color, value string) {
	if color, ok := ParseHexColor(value); ok {
		*dst = color
	}
}

// ParseHexColor parses "#RRGGBB", "0xRRGGBB" or "RRGGBB" into an opaque
// SDL color.
func ParseHexColor(value string) (sdl.Color, bool) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "#")
	value = strings.TrimPrefix(value, "0x")
	value = strings.TrimPrefix(value, "0X")
	if len(value) != 6 {
		return sdl.Color{}, false
	}
	n, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return sdl.Color{}, false
	}
	return internal.HexToColor(uint32(n)), true
}
