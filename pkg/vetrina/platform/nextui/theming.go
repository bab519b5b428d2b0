// Package nextui provides the shell profile for the NextUI custom
// firmware. NextUI shells carry the modern navigation container bound to a
// whole content stack, so apps running on it get the stack-authoritative
// rendering model.
package nextui

import (
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/internal"
)

// DefaultFontPath is the NextUI system font shipped with the firmware.
const DefaultFontPath = "/mnt/SDCARD/.system/res/fonts/BPreplayNerdFont-Bold.ttf"

// DefaultBackgroundPath is NextUI's user wallpaper location.
const DefaultBackgroundPath = "/mnt/SDCARD/bg.png"

// InitNextUITheme builds the NextUI theme: the firmware's dark system look
// with the shipped font. NextUI owns its accent color, which is why Init
// ignores custom accent overrides on this platform.
func InitNextUITheme() internal.Theme {
	return internal.Theme{
		AccentColor:         internal.HexToColor(0x0087FF),
		TextColor:           internal.HexToColor(0xFFFFFF),
		HintColor:           internal.HexToColor(0x999999),
		ChromeColor:         internal.HexToColor(0x1A1A1A),
		BackgroundColor:     internal.HexToColor(0x000000),
		ScrimColor:          internal.HexToColor(0x000000),
		FontPath:            DefaultFontPath,
		BackgroundImagePath: DefaultBackgroundPath,
	}
}
