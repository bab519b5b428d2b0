package cannoli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want sdl.Color
		ok   bool
	}{
		{"#FF8000", sdl.Color{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}, true},
		{"0x008080", sdl.Color{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}, true},
		{"1a1a1a", sdl.Color{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}, true},
		{" #FFffFF ", sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, true},
		{"", sdl.Color{}, false},
		{"#FFF", sdl.Color{}, false},
		{"#GGGGGG", sdl.Color{}, false},
		{"not a color", sdl.Color{}, false},
	}

	for _, c := range cases {
		got, ok := ParseHexColor(c.in)
		if ok != c.ok {
			t.Fatalf("%q: expected ok=%v, got %v", c.in, c.ok, ok)
		}
		if ok && got != c.want {
			t.Fatalf("%q: expected %+v, got %+v", c.in, c.want, got)
		}
	}
}

func TestThemeDefaultsWithoutAFile(t *testing.T) {
	theme := InitCannoliTheme(filepath.Join(t.TempDir(), "missing.toml"), DefaultFontPath)

	if theme.AccentColor != (sdl.Color{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}) {
		t.Fatalf("expected the default accent, got %+v", theme.AccentColor)
	}
	if theme.FontPath != DefaultFontPath {
		t.Fatalf("expected the given font path, got %q", theme.FontPath)
	}
	if theme.BackgroundImagePath != "" {
		t.Fatalf("no theme file must mean no background image")
	}
}

func TestThemeFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vetrina.toml")
	contents := `
accent = "#FF8000"
text = "0x101010"
font = "/mnt/SDCARD/System/fonts/Custom.ttf"
background_image = "/mnt/SDCARD/bg.png"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}

	theme := InitCannoliTheme(path, DefaultFontPath)

	if theme.AccentColor != (sdl.Color{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}) {
		t.Fatalf("expected the file accent, got %+v", theme.AccentColor)
	}
	if theme.TextColor != (sdl.Color{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}) {
		t.Fatalf("expected the file text color, got %+v", theme.TextColor)
	}
	if theme.HintColor != (sdl.Color{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}) {
		t.Fatalf("unset keys must keep their defaults, got %+v", theme.HintColor)
	}
	if theme.FontPath != "/mnt/SDCARD/System/fonts/Custom.ttf" {
		t.Fatalf("expected the file font, got %q", theme.FontPath)
	}
	if theme.BackgroundImagePath != "/mnt/SDCARD/bg.png" {
		t.Fatalf("expected the file background image, got %q", theme.BackgroundImagePath)
	}
}

func TestBrokenThemeFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vetrina.toml")
	if err := os.WriteFile(path, []byte("accent = [not toml"), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}

	theme := InitCannoliTheme(path, DefaultFontPath)

	if theme.AccentColor != (sdl.Color{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}) {
		t.Fatalf("a broken file must keep the defaults, got %+v", theme.AccentColor)
	}
}

func TestBadColorValuesAreIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vetrina.toml")
	if err := os.WriteFile(path, []byte(`accent = "#nope"`), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}

	theme := InitCannoliTheme(path, DefaultFontPath)

	if theme.AccentColor != (sdl.Color{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}) {
		t.Fatalf("unparseable colors must keep the defaults, got %+v", theme.AccentColor)
	}
}
