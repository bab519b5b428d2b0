package internal

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// IconSet holds the rasterized chrome glyphs. Entries are nil when
// rasterization failed; the shell simply skips drawing them.
type IconSet struct {
	Close       *sdl.Texture
	Back        *sdl.Texture
	Unsupported *sdl.Texture
}

// Icons is the active icon set, rasterized by Init against the theme.
var Icons IconSet

// IconSize is the square pixel size chrome glyphs are rasterized at.
const IconSize = 24

// RasterizeSVG renders an SVG document into a size x size texture, with
// every #000000 stroke and fill remapped to color. The icon sources in the
// constants package are authored in black exactly so this remap works.
func RasterizeSVG(renderer *sdl.Renderer, svgSource string, size int32, color sdl.Color) (*sdl.Texture, error) {
	recolored := strings.ReplaceAll(svgSource, "#000000",
		fmt.Sprintf("#%02X%02X%02X", color.R, color.G, color.B))

	icon, err := oksvg.ReadIconStream(strings.NewReader(recolored))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := int(size), int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), size, size, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}

// InitIcons rasterizes the chrome icon set against the active theme.
// Failures are reported but non-fatal: a missing glyph degrades to text.
func InitIcons(renderer *sdl.Renderer) error {
	theme := GetTheme()

	var firstErr error
	rasterize := func(source string, color sdl.Color) *sdl.Texture {
		texture, err := RasterizeSVG(renderer, source, IconSize, color)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return texture
	}

	Icons = IconSet{
		Close:       rasterize(constants.IconClose, theme.TextColor),
		Back:        rasterize(constants.IconBack, theme.TextColor),
		Unsupported: rasterize(constants.IconUnsupported, theme.HintColor),
	}
	return firstErr
}

// CloseIcons destroys the rasterized icon set.
func CloseIcons() {
	for _, texture := range []*sdl.Texture{Icons.Close, Icons.Back, Icons.Unsupported} {
		if texture != nil {
			texture.Destroy()
		}
	}
	Icons = IconSet{}
}
