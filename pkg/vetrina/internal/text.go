package internal

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Max32 returns the larger of two int32 values.
func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// RenderText renders a single line of text into a texture the caller owns.
// Returns nil for empty text, a nil font, or a render failure; callers
// treat nil as "nothing to draw".
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}

// RenderTextCached is RenderText backed by a texture cache. The cache owns
// the returned texture; callers must not destroy it.
func RenderTextCached(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, cache *TextureCache) *sdl.Texture {
	key := textCacheKey(text, color)
	if texture := cache.Get(key); texture != nil {
		return texture
	}

	texture := RenderText(renderer, text, font, color)
	if texture != nil {
		cache.Set(key, texture)
	}
	return texture
}

func textCacheKey(text string, color sdl.Color) string {
	return fmt.Sprintf("%02x%02x%02x%02x|%s", color.R, color.G, color.B, color.A, text)
}

// WrapTextLines splits text into lines that fit maxWidth when rendered with
// font. Explicit newlines are kept; long lines wrap on word boundaries,
// falling back to a hard split for single words wider than maxWidth.
func WrapTextLines(text string, font *ttf.Font, maxWidth int32) []string {
	if text == "" || font == nil {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var lines []string
	for _, raw := range strings.Split(normalized, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapLine(raw, font, maxWidth)...)
	}
	return lines
}

func wrapLine(line string, font *ttf.Font, maxWidth int32) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""

	for _, word := range words {
		candidate := current
		if candidate != "" {
			candidate += " "
		}
		candidate += word

		width, _, err := font.SizeUTF8(candidate)
		if err == nil && int32(width) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
		}
		current = word

		// A single word wider than the line gets split mid-word.
		for {
			width, _, err = font.SizeUTF8(current)
			if err != nil || int32(width) <= maxWidth || len(current) <= 1 {
				break
			}
			cut := len(current) * int(maxWidth) / width
			if cut < 1 {
				cut = 1
			}
			if cut >= len(current) {
				cut = len(current) - 1
			}
			lines = append(lines, current[:cut])
			current = current[cut:]
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// LineHeight returns the pixel height of one line including spacing.
func LineHeight(font *ttf.Font) int32 {
	if font == nil {
		return 0
	}
	height := int32(font.Height())
	return height + height*3/10
}

// CalculateMultilineTextHeight returns the height RenderMultilineText will
// occupy for text wrapped at maxWidth.
func CalculateMultilineTextHeight(text string, font *ttf.Font, maxWidth int32) int32 {
	lines := WrapTextLines(text, font, maxWidth)
	if len(lines) == 0 {
		return 0
	}
	return int32(len(lines)) * LineHeight(font)
}

// RenderMultilineText draws text wrapped at maxWidth starting at y.
// For TextAlignLeft x is the left edge, for TextAlignCenter the center
// line, and for TextAlignRight the right edge.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) {
	renderMultiline(renderer, text, font, maxWidth, x, y, color, align, nil)
}

// RenderMultilineTextWithCache is RenderMultilineText with per-line texture
// caching for text that redraws every frame.
func RenderMultilineTextWithCache(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign, cache *TextureCache) {
	renderMultiline(renderer, text, font, maxWidth, x, y, color, align, cache)
}

func renderMultiline(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign, cache *TextureCache) {
	lines := WrapTextLines(text, font, maxWidth)
	if len(lines) == 0 {
		return
	}

	lineHeight := LineHeight(font)
	currentY := y

	for _, line := range lines {
		if line == "" {
			currentY += lineHeight
			continue
		}

		var texture *sdl.Texture
		if cache != nil {
			texture = RenderTextCached(renderer, line, font, color, cache)
		} else {
			texture = RenderText(renderer, line, font, color)
		}
		if texture == nil {
			currentY += lineHeight
			continue
		}

		_, _, w, h, err := texture.Query()
		if err == nil {
			lineX := x
			switch align {
			case constants.TextAlignCenter:
				lineX = x - w/2
			case constants.TextAlignRight:
				lineX = x - w
			}
			renderer.Copy(texture, nil, &sdl.Rect{X: lineX, Y: currentY, W: w, H: h})
		}
		if cache == nil {
			texture.Destroy()
		}
		currentY += lineHeight
	}
}
