package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer with the state the shell needs.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	hasVSync          bool
	lastPresentTime   uint64
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	width, height := int32(1280), int32(720)

	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Warn("Failed to get display mode; using defaults", "error", err)
	} else {
		width, height = displayMode.W, displayMode.H
	}

	return initWindowWithSize(title, width, height, displayBackground, winOpts)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false

		x, y = int32(50), int32(50)
		width, height = 1024, 768
		if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				width = int32(n)
			} else {
				GetInternalLogger().Warn("Invalid WINDOW_WIDTH; using default", "value", v, "error", err)
			}
		}
		if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				height = int32(n)
			} else {
				GetInternalLogger().Warn("Invalid WINDOW_HEIGHT; using default", "value", v, "error", err)
			}
		}
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            window,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		hasVSync:          vsync,
	}

	win.loadBackground()

	return win, nil
}

func (w *Window) loadBackground() {
	theme := GetTheme()

	path := theme.BackgroundImagePath
	if override := os.Getenv(constants.BackgroundPathEnvVar); override != "" {
		path = override
	}
	if path == "" {
		w.Background = nil
		return
	}

	bgTexture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		GetInternalLogger().Debug("No background image loaded", "path", path, "error", err)
		w.Background = nil
		return
	}
	w.Background = bgTexture
}

func (w *Window) closeWindow() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the shell window. Valid only between Init and Close.
func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// RenderBackground draws the theme background image, when one loaded.
func (w *Window) RenderBackground() {
	if w.Background != nil {
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w.GetWidth(), H: w.GetHeight()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// ResetBackground reloads the theme background image, for callers that
// changed the theme after Init.
func ResetBackground() {
	window.loadBackground()
}
