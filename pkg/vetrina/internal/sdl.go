package internal

import (
	"fmt"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up the SDL subsystems, window, fonts, icons, locale catalog
// and input handling. Must run on the main OS thread, like every SDL video
// call after it.
func Init(title string, showBackground bool, winOpts WindowOptions, bbc BackButtonConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("initialize SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		return fmt.Errorf("initialize SDL_ttf: %w", err)
	}
	img.Init(img.INIT_PNG | img.INIT_JPG)

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	win, err := initWindow(title, showBackground, winOpts)
	if err != nil {
		return err
	}
	window = win

	initFonts(DefaultFontSizes)

	if err := InitIcons(window.Renderer); err != nil {
		GetInternalLogger().Warn("Failed to rasterize chrome icons", "error", err)
	}

	if !constants.IsDevMode() && (bbc.DevicePath != "" || bbc.ButtonCode != 0) {
		StartBackButtonMonitor(bbc)
	}

	return nil
}

// SDLCleanup tears down everything Init brought up, in reverse order.
// Icon textures go before the window: they die with its renderer.
func SDLCleanup() {
	StopBackButtonMonitor()
	CloseIcons()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
