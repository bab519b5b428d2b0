package vetrina

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Interactive is optionally implemented by Views (or root values) that
// consume button input. While presented, the topmost content receives
// every button; content that does not implement Interactive swallows
// input rather than letting it fall through to covered screens.
//
// B and hardware back never reach HandleButton: the shell owns back.
type Interactive interface {
	HandleButton(button constants.VirtualButton)
}

// ShellOptions configures a RunShell session.
type ShellOptions struct {
	// Policy is the render policy for the navigation host driving the
	// session. Zero value is WrapScope.
	Policy RenderPolicy

	// CloseButton selects the dismiss affordance on modal and sheet chrome.
	// Zero value is CloseButtonNone.
	CloseButton CloseButton

	// DisableQuitOnBack keeps the shell running when the user presses back
	// with nothing presented. By default an unconsumed back closes the
	// shell, matching how handheld launchers exit.
	DisableQuitOnBack bool
}

// RunShell runs the presentation loop for one root screen: a navigation
// host reconciles the coordinator's item onto the window, buttons route to
// the visible content, and back presses unwind stacks, links and overlays.
//
// root is the screen drawn when nothing is presented; it is wrapped like
// pushed content (View, *sdl.Texture, anything else degrades to the
// placeholder). When root implements Interactive it receives buttons while
// nothing covers it.
//
// RunShell blocks until the user closes the shell and returns
// ErrShellClosed, or an infrastructure error when the shell was never
// initialized. Call Init before RunShell.
func RunShell(root any, coordinator DisplayCoordinator, opts ShellOptions) error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("run_shell", errors.New("shell not initialized"))
	}

	surface := newSDLSurface(window, opts.CloseButton)
	host := Attach(coordinator, opts.Policy, surface)
	defer func() {
		host.Close()
		surface.destroy()
	}()

	s := &shellState{
		window:      window,
		surface:     surface,
		coordinator: coordinator,
		root:        WrapContent(root),
		opts:        opts,
		log:         internal.GetInternalLogger(),
	}
	if interactive, ok := root.(Interactive); ok {
		s.rootInput = interactive
	}

	s.log.Debug("Shell loop started",
		"policy", opts.Policy.String(),
		"model", ActiveNavModel().String())

	for !s.quit {
		s.handleEvents()
		s.render()
	}

	s.log.Debug("Shell loop ended")
	return ErrShellClosed
}

type shellState struct {
	window      *internal.Window
	surface     *sdlSurface
	coordinator DisplayCoordinator
	root        Content
	rootInput   Interactive
	opts        ShellOptions
	log         *slog.Logger

	quit      bool
	lastInput time.Time
}

func (s *shellState) handleEvents() {
	processor := internal.GetInputProcessor()

	if event := sdl.WaitEventTimeout(16); event != nil {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.quit = true

		case *sdl.UserEvent:
			if e.Type == internal.BackButtonEventType() {
				s.pressBack()
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || !inputEvent.Pressed {
				return
			}
			if time.Since(s.lastInput) < constants.DefaultInputDelay {
				return
			}
			s.lastInput = time.Now()
			s.dispatch(inputEvent.Button)
		}
	}
}

func (s *shellState) dispatch(button constants.VirtualButton) {
	if button == constants.VirtualButtonB || button == constants.VirtualButtonBack {
		s.pressBack()
		return
	}

	// Presented content gets the button; a covered root never does.
	if content, ok := s.surface.topContent(); ok {
		if interactive, ok := content.View().(Interactive); ok {
			interactive.HandleButton(button)
		}
		return
	}

	if s.rootInput != nil {
		s.rootInput.HandleButton(button)
	}
}

func (s *shellState) pressBack() {
	if s.surface.back() {
		return
	}
	if !s.opts.DisableQuitOnBack {
		s.quit = true
	}
}

func (s *shellState) render() {
	renderer := s.window.Renderer
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.Clear()

	if s.window.DisplayBackground {
		s.window.RenderBackground()
	}

	// Sheets leave the root visible under the scrim; everything else
	// replaces it.
	if !s.surface.coversRoot() {
		s.surface.drawContent(renderer, s.root,
			sdl.Rect{X: 0, Y: 0, W: s.window.GetWidth(), H: s.window.GetHeight()})
	}

	s.surface.render(renderer)
	s.window.Present()
}
