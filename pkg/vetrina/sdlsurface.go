package vetrina

import (
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type showingKind int

const (
	showingNothing showingKind = iota
	showingStack
	showingLink
	showingOverlay
)

// sdlSurface is the shell's Surface: it renders whatever the navigation
// host last described onto the SDL window, and turns back presses into
// SurfaceEvents. Show calls only record the description; drawing happens
// once per frame from the shell loop.
type sdlSurface struct {
	window      *internal.Window
	closeButton CloseButton
	events      SurfaceEvents
	cache       *internal.TextureCache

	showing      showingKind
	refs         []ContentRef
	next         *ContentRef
	title        string
	wrap         bool
	overlayRef   ContentRef
	overlayStyle OverlayStyle
}

func newSDLSurface(window *internal.Window, closeButton CloseButton) *sdlSurface {
	return &sdlSurface{
		window:      window,
		closeButton: closeButton,
		cache:       internal.NewTextureCache(),
	}
}

func (s *sdlSurface) Bind(events SurfaceEvents) {
	s.events = events
}

func (s *sdlSurface) ShowStack(refs []ContentRef, title string, wrap bool) {
	s.showing = showingStack
	s.refs = refs
	s.next = nil
	s.title = title
	s.wrap = wrap
}

func (s *sdlSurface) ShowLink(next *ContentRef, title string, wrap bool) {
	s.showing = showingLink
	s.refs = nil
	s.next = next
	s.title = title
	s.wrap = wrap
}

func (s *sdlSurface) ShowOverlay(ref ContentRef, style OverlayStyle) {
	s.showing = showingOverlay
	s.refs = nil
	s.next = nil
	s.overlayRef = ref
	s.overlayStyle = style
	s.title = ref.Content().Title()
}

func (s *sdlSurface) Clear() {
	s.showing = showingNothing
	s.refs = nil
	s.next = nil
	s.title = ""
}

func (s *sdlSurface) destroy() {
	s.cache.Destroy()
}

// back routes a back press into the bound events and reports whether the
// press was consumed. Unconsumed presses mean nothing was presented; the
// shell decides what a back press at the root does.
func (s *sdlSurface) back() bool {
	if s.events == nil {
		return false
	}
	switch s.showing {
	case showingOverlay:
		s.events.OverlayDismissed()
		return true
	case showingStack:
		if len(s.refs) > 0 {
			s.events.StackTruncated(len(s.refs) - 1)
			return true
		}
	case showingLink:
		if s.next != nil {
			s.events.LinkCleared()
			return true
		}
	}
	return false
}

// coversRoot reports whether the presentation hides the root screen
// completely. Sheets leave the root visible behind the scrim.
func (s *sdlSurface) coversRoot() bool {
	switch s.showing {
	case showingStack:
		return len(s.refs) > 0
	case showingLink:
		return s.next != nil
	case showingOverlay:
		return s.overlayStyle == OverlayModal
	}
	return false
}

// topContent returns the content the user is looking at because of this
// surface, if any. Input goes there before it goes to the root.
func (s *sdlSurface) topContent() (Content, bool) {
	switch s.showing {
	case showingOverlay:
		return s.overlayRef.Content(), true
	case showingStack:
		if len(s.refs) > 0 {
			return s.refs[len(s.refs)-1].Content(), true
		}
	case showingLink:
		if s.next != nil {
			return s.next.Content(), true
		}
	}
	return Content{}, false
}

// render draws the described presentation for this frame. The shell has
// already drawn the background and, when visible, the root screen.
func (s *sdlSurface) render(renderer *sdl.Renderer) {
	switch s.showing {
	case showingStack:
		if len(s.refs) == 0 {
			return
		}
		s.renderPushed(renderer, s.refs[len(s.refs)-1].Content())
	case showingLink:
		if s.next == nil {
			return
		}
		s.renderPushed(renderer, s.next.Content())
	case showingOverlay:
		if s.overlayStyle == OverlaySheet {
			s.renderSheet(renderer)
		} else {
			s.renderModal(renderer)
		}
	}
}

func (s *sdlSurface) renderPushed(renderer *sdl.Renderer, content Content) {
	theme := internal.GetTheme()
	bounds := sdl.Rect{X: 0, Y: 0, W: s.window.GetWidth(), H: s.window.GetHeight()}

	// Pushed content replaces the screen, so repaint it even without a
	// container of our own.
	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.FillRect(&bounds)

	if s.wrap {
		chromeH := s.drawChromeBar(renderer, sdl.Rect{X: 0, Y: 0, W: bounds.W, H: constants.DefaultChromeHeight}, s.title, true)
		bounds.Y += chromeH
		bounds.H -= chromeH
	}

	s.drawContent(renderer, content, bounds)
}

func (s *sdlSurface) renderModal(renderer *sdl.Renderer) {
	theme := internal.GetTheme()
	w, h := s.window.GetWidth(), s.window.GetHeight()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: w, H: h})

	chromeH := s.drawChromeBar(renderer, sdl.Rect{X: 0, Y: 0, W: w, H: constants.DefaultChromeHeight}, s.title, false)
	s.drawContent(renderer, s.overlayRef.Content(), sdl.Rect{X: 0, Y: chromeH, W: w, H: h - chromeH})
}

func (s *sdlSurface) renderSheet(renderer *sdl.Renderer) {
	theme := internal.GetTheme()
	w, h := s.window.GetWidth(), s.window.GetHeight()

	// Dim the screen behind the card.
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(theme.ScrimColor.R, theme.ScrimColor.G, theme.ScrimColor.B, constants.DefaultOverlayDimA)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: w, H: h})
	renderer.SetDrawBlendMode(sdl.BLENDMODE_NONE)

	card := sdl.Rect{X: 0, Y: constants.DefaultSheetInset, W: w, H: h - constants.DefaultSheetInset}
	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.FillRect(&card)

	header := sdl.Rect{X: card.X, Y: card.Y, W: card.W, H: constants.DefaultChromeHeight}
	headerH := s.drawChromeBar(renderer, header, s.title, false)

	// Grabber on top of the header, hinting at the dismiss gesture.
	grabber := sdl.Rect{X: card.X + card.W/2 - 24, Y: card.Y + 5, W: 48, H: 5}
	renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
	renderer.FillRect(&grabber)

	s.drawContent(renderer, s.overlayRef.Content(), sdl.Rect{
		X: card.X, Y: card.Y + headerH, W: card.W, H: card.H - headerH,
	})
}

// drawChromeBar fills the navigation bar, drawing the back glyph or the
// dismiss affordance and the centered title. Returns the bar height.
func (s *sdlSurface) drawChromeBar(renderer *sdl.Renderer, bar sdl.Rect, title string, backHint bool) int32 {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.ChromeColor.R, theme.ChromeColor.G, theme.ChromeColor.B, 255)
	renderer.FillRect(&bar)
	renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
	renderer.FillRect(&sdl.Rect{X: bar.X, Y: bar.Y + bar.H - 2, W: bar.W, H: 2})

	iconY := bar.Y + (bar.H-internal.IconSize)/2

	if backHint && internal.Icons.Back != nil {
		renderer.Copy(internal.Icons.Back, nil,
			&sdl.Rect{X: bar.X + 12, Y: iconY, W: internal.IconSize, H: internal.IconSize})
	}

	if !backHint {
		switch s.closeButton {
		case CloseButtonIcon:
			if internal.Icons.Close != nil {
				renderer.Copy(internal.Icons.Close, nil,
					&sdl.Rect{X: bar.X + bar.W - 12 - internal.IconSize, Y: iconY, W: internal.IconSize, H: internal.IconSize})
			}
		case CloseButtonLabel:
			label := internal.T("Close")
			if texture := internal.RenderTextCached(renderer, label, internal.Fonts.SmallFont, theme.HintColor, s.cache); texture != nil {
				if _, _, tw, th, err := texture.Query(); err == nil {
					renderer.Copy(texture, nil,
						&sdl.Rect{X: bar.X + bar.W - 12 - tw, Y: bar.Y + (bar.H-th)/2, W: tw, H: th})
				}
			}
		}
	}

	if title != "" {
		if texture := internal.RenderTextCached(renderer, title, internal.Fonts.MediumFont, theme.TextColor, s.cache); texture != nil {
			if _, _, tw, th, err := texture.Query(); err == nil {
				maxW := bar.W - 2*(12+internal.IconSize+12)
				drawW := internal.Min32(tw, maxW)
				renderer.Copy(texture, &sdl.Rect{X: 0, Y: 0, W: drawW, H: th},
					&sdl.Rect{X: bar.X + (bar.W-drawW)/2, Y: bar.Y + (bar.H-th)/2, W: drawW, H: th})
			}
		}
	}

	return bar.H
}

// drawContent renders one unit of content into bounds. Unrecognized
// content degrades to the inert placeholder; nothing here can fail.
func (s *sdlSurface) drawContent(renderer *sdl.Renderer, content Content, bounds sdl.Rect) {
	switch content.Kind() {
	case KindView:
		content.View().Draw(renderer, bounds)
	case KindTexture:
		if texture := content.Texture(); texture != nil {
			renderer.Copy(texture, nil, &bounds)
			return
		}
		s.drawPlaceholder(renderer, bounds)
	default:
		s.drawPlaceholder(renderer, bounds)
	}
}

func (s *sdlSurface) drawPlaceholder(renderer *sdl.Renderer, bounds sdl.Rect) {
	theme := internal.GetTheme()
	centerX := bounds.X + bounds.W/2
	y := bounds.Y + bounds.H/2 - internal.IconSize

	if internal.Icons.Unsupported != nil {
		renderer.Copy(internal.Icons.Unsupported, nil,
			&sdl.Rect{X: centerX - internal.IconSize, Y: y, W: internal.IconSize * 2, H: internal.IconSize * 2})
		y += internal.IconSize*2 + 12
	}

	internal.RenderMultilineTextWithCache(renderer, internal.T("UnsupportedContent"),
		internal.Fonts.SmallFont, bounds.W-80, centerX, y,
		theme.HintColor, constants.TextAlignCenter, s.cache)
}
