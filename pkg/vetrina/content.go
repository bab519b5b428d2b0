package vetrina

import (
	"github.com/google/uuid"
	"github.com/veandco/go-sdl2/sdl"
)

// View is the native renderable unit of the presentation layer. Anything
// that can draw itself into a region of the shell's renderer can be pushed,
// presented modally, or shown as a sheet.
type View interface {
	// Draw renders the view into bounds. Called once per frame while the
	// view is visible; implementations must not retain the renderer.
	Draw(renderer *sdl.Renderer, bounds sdl.Rect)
}

// Titled is optionally implemented by Views that carry a human-readable
// title. When present, the title is propagated onto the navigation chrome
// of whichever container renders the view.
type Titled interface {
	NavigationTitle() string
}

// ContentKind identifies the renderable kind wrapped by a Content handle.
// The kind is resolved once, when the content is wrapped, and never
// re-inspected afterwards.
type ContentKind int

const (
	// KindUnsupported marks content the shell cannot render. It is shown
	// as an inert placeholder rather than failing.
	KindUnsupported ContentKind = iota
	// KindView is a View implementation.
	KindView
	// KindTexture is a prerendered SDL texture, the legacy unit carried
	// over from shells that composed screens out of raw textures.
	KindTexture
)

// String returns the kind name.
func (k ContentKind) String() string {
	switch k {
	case KindView:
		return "view"
	case KindTexture:
		return "texture"
	default:
		return "unsupported"
	}
}

// Content is an opaque handle to one renderable unit. The supported kinds
// are View implementations and *sdl.Texture; everything else resolves to
// KindUnsupported and renders as a placeholder.
type Content struct {
	kind    ContentKind
	view    View
	texture *sdl.Texture
}

// WrapContent resolves value into a Content handle. It never fails:
// unrecognized values yield a KindUnsupported handle.
func WrapContent(value any) Content {
	switch v := value.(type) {
	case Content:
		return v
	case View:
		return Content{kind: KindView, view: v}
	case *sdl.Texture:
		return Content{kind: KindTexture, texture: v}
	default:
		return Content{kind: KindUnsupported}
	}
}

// Kind returns the resolved content kind.
func (c Content) Kind() ContentKind { return c.kind }

// View returns the wrapped View, or nil for other kinds.
func (c Content) View() View { return c.view }

// Texture returns the wrapped texture, or nil for other kinds.
func (c Content) Texture() *sdl.Texture { return c.texture }

// Title returns the navigation title hint carried by the content, or ""
// when the content has none. Only the View kind can carry a title.
func (c Content) Title() string {
	if c.kind == KindView {
		if t, ok := c.view.(Titled); ok {
			return t.NavigationTitle()
		}
	}
	return ""
}

// ContentRef is a single reference to a unit of renderable content. Each
// ref carries a unique identity generated at creation: two refs wrapping
// identical content are still distinct. Refs are immutable.
type ContentRef struct {
	id      uuid.UUID
	content Content
}

// NewContentRef wraps value (see WrapContent) with a fresh identity.
func NewContentRef(value any) ContentRef {
	return ContentRef{id: uuid.New(), content: WrapContent(value)}
}

// ID returns the ref's identity.
func (r ContentRef) ID() uuid.UUID { return r.id }

// Content returns the wrapped content handle.
func (r ContentRef) Content() Content { return r.content }

// Equal reports whether two refs are the same reference. Equality is by
// identity only; the wrapped content is not compared.
func (r ContentRef) Equal(other ContentRef) bool {
	return r.id == other.id
}
