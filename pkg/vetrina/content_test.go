package vetrina_test

import (
	"testing"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina"
	"github.com/veandco/go-sdl2/sdl"
)

type plainView struct{}

func (plainView) Draw(*sdl.Renderer, sdl.Rect) {}

type titledView struct{ title string }

func (*titledView) Draw(*sdl.Renderer, sdl.Rect) {}

func (v *titledView) NavigationTitle() string { return v.title }

func TestWrapContentResolvesKinds(t *testing.T) {
	if got := vetrina.WrapContent(plainView{}).Kind(); got != vetrina.KindView {
		t.Fatalf("expected view kind, got %s", got)
	}
	if got := vetrina.WrapContent((*sdl.Texture)(nil)).Kind(); got != vetrina.KindTexture {
		t.Fatalf("expected texture kind, got %s", got)
	}
	if got := vetrina.WrapContent(42).Kind(); got != vetrina.KindUnsupported {
		t.Fatalf("expected unsupported kind for an int, got %s", got)
	}
	if got := vetrina.WrapContent(nil).Kind(); got != vetrina.KindUnsupported {
		t.Fatalf("expected unsupported kind for nil, got %s", got)
	}
}

func TestWrapContentPassesThroughContent(t *testing.T) {
	inner := vetrina.WrapContent(plainView{})
	outer := vetrina.WrapContent(inner)
	if outer.Kind() != vetrina.KindView {
		t.Fatalf("rewrapping must not change the kind, got %s", outer.Kind())
	}
	if outer.View() == nil {
		t.Fatalf("rewrapping lost the view")
	}
}

func TestContentTitle(t *testing.T) {
	titled := vetrina.WrapContent(&titledView{title: "Settings"})
	if got := titled.Title(); got != "Settings" {
		t.Fatalf("expected title from Titled view, got %q", got)
	}
	if got := vetrina.WrapContent(plainView{}).Title(); got != "" {
		t.Fatalf("untitled view should have empty title, got %q", got)
	}
	if got := vetrina.WrapContent((*sdl.Texture)(nil)).Title(); got != "" {
		t.Fatalf("textures carry no title, got %q", got)
	}
}

func TestContentRefIdentity(t *testing.T) {
	view := plainView{}
	a := vetrina.NewContentRef(view)
	b := vetrina.NewContentRef(view)

	if a.Equal(b) {
		t.Fatalf("two refs wrapping the same value must be distinct")
	}
	if !a.Equal(a) {
		t.Fatalf("a ref must equal itself")
	}
	if a.ID() == b.ID() {
		t.Fatalf("ref IDs must be unique")
	}
}
