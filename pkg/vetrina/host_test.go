package vetrina_test

import (
	"testing"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina"
)

// fakeSurface records the latest Show call so tests can drive the host
// without a window. Last description wins, like the real surface.
type fakeSurface struct {
	events vetrina.SurfaceEvents

	showing    string // "", "stack", "link", "overlay"
	stack      []vetrina.ContentRef
	link       *vetrina.ContentRef
	title      string
	wrap       bool
	overlayRef vetrina.ContentRef
	style      vetrina.OverlayStyle

	clears int
	shows  int
}

func (s *fakeSurface) Bind(events vetrina.SurfaceEvents) { s.events = events }

func (s *fakeSurface) ShowStack(refs []vetrina.ContentRef, title string, wrap bool) {
	s.shows++
	s.showing = "stack"
	s.stack, s.link = refs, nil
	s.title, s.wrap = title, wrap
}

func (s *fakeSurface) ShowLink(next *vetrina.ContentRef, title string, wrap bool) {
	s.shows++
	s.showing = "link"
	s.stack, s.link = nil, next
	s.title, s.wrap = title, wrap
}

func (s *fakeSurface) ShowOverlay(ref vetrina.ContentRef, style vetrina.OverlayStyle) {
	s.shows++
	s.showing = "overlay"
	s.overlayRef, s.style = ref, style
}

func (s *fakeSurface) Clear() {
	s.clears++
	s.showing = ""
	s.stack, s.link = nil, nil
	s.title = ""
}

func TestAttachRendersTheCurrentItem(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a", "b"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	if surface.showing != "stack" || len(surface.stack) != 2 {
		t.Fatalf("attach must render the existing stack, got %q with %d refs", surface.showing, len(surface.stack))
	}
	if !surface.wrap {
		t.Fatalf("WrapScope hosts bind wrapping surfaces")
	}
	if surface.events == nil {
		t.Fatalf("attach must bind the event sink")
	}
	if host.State() != vetrina.HostPresentingStack {
		t.Fatalf("expected presenting-stack, got %s", host.State())
	}
}

func TestHostPropagatesTheVisibleTitle(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack())

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	vetrina.Push(c, &vetrina.Label{Title: "Settings"})
	if surface.title != "Settings" {
		t.Fatalf("expected title from the visible entry, got %q", surface.title)
	}

	vetrina.Push(c, &vetrina.Label{Title: "Network"})
	if surface.title != "Network" {
		t.Fatalf("the newest entry owns the title, got %q", surface.title)
	}
}

func TestStackTruncationWritesBack(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a", "b", "c"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	surface.events.StackTruncated(1)

	if c.Item().Len() != 1 {
		t.Fatalf("expected the item truncated to 1, got %d", c.Item().Len())
	}
	if len(surface.stack) != 1 {
		t.Fatalf("the write-back must re-render, surface shows %d refs", len(surface.stack))
	}

	surface.events.StackTruncated(1) // no change; must not re-assign
	shows := surface.shows
	surface.events.StackTruncated(5) // deeper than the stack; dropped
	if surface.shows != shows {
		t.Fatalf("reports that change nothing must not render")
	}
}

func TestStaleTruncationIsDropped(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a", "b"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	// The app replaced the stack with a modal before the surface callback
	// landed; the truncation now refers to a dead presentation.
	c.SetItem(vetrina.NewItem(vetrina.DisplayModeModal, &vetrina.Label{Title: "About"}))
	surface.events.StackTruncated(0)

	item := c.Item()
	if item.Mode() != vetrina.DisplayModeModal || item.Len() != 1 {
		t.Fatalf("a stale truncation must not touch the modal, got %s with %d refs", item.Mode(), item.Len())
	}
}

func TestLinkModelBindsOnlyTheNewestRef(t *testing.T) {
	withNavModel(t, vetrina.LinkModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a", "b"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	if surface.showing != "link" || surface.link == nil {
		t.Fatalf("link model must bind a link, got %q", surface.showing)
	}
	top, _ := c.Item().Top()
	if !surface.link.Equal(top) {
		t.Fatalf("the link must be the newest ref")
	}
}

func TestLinkClearedPopsOneLevel(t *testing.T) {
	withNavModel(t, vetrina.LinkModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a", "b"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	surface.events.LinkCleared()
	if c.Item().Len() != 1 {
		t.Fatalf("expected one ref left, got %d", c.Item().Len())
	}
	if surface.link == nil {
		t.Fatalf("the remaining ref must be bound as the new link")
	}

	surface.events.LinkCleared()
	if c.Item().Len() != 0 {
		t.Fatalf("expected the last ref popped, got %d", c.Item().Len())
	}
	if surface.link != nil {
		t.Fatalf("an exhausted scope binds no link")
	}

	surface.events.LinkCleared() // nothing left; must be silent
	if c.Item().Mode() != vetrina.DisplayModePushed {
		t.Fatalf("clearing an empty link must not change the item")
	}
}

func TestOverlayDismissalIsAHardReset(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewItem(vetrina.DisplayModeSheet, &vetrina.Label{Title: "Settings"}))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	if surface.showing != "overlay" || surface.style != vetrina.OverlaySheet {
		t.Fatalf("expected a sheet overlay, got %q (%s)", surface.showing, surface.style)
	}

	surface.events.OverlayDismissed()

	item := c.Item()
	if item.Mode() != vetrina.DisplayModeNone || item.Len() != 0 {
		t.Fatalf("dismissal must reset to the empty item, got %s with %d refs", item.Mode(), item.Len())
	}
	if surface.showing != "" {
		t.Fatalf("the surface must be cleared after dismissal")
	}
}

func TestModalOverlayStyle(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewItem(vetrina.DisplayModeModal, &vetrina.Label{Title: "About"}))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	if surface.style != vetrina.OverlayModal {
		t.Fatalf("expected a modal overlay, got %s", surface.style)
	}
	if host.State() != vetrina.HostPresentingModal {
		t.Fatalf("expected presenting-modal, got %s", host.State())
	}
}

func TestUnmanagedPolicyHidesScopesButNotOverlays(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.Unmanaged, surface)
	defer host.Close()

	if surface.showing != "" {
		t.Fatalf("unmanaged hosts render no navigation, got %q", surface.showing)
	}

	// The data model still accepts pushes; they just stay invisible.
	vetrina.Push(c, "b")
	if c.Item().Len() != 2 {
		t.Fatalf("expected the push accepted, got %d refs", c.Item().Len())
	}
	if surface.showing != "" {
		t.Fatalf("pushes must stay invisible under Unmanaged")
	}

	c.SetItem(vetrina.NewItem(vetrina.DisplayModeModal, &vetrina.Label{Title: "About"}))
	if surface.showing != "overlay" {
		t.Fatalf("overlays still present under Unmanaged, got %q", surface.showing)
	}
}

func TestFreshWrapHostRendersWhatUnmanagedAccumulated(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a"))

	hidden := &fakeSurface{}
	unmanaged := vetrina.Attach(c, vetrina.Unmanaged, hidden)
	vetrina.Push(c, "b")
	unmanaged.Close()

	visible := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, visible)
	defer host.Close()

	if visible.showing != "stack" || len(visible.stack) != 2 {
		t.Fatalf("a fresh wrapping host must render the accumulated stack, got %q with %d refs",
			visible.showing, len(visible.stack))
	}
}

func TestAmbientScopePolicyDoesNotWrap(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.UseAmbientScope, surface)
	defer host.Close()

	if surface.showing != "stack" {
		t.Fatalf("ambient hosts still bind the stack, got %q", surface.showing)
	}
	if surface.wrap {
		t.Fatalf("ambient hosts must not wrap")
	}
}

func TestCloseDetachesTheHost(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)

	host.Close()
	host.Close() // idempotent

	if surface.clears != 1 {
		t.Fatalf("expected exactly one clear, got %d", surface.clears)
	}

	shows := surface.shows
	c.SetItem(vetrina.NewStack("b"))
	if surface.shows != shows {
		t.Fatalf("a closed host must not render")
	}

	// Late surface callbacks after Close are dropped too.
	surface.events.StackTruncated(0)
	if c.Item().Len() != 1 {
		t.Fatalf("a closed host must not write back, got %d refs", c.Item().Len())
	}
}

func TestHostCapturesTheModelAtAttach(t *testing.T) {
	withNavModel(t, vetrina.StackModel)
	c := vetrina.NewCoordinator()
	c.SetItem(vetrina.NewStack("a"))

	surface := &fakeSurface{}
	host := vetrina.Attach(c, vetrina.WrapScope, surface)
	defer host.Close()

	// Flipping the global model must not affect an attached host.
	vetrina.SetNavModel(vetrina.LinkModel)
	c.SetItem(vetrina.NewStack("a", "b"))

	if surface.showing != "stack" {
		t.Fatalf("the host must keep its attach-time model, got %q", surface.showing)
	}
}
