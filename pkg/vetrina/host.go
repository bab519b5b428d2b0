package vetrina

import (
	"log/slog"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/internal"
)

// RenderPolicy selects how a navigation host renders the pushed scope it
// observes. It is chosen per host instance at Attach time.
type RenderPolicy int

const (
	// WrapScope makes the host own and draw its own navigation container.
	WrapScope RenderPolicy = iota
	// UseAmbientScope makes the host draw navigation elements while
	// relying on a container provided by an enclosing scope.
	UseAmbientScope
	// Unmanaged renders no navigation elements at all. Pushes and pops on
	// the observed item stay invisible, though the data model still
	// accepts them; modal and sheet overlays still present.
	Unmanaged
)

// String returns the policy name.
func (p RenderPolicy) String() string {
	switch p {
	case UseAmbientScope:
		return "ambient"
	case Unmanaged:
		return "unmanaged"
	default:
		return "wrap"
	}
}

// HostState is the presentation state a host derives from the observed
// item's display mode. The host holds no navigation state of its own.
type HostState int

const (
	// HostIdle shows nothing.
	HostIdle HostState = iota
	// HostPresentingStack has a pushed scope bound to the surface.
	HostPresentingStack
	// HostPresentingModal has a modal overlay up.
	HostPresentingModal
	// HostPresentingSheet has a sheet overlay up.
	HostPresentingSheet
)

// String returns the state name.
func (s HostState) String() string {
	switch s {
	case HostPresentingStack:
		return "presenting-stack"
	case HostPresentingModal:
		return "presenting-modal"
	case HostPresentingSheet:
		return "presenting-sheet"
	default:
		return "idle"
	}
}

// NavigationHost reconciles one coordinator's current item onto one
// surface. It observes every item assignment, renders the matching
// presentation, and writes user-driven back-navigation from the surface
// back into the coordinator through the same setter application code uses.
//
// A host is passive between item assignments and surface callbacks, and is
// confined to the UI loop like everything else in this package.
type NavigationHost struct {
	coordinator DisplayCoordinator
	surface     Surface
	policy      RenderPolicy
	model       NavModel
	log         *slog.Logger

	cancel func()
	closed bool

	// Transient presentation flags mirroring the observed display mode.
	modalShown bool
	sheetShown bool
}

// Attach wires a navigation host between coordinator and surface and
// performs the initial reconcile, so the surface immediately reflects the
// coordinator's current item. The navigation model is captured from
// ActiveNavModel at attach time and stays fixed for the host's lifetime.
func Attach(coordinator DisplayCoordinator, policy RenderPolicy, surface Surface) *NavigationHost {
	h := &NavigationHost{
		coordinator: coordinator,
		surface:     surface,
		policy:      policy,
		model:       ActiveNavModel(),
		log:         internal.GetInternalLogger(),
	}
	surface.Bind(h)
	h.cancel = coordinator.Observe(h.reconcile)
	h.reconcile(coordinator.Item())
	return h
}

// Close detaches the host: the observation is cancelled and the surface is
// cleared. The coordinator's item is left as is. Close is idempotent.
func (h *NavigationHost) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.cancel()
	h.surface.Clear()
}

// State returns the host's current presentation state.
func (h *NavigationHost) State() HostState {
	switch h.coordinator.Item().Mode() {
	case DisplayModePushed:
		return HostPresentingStack
	case DisplayModeModal:
		return HostPresentingModal
	case DisplayModeSheet:
		return HostPresentingSheet
	default:
		return HostIdle
	}
}

// reconcile renders the presentation the item describes. It runs on every
// item assignment and must stay idempotent: surface Show calls describe
// desired state, so re-rendering an unchanged item is harmless.
func (h *NavigationHost) reconcile(item NavigationItem) {
	if h.closed {
		return
	}
	h.log.Debug("Reconciling navigation item",
		"mode", item.Mode().String(),
		"refs", item.Len(),
		"policy", h.policy.String(),
		"model", h.model.String())

	switch item.Mode() {
	case DisplayModePushed:
		h.modalShown, h.sheetShown = false, false
		h.renderScope(item)
	case DisplayModeModal:
		h.modalShown, h.sheetShown = true, false
		h.renderOverlay(item, OverlayModal)
	case DisplayModeSheet:
		h.modalShown, h.sheetShown = false, true
		h.renderOverlay(item, OverlaySheet)
	default:
		h.modalShown, h.sheetShown = false, false
		h.surface.Clear()
	}
}

func (h *NavigationHost) renderScope(item NavigationItem) {
	if h.policy == Unmanaged {
		h.surface.Clear()
		return
	}
	wrap := h.policy == WrapScope

	if h.model == LinkModel {
		refs := item.Refs()
		if len(refs) == 0 {
			h.surface.ShowLink(nil, "", wrap)
			return
		}
		next := refs[len(refs)-1]
		h.surface.ShowLink(&next, next.Content().Title(), wrap)
		return
	}

	title := ""
	if top, ok := item.Top(); ok {
		title = top.Content().Title()
	}
	h.surface.ShowStack(item.Refs(), title, wrap)
}

func (h *NavigationHost) renderOverlay(item NavigationItem, style OverlayStyle) {
	ref, ok := item.Top()
	if !ok {
		h.surface.Clear()
		return
	}
	h.surface.ShowOverlay(ref, style)
}

// StackTruncated pops the observed item down to depth after the user
// navigated back inside a bound stack. The write-back happens only while
// the item is still in DisplayModePushed; a dismissal or reassignment that
// raced ahead of the callback makes this a stale report to be dropped.
func (h *NavigationHost) StackTruncated(depth int) {
	if h.closed || depth < 0 {
		return
	}
	item := h.coordinator.Item()
	if item.Mode() != DisplayModePushed {
		return
	}
	changed := false
	for item.Len() > depth {
		if !item.Pop() {
			break
		}
		changed = true
	}
	if changed {
		h.coordinator.SetItem(item)
	}
}

// LinkCleared pops the last ref after the user backed out of the active
// link. With nothing pushed the report is dropped.
func (h *NavigationHost) LinkCleared() {
	if h.closed {
		return
	}
	item := h.coordinator.Item()
	if item.Pop() {
		h.coordinator.SetItem(item)
	}
}

// OverlayDismissed resets the coordinator's item to the canonical empty
// item after the user dismissed a modal or sheet. Overlay items hold
// exactly one ref and have no back concept, so dismissal is a hard reset,
// never a pop.
func (h *NavigationHost) OverlayDismissed() {
	if h.closed {
		return
	}
	h.coordinator.SetItem(None())
}
