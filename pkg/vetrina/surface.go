package vetrina

// OverlayStyle distinguishes the two overlay presentations a surface can
// show for a single unit of content.
type OverlayStyle int

const (
	// OverlayModal covers the whole screen.
	OverlayModal OverlayStyle = iota
	// OverlaySheet slides a card over the current screen, leaving the
	// screen behind it visible and dimmed.
	OverlaySheet
)

// String returns the style name.
func (s OverlayStyle) String() string {
	if s == OverlaySheet {
		return "sheet"
	}
	return "modal"
}

// CloseButton selects the dismiss affordance drawn on sheet and modal
// chrome.
type CloseButton int

const (
	// CloseButtonNone draws no dismiss affordance; the B button or a
	// hardware back key dismisses.
	CloseButtonNone CloseButton = iota
	// CloseButtonLabel draws a localized "Close" label in the chrome.
	CloseButtonLabel
	// CloseButtonIcon draws an X glyph in the chrome.
	CloseButtonIcon
)

// SurfaceEvents receives user-driven navigation coming back out of a
// surface. A NavigationHost implements it; surfaces call it from the UI
// loop only.
type SurfaceEvents interface {
	// StackTruncated reports that the user navigated back within a bound
	// stack, leaving depth entries. Stack-model surfaces only.
	StackTruncated(depth int)
	// LinkCleared reports that the user backed out of the active link.
	// Link-model surfaces only.
	LinkCleared()
	// OverlayDismissed reports that the user dismissed the modal or sheet.
	OverlayDismissed()
}

// Surface is the rendering side of a navigation host: the part of the
// shell that actually shows stacks, links and overlays. The SDL shell
// implements it for real; tests substitute fakes so the reconciler runs
// without a window.
//
// A surface renders whatever the latest Show call described and reports
// user-driven back-navigation through the bound SurfaceEvents. Show calls
// are idempotent descriptions of desired state, not commands to animate.
type Surface interface {
	// Bind installs the event sink. Called once, before any Show call.
	Bind(events SurfaceEvents)
	// ShowStack binds refs as the authoritative navigation stack. title
	// is the chrome title for the visible entry ("" when none). wrap
	// selects whether the surface draws its own container or expects an
	// ambient one from an enclosing scope.
	ShowStack(refs []ContentRef, title string, wrap bool)
	// ShowLink binds the single next destination. next is nil when the
	// scope has nothing pushed, in which case the surface shows its empty
	// placeholder and no active link.
	ShowLink(next *ContentRef, title string, wrap bool)
	// ShowOverlay presents one ref as a modal or sheet.
	ShowOverlay(ref ContentRef, style OverlayStyle)
	// Clear removes everything this surface was showing.
	Clear()
}
