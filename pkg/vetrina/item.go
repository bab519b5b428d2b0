package vetrina

import "slices"

// DisplayMode tags how a navigation item wants its content shown.
type DisplayMode int

const (
	// DisplayModeNone shows nothing. The canonical idle state.
	DisplayModeNone DisplayMode = iota
	// DisplayModePushed pushes content onto the scope's navigation stack.
	DisplayModePushed
	// DisplayModeModal presents a single unit of content full-screen.
	DisplayModeModal
	// DisplayModeSheet presents a single unit of content as a sheet over
	// the current screen.
	DisplayModeSheet
)

// String returns the mode name.
func (m DisplayMode) String() string {
	switch m {
	case DisplayModePushed:
		return "pushed"
	case DisplayModeModal:
		return "modal"
	case DisplayModeSheet:
		return "sheet"
	default:
		return "none"
	}
}

// NavigationItem describes what to show and how: a display mode plus an
// ordered sequence of content refs. For DisplayModePushed the sequence is a
// navigation stack (index 0 is the root of the scope, the last entry is
// visible); Modal and Sheet items hold exactly one ref for their lifetime.
//
// Items are values. The zero NavigationItem is the canonical empty item
// (mode None, no refs). The display mode is fixed at construction; showing
// something differently means replacing the whole item, never mutating the
// mode in place.
type NavigationItem struct {
	mode DisplayMode
	refs []ContentRef
}

// None returns the canonical empty item, representing "nothing displayed".
func None() NavigationItem { return NavigationItem{} }

// NewItem builds an item holding a single ref wrapping content. It accepts
// any mode, including DisplayModeNone, where the content is simply ignored
// on render.
func NewItem(mode DisplayMode, content any) NavigationItem {
	return NavigationItem{mode: mode, refs: []ContentRef{NewContentRef(content)}}
}

// NewStack builds a DisplayModePushed item whose stack holds one ref per
// given content, in order. With no arguments the stack starts empty.
func NewStack(contents ...any) NavigationItem {
	it := NavigationItem{mode: DisplayModePushed}
	for _, c := range contents {
		it.refs = append(it.refs, NewContentRef(c))
	}
	return it
}

// Mode returns the item's display mode.
func (it NavigationItem) Mode() DisplayMode { return it.mode }

// Len returns the number of refs the item holds.
func (it NavigationItem) Len() int { return len(it.refs) }

// Refs returns a copy of the item's ref sequence.
func (it NavigationItem) Refs() []ContentRef {
	return slices.Clone(it.refs)
}

// Top returns the most recently pushed ref, the visible one, and whether
// the item holds any refs at all.
func (it NavigationItem) Top() (ContentRef, bool) {
	if len(it.refs) == 0 {
		return ContentRef{}, false
	}
	return it.refs[len(it.refs)-1], true
}

// Push appends a new ref wrapping content. It takes effect only when the
// mode is DisplayModePushed; in any other mode it reports false and leaves
// the item untouched. Wrong-mode pushes are routine, not errors.
func (it *NavigationItem) Push(content any) bool {
	if it.mode != DisplayModePushed {
		return false
	}
	// Item copies share backing arrays; clip so a push through one copy
	// can never write a ref into another copy's tail.
	it.refs = append(slices.Clip(it.refs), NewContentRef(content))
	return true
}

// Pop removes the most recently pushed ref. It reports whether a ref was
// removed: false when the mode is not DisplayModePushed or the stack is
// already empty.
func (it *NavigationItem) Pop() bool {
	if it.mode != DisplayModePushed || len(it.refs) == 0 {
		return false
	}
	it.refs = it.refs[:len(it.refs)-1]
	return true
}

// PopToRoot clears the whole stack, returning to the scope's own screen.
// It reports whether anything was removed: false when the mode is not
// DisplayModePushed or the stack is already empty.
func (it *NavigationItem) PopToRoot() bool {
	if it.mode != DisplayModePushed || len(it.refs) == 0 {
		return false
	}
	it.refs = nil
	return true
}
