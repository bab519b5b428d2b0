package vetrina

import "slices"

// DisplayCoordinator is the capability an object must satisfy to take part
// in the navigation chain. A coordinator owns exactly one NavigationItem at
// a time (its current display state) and may hold a non-owning reference to
// a parent coordinator, which the chain helpers use to delegate push and
// pop operations up to an enclosing scope.
//
// Embed ItemState to satisfy the full contract; the chain semantics live in
// the package-level Push, PopBack, PopToRoot, ResetItem and ResetParentItem
// functions, which operate on any DisplayCoordinator.
type DisplayCoordinator interface {
	// Item returns the current navigation item.
	Item() NavigationItem
	// SetItem replaces the current item wholesale and notifies every
	// observer. Replacing never merges: a previously displayed item is
	// discarded entirely. Observers fire on every assignment, including
	// assignment of an equal-looking item, because the ref identities
	// inside may have changed.
	SetItem(item NavigationItem)
	// Parent returns the parent coordinator, or nil at the top of the
	// chain.
	Parent() DisplayCoordinator
	// SetParent installs or clears (nil) the parent reference. The
	// reference is non-owning: a child must clear it when the parent is
	// torn down.
	SetParent(parent DisplayCoordinator)
	// Observe registers fn to run on every item assignment. The returned
	// cancel function removes the registration and is safe to call more
	// than once.
	Observe(fn func(NavigationItem)) (cancel func())
}

type itemObserver struct {
	id int
	fn func(NavigationItem)
}

// ItemState is the default implementation of the DisplayCoordinator
// contract, meant to be embedded in whatever struct owns a navigation
// scope. The zero value is ready to use: its item is the canonical empty
// item and it has no parent.
//
// Like everything in this package, ItemState is confined to the UI loop.
// It performs no locking; callers marshal all mutations onto one goroutine.
type ItemState struct {
	item      NavigationItem
	parent    DisplayCoordinator
	observers []itemObserver
	lastID    int
}

// Item returns the current navigation item.
func (s *ItemState) Item() NavigationItem { return s.item }

// SetItem replaces the current item and notifies every observer, in
// registration order, on every call.
func (s *ItemState) SetItem(item NavigationItem) {
	s.item = item
	// Snapshot so an observer registering or cancelling during the
	// callback does not disturb this notification pass.
	for _, o := range slices.Clone(s.observers) {
		o.fn(item)
	}
}

// Parent returns the parent coordinator, or nil.
func (s *ItemState) Parent() DisplayCoordinator { return s.parent }

// SetParent installs or clears the parent reference.
func (s *ItemState) SetParent(parent DisplayCoordinator) { s.parent = parent }

// Observe registers fn to run on every item assignment.
func (s *ItemState) Observe(fn func(NavigationItem)) (cancel func()) {
	s.lastID++
	id := s.lastID
	s.observers = append(s.observers, itemObserver{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = slices.Delete(s.observers, i, i+1)
				return
			}
		}
	}
}

// Coordinator is a standalone DisplayCoordinator for callers that have no
// natural owning struct to embed ItemState into.
type Coordinator struct {
	ItemState
}

// NewCoordinator returns an empty standalone coordinator.
func NewCoordinator() *Coordinator { return &Coordinator{} }

// scopeOpen reports whether delegation may climb past a coordinator in the
// given mode. Idle coordinators stay eligible so a chain with dormant
// ancestors still resolves to its topmost scope; whether the operation then
// takes effect is up to the landing item's own mode.
func scopeOpen(mode DisplayMode) bool {
	return mode == DisplayModePushed || mode == DisplayModeNone
}

// Push shows content by pushing it onto the active navigation scope.
//
// Under StackModel, scopes share one stack: when a parent exists whose item
// is pushed or idle, the call delegates up the chain recursively and the
// content lands on the topmost such ancestor. Otherwise, and always under
// LinkModel, the push is local and takes effect only while the
// coordinator's own item is in DisplayModePushed. When no pushed scope is
// active anywhere in the chain the call is dropped silently; pushing with
// nowhere to push is routine, not an error.
func Push(c DisplayCoordinator, content any) {
	if ActiveNavModel() == StackModel {
		if p := c.Parent(); p != nil && scopeOpen(p.Item().Mode()) {
			Push(p, content)
			return
		}
	}
	item := c.Item()
	if item.Push(content) {
		c.SetItem(item)
	}
}

// PopBack removes the most recently pushed content from the nearest scope
// that has any. It first tries the coordinator's own item; when that has
// nothing to pop and a parent exists whose item is pushed or idle, the call
// walks up the chain. It stops as soon as one ancestor pops, or silently
// when the chain is exhausted.
func PopBack(c DisplayCoordinator) {
	item := c.Item()
	if item.Pop() {
		c.SetItem(item)
		return
	}
	if p := c.Parent(); p != nil && scopeOpen(p.Item().Mode()) {
		PopBack(p)
	}
}

// PopToRoot clears the active navigation scope back to its own screen.
//
// Under StackModel the call delegates up while the parent's item is pushed
// or idle, clearing the stack of the topmost such ancestor. Under LinkModel
// it delegates only while the parent's item is strictly in
// DisplayModePushed, and otherwise acts locally. The predicates are
// distinct on purpose: an idle legacy container must never be asked to
// clear a chain it did not render.
func PopToRoot(c DisplayCoordinator) {
	if p := c.Parent(); p != nil {
		switch mode := p.Item().Mode(); ActiveNavModel() {
		case LinkModel:
			if mode == DisplayModePushed {
				PopToRoot(p)
				return
			}
		default:
			if scopeOpen(mode) {
				PopToRoot(p)
				return
			}
		}
	}
	item := c.Item()
	if item.PopToRoot() {
		c.SetItem(item)
	}
}

// ResetItem sets the coordinator's item to the canonical empty item,
// tearing down whatever this coordinator was displaying.
func ResetItem(c DisplayCoordinator) {
	c.SetItem(None())
}

// ResetParentItem resets the parent coordinator's item, if a parent exists.
func ResetParentItem(c DisplayCoordinator) {
	if p := c.Parent(); p != nil {
		p.SetItem(None())
	}
}
