package vetrina_test

import (
	"fmt"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina"
)

// printSurface narrates every description it receives, standing in for the
// SDL surface.
type printSurface struct {
	events vetrina.SurfaceEvents
}

func (s *printSurface) Bind(events vetrina.SurfaceEvents) { s.events = events }

func (s *printSurface) ShowStack(refs []vetrina.ContentRef, title string, wrap bool) {
	fmt.Printf("stack depth=%d title=%q\n", len(refs), title)
}

func (s *printSurface) ShowLink(next *vetrina.ContentRef, title string, wrap bool) {
	if next == nil {
		fmt.Println("link none")
		return
	}
	fmt.Printf("link title=%q\n", title)
}

func (s *printSurface) ShowOverlay(ref vetrina.ContentRef, style vetrina.OverlayStyle) {
	fmt.Printf("overlay %s title=%q\n", style, ref.Content().Title())
}

func (s *printSurface) Clear() { fmt.Println("cleared") }

// Example walks one coordinator through the full presentation cycle: an
// open stack scope, two pushes, a user-driven back, a sheet, and its
// dismissal.
func Example() {
	vetrina.SetNavModel(vetrina.StackModel)

	menu := vetrina.NewCoordinator()
	menu.SetItem(vetrina.NewStack())

	surface := &printSurface{}
	host := vetrina.Attach(menu, vetrina.WrapScope, surface)

	vetrina.Push(menu, &vetrina.Label{Title: "Detail"})
	vetrina.Push(menu, &vetrina.Label{Title: "Deeper"})

	// The user pressed back; the surface reports the remaining depth and
	// the host writes it into the coordinator.
	surface.events.StackTruncated(1)

	// Presenting replaces the whole item; the stack is discarded.
	menu.SetItem(vetrina.NewItem(vetrina.DisplayModeSheet, &vetrina.Label{Title: "Settings"}))

	// Dismissing an overlay resets to the empty item, never pops.
	surface.events.OverlayDismissed()

	host.Close()

	// Output:
	// stack depth=0 title=""
	// stack depth=1 title="Detail"
	// stack depth=2 title="Deeper"
	// stack depth=1 title="Detail"
	// overlay sheet title="Settings"
	// cleared
	// cleared
}

// Example_scopeChain shows delegation: a nested pane with no scope of its
// own pushes into, and clears, the root scope that encloses it.
func Example_scopeChain() {
	vetrina.SetNavModel(vetrina.StackModel)

	root := vetrina.NewCoordinator()
	root.SetItem(vetrina.NewStack())

	pane := vetrina.NewCoordinator()
	pane.SetParent(root)

	surface := &printSurface{}
	host := vetrina.Attach(root, vetrina.WrapScope, surface)

	// The pane is idle, so the push climbs the chain to the root scope.
	vetrina.Push(pane, &vetrina.Label{Title: "From the pane"})

	// So does pop-to-root.
	vetrina.PopToRoot(pane)

	host.Close()

	// Output:
	// stack depth=0 title=""
	// stack depth=1 title="From the pane"
	// stack depth=0 title=""
	// cleared
}
