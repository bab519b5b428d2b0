// Package vetrina decouples "what view to show and how" from the view code
// itself. A view asks for a push, a modal or a sheet by mutating one piece
// of observable state; a reconciler watches that state and drives whichever
// navigation primitives the running shell generation actually has.
//
// The package papers over the breaking change between the two generations
// of shell navigation containers. Modern shells bind a whole ordered stack
// as the source of truth (StackModel); legacy shells expose only a single
// "next destination" slot per level (LinkModel). Application code targets
// neither: it works against NavigationItem and DisplayCoordinator, and the
// NavigationHost translates.
//
// # Basic Usage
//
//	// A screen owns a coordinator; embedding ItemState is enough.
//	type LibraryScreen struct {
//	    vetrina.ItemState
//	    // ... screen fields
//	}
//
//	screen := &LibraryScreen{}
//
//	// Attach a host so the item gets rendered. The shell provides the
//	// Surface; tests substitute a fake.
//	host := vetrina.Attach(screen, vetrina.WrapScope, surface)
//	defer host.Close()
//
//	// Show a detail view by pushing it.
//	screen.SetItem(vetrina.NewStack(detailView))
//
//	// Or push into whatever scope is already active up the chain.
//	vetrina.Push(screen, detailView)
//
//	// Present a sheet; user dismissal resets the item to vetrina.None().
//	screen.SetItem(vetrina.NewItem(vetrina.DisplayModeSheet, settingsView))
//
// # Scope Chains
//
// Coordinators form parent chains. A child created by a screen can delegate
// its pushes and pops to the screen's own scope:
//
//	child := vetrina.NewCoordinator()
//	child.SetParent(screen)
//	vetrina.Push(child, view) // lands on the topmost open scope
//
// Under StackModel the chain shares one stack owned by the topmost pushed
// or idle ancestor. Under LinkModel every coordinator renders its own link
// and pushes stay local. PopBack walks up until something pops; PopToRoot
// clears the owning scope. All of it is total: a push with no open scope
// anywhere is silently dropped, never an error.
//
// # Threading
//
// Everything here runs on the UI loop. Coordinators and hosts do no
// locking; marshal all mutations onto the loop (the shell's hardware
// back-button monitor does exactly that with SDL user events).
package vetrina
