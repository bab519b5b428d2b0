package vetrina_test

import (
	"testing"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina"
)

func TestNoneIsEmpty(t *testing.T) {
	it := vetrina.None()
	if it.Mode() != vetrina.DisplayModeNone {
		t.Fatalf("expected mode none, got %s", it.Mode())
	}
	if it.Len() != 0 {
		t.Fatalf("expected no refs, got %d", it.Len())
	}
	if _, ok := it.Top(); ok {
		t.Fatalf("empty item should have no top")
	}
}

func TestNewItemHoldsOneRef(t *testing.T) {
	it := vetrina.NewItem(vetrina.DisplayModeModal, "anything")
	if it.Mode() != vetrina.DisplayModeModal {
		t.Fatalf("expected mode modal, got %s", it.Mode())
	}
	if it.Len() != 1 {
		t.Fatalf("expected one ref, got %d", it.Len())
	}
}

func TestNewStackStartsEmptyWithoutContents(t *testing.T) {
	it := vetrina.NewStack()
	if it.Mode() != vetrina.DisplayModePushed {
		t.Fatalf("expected mode pushed, got %s", it.Mode())
	}
	if it.Len() != 0 {
		t.Fatalf("expected empty stack, got %d refs", it.Len())
	}
}

func TestPushOnlyWorksInPushedMode(t *testing.T) {
	modal := vetrina.NewItem(vetrina.DisplayModeModal, "m")
	if modal.Push("x") {
		t.Fatalf("push should fail on a modal item")
	}
	if modal.Len() != 1 {
		t.Fatalf("failed push must leave the item untouched")
	}

	none := vetrina.None()
	if none.Push("x") {
		t.Fatalf("push should fail on the empty item")
	}

	stack := vetrina.NewStack()
	if !stack.Push("x") {
		t.Fatalf("push should succeed on a pushed item")
	}
	if stack.Len() != 1 {
		t.Fatalf("expected one ref after push, got %d", stack.Len())
	}
}

func TestPopReportsWhetherAnythingWasRemoved(t *testing.T) {
	stack := vetrina.NewStack("a", "b")
	if !stack.Pop() {
		t.Fatalf("pop should succeed with refs present")
	}
	if stack.Len() != 1 {
		t.Fatalf("expected one ref after pop, got %d", stack.Len())
	}
	if !stack.Pop() {
		t.Fatalf("pop should succeed on the last ref")
	}
	if stack.Pop() {
		t.Fatalf("pop should fail on an empty stack")
	}

	modal := vetrina.NewItem(vetrina.DisplayModeModal, "m")
	if modal.Pop() {
		t.Fatalf("pop should fail outside pushed mode")
	}
	if modal.Len() != 1 {
		t.Fatalf("overlay items keep their ref for their whole lifetime")
	}
}

func TestPopToRootClearsTheWholeStack(t *testing.T) {
	stack := vetrina.NewStack("a", "b", "c")
	if !stack.PopToRoot() {
		t.Fatalf("popToRoot should succeed with refs present")
	}
	if stack.Len() != 0 {
		t.Fatalf("expected empty stack, got %d refs", stack.Len())
	}
	if stack.PopToRoot() {
		t.Fatalf("popToRoot should fail on an already empty stack")
	}
	if stack.Mode() != vetrina.DisplayModePushed {
		t.Fatalf("popToRoot must not change the mode")
	}
}

func TestTopIsTheMostRecentlyPushedRef(t *testing.T) {
	stack := vetrina.NewStack("a")
	first, _ := stack.Top()
	stack.Push("b")
	second, ok := stack.Top()
	if !ok || second.Equal(first) {
		t.Fatalf("top should be the newest ref")
	}
	stack.Pop()
	again, _ := stack.Top()
	if !again.Equal(first) {
		t.Fatalf("pop should expose the previous ref again")
	}
}

func TestItemCopiesDoNotShareTails(t *testing.T) {
	base := vetrina.NewStack("root")
	fork := base

	if !base.Push("left") {
		t.Fatalf("push on base should succeed")
	}
	if !fork.Push("right") {
		t.Fatalf("push on fork should succeed")
	}

	baseTop, _ := base.Top()
	forkTop, _ := fork.Top()
	if baseTop.Equal(forkTop) {
		t.Fatalf("a push through one copy leaked into the other")
	}
}

func TestRefsReturnsACopy(t *testing.T) {
	stack := vetrina.NewStack("a", "b")
	refs := stack.Refs()
	if len(refs) != 2 {
		t.Fatalf("expected two refs, got %d", len(refs))
	}
	refs[0] = vetrina.NewContentRef("other")

	original, _ := stack.Top()
	fresh := stack.Refs()
	if !fresh[1].Equal(original) {
		t.Fatalf("mutating the returned slice must not affect the item")
	}
}

func TestDisplayModeStrings(t *testing.T) {
	cases := map[vetrina.DisplayMode]string{
		vetrina.DisplayModeNone:   "none",
		vetrina.DisplayModePushed: "pushed",
		vetrina.DisplayModeModal:  "modal",
		vetrina.DisplayModeSheet:  "sheet",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Fatalf("mode %d: expected %q, got %q", mode, want, got)
		}
	}
}
