package vetrina

// NavModel identifies which navigation rendering model the running shell
// generation exposes. It is a static capability of the platform: Init (or a
// platform profile) selects it once at startup, and nothing re-probes it
// afterwards.
type NavModel int

const (
	// StackModel is the modern rendering model. The shell's navigation
	// container binds the whole ref sequence of a pushed item as its
	// single source of truth, and scopes share one stack owned by the
	// topmost active coordinator.
	StackModel NavModel = iota
	// LinkModel is the legacy rendering model. Each level exposes only a
	// single "next destination" slot, so pushed chains are built one link
	// at a time and every coordinator renders its own link.
	LinkModel
)

// String returns the model name.
func (m NavModel) String() string {
	if m == LinkModel {
		return "link"
	}
	return "stack"
}

var activeNavModel = StackModel

// SetNavModel selects the navigation rendering model for the process.
// Called once during Init from the platform profile; call it directly only
// in tests or when running without a shell.
func SetNavModel(m NavModel) {
	activeNavModel = m
}

// ActiveNavModel returns the model selected for this process.
func ActiveNavModel() NavModel {
	return activeNavModel
}
