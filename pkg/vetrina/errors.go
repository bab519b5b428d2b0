package vetrina

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
//
// The navigation model itself never fails: item mutations signal "no
// effect" with booleans, exhausted delegation chains terminate silently,
// and unsupported content degrades to a placeholder. Errors exist only at
// the shell boundary, where SDL, fonts and input devices live.
var (
	// ErrShellClosed indicates the user closed the shell (quit button,
	// window close). This is normal flow control, not a failure.
	ErrShellClosed = errors.New("shell closed by user")
)

// InfrastructureError represents a shell-level error meaning something is
// wrong with vetrina itself (window creation failed, font missing, icon
// rasterization failed, etc.). These errors are typically fatal or require
// shell-level recovery.
//
// Use this for errors that the consuming application cannot reasonably
// handle or recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vetrina: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vetrina: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsShellClosed checks if an error indicates the user closed the shell.
func IsShellClosed(err error) bool {
	return errors.Is(err, ErrShellClosed)
}
