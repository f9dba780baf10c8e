package breadcrumb

import (
	"errors"
	"fmt"
)

// Sentinel errors for shell construction and lifecycle misuse.
var (
	// ErrNoPages indicates a shell was built without any page specs.
	ErrNoPages = errors.New("shell needs at least one page")

	// ErrDuplicatePage indicates two page specs share the same page value.
	ErrDuplicatePage = errors.New("duplicate page spec")

	// ErrUnknownBinding indicates a button binding targets a page no
	// spec describes.
	ErrUnknownBinding = errors.New("binding targets unknown page")

	// ErrAlreadyRunning indicates Run was called while the shell's loop
	// was already active.
	ErrAlreadyRunning = errors.New("shell already running")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong with breadcrumb itself (SDL not initialized,
// rendering failed, icon rasterization broke). These errors are
// typically fatal or require framework-level recovery.
//
// Use this for errors that the consuming application cannot reasonably
// handle or recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "run_shell", "rasterize_icon")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("breadcrumb: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("breadcrumb: %s", e.Op)
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
