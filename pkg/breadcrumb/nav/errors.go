package nav

import "errors"

// Sentinel errors returned by the Coordinator. All of them are
// recoverable flow-control conditions; none indicates a broken
// coordinator.
var (
	// ErrNotInitialized is returned when a forward-navigation operation
	// arrives before Initialize. The operation is a no-op.
	ErrNotInitialized = errors.New("nav: coordinator not initialized")

	// ErrAlreadyInitialized is returned by a second Initialize call.
	// The coordinator keeps its existing stack and UI handle.
	ErrAlreadyInitialized = errors.New("nav: coordinator already initialized")

	// ErrStackFull is returned when a push would exceed the depth cap.
	// The stack is left unchanged.
	ErrStackFull = errors.New("nav: navigation stack at capacity")
)
