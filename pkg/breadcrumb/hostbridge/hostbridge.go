// Package hostbridge is the seam between the host platform and the
// navigation coordinator. The platform's back gesture arrives through
// ExitOnBack, a foreign-style entry point with no way to carry a
// coordinator handle, so this package keeps the one process-wide
// registry slot that locates it. Everything else in the navigation
// layer passes the coordinator around explicitly.
//
// The package also ships BackButtonMonitor, which turns presses of a
// physical back button (a Linux evdev device on handheld hardware) into
// ExitOnBack calls.
package hostbridge

import (
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/nav"
	"go.uber.org/atomic"
)

// registry holds the coordinator ExitOnBack services. Reads are
// lock-free; the back gesture path must never block on anything slower
// than the coordinator's own mutex.
var registry atomic.Pointer[nav.Coordinator]

// Register publishes c as the coordinator behind ExitOnBack, replacing
// any previously registered one. Call it right after the coordinator is
// initialized.
func Register(c *nav.Coordinator) {
	registry.Store(c)
}

// Unregister clears the registry. Subsequent back gestures report
// "exit". Call it during teardown, together with releasing the UI
// handle.
func Unregister() {
	registry.Store(nil)
}

// Registered returns the currently published coordinator, or nil.
func Registered() *nav.Coordinator {
	return registry.Load()
}

// ExitOnBack is the entry point the host platform invokes on a back
// gesture, from whatever thread it likes. It returns true when the
// application should exit: the navigation stack was already at its
// root, the coordinator was never initialized, or none is registered.
// It returns false when navigation consumed the gesture; the UI update
// has then already been scheduled onto the UI loop.
func ExitOnBack() bool {
	c := registry.Load()
	if c == nil {
		return true
	}
	return c.HandleHostBack().ShouldExit()
}
