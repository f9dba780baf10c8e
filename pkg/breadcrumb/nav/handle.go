package nav

import "go.uber.org/atomic"

// UI is the surface the coordinator commands. The concrete
// implementation is the rendering runtime (breadcrumb.Shell in this
// repo) or a fake in tests.
type UI interface {
	// SetCurrentPage makes page the one the UI renders. It must only be
	// called on the UI loop; the coordinator always routes it through
	// Schedule.
	SetCurrentPage(page Page)

	// Schedule queues task for execution on the UI loop. It must be safe
	// to call from any goroutine and must never block; implementations
	// drop the task (with a log) once the loop is gone.
	Schedule(task func())
}

// uiRef boxes the interface value so it can live in an atomic pointer.
type uiRef struct {
	ui UI
}

// Handle is a non-owning, upgradeable reference to the live UI root.
// The coordinator keeps one for the whole process; it never extends the
// UI's lifetime. After Release, Upgrade reports false forever, which
// callers treat as "skip the UI work", never as a failure.
type Handle struct {
	ref atomic.Pointer[uiRef]
}

// NewHandle returns a handle that resolves to ui until Release is
// called.
func NewHandle(ui UI) *Handle {
	h := &Handle{}
	h.ref.Store(&uiRef{ui: ui})
	return h
}

// Upgrade resolves the handle to the live UI. The boolean is false once
// the UI root has been torn down (or the handle never held one).
func (h *Handle) Upgrade() (UI, bool) {
	if h == nil {
		return nil, false
	}
	r := h.ref.Load()
	if r == nil || r.ui == nil {
		return nil, false
	}
	return r.ui, true
}

// Release invalidates the handle. Call it when the UI root is torn down
// so late back gestures stop commanding a dead surface. Safe to call
// more than once and from any goroutine.
func (h *Handle) Release() {
	if h != nil {
		h.ref.Store(nil)
	}
}
