package nav

import (
	"log/slog"
	"sync"
)

// DefaultMaxDepth is the navigation depth cap applied by New. No sane
// screen flow on a single navigation surface nests this deep; reaching
// the cap almost always means a navigation loop, so further pushes are
// refused rather than growing without bound.
const DefaultMaxDepth = 32

// Coordinator owns the application's navigation stack. One mutex guards
// the stack, and every compound operation (pop then read the new top,
// push then command the UI) runs as a single critical section so the UI
// only ever observes page commands in the order the lock serialized the
// mutations.
//
// All methods are safe for concurrent use. The host platform may call
// HandleHostBack from an arbitrary goroutine; everything UI-facing is
// deferred onto the UI loop through the Handle.
type Coordinator struct {
	mu          sync.Mutex
	stack       pageStack
	ui          *Handle
	maxDepth    int
	initialized bool
	log         *slog.Logger
}

// New returns a coordinator with the default depth cap.
func New() *Coordinator {
	return NewWithMaxDepth(DefaultMaxDepth)
}

// NewWithMaxDepth returns a coordinator capping the stack at maxDepth
// pages (root included). Values below one fall back to the default.
func NewWithMaxDepth(maxDepth int) *Coordinator {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &Coordinator{
		maxDepth: maxDepth,
		log:      slog.Default(),
	}
}

// SetLogger replaces the coordinator's logger. Pass the application
// logger before Initialize; nil is ignored.
func (c *Coordinator) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	c.mu.Lock()
	c.log = logger
	c.mu.Unlock()
}

// Initialize sets the UI handle and resets the stack to hold exactly
// the root page. It must be called once, before any other operation.
// A second call is a no-op that leaves all state untouched and returns
// ErrAlreadyInitialized; build a fresh coordinator instead of reusing
// one across UI lifetimes.
func (c *Coordinator) Initialize(ui *Handle, root Page) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		c.log.Warn("navigation already initialized, ignoring", "root", int(root))
		return ErrAlreadyInitialized
	}

	c.ui = ui
	c.stack.reset(root)
	c.initialized = true
	c.log.Debug("navigation initialized", "root", int(root), "max_depth", c.maxDepth)
	return nil
}

// Push appends page to the history without commanding the UI; callers
// that also want the UI to show the page use NavigateTo. Returns
// ErrNotInitialized before Initialize and ErrStackFull at the depth cap,
// leaving the stack unchanged in both cases.
func (c *Coordinator) Push(page Page) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pushLocked(page)
}

// Pop removes the current page and returns true. When only the root
// remains (or the coordinator is uninitialized) it returns false and
// leaves the stack untouched; this is the sole guard preserving the
// root.
func (c *Coordinator) Pop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stack.depth() <= 1 {
		return false
	}
	c.stack.pop()
	return true
}

// Peek returns a copy of the current page. The boolean is false only
// before Initialize.
func (c *Coordinator) Peek() (Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.peek()
}

// Depth returns the number of pages on the stack, root included.
func (c *Coordinator) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.depth()
}

// Pages returns a copy of the history, root first.
func (c *Coordinator) Pages() []Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.snapshot()
}

// NavigateTo handles the UI intent "navigate to page": the push and the
// set-current-page command are issued inside one critical section,
// keeping stack and UI in lockstep. Forward navigation before
// Initialize is rejected with ErrNotInitialized and a full stack with
// ErrStackFull; neither commands the UI.
func (c *Coordinator) NavigateTo(page Page) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.pushLocked(page); err != nil {
		return err
	}
	c.commandLocked(page)
	return nil
}

// NavigateBack handles the UI intent "navigate back". It shares the
// host path's pop/command sequence; only the log attribution differs.
func (c *Coordinator) NavigateBack() ExitDecision {
	return c.back("ui")
}

// HandleHostBack services a back gesture reported by the host platform.
// Safe to call from any goroutine. ContinueApp means the gesture was
// consumed and the UI was commanded to show the uncovered page; ExitApp
// means the stack was already at root (or never initialized) and the
// host should terminate the application. It never blocks beyond the
// short lock hold and never panics toward the host.
func (c *Coordinator) HandleHostBack() ExitDecision {
	return c.back("host")
}

func (c *Coordinator) pushLocked(page Page) error {
	if !c.initialized {
		c.log.Warn("push before initialization ignored", "page", int(page))
		return ErrNotInitialized
	}
	if c.stack.depth() >= c.maxDepth {
		c.log.Warn("navigation stack at capacity, push refused",
			"page", int(page), "depth", c.stack.depth())
		return ErrStackFull
	}
	c.stack.push(page)
	return nil
}

// back pops the current page and commands the UI to show the one
// underneath. Pop, peek and the command enqueue must stay one critical
// section: splitting them lets a concurrent push slip in between and a
// stale page reach the UI.
func (c *Coordinator) back(source string) ExitDecision {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		c.log.Debug("back before initialization, exiting", "source", source)
		return ExitApp
	}
	if c.stack.depth() <= 1 {
		c.log.Debug("back at root, exiting", "source", source)
		return ExitApp
	}

	left, _ := c.stack.pop()
	page, _ := c.stack.peek()
	c.log.Debug("navigated back",
		"source", source, "from", int(left), "to", int(page), "depth", c.stack.depth())
	c.commandLocked(page)
	return ContinueApp
}

// commandLocked enqueues a set-current-page task for the UI loop.
// Callers hold c.mu; Schedule never blocks, so the lock hold stays
// short and the queue order matches the lock order.
func (c *Coordinator) commandLocked(page Page) {
	ui, ok := c.ui.Upgrade()
	if !ok {
		// The UI root is legitimately gone during teardown.
		c.log.Debug("ui unavailable, dropping page command", "page", int(page))
		return
	}
	ui.Schedule(func() {
		ui.SetCurrentPage(page)
	})
}
