// Package nav maintains the page-navigation stack for a single-surface
// GUI application and keeps it synchronized with the host platform's
// back-button semantics.
//
// The Coordinator owns an ordered history of visited pages (the tail is
// the page currently shown) behind one mutex. UI-originated intents
// (NavigateTo, NavigateBack) and the host platform's back gesture
// (HandleHostBack) mutate the stack and command the UI to show the new
// current page. Because the UI runtime only allows state changes on its
// own loop, the coordinator never touches the UI directly: it enqueues
// set-current-page tasks through the UI's scheduling primitive, and it
// does so while still holding the stack lock so commands reach the UI in
// the exact order the lock serialized the operations.
//
// # Basic Usage
//
//	const (
//	    PageHome nav.Page = iota
//	    PageSettings
//	)
//
//	coord := nav.New()
//	handle := nav.NewHandle(shell) // shell implements nav.UI
//	if err := coord.Initialize(handle, PageHome); err != nil {
//	    return err
//	}
//
//	// UI loop, on a navigation intent:
//	coord.NavigateTo(PageSettings)
//
//	// Host platform, from any goroutine:
//	if coord.HandleHostBack().ShouldExit() {
//	    // nothing left below the root; terminate the app
//	}
//
// # Lifetime
//
// The coordinator holds a non-owning Handle to the UI root. Release the
// handle during teardown; back gestures that race the teardown then skip
// the UI command instead of touching a dead surface.
//
// The stack is created once per process and lives until exit. There is
// exactly one navigation surface per application, so the host-facing
// entry point locates the one coordinator through the hostbridge
// package's explicit registry rather than ambient globals here.
package nav
