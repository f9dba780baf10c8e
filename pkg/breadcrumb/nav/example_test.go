package nav_test

import (
	"fmt"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/nav"
)

// consoleUI stands in for the rendering runtime: Schedule runs tasks
// inline because the example itself is the UI loop.
type consoleUI struct {
	names map[nav.Page]string
}

func (u *consoleUI) SetCurrentPage(page nav.Page) {
	fmt.Println("ui: show", u.names[page])
}

func (u *consoleUI) Schedule(task func()) {
	task()
}

// Example walks the basic round trip: forward to a page, back gesture
// returns to the root, the next gesture asks the host to exit.
func Example() {
	ui := &consoleUI{names: map[nav.Page]string{
		PageHome:     "Home",
		PageSettings: "Settings",
	}}

	coord := nav.New()
	if err := coord.Initialize(nav.NewHandle(ui), PageHome); err != nil {
		fmt.Println("init:", err)
		return
	}

	if err := coord.NavigateTo(PageSettings); err != nil {
		fmt.Println("navigate:", err)
		return
	}

	first := coord.HandleHostBack()
	fmt.Println("back:", first)

	second := coord.HandleHostBack()
	fmt.Println("back:", second, "exit:", second.ShouldExit())

	// Output:
	// ui: show Settings
	// ui: show Home
	// back: continue
	// back: exit exit: true
}

// Example_deepHistory unwinds a multi-page history one back gesture at
// a time until only the root remains.
func Example_deepHistory() {
	names := map[nav.Page]string{
		PageHome:    "Home",
		PageLibrary: "Library",
		PageAlbum:   "Album",
		PageTrack:   "Track",
	}
	ui := &consoleUI{names: names}

	coord := nav.New()
	if err := coord.Initialize(nav.NewHandle(ui), PageHome); err != nil {
		fmt.Println("init:", err)
		return
	}

	coord.NavigateTo(PageLibrary)
	coord.NavigateTo(PageAlbum)
	coord.NavigateTo(PageTrack)

	for {
		decision := coord.HandleHostBack()
		fmt.Println("back:", decision)
		if decision.ShouldExit() {
			break
		}
	}

	page, _ := coord.Peek()
	fmt.Println("final:", names[page], "depth:", coord.Depth())

	// Output:
	// ui: show Library
	// ui: show Album
	// ui: show Track
	// ui: show Album
	// back: continue
	// ui: show Library
	// back: continue
	// ui: show Home
	// back: continue
	// back: exit
	// final: Home depth: 1
}
