package hostbridge

import (
	"sync"
	"testing"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/nav"
)

const (
	pageHome nav.Page = iota
	pageSettings
)

// stubUI runs scheduled tasks inline; the tests stand in for the UI
// loop.
type stubUI struct {
	mu    sync.Mutex
	shown []nav.Page
}

func (s *stubUI) SetCurrentPage(page nav.Page) {
	s.mu.Lock()
	s.shown = append(s.shown, page)
	s.mu.Unlock()
}

func (s *stubUI) Schedule(task func()) {
	task()
}

func (s *stubUI) commands() []nav.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]nav.Page, len(s.shown))
	copy(out, s.shown)
	return out
}

func registerCoordinator(t *testing.T, root nav.Page) (*nav.Coordinator, *stubUI) {
	t.Helper()
	ui := &stubUI{}
	coord := nav.New()
	if err := coord.Initialize(nav.NewHandle(ui), root); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	Register(coord)
	t.Cleanup(Unregister)
	return coord, ui
}

// With nothing registered the gesture can only mean "exit", and no UI
// command may be issued.
func TestExitOnBackUnregistered(t *testing.T) {
	Unregister()

	if !ExitOnBack() {
		t.Fatal("ExitOnBack() with empty registry = false, want true")
	}
}

func TestExitOnBackUninitializedCoordinator(t *testing.T) {
	Register(nav.New())
	t.Cleanup(Unregister)

	if !ExitOnBack() {
		t.Fatal("ExitOnBack() with uninitialized coordinator = false, want true")
	}
}

func TestExitOnBackNavigates(t *testing.T) {
	coord, ui := registerCoordinator(t, pageHome)
	if err := coord.NavigateTo(pageSettings); err != nil {
		t.Fatalf("NavigateTo() = %v", err)
	}

	if ExitOnBack() {
		t.Fatal("ExitOnBack() with history = true, want false")
	}
	if page, _ := coord.Peek(); page != pageHome {
		t.Fatalf("Peek() after handled gesture = %v, want %v", page, pageHome)
	}

	if !ExitOnBack() {
		t.Fatal("ExitOnBack() at root = false, want true")
	}

	// Forward command plus the one back command; the exit decision
	// commands nothing.
	if got := ui.commands(); len(got) != 2 || got[1] != pageHome {
		t.Fatalf("ui commands = %v, want [settings home]", got)
	}
}

func TestRegisterReplaces(t *testing.T) {
	first := nav.New()
	second := nav.New()
	Register(first)
	t.Cleanup(Unregister)

	if Registered() != first {
		t.Fatal("Registered() did not return the registered coordinator")
	}

	Register(second)
	if Registered() != second {
		t.Fatal("Register() did not replace the previous coordinator")
	}

	Unregister()
	if Registered() != nil {
		t.Fatal("Registered() after Unregister() != nil")
	}
}
