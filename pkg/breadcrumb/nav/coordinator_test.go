package nav_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/nav"
)

// Page identifiers - use typed constants for compile-time safety
const (
	PageHome nav.Page = iota
	PageSettings
	PageLibrary
	PageAlbum
	PageTrack
)

// fakeUI implements nav.UI for tests. In inline mode Schedule executes
// tasks immediately (the test plays the UI loop); in queued mode tasks
// accumulate until drain, which is how delivery-order tests observe the
// command sequence.
type fakeUI struct {
	mu     sync.Mutex
	queued bool
	tasks  []func()
	shown  []nav.Page
}

func (f *fakeUI) SetCurrentPage(page nav.Page) {
	f.mu.Lock()
	f.shown = append(f.shown, page)
	f.mu.Unlock()
}

func (f *fakeUI) Schedule(task func()) {
	if !f.queued {
		task()
		return
	}
	f.mu.Lock()
	f.tasks = append(f.tasks, task)
	f.mu.Unlock()
}

// drain runs queued tasks in FIFO order, like the real loop does.
func (f *fakeUI) drain() {
	f.mu.Lock()
	tasks := f.tasks
	f.tasks = nil
	f.mu.Unlock()
	for _, task := range tasks {
		task()
	}
}

func (f *fakeUI) commands() []nav.Page {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]nav.Page, len(f.shown))
	copy(out, f.shown)
	return out
}

func newTestCoordinator(t *testing.T, root nav.Page) (*nav.Coordinator, *fakeUI) {
	t.Helper()
	ui := &fakeUI{}
	coord := nav.New()
	if err := coord.Initialize(nav.NewHandle(ui), root); err != nil {
		t.Fatalf("Initialize() = %v, want nil", err)
	}
	return coord, ui
}

// The root page must survive any number of back requests.
func TestRootSurvivesPopStorm(t *testing.T) {
	coord, _ := newTestCoordinator(t, PageHome)

	for i := 0; i < 5; i++ {
		coord.NavigateTo(PageSettings)
	}
	for i := 0; i < 50; i++ {
		coord.Pop()
		coord.HandleHostBack()
	}

	if got := coord.Depth(); got != 1 {
		t.Fatalf("Depth() = %d, want 1", got)
	}
	page, ok := coord.Peek()
	if !ok || page != PageHome {
		t.Fatalf("Peek() = %v, %v, want %v, true", page, ok, PageHome)
	}
}

// Push followed immediately by Pop restores the previous top.
func TestPushPopDuality(t *testing.T) {
	coord, _ := newTestCoordinator(t, PageHome)
	coord.NavigateTo(PageSettings)

	before, _ := coord.Peek()
	if err := coord.Push(PageLibrary); err != nil {
		t.Fatalf("Push() = %v, want nil", err)
	}
	if !coord.Pop() {
		t.Fatal("Pop() = false, want true")
	}
	after, _ := coord.Peek()
	if after != before {
		t.Fatalf("Peek() after push/pop = %v, want %v", after, before)
	}
}

func TestPopAtRoot(t *testing.T) {
	coord, _ := newTestCoordinator(t, PageHome)

	if coord.Pop() {
		t.Fatal("Pop() at root = true, want false")
	}
	if got := coord.Depth(); got != 1 {
		t.Fatalf("Depth() after refused pop = %d, want 1", got)
	}
	page, _ := coord.Peek()
	if page != PageHome {
		t.Fatalf("Peek() after refused pop = %v, want %v", page, PageHome)
	}
}

// HandleHostBack exits exactly when the stack held one element before
// the call; otherwise the new top is the previous second-from-top.
func TestExitDecision(t *testing.T) {
	coord, ui := newTestCoordinator(t, PageHome)
	coord.NavigateTo(PageLibrary)
	coord.NavigateTo(PageAlbum)

	if d := coord.HandleHostBack(); d != nav.ContinueApp {
		t.Fatalf("HandleHostBack() with depth 3 = %v, want %v", d, nav.ContinueApp)
	}
	if page, _ := coord.Peek(); page != PageLibrary {
		t.Fatalf("Peek() = %v, want %v", page, PageLibrary)
	}

	if d := coord.HandleHostBack(); d != nav.ContinueApp {
		t.Fatalf("HandleHostBack() with depth 2 = %v, want %v", d, nav.ContinueApp)
	}
	if d := coord.HandleHostBack(); d != nav.ExitApp {
		t.Fatalf("HandleHostBack() at root = %v, want %v", d, nav.ExitApp)
	}

	// Commands: two forward, two back. The refused back commands nothing.
	want := []nav.Page{PageLibrary, PageAlbum, PageLibrary, PageHome}
	got := ui.commands()
	if len(got) != len(want) {
		t.Fatalf("ui commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ui command %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBackBeforeInitialize(t *testing.T) {
	ui := &fakeUI{}
	coord := nav.New()

	if d := coord.HandleHostBack(); d != nav.ExitApp {
		t.Fatalf("HandleHostBack() uninitialized = %v, want %v", d, nav.ExitApp)
	}
	if d := coord.NavigateBack(); d != nav.ExitApp {
		t.Fatalf("NavigateBack() uninitialized = %v, want %v", d, nav.ExitApp)
	}
	if got := ui.commands(); len(got) != 0 {
		t.Fatalf("ui commands = %v, want none", got)
	}
}

func TestForwardBeforeInitialize(t *testing.T) {
	coord := nav.New()

	if err := coord.Push(PageSettings); !errors.Is(err, nav.ErrNotInitialized) {
		t.Fatalf("Push() uninitialized = %v, want %v", err, nav.ErrNotInitialized)
	}
	if err := coord.NavigateTo(PageSettings); !errors.Is(err, nav.ErrNotInitialized) {
		t.Fatalf("NavigateTo() uninitialized = %v, want %v", err, nav.ErrNotInitialized)
	}
	if _, ok := coord.Peek(); ok {
		t.Fatal("Peek() uninitialized reported ok")
	}
}

func TestInitializeIsOneShot(t *testing.T) {
	coord, _ := newTestCoordinator(t, PageHome)
	coord.NavigateTo(PageSettings)

	other := &fakeUI{}
	err := coord.Initialize(nav.NewHandle(other), PageLibrary)
	if !errors.Is(err, nav.ErrAlreadyInitialized) {
		t.Fatalf("second Initialize() = %v, want %v", err, nav.ErrAlreadyInitialized)
	}

	// State untouched: history, root and UI handle all survive.
	if got := coord.Depth(); got != 2 {
		t.Fatalf("Depth() after ignored re-init = %d, want 2", got)
	}
	pages := coord.Pages()
	if pages[0] != PageHome {
		t.Fatalf("root after ignored re-init = %v, want %v", pages[0], PageHome)
	}
	coord.NavigateTo(PageAlbum)
	if got := other.commands(); len(got) != 0 {
		t.Fatalf("rejected handle received commands: %v", got)
	}
}

func TestDepthCap(t *testing.T) {
	ui := &fakeUI{}
	coord := nav.NewWithMaxDepth(3)
	if err := coord.Initialize(nav.NewHandle(ui), PageHome); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}

	if err := coord.NavigateTo(PageLibrary); err != nil {
		t.Fatalf("NavigateTo() below cap = %v, want nil", err)
	}
	if err := coord.NavigateTo(PageAlbum); err != nil {
		t.Fatalf("NavigateTo() below cap = %v, want nil", err)
	}
	if err := coord.NavigateTo(PageTrack); !errors.Is(err, nav.ErrStackFull) {
		t.Fatalf("NavigateTo() at cap = %v, want %v", err, nav.ErrStackFull)
	}
	if err := coord.Push(PageTrack); !errors.Is(err, nav.ErrStackFull) {
		t.Fatalf("Push() at cap = %v, want %v", err, nav.ErrStackFull)
	}

	if got := coord.Depth(); got != 3 {
		t.Fatalf("Depth() after refused pushes = %d, want 3", got)
	}
	// Only the two accepted pushes commanded the UI.
	if got := ui.commands(); len(got) != 2 {
		t.Fatalf("ui commands = %v, want 2 entries", got)
	}
}

// A released handle drops UI commands but navigation still works; the
// UI being gone is a teardown condition, not an error.
func TestReleasedHandleSkipsCommands(t *testing.T) {
	ui := &fakeUI{}
	coord := nav.New()
	handle := nav.NewHandle(ui)
	if err := coord.Initialize(handle, PageHome); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	coord.NavigateTo(PageSettings)

	handle.Release()

	if d := coord.HandleHostBack(); d != nav.ContinueApp {
		t.Fatalf("HandleHostBack() after release = %v, want %v", d, nav.ContinueApp)
	}
	if page, _ := coord.Peek(); page != PageHome {
		t.Fatalf("Peek() = %v, want %v", page, PageHome)
	}
	if got := ui.commands(); len(got) != 1 {
		t.Fatalf("ui commands after release = %v, want just the pre-release push", got)
	}
}

func TestPagesReturnsCopy(t *testing.T) {
	coord, _ := newTestCoordinator(t, PageHome)
	coord.NavigateTo(PageSettings)

	pages := coord.Pages()
	pages[0] = PageTrack

	if got := coord.Pages(); got[0] != PageHome {
		t.Fatalf("internal history mutated through snapshot: %v", got)
	}
}

// Scenario: root Home, forward to Settings, back twice.
func TestBackGestureRoundTrip(t *testing.T) {
	coord, _ := newTestCoordinator(t, PageHome)

	coord.NavigateTo(PageSettings)
	if page, _ := coord.Peek(); page != PageSettings {
		t.Fatalf("Peek() = %v, want %v", page, PageSettings)
	}

	if d := coord.HandleHostBack(); d != nav.ContinueApp {
		t.Fatalf("first back = %v, want %v", d, nav.ContinueApp)
	}
	if page, _ := coord.Peek(); page != PageHome {
		t.Fatalf("Peek() = %v, want %v", page, PageHome)
	}

	if d := coord.HandleHostBack(); d != nav.ExitApp {
		t.Fatalf("second back = %v, want %v", d, nav.ExitApp)
	}
	if got := coord.Depth(); got != 1 {
		t.Fatalf("Depth() after exit decision = %d, want 1", got)
	}
}

// Scenario: a deep history unwinds one page per gesture until only the
// root is left; the gesture after that asks the host to exit.
func TestBackGestureUnwindsDeepHistory(t *testing.T) {
	coord, _ := newTestCoordinator(t, PageHome)
	coord.NavigateTo(PageLibrary)
	coord.NavigateTo(PageAlbum)
	coord.NavigateTo(PageTrack)

	wantPeeks := []nav.Page{PageAlbum, PageLibrary, PageHome}
	for i, want := range wantPeeks {
		if d := coord.HandleHostBack(); d != nav.ContinueApp {
			t.Fatalf("back %d = %v, want %v", i+1, d, nav.ContinueApp)
		}
		if page, _ := coord.Peek(); page != want {
			t.Fatalf("Peek() after back %d = %v, want %v", i+1, page, want)
		}
	}

	if d := coord.HandleHostBack(); d != nav.ExitApp {
		t.Fatalf("back at root = %v, want %v", d, nav.ExitApp)
	}
	pages := coord.Pages()
	if len(pages) != 1 || pages[0] != PageHome {
		t.Fatalf("final history = %v, want [%v]", pages, PageHome)
	}
}

// One goroutine navigates forward while another services host back
// gestures. The command stream the UI drains afterwards must reflect
// some serialized order of the operations: exactly one command per
// successful operation, and the last delivered page must match the
// final stack top.
func TestConcurrentBackAndForward(t *testing.T) {
	const ops = 300

	ui := &fakeUI{queued: true}
	coord := nav.NewWithMaxDepth(2 * ops)
	if err := coord.Initialize(nav.NewHandle(ui), PageHome); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}

	var wg sync.WaitGroup
	continues := 0 // written by one goroutine, read after Wait

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < ops; i++ {
			if err := coord.NavigateTo(PageLibrary + nav.Page(i%3)); err != nil {
				t.Errorf("NavigateTo() = %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < ops; i++ {
			if coord.HandleHostBack() == nav.ContinueApp {
				continues++
			}
		}
	}()
	wg.Wait()

	// Every successful pop removed exactly one of the ops pushes.
	wantDepth := 1 + ops - continues
	if got := coord.Depth(); got != wantDepth {
		t.Fatalf("Depth() = %d, want %d (continues=%d)", got, wantDepth, continues)
	}
	if pages := coord.Pages(); pages[0] != PageHome {
		t.Fatalf("root displaced: %v", pages[0])
	}

	ui.drain()
	got := ui.commands()

	// One command per push plus one per consumed back gesture.
	if want := ops + continues; len(got) != want {
		t.Fatalf("delivered commands = %d, want %d", len(got), want)
	}
	// FIFO delivery means the last command carries the final top.
	top, ok := coord.Peek()
	if !ok {
		t.Fatal("Peek() after storm reported not ok")
	}
	if last := got[len(got)-1]; last != top {
		t.Fatalf("last delivered page = %v, want current top %v", last, top)
	}
}
