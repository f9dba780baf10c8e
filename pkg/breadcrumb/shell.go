package breadcrumb

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/constants"
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/internal"
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/locale"
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/nav"
)

const (
	taskQueueSize       = 64
	iconSize      int32 = 96
	iconTitleGap  int32 = 24
	maxTrailPages       = 5
)

// Shell owns the render loop and draws the chrome for the current
// page: icon, localized title, breadcrumb trail and footer hints. It
// implements nav.UI, so a coordinator initialized with a handle to the
// shell drives which page is shown.
//
// All rendering and page state live on the goroutine that calls Run.
// The only concessions to other goroutines are Schedule and Stop.
type Shell struct {
	specs map[nav.Page]PageSpec
	tasks chan func()
	icons *internal.TextureCache
	loc   *i18n.Localizer

	// Loop-goroutine state. Never touched from outside the loop.
	current     nav.Page
	hasCurrent  bool
	lastInput   time.Time
	failedIcons map[nav.Page]bool

	running atomic.Bool
	closed  atomic.Bool
}

// NewShell validates the page specs and builds a shell. Every binding
// must target a declared page; pages must be unique.
func NewShell(specs []PageSpec) (*Shell, error) {
	if len(specs) == 0 {
		return nil, ErrNoPages
	}

	byPage := make(map[nav.Page]PageSpec, len(specs))
	for _, spec := range specs {
		if _, dup := byPage[spec.Page]; dup {
			return nil, fmt.Errorf("page %d: %w", int(spec.Page), ErrDuplicatePage)
		}
		byPage[spec.Page] = spec
	}

	for _, spec := range specs {
		for button, target := range spec.Bindings {
			if _, ok := byPage[target]; !ok {
				return nil, fmt.Errorf("page %d binds %s to page %d: %w",
					int(spec.Page), button.GetName(), int(target), ErrUnknownBinding)
			}
		}
	}

	catalog, err := locale.NewCatalog()
	if err != nil {
		return nil, NewInfrastructureError("load_locale", err)
	}

	return &Shell{
		specs:       byPage,
		tasks:       make(chan func(), taskQueueSize),
		icons:       internal.NewTextureCache(),
		loc:         catalog.Localizer(),
		failedIcons: make(map[nav.Page]bool),
	}, nil
}

// SetCurrentPage makes page the one the next frame draws. Part of the
// nav.UI contract: only the shell's own loop may call it, so tasks
// queued through Schedule are the way everyone else changes pages.
func (s *Shell) SetCurrentPage(page nav.Page) {
	s.current = page
	s.hasCurrent = true
	if _, ok := s.specs[page]; !ok {
		internal.GetInternalLogger().Warn("No spec for page, drawing fallback chrome", "page", int(page))
	}
}

// Schedule queues task onto the shell loop. It never blocks: when the
// queue is full or the loop has finished, the task is dropped with a
// log line, per the nav.UI contract.
func (s *Shell) Schedule(task func()) {
	if task == nil {
		return
	}
	if s.closed.Load() {
		internal.GetInternalLogger().Debug("Shell closed, dropping task")
		return
	}
	select {
	case s.tasks <- task:
	default:
		internal.GetInternalLogger().Warn("Shell task queue full, dropping task")
	}
}

// Run drives the shell until Stop is called, the user backs out of the
// root page, or the window manager asks to quit. SDL requires the loop
// on the main goroutine; the OS thread is locked for the duration.
// Initialize the coordinator with nav.NewHandle(shell) before calling.
func (s *Shell) Run(coordinator *nav.Coordinator) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	win := internal.GetWindow()
	if win == nil {
		s.running.Store(false)
		return NewInfrastructureError("run_shell", errors.New("window not initialized, call Init first"))
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer s.closed.Store(true)
	defer s.icons.Destroy()

	internal.GetInternalLogger().Debug("Shell loop starting", "pages", len(s.specs))

	// Adopt whatever page the coordinator already holds so the first
	// frame is not blank. Initialize never commands the UI; the root
	// page is the shell's to pick up.
	if !s.hasCurrent {
		if page, ok := coordinator.Peek(); ok {
			s.SetCurrentPage(page)
		}
	}

	for s.running.Load() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			s.handleEvent(coordinator, event)
		}

		s.drainTasks()
		s.render(win, coordinator)
		win.Present()
	}

	internal.GetInternalLogger().Debug("Shell loop stopped")
	return nil
}

// Stop asks the loop to finish after the current frame. Safe to call
// from any goroutine, including scheduled tasks and the host back
// monitor's exit callback.
func (s *Shell) Stop() {
	s.running.Store(false)
}

func (s *Shell) handleEvent(coordinator *nav.Coordinator, event sdl.Event) {
	if _, quit := event.(*sdl.QuitEvent); quit {
		internal.GetInternalLogger().Info("Quit requested by window manager")
		s.Stop()
		return
	}

	inputEvent := internal.GetInputProcessor().ProcessSDLEvent(event)
	if inputEvent == nil || !inputEvent.Pressed {
		return
	}

	now := time.Now()
	if now.Sub(s.lastInput) < constants.DefaultInputDelay {
		return
	}
	s.lastInput = now

	s.handleButton(coordinator, inputEvent.Button)
}

func (s *Shell) handleButton(coordinator *nav.Coordinator, button constants.VirtualButton) {
	if button == constants.VirtualButtonB {
		if coordinator.NavigateBack().ShouldExit() {
			internal.GetInternalLogger().Info("Back pressed at root, exiting")
			s.Stop()
		}
		return
	}

	if !s.hasCurrent {
		return
	}
	spec, ok := s.specs[s.current]
	if !ok {
		return
	}
	target, bound := spec.Bindings[button]
	if !bound {
		return
	}

	if err := coordinator.NavigateTo(target); err != nil {
		internal.GetInternalLogger().Warn("Navigation refused",
			"button", button.GetName(), "to", int(target), "error", err)
	}
}

func (s *Shell) drainTasks() {
	for {
		select {
		case task := <-s.tasks:
			s.runTask(task)
		default:
			return
		}
	}
}

// runTask isolates panics so one bad task cannot take down the render
// loop.
func (s *Shell) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			internal.GetInternalLogger().Error("Shell task panicked",
				"panic", r, "stack", string(debug.Stack()))
		}
	}()
	task()
}

func (s *Shell) render(win *internal.Window, coordinator *nav.Coordinator) {
	renderer := win.Renderer
	theme := internal.GetTheme()

	bg := theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()
	win.RenderBackground()

	if !s.hasCurrent {
		return
	}

	margins := internal.UniformPadding(20)
	spec, ok := s.specs[s.current]
	centerX := win.GetWidth() / 2
	titleY := win.GetHeight() / 3

	if ok && spec.IconSVG != "" {
		if texture := s.iconTexture(renderer, spec); texture != nil {
			accent := theme.AccentColor
			texture.SetColorMod(accent.R, accent.G, accent.B)
			dst := sdl.Rect{
				X: centerX - iconSize/2,
				Y: titleY - iconSize - iconTitleGap,
				W: iconSize,
				H: iconSize,
			}
			renderer.Copy(texture, nil, &dst)
		}
	}

	_, titleH := internal.DrawText(renderer, internal.Fonts.LargeFont, s.titleFor(s.current),
		centerX, titleY, theme.TextColor, constants.TextAlignCenter)

	internal.DrawText(renderer, internal.Fonts.MediumFont, s.trailText(coordinator),
		centerX, trailBaseline(titleY, titleH), theme.HintColor, constants.TextAlignCenter)

	renderFooter(renderer, internal.Fonts.SmallFont, s.footerItems(coordinator, spec, ok), margins.Bottom)
}

// trailBaseline places the breadcrumb trail under the rendered title.
func trailBaseline(titleY, titleH int32) int32 {
	return titleY + titleH + constants.DefaultTitleSpacing
}

// iconTexture returns the page's rasterized icon, cached after the
// first frame. Pages whose SVG failed once are not retried; that would
// log every frame.
func (s *Shell) iconTexture(renderer *sdl.Renderer, spec PageSpec) *sdl.Texture {
	if s.failedIcons[spec.Page] {
		return nil
	}

	key := fmt.Sprintf("icon:%d", int(spec.Page))
	if texture := s.icons.Get(key); texture != nil {
		return texture
	}

	texture, err := internal.RasterizeSVG(renderer, spec.IconSVG, iconSize, iconSize)
	if err != nil {
		internal.GetInternalLogger().Error("Icon rasterization failed",
			"page", int(spec.Page), "error", NewInfrastructureError("rasterize_icon", err))
		s.failedIcons[spec.Page] = true
		return nil
	}

	s.icons.Set(key, texture)
	return texture
}

// titleFor resolves a page's display title, falling back to a numbered
// placeholder when no spec or title key exists.
func (s *Shell) titleFor(page nav.Page) string {
	spec, ok := s.specs[page]
	if !ok || spec.TitleKey == "" {
		return fmt.Sprintf("Page %d", int(page))
	}
	return locale.Title(s.loc, spec.TitleKey)
}

// trailText renders the navigation history as a breadcrumb line,
// truncated to the last few pages so deep stacks stay readable.
func (s *Shell) trailText(coordinator *nav.Coordinator) string {
	pages := coordinator.Pages()
	trail := ""
	if len(pages) > maxTrailPages {
		pages = pages[len(pages)-maxTrailPages:]
		trail = "… / "
	}
	for i, page := range pages {
		if i > 0 {
			trail += " / "
		}
		trail += s.titleFor(page)
	}
	return trail
}

// footerItems builds the hint row: one entry per outgoing binding plus
// the back hint, which flips to an exit hint on the root page.
func (s *Shell) footerItems(coordinator *nav.Coordinator, spec PageSpec, ok bool) []FooterHelpItem {
	items := make([]FooterHelpItem, 0, 4)

	if ok {
		buttons := make([]constants.VirtualButton, 0, len(spec.Bindings))
		for button := range spec.Bindings {
			buttons = append(buttons, button)
		}
		sort.Slice(buttons, func(i, j int) bool { return buttons[i] < buttons[j] })
		for _, button := range buttons {
			items = append(items, FooterHelpItem{
				ButtonName: button.GetName(),
				HelpText:   locale.OpenHint(s.loc, s.titleFor(spec.Bindings[button])),
			})
		}
	}

	backHint := locale.KeyHintBack
	if coordinator.Depth() <= 1 {
		backHint = locale.KeyHintExit
	}
	items = append(items, FooterHelpItem{
		ButtonName: constants.VirtualButtonB.GetName(),
		HelpText:   locale.Title(s.loc, backHint),
	})

	return items
}
