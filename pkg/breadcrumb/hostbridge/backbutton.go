package hostbridge

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/constants"
)

const (
	// DefaultCoolDownTime is the minimum gap between handled presses.
	// Hardware back buttons bounce; anything inside the window is noise.
	DefaultCoolDownTime = 200 * time.Millisecond

	keyPressValue = 1 // evdev key event value for "pressed"
)

// BackButtonConfig configures the physical back-button watcher.
type BackButtonConfig struct {
	DevicePath   string        // Input device to watch; empty uses DefaultDevicePath()
	ButtonCode   evdev.EvCode  // Key treated as "back" (default KEY_BACK)
	CoolDownTime time.Duration // Minimum gap between handled presses (default 200ms)
	OnAppExit    func()        // Invoked once, when a press decides "exit"
	Logger       *slog.Logger  // Defaults to slog.Default()
}

// BackButtonMonitor watches an evdev input device on its own goroutine
// and feeds back presses into ExitOnBack. When the decision is "exit"
// it fires OnAppExit exactly once; the owner is expected to stop the UI
// loop from that callback.
type BackButtonMonitor struct {
	cfg       BackButtonConfig
	dev       *evdev.InputDevice
	wg        sync.WaitGroup
	stopped   atomic.Bool
	exitOnce  sync.Once
	lastPress time.Time
	log       *slog.Logger
}

// DefaultDevicePath returns the input device the back button lives on.
// BACK_DEVICE overrides it; TG5050 hardware routes buttons through
// event2, everything else through event1.
func DefaultDevicePath() string {
	if v := os.Getenv(constants.BackDeviceEnvVar); v != "" {
		return v
	}
	if strings.Contains(strings.ToUpper(os.Getenv(constants.PlatformEnvVar)), "TG5050") {
		return "/dev/input/event2"
	}
	return "/dev/input/event1"
}

// StartBackButtonMonitor opens the configured device and starts
// watching it. Stop the returned monitor during teardown.
func StartBackButtonMonitor(cfg BackButtonConfig) (*BackButtonMonitor, error) {
	if cfg.DevicePath == "" {
		cfg.DevicePath = DefaultDevicePath()
	}
	if cfg.ButtonCode == 0 {
		cfg.ButtonCode = evdev.KEY_BACK
	}
	if cfg.CoolDownTime <= 0 {
		cfg.CoolDownTime = DefaultCoolDownTime
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("hostbridge: open back button device %s: %w", cfg.DevicePath, err)
	}

	m := &BackButtonMonitor{
		cfg: cfg,
		dev: dev,
		log: cfg.Logger,
	}
	m.log.Debug("back button monitor started",
		"device", cfg.DevicePath, "code", int(cfg.ButtonCode))

	m.wg.Add(1)
	go m.watch()
	return m, nil
}

// Stop closes the device, which unblocks the pending read, and waits
// for the watch goroutine to finish. Safe to call more than once.
func (m *BackButtonMonitor) Stop() {
	if !m.stopped.CompareAndSwap(false, true) {
		return
	}
	if err := m.dev.Close(); err != nil {
		m.log.Debug("back button device close", "error", err)
	}
	m.wg.Wait()
}

func (m *BackButtonMonitor) watch() {
	defer m.wg.Done()

	for {
		ev, err := m.dev.ReadOne()
		if err != nil {
			if !m.stopped.Load() {
				m.log.Error("back button device read failed", "error", err)
			}
			return
		}
		m.handleEvent(ev.Type, ev.Code, ev.Value, time.Now())
	}
}

// handleEvent applies the key filter and cool-down, then routes the
// press through ExitOnBack. Returns true when the event was consumed as
// a back press. Kept separate from watch so the decision logic is
// testable without a device.
func (m *BackButtonMonitor) handleEvent(evType evdev.EvType, code evdev.EvCode, value int32, now time.Time) bool {
	if evType != evdev.EV_KEY || code != m.cfg.ButtonCode || value != keyPressValue {
		return false
	}
	if !m.lastPress.IsZero() && now.Sub(m.lastPress) < m.cfg.CoolDownTime {
		m.log.Debug("back press inside cool-down, ignored")
		return false
	}
	m.lastPress = now

	if ExitOnBack() {
		m.log.Info("back gesture at root, requesting app exit")
		if m.cfg.OnAppExit != nil {
			m.exitOnce.Do(m.cfg.OnAppExit)
		}
	}
	return true
}
