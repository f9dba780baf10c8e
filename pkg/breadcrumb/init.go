// Package breadcrumb provides the native navigation shell for graphical
// applications on embedded Linux handhelds running custom firmware such
// as Cannoli. It owns SDL initialization, theming, input translation
// and a page shell driven by a nav.Coordinator: the application
// declares its pages, the coordinator tracks where the user is, and the
// shell draws the chrome and feeds button presses back into navigation.
package breadcrumb

import (
	"log/slog"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/constants"
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/internal"
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/platform/cannoli"
)

// cannoliFontPath is where Cannoli firmware installs its UI font.
const cannoliFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Options configures breadcrumb initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background image
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color override
	IsCannoli            bool                   // Use Cannoli CFW theming and font paths
	FontPath             string                 // UI font path; required when IsCannoli is false
	BackgroundImagePath  string                 // Optional full-screen background image
	LogPath              string                 // Full path for the log file including filename (creates parent directories)
	FlipFaceButtons      bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
}

// Init initializes SDL, theming and input handling. Must be called
// before constructing a Shell or touching the window.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	// Set face button flip preference before input mapping is loaded
	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme(cannoliFontPath))
	} else {
		internal.SetTheme(cannoli.DefaultTheme(options.FontPath))
	}

	theme := internal.GetTheme()
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	if options.BackgroundImagePath != "" {
		theme.BackgroundImagePath = options.BackgroundImagePath
	}
	internal.SetTheme(theme)

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions)
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetFlipFaceButtons enables or disables direct face button mapping.
// When true, uses A=A, B=B, X=X, Y=Y instead of the default Nintendo-style swap.
// Can also be set via the FLIP_FACE_BUTTONS environment variable.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
