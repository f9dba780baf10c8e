package internal

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the visual appearance of the page chrome. Colors and
// paths typically come from the host firmware's theme files.
type Theme struct {
	AccentColor      sdl.Color // page icons and footer button pills
	TextColor        sdl.Color // page titles
	HintColor        sdl.Color // footer hint labels
	ButtonLabelColor sdl.Color // text inside footer button pills
	BackgroundColor  sdl.Color // clear color when no background image is set

	FontPath            string // primary UI font, required
	BackgroundImagePath string // optional full-screen background
}

var currentTheme Theme

// SetTheme sets the active theme. Call before Init; the window and
// fonts pick the theme up when they are created.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB into an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
