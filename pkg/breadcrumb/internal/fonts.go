package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes selects the pixel sizes the shell renders with.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
}

// DefaultFontSizes fit a 1024x768 handheld panel.
var DefaultFontSizes = FontSizes{
	Small:  24,
	Medium: 32,
	Large:  44,
}

// FontSet holds the opened UI fonts. Populated by initFonts and
// read-only afterwards.
type FontSet struct {
	SmallFont  *ttf.Font
	MediumFont *ttf.Font
	LargeFont  *ttf.Font
}

var Fonts FontSet

// initFonts opens the theme's font at each configured size. The font
// file is required; a shell without text is useless, so failure is
// fatal.
func initFonts(sizes FontSizes) {
	path := GetTheme().FontPath

	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			GetInternalLogger().Error("Failed to open font!", "path", path, "size", size, "error", err)
			os.Exit(1)
		}
		return font
	}

	Fonts = FontSet{
		SmallFont:  open(sizes.Small),
		MediumFont: open(sizes.Medium),
		LargeFont:  open(sizes.Large),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
