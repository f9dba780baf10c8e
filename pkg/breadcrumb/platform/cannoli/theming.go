// Package cannoli provides theming support for the Cannoli custom
// firmware. Cannoli is a community-developed CFW for retro handheld
// gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/internal"
)

// InitCannoliTheme creates a theme with Cannoli's stock light palette
// and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		AccentColor:      internal.HexToColor(0x008080),
		TextColor:        internal.HexToColor(0x1A1A1A),
		HintColor:        internal.HexToColor(0x3C3C3C),
		ButtonLabelColor: internal.HexToColor(0xFFFFFF),
		BackgroundColor:  internal.HexToColor(0xF2F2F2),
		FontPath:         fontPath,
	}
}

// DefaultTheme is the dark palette used outside Cannoli firmware,
// mostly desktop dev mode. The caller supplies the font path since no
// firmware convention applies.
func DefaultTheme(fontPath string) internal.Theme {
	return internal.Theme{
		AccentColor:      internal.HexToColor(0x00B3B3),
		TextColor:        internal.HexToColor(0xEFEFEF),
		HintColor:        internal.HexToColor(0x9A9A9A),
		ButtonLabelColor: internal.HexToColor(0x101010),
		BackgroundColor:  internal.HexToColor(0x101014),
		FontPath:         fontPath,
	}
}
