package breadcrumb

import (
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/constants"
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/nav"
)

// PageSpec describes one page the shell can show: the nav.Page value
// identifying it, what the chrome draws for it, and which buttons
// navigate onward from it.
type PageSpec struct {
	Page     nav.Page
	TitleKey string // message ID resolved through the locale catalog
	IconSVG  string // SVG source, usually one of the constants.Icon* values
	Bindings map[constants.VirtualButton]nav.Page
}
