package breadcrumb

import (
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/constants"
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem is one button hint drawn in the footer: a pill with
// the button name next to a short description.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

const (
	footerItemGap int32 = 28
	footerHintGap int32 = 10
)

// footerPillPadding insets the button name inside its pill: wide at the
// sides, tight above and below.
var footerPillPadding = internal.Padding{Top: 4, Right: 14, Bottom: 4, Left: 14}

// renderFooter draws the hint row centered at the bottom of the window.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomPadding int32) {
	if len(items) == 0 || font == nil {
		return
	}

	win := internal.GetWindow()
	theme := internal.GetTheme()

	type measured struct {
		pillW int32
		hintW int32
	}

	ms := make([]measured, len(items))
	var rowW, rowH int32
	for i, item := range items {
		nameW, nameH := internal.TextSize(font, item.ButtonName)
		hintW, hintH := internal.TextSize(font, item.HelpText)

		ms[i] = measured{pillW: nameW + footerPillPadding.Horizontal(), hintW: hintW}

		rowW += ms[i].pillW + footerHintGap + hintW
		if i > 0 {
			rowW += footerItemGap
		}
		if nameH > rowH {
			rowH = nameH
		}
		if hintH > rowH {
			rowH = hintH
		}
	}

	x := (win.GetWidth() - rowW) / 2
	y := win.GetHeight() - bottomPadding - rowH - footerPillPadding.Bottom

	for i, item := range items {
		pill := sdl.Rect{
			X: x,
			Y: y - footerPillPadding.Top,
			W: ms[i].pillW,
			H: rowH + footerPillPadding.Vertical(),
		}
		accent := theme.AccentColor
		renderer.SetDrawColor(accent.R, accent.G, accent.B, accent.A)
		renderer.FillRect(&pill)

		internal.DrawText(renderer, font, item.ButtonName, x+footerPillPadding.Left, y, theme.ButtonLabelColor, constants.TextAlignLeft)
		x += ms[i].pillW + footerHintGap

		internal.DrawText(renderer, font, item.HelpText, x, y, theme.HintColor, constants.TextAlignLeft)
		x += ms[i].hintW + footerItemGap
	}
}
