package internal

import (
	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// DrawText renders a single line of text. The x coordinate is
// interpreted per align: left edge, horizontal center, or right edge.
// Returns the rendered width and height.
func DrawText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, align constants.TextAlign) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Debug("Text render failed", "text", text, "error", err)
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	drawX := x
	switch align {
	case constants.TextAlignCenter:
		drawX = x - surface.W/2
	case constants.TextAlignRight:
		drawX = x - surface.W
	}

	renderer.Copy(texture, nil, &sdl.Rect{X: drawX, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// TextSize measures text without rendering it.
func TextSize(font *ttf.Font, text string) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}

	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}
