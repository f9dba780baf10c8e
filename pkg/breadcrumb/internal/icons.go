package internal

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVGToRGBA renders SVG source into an RGBA image of the
// given size. Icon sources are authored with a white fill so the
// result can be tinted with a color mod at draw time.
func RasterizeSVGToRGBA(svg string, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return rgba, nil
}

// RasterizeSVG renders SVG source into a texture. The caller (or the
// cache the texture lands in) owns the result.
func RasterizeSVG(renderer *sdl.Renderer, svg string, width, height int32) (*sdl.Texture, error) {
	rgba, err := RasterizeSVGToRGBA(svg, int(width), int(height))
	if err != nil {
		return nil, err
	}

	// image.RGBA stores R,G,B,A bytes in memory order, which is SDL's
	// ABGR8888 on little-endian targets.
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, width, height)
	if err != nil {
		return nil, fmt.Errorf("create icon texture: %w", err)
	}

	if err := texture.Update(nil, unsafe.Pointer(&rgba.Pix[0]), rgba.Stride); err != nil {
		texture.Destroy()
		return nil, fmt.Errorf("upload icon pixels: %w", err)
	}

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
