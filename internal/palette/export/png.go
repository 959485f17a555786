package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"nathanbeddoewebdev/hue/internal/colormath"
	"nathanbeddoewebdev/hue/internal/palette/domain"
)

const (
	swatchWidth  = 120
	swatchHeight = 240
)

// WritePNG writes a horizontal strip with one band per color. Colors whose
// hex cannot be parsed are drawn black.
func WritePNG(w io.Writer, p domain.Palette) error {
	if p.IsEmpty() {
		return fmt.Errorf("export: png: %w", domain.ErrEmptyPalette)
	}

	img := image.NewRGBA(image.Rect(0, 0, swatchWidth*len(p.Colors), swatchHeight))
	for i, c := range p.Colors {
		rgb, _ := colormath.HexToRGB(c.Hex)
		fill := color.RGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 0xff}
		band := image.Rect(i*swatchWidth, 0, (i+1)*swatchWidth, swatchHeight)
		draw.Draw(img, band, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: png: %w", err)
	}
	return nil
}
