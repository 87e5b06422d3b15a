package report

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	pdfcolor "github.com/pyhub-apps/pdfcolors-golang/pkg/color"
)

const (
	swatchSize   = 24
	swatchPad    = 4
	swatchWidth  = 360
	swatchLabelX = swatchSize + 3*swatchPad
)

// RenderSwatch draws one row per entry: a filled square in the entry's
// color followed by its hex code, name and share of uses.
func RenderSwatch(s Summary) *image.RGBA {
	rows := max(len(s.Colors), 1)
	img := image.NewRGBA(image.Rect(0, 0, swatchWidth, rows*(swatchSize+swatchPad)+swatchPad))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}

	for i, e := range s.Colors {
		top := swatchPad + i*(swatchSize+swatchPad)
		fill := color.RGBA{
			R: pdfcolor.Byte(e.RGB[0]),
			G: pdfcolor.Byte(e.RGB[1]),
			B: pdfcolor.Byte(e.RGB[2]),
			A: 0xff,
		}

		box := image.Rect(swatchPad, top, swatchPad+swatchSize, top+swatchSize)
		draw.Draw(img, box, image.Black, image.Point{}, draw.Src)
		draw.Draw(img, box.Inset(1), image.NewUniform(fill), image.Point{}, draw.Src)

		// Baseline centred on the square.
		baseline := top + (swatchSize+face.Ascent)/2
		d.Dot = fixed.P(swatchLabelX, baseline)
		d.DrawString(fmt.Sprintf("%s %s %.1f%%", e.Hex, e.Name, e.Percent))
	}
	return img
}

// WriteSwatch encodes the swatch image as PNG.
func WriteSwatch(w io.Writer, s Summary) error {
	if err := png.Encode(w, RenderSwatch(s)); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}
