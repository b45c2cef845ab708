package sheet

import (
	"image"

	"golang.org/x/image/draw"
)

// Normalize converts img to 8-bit grayscale with its origin at 0,0 and ink
// bright. Scans normally show dark ink on a light page, so intensities are
// inverted unless brightInk is set.
func Normalize(img image.Image, brightInk bool) *image.Gray {
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	if !brightInk {
		for i, v := range g.Pix {
			g.Pix[i] = 255 - v
		}
	}
	return g
}
