package sheet

import (
	"image"

	"github.com/pbnjay/sheetfont/internal/bitrow"
)

// round rounds a non-negative coordinate to the nearest integer, halves up.
func round(v float64) int {
	return int(v + 0.5)
}

// pixelRects divides r into a cwidth by cheight grid of source rectangles,
// indexed [row][column]. Grid lines are found by accumulating the fractional
// pixel size from 0 and rounding each edge independently, so neighbouring
// rectangles share their edge but may differ in size by one source pixel.
//
// A rectangle that rounds to nothing, which happens when the grid is finer
// than the source, is widened to the single source pixel at its origin.
func pixelRects(r image.Rectangle, cwidth, cheight int) [][]image.Rectangle {
	pixWidth := float64(r.Dx()) / float64(cwidth)
	pixHeight := float64(r.Dy()) / float64(cheight)

	rects := make([][]image.Rectangle, cheight)
	y1, y2 := 0.0, pixHeight
	for nrow := range rects {
		rects[nrow] = make([]image.Rectangle, cwidth)
		x1, x2 := 0.0, pixWidth
		for ncol := range rects[nrow] {
			px := image.Rectangle{
				Min: image.Pt(r.Min.X+round(x1), r.Min.Y+round(y1)),
				Max: image.Pt(r.Min.X+round(x2), r.Min.Y+round(y2)),
			}
			px.Max.X = min(px.Max.X, r.Max.X)
			px.Max.Y = min(px.Max.Y, r.Max.Y)
			if px.Max.X <= px.Min.X {
				px.Min.X = min(px.Min.X, r.Max.X-1)
				px.Max.X = px.Min.X + 1
			}
			if px.Max.Y <= px.Min.Y {
				px.Min.Y = min(px.Min.Y, r.Max.Y-1)
				px.Max.Y = px.Min.Y + 1
			}
			rects[nrow][ncol] = px
			x1, x2 = x2, x2+pixWidth
		}
		y1, y2 = y2, y2+pixHeight
	}
	return rects
}

// above reports whether the mean intensity of px exceeds threshold.
func above(g *image.Gray, px image.Rectangle, threshold int) bool {
	sum := 0
	for y := px.Min.Y; y < px.Max.Y; y++ {
		for _, v := range g.Pix[g.PixOffset(px.Min.X, y):g.PixOffset(px.Max.X, y)] {
			sum += int(v)
		}
	}
	return sum > threshold*px.Dx()*px.Dy()
}

// Sample resamples region r of g onto a cwidth by cheight pixel grid. A grid
// pixel is set when the mean intensity of its source rectangle exceeds
// threshold. Each of the cheight returned rows is left-justified within the
// byte-aligned row width: column c is bit AlignedWidth(cwidth)-1-c.
func Sample(g *image.Gray, r image.Rectangle, cwidth, cheight, threshold int) []uint64 {
	rows := make([]uint64, cheight)
	if r.Empty() {
		return rows
	}

	aligned := bitrow.AlignedWidth(cwidth)
	for nrow, line := range pixelRects(r, cwidth, cheight) {
		for ncol, px := range line {
			if above(g, px, threshold) {
				rows[nrow] |= 1 << uint(aligned-1-ncol)
			}
		}
	}
	return rows
}
