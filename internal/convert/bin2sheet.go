package convert

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/pbnjay/sheetfont"
	"github.com/pbnjay/sheetfont/internal/bitrow"
	"github.com/pbnjay/sheetfont/internal/sheet"
)

// LayoutOptions controls BinToSheet.
type LayoutOptions struct {
	Width, Height int // cell size of the records, in pixels

	Columns int // cells per row band
	Scale   int // sheet pixels per glyph pixel
	Gap     int // sheet pixels between and around cells

	// Threshold and BoundsThreshold are the values the sheet is meant to be
	// read back with.
	Threshold       int
	BoundsThreshold int
}

// DefaultLayout returns the layout options used when none are given.
func DefaultLayout(width, height int) LayoutOptions {
	return LayoutOptions{
		Width:           width,
		Height:          height,
		Columns:         16,
		Scale:           4,
		Gap:             3,
		Threshold:       sheet.DefaultThreshold,
		BoundsThreshold: sheet.DefaultBoundsThreshold,
	}
}

// Validate checks that a sheet with these options segments back into the
// same cells.
func (o *LayoutOptions) Validate() error {
	if err := bitrow.CheckSize(o.Width, o.Height); err != nil {
		return err
	}
	if o.Columns < 1 || o.Scale < 1 || o.Gap < 1 {
		return fmt.Errorf("columns %d, scale %d and gap %d must all be positive", o.Columns, o.Scale, o.Gap)
	}
	if o.Width*o.Scale < 3 || o.Height*o.Scale < 3 {
		return fmt.Errorf("scaled cell %dx%d is too small to be found, need at least 3x3",
			o.Width*o.Scale, o.Height*o.Scale)
	}
	if o.BoundsThreshold < 0 || o.Threshold > 254 || o.Threshold-o.BoundsThreshold < 2 {
		return fmt.Errorf("thresholds %d and %d leave no room for a cell background", o.Threshold, o.BoundsThreshold)
	}

	// Lines are measured with one extra black pixel, so a blank cell column
	// and a row band holding a single cell must clear the bounds threshold
	// by more than one pixel's worth.
	bg, b := o.background(), o.BoundsThreshold
	cw, ch := o.Width*o.Scale, o.Height*o.Scale
	if bg*ch <= b*(ch+1) || (bg-b)*cw <= b {
		return fmt.Errorf("scaled cell %dx%d is too small for bounds threshold %d", cw, ch, b)
	}
	return nil
}

// background returns the inverted intensity of a cell's background.
func (o *LayoutOptions) background() int {
	return (o.Threshold + o.BoundsThreshold + 1) / 2
}

// BinToSheet renders packed glyph records as a datasheet image that
// SheetToBin reads back to the same rows.
//
// Ink is black on a light gray cell background. Each row of cells sits on a
// full-width strip a little darker than the page, so that a row band stays
// above the bounds threshold even when it is not full. Trailing bytes that do
// not make up a whole record are ignored. It returns the number of cells
// drawn.
func BinToSheet(data []byte, opts LayoutOptions) (*image.Gray, int, error) {
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}
	n, _ := bitrow.Count(data, opts.Width, opts.Height)
	if n == 0 {
		return nil, 0, fmt.Errorf("no whole %d byte records", bitrow.RecordSize(opts.Width, opts.Height))
	}

	cols := min(opts.Columns, n)
	bands := (n + cols - 1) / cols
	cw, ch := opts.Width*opts.Scale, opts.Height*opts.Scale
	img := image.NewGray(image.Rect(0, 0, opts.Gap+cols*(cw+opts.Gap), opts.Gap+bands*(ch+opts.Gap)))

	// Shades are stored inverted: the sheet reader measures ink as 255-value.
	page := color.Gray{Y: 255}
	strip := color.Gray{Y: uint8(255 - opts.BoundsThreshold)}
	background := color.Gray{Y: uint8(255 - opts.background())}
	ink := color.Gray{Y: 0}

	draw.Draw(img, img.Bounds(), image.NewUniform(page), image.Point{}, draw.Src)
	for b := 0; b < bands; b++ {
		y := opts.Gap + b*(ch+opts.Gap)
		draw.Draw(img, image.Rect(0, y, img.Rect.Max.X, y+ch), image.NewUniform(strip), image.Point{}, draw.Src)
	}

	glyph := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))
	for i, record := range bitrow.Records(data, opts.Width, opts.Height) {
		rows, err := bitrow.Unpack(record, opts.Width, opts.Height)
		if err != nil {
			return nil, i, fmt.Errorf("record %d: %w", i, err)
		}
		draw.Draw(glyph, glyph.Rect, image.NewUniform(background), image.Point{}, draw.Src)
		sheetfont.CellFromRows(opts.Width, rows).Draw(glyph, 0, 0, ink)

		x := opts.Gap + (i%cols)*(cw+opts.Gap)
		y := opts.Gap + (i/cols)*(ch+opts.Gap)
		draw.NearestNeighbor.Scale(img, image.Rect(x, y, x+cw, y+ch), glyph, glyph.Rect, draw.Src, nil)
	}
	return img, n, nil
}
