// Package sheet extracts character bitmaps from a scanned "datasheet": an
// image holding a grid of character cells separated by background.
//
// The sheet is normalized so ink is bright, segmented into row bands and then
// column bands of above-threshold mean intensity, and each resulting cell is
// resampled onto a fixed logical pixel grid by thresholding the mean
// intensity of the source area behind every logical pixel.
package sheet

import (
	"fmt"
	"image"
	"io"
	"log"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pbnjay/sheetfont/internal/bitrow"
)

// Thresholds used by the command-line tools unless told otherwise.
const (
	DefaultThreshold       = 192
	DefaultBoundsThreshold = 32
)

// Options controls how a sheet is parsed. There are no implicit defaults:
// every field must be set.
type Options struct {
	CellWidth, CellHeight int // logical pixels per cell

	// Threshold is the mean intensity above which a logical pixel is inked.
	Threshold int
	// BoundsThreshold is the mean line intensity above which a scan line
	// belongs to a band of cells.
	BoundsThreshold int
	// BrightInk is set for sheets with light ink on a dark page.
	BrightInk bool

	// Log receives debug output about detected bands. May be nil.
	Log *log.Logger
}

// Validate checks the options for values Parse cannot work with.
func (o *Options) Validate() error {
	if err := bitrow.CheckSize(o.CellWidth, o.CellHeight); err != nil {
		return err
	}
	if o.Threshold < 0 || o.Threshold > 255 {
		return fmt.Errorf("threshold %d out of range 0-255", o.Threshold)
	}
	if o.BoundsThreshold < 0 || o.BoundsThreshold > 255 {
		return fmt.Errorf("bounds threshold %d out of range 0-255", o.BoundsThreshold)
	}
	return nil
}

func (o *Options) logf(format string, args ...interface{}) {
	if o.Log != nil {
		o.Log.Printf(format, args...)
	}
}

// Glyph is one character cell found on a sheet.
type Glyph struct {
	Cell
	// Rows holds CellHeight rows, left-justified within the byte-aligned
	// width of CellWidth.
	Rows []uint64
}

// Parse finds and samples all character cells of img, in sheet order.
func Parse(img image.Image, opts Options) ([]Glyph, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := Normalize(img, opts.BrightInk)
	var glyphs []Glyph
	for c := range Cells(g, opts.BoundsThreshold) {
		if c.Column == 0 {
			opts.logf("row band %d: y %d-%d", c.Row, c.Bounds.Min.Y, c.Bounds.Max.Y-1)
		}
		opts.logf("    cell %d: x %d-%d", c.Column, c.Bounds.Min.X, c.Bounds.Max.X-1)
		glyphs = append(glyphs, Glyph{
			Cell: c,
			Rows: Sample(g, c.Bounds, opts.CellWidth, opts.CellHeight, opts.Threshold),
		})
	}
	return glyphs, nil
}

// Decode reads an image in any of the supported formats: PNG, GIF, JPEG,
// BMP, TIFF or WebP. The format name is that of image.Decode.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
