package convert

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/pbnjay/sheetfont"
	"github.com/pbnjay/sheetfont/internal/bdf"
	"github.com/pbnjay/sheetfont/internal/bitrow"
	"github.com/pbnjay/sheetfont/internal/charmap"
)

// RecordOptions controls BDFToBin.
type RecordOptions struct {
	// Width and Height give the record cell size. Zero means the width or
	// height of the font bounding box.
	Width, Height int

	// Log receives debug output. May be nil.
	Log *log.Logger
}

// clipCell sets pixels of a cell and counts the ones that fall outside it.
type clipCell struct {
	*sheetfont.Cell
	clipped int
}

func (c *clipCell) Set(x, y int, _ color.Color) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		c.clipped++
		return
	}
	c.Cell.Set(x, y, true)
}

// BDFToBin writes one packed glyph record per encoded glyph of f, in font
// order, and returns the codepoint map and glyph names matching the records.
//
// Glyphs are placed in the cell by their bounding boxes: the top row of the
// cell is the font ascent and column 0 is the leftmost x offset of the font.
// Pixels that fall outside the cell are dropped.
func BDFToBin(w io.Writer, f *bdf.Font, opts RecordOptions) (charmap.Map, []string, error) {
	fbb := f.BoundingBox()
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = fbb[0]
	}
	if height == 0 {
		height = fbb[1]
	}
	if err := bitrow.CheckSize(width, height); err != nil {
		return nil, nil, err
	}
	ascent := f.Ascent()

	var (
		cps   charmap.Map
		names []string
	)
	for _, g := range f.Glyphs {
		if g.Encoding <= 0 {
			logf(opts.Log, "glyph %s: not encoded, skipped", g.Name)
			continue
		}

		bb := g.BoundingBox
		dst := &clipCell{Cell: sheetfont.NewCell(width, height)}
		if bb[0] > 0 {
			src := sheetfont.CellFromRows(bb[0], g.Bitmap)
			src.Draw(dst, bb[2]-fbb[2], ascent-(bb[1]+bb[3]), nil)
		}
		if dst.clipped > 0 {
			logf(opts.Log, "glyph %s: %d pixels outside the %dx%d cell", g.Name, dst.clipped, width, height)
		}

		record, err := bitrow.Pack(dst.Rows(), width)
		if err != nil {
			return nil, nil, fmt.Errorf("glyph %s: %w", g.Name, err)
		}
		if _, err := w.Write(record); err != nil {
			return nil, nil, err
		}
		cps = append(cps, g.Encoding)
		names = append(names, g.Name)
	}
	logf(opts.Log, "%d records of %dx%d", len(cps), width, height)
	return cps, names, nil
}
