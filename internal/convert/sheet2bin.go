package convert

import (
	"fmt"
	"image"
	"io"

	"github.com/pbnjay/sheetfont"
	"github.com/pbnjay/sheetfont/internal/bitrow"
	"github.com/pbnjay/sheetfont/internal/sheet"
	"github.com/pbnjay/sheetfont/internal/text"
)

// MaxWordWidth is the widest cell whose rows fit the 16-bit words written by
// SheetToBin.
const MaxWordWidth = 16

// SheetOptions controls SheetToBin.
type SheetOptions struct {
	sheet.Options

	// Preview, if not nil, receives every cell in text form.
	Preview io.Writer
}

// Validate checks the options, including the word size limit.
func (o *SheetOptions) Validate() error {
	if err := o.Options.Validate(); err != nil {
		return err
	}
	if o.CellWidth > MaxWordWidth {
		return fmt.Errorf("cell width %d: %w", o.CellWidth, bitrow.ErrWordOverflow)
	}
	return nil
}

// SheetToBin extracts the character cells of a datasheet image and writes
// every row of every cell, in sheet order, as a big-endian 16-bit word. The
// output of several sheets can be concatenated. It returns the number of
// cells written.
func SheetToBin(w io.Writer, img image.Image, opts SheetOptions) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	glyphs, err := sheet.Parse(img, opts.Options)
	if err != nil {
		return 0, err
	}
	for i, g := range glyphs {
		if err := bitrow.WriteWords(w, g.Rows); err != nil {
			return i, err
		}
		if opts.Preview != nil {
			err = text.Encode(opts.Preview, text.Glyph{
				Rune:    '.',
				Comment: fmt.Sprintf("cell %d: row %d column %d at %v", i, g.Row, g.Column, g.Bounds),
				Cell:    sheetfont.CellFromAligned(opts.CellWidth, g.Rows),
			})
			if err != nil {
				return i, err
			}
		}
	}
	logf(opts.Log, "%d cells", len(glyphs))
	return len(glyphs), nil
}
