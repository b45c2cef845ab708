package convert

import (
	"fmt"
	"io"
	"log"
	"maps"

	"github.com/pbnjay/sheetfont"
	"github.com/pbnjay/sheetfont/internal/bdf"
	"github.com/pbnjay/sheetfont/internal/bitrow"
	"github.com/pbnjay/sheetfont/internal/charmap"
	"github.com/pbnjay/sheetfont/internal/text"
)

// BDFOptions controls BinToBDF.
type BDFOptions struct {
	Name          string // font name
	Width, Height int    // cell size in pixels
	Descent       int    // y offset of every glyph's bounding box, negative below the baseline

	// Properties are extra BDF font properties.
	Properties map[string]string

	// Log receives debug output. May be nil.
	Log *log.Logger
	// Preview, if not nil, receives every emitted glyph in text form.
	Preview io.Writer
}

// BinToBDF builds a BDF font from packed glyph records and a codepoint map.
//
// Record i becomes a glyph for codepoint cps[i], in record order. Records
// whose codepoint is charmap.Skip are left out, trailing bytes that do not
// make up a whole record are ignored, and conversion stops at whichever of
// data and cps runs out first. None of these are errors. A codepoint that
// appears twice in cps is an error.
func BinToBDF(data []byte, cps charmap.Map, opts BDFOptions) (*bdf.Font, error) {
	w, h := opts.Width, opts.Height
	if err := bitrow.CheckSize(w, h); err != nil {
		return nil, err
	}

	font := bdf.NewFont(opts.Name, h, Resolution, Resolution)
	maps.Copy(font.Properties, opts.Properties)

	slots, rest := bitrow.Count(data, w, h)
	if rest != 0 {
		logf(opts.Log, "ignoring %d bytes after the last whole %d byte record", rest, bitrow.RecordSize(w, h))
	}
	if len(cps) < slots {
		logf(opts.Log, "codepoint map has %d entries for %d records; stopping after %d", len(cps), slots, len(cps))
	}

	for i, record := range bitrow.Records(data, w, h) {
		if i >= len(cps) {
			break
		}
		cp := cps[i]
		if cp == charmap.Skip {
			logf(opts.Log, "record %d: no codepoint, skipped", i)
			continue
		}

		rows, err := bitrow.Unpack(record, w, h)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		name := charmap.GlyphName(cp)
		_, err = font.NewGlyph(name, cp, rows, [4]int{w, h, 0, opts.Descent}, w)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if opts.Preview != nil {
			err = text.Encode(opts.Preview, text.Glyph{
				Rune:    cp,
				Comment: charmap.Describe(cp),
				Cell:    sheetfont.CellFromRows(w, rows),
			})
			if err != nil {
				return nil, err
			}
		}
	}

	logf(opts.Log, "%d glyphs from %d records", len(font.Glyphs), slots)
	return font, nil
}
