// Package convert drives the conversions between packed binary glyph
// records, BDF fonts and datasheet images.
//
// Glyph records are fixed-size, height rows of byte-aligned,
// most-significant-bit-first pixel data; see package bitrow. Records are
// matched to codepoints by position through a codepoint map; see package
// charmap.
package convert

import "log"

// Resolution is the horizontal and vertical resolution given to BDF fonts.
const Resolution = 72

func logf(l *log.Logger, format string, args ...interface{}) {
	if l != nil {
		l.Printf(format, args...)
	}
}
