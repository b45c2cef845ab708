// Package text reads and writes glyphs as plain text, one line per pixel row:
//
//	// uni0041 LATIN CAPITAL LETTER A
//	A  [ XXX ]
//	A  [X   X]
//	A  [XXXXX]
//
// Lines starting with "//" are comments; a comment starts a new glyph, as
// does a change of the leading character.
package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pbnjay/sheetfont"
)

// Glyph is one glyph of a text document.
type Glyph struct {
	Rune    rune
	Comment string
	Cell    *sheetfont.Cell
}

// label returns the character printed in front of each row.
func label(r rune) rune {
	if r == '/' || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return '.'
	}
	return r
}

// Encode writes glyphs in the text format.
func Encode(w io.Writer, glyphs ...Glyph) error {
	bw := bufio.NewWriter(w)
	for _, g := range glyphs {
		if g.Comment != "" {
			fmt.Fprintf(bw, "// %s\n", g.Comment)
		}
		sd := sheetfont.NewStringDrawable(g.Cell.Width(), g.Cell.Height())
		g.Cell.Draw(sd, 0, 0, nil)
		for _, line := range sd.Lines() {
			fmt.Fprintf(bw, "%c  [%s]\n", label(g.Rune), line)
		}
	}
	return bw.Flush()
}

// Transforms a 1-64-character-long string of spaces and Xs into a row value,
// leftmost pixel in the highest bit.
func textRepresentationToBits(t string) uint64 {
	var o uint64
	for i := 0; i < len(t); i++ {
		o <<= 1
		if t[i] == 'X' {
			o |= 1
		}
	}
	return o
}

// Decode reads glyphs in the text format. Each glyph is as wide as its
// longest row; shorter rows are padded with blank pixels on the right.
func Decode(r io.Reader) ([]Glyph, error) {
	var (
		glyphs  []Glyph
		cur     *Glyph
		rows    []string
		width   int
		comment string
	)
	flush := func() {
		if cur == nil {
			return
		}
		width = max(width, 1)
		bits := make([]uint64, len(rows))
		for y, row := range rows {
			bits[y] = textRepresentationToBits(row) << uint(width-len(row))
		}
		cur.Cell = sheetfont.CellFromRows(width, bits)
		glyphs = append(glyphs, *cur)
		cur, rows, width = nil, nil, 0
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.HasPrefix(text, "//") {
			flush()
			comment = strings.TrimSpace(strings.TrimPrefix(text, "//"))
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		c, pixoffs := utf8.DecodeRuneInString(text)
		pixoffs += 3
		if !strings.HasPrefix(text[pixoffs-3:], "  [") {
			return nil, fmt.Errorf("text glyph line %d: expected %q after the character", line, "  [")
		}
		ww := strings.IndexRune(text[pixoffs:], ']')
		if ww < 0 {
			return nil, fmt.Errorf("text glyph line %d: missing ']'", line)
		}
		if ww > sheetfont.MaxWidth {
			return nil, fmt.Errorf("text glyph line %d: row wider than %d pixels", line, sheetfont.MaxWidth)
		}

		if cur != nil && c != cur.Rune {
			flush()
		}
		if cur == nil {
			cur = &Glyph{Rune: c, Comment: comment}
			comment = ""
		}
		rows = append(rows, text[pixoffs:pixoffs+ww])
		width = max(width, ww)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return glyphs, nil
}
