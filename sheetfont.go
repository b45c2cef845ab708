// Package sheetfont moves fixed-size raster glyphs between three
// representations: packed binary glyph records with a codepoint map, BDF
// bitmap fonts, and scanned "datasheet" images holding a grid of character
// cells.
//
// The conversions themselves live in the tools under cmd/. This package
// provides the glyph bitmap shared by all of them, and simple opaque-pixel
// drawing of it in the style of the standard image and image/draw packages.
package sheetfont

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
)

// MaxWidth is the widest cell that can be represented, in pixels.
const MaxWidth = 64

// Drawable is an interface which supports setting an x,y coordinate to a color.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// Cell is a fixed-size grid of ink values for one character.
//
// Each row is stored as an integer holding Width significant bits, with the
// leftmost pixel in the most significant of those bits. Rows are ordered top
// to bottom.
type Cell struct {
	width  int
	height int
	rows   []uint64
}

// NewCell returns an empty cell of the given size. It panics if the width is
// outside 1..MaxWidth or the height is negative.
func NewCell(width, height int) *Cell {
	if width < 1 || width > MaxWidth || height < 0 {
		panic(fmt.Sprintf("sheetfont: invalid cell size %dx%d", width, height))
	}
	return &Cell{width: width, height: height, rows: make([]uint64, height)}
}

// CellFromRows builds a cell from row values holding width significant bits
// each. Bits above the width are ignored.
func CellFromRows(width int, rows []uint64) *Cell {
	c := NewCell(width, len(rows))
	mask := rowMask(width)
	for y, r := range rows {
		c.rows[y] = r & mask
	}
	return c
}

// CellFromAligned builds a cell from rows that are left-justified within the
// byte-aligned row width, i.e. the layout of one row of a packed glyph record.
// The low-order pad bits are discarded.
func CellFromAligned(width int, rows []uint64) *Cell {
	pad := uint(padBits(width))
	c := NewCell(width, len(rows))
	mask := rowMask(width)
	for y, r := range rows {
		c.rows[y] = (r >> pad) & mask
	}
	return c
}

func padBits(width int) int {
	return (8 - width%8) % 8
}

func rowMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// Width returns the number of pixels in each row.
func (c *Cell) Width() int { return c.width }

// Height returns the number of rows.
func (c *Cell) Height() int { return c.height }

// At reports whether the pixel in column x of row y is inked.
// Pixels outside the cell are never inked.
func (c *Cell) At(x, y int) bool {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return false
	}
	return c.rows[y]&(1<<uint(c.width-1-x)) != 0
}

// Set changes the ink value of the pixel in column x of row y.
// Coordinates outside the cell are ignored.
func (c *Cell) Set(x, y int, ink bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	bit := uint64(1) << uint(c.width-1-x)
	if ink {
		c.rows[y] |= bit
	} else {
		c.rows[y] &^= bit
	}
}

// Row returns row y as a width-bit integer.
func (c *Cell) Row(y int) uint64 { return c.rows[y] }

// AlignedRow returns row y left-justified within the byte-aligned row width,
// the layout used by packed glyph records and BDF bitmaps.
func (c *Cell) AlignedRow(y int) uint64 {
	return c.rows[y] << uint(padBits(c.width))
}

// Rows returns a copy of all rows as width-bit integers.
func (c *Cell) Rows() []uint64 {
	return append([]uint64(nil), c.rows...)
}

// Empty reports whether no pixel of the cell is inked.
func (c *Cell) Empty() bool {
	for _, r := range c.rows {
		if r != 0 {
			return false
		}
	}
	return true
}

// Draw displays the cell in the provided color at position x,y in Drawable,
// which is the top-left corner of the cell. Drawable.Set is called for each
// inked pixel, leaving all other pixels in the Drawable as-is.
func (c *Cell) Draw(dr Drawable, x, y int, clr color.Color) {
	for yy := 0; yy < c.height; yy++ {
		bitMask := uint64(1) << uint(c.width-1)
		for xx := 0; xx < c.width; xx++ {
			if c.rows[yy]&bitMask != 0 {
				dr.Set(x+xx, y+yy, clr)
			}
			bitMask >>= 1
		}
	}
}

// String renders the cell as lines of 'X' and ' ', one line per row.
func (c *Cell) String() string {
	sd := NewStringDrawable(c.width, c.height)
	c.Draw(sd, 0, 0, nil)
	return sd.String()
}

///////

// StringDrawable implements Drawable so cells can be inspected as plain
// text. Every pixel that is set becomes an 'X'.
type StringDrawable struct {
	lines [][]byte
}

// NewStringDrawable returns a StringDrawable pre-filled with a w by h block
// of spaces, so that the rendering keeps its size even where nothing is set.
func NewStringDrawable(w, h int) *StringDrawable {
	s := &StringDrawable{lines: make([][]byte, h)}
	for y := range s.lines {
		s.lines[y] = bytes.Repeat([]byte{' '}, w)
	}
	return s
}

func (s *StringDrawable) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 {
		return
	}
	for len(s.lines) <= y {
		s.lines = append(s.lines, nil)
	}

	if len(s.lines[y]) <= x {
		nb := bytes.Repeat([]byte{' '}, 1+(x-len(s.lines[y])))
		s.lines[y] = append(s.lines[y], nb...)
	}

	s.lines[y][x] = 'X'
}

// Lines returns the current rendering, one string per row.
func (s *StringDrawable) Lines() []string {
	r := make([]string, len(s.lines))
	for i, line := range s.lines {
		r[i] = string(line)
	}
	return r
}

// String returns the current string representation of this Drawable.
func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the current string representation of this Drawable
// with a user-provided prefix before each line.
func (s *StringDrawable) PrefixString(p string) string {
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(p)
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}
