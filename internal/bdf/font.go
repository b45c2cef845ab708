// Package bdf builds, writes and reads fonts in the Glyph Bitmap
// Distribution Format.
//
// https://www.adobe.com/content/dam/acom/en/devnet/font/pdfs/5005.BDF_Spec.pdf
package bdf

import (
	"errors"
	"fmt"
	"sort"
)

// ErrGlyphExists is returned when a glyph name or codepoint is added to a
// font twice.
var ErrGlyphExists = errors.New("glyph already exists")

// Glyph is a single character in a BDF font.
type Glyph struct {
	Name     string // "uni0041"
	Encoding rune   // 65
	Width    int    // DWIDTH, pixels, e.g. 12

	BoundingBox [4]int   // Width, Height, X offset, Y offset (from the baseline origin)
	Bitmap      []uint64 // [Height] rows of Width significant bits, leftmost pixel highest
}

// Font is an ordered set of glyphs plus global metrics.
type Font struct {
	FontName string

	PointSize   int // e.g. 18
	ResolutionX int // e.g. 72
	ResolutionY int

	// Properties holds extra font properties. Values that parse as
	// integers are written unquoted.
	Properties map[string]string

	Glyphs []*Glyph

	byName map[string]*Glyph
	byCode map[rune]*Glyph
}

// NewFont returns an empty font.
func NewFont(name string, pointSize, resX, resY int) *Font {
	return &Font{
		FontName:    name,
		PointSize:   pointSize,
		ResolutionX: resX,
		ResolutionY: resY,
		Properties:  make(map[string]string),
		byName:      make(map[string]*Glyph),
		byCode:      make(map[rune]*Glyph),
	}
}

// NewGlyph appends a glyph to the font. The bitmap must hold one row per
// bounding box row; rows keep the low-order bbox-width bits.
// Glyphs are kept in the order they are added.
func (f *Font) NewGlyph(name string, cp rune, rows []uint64, bbx [4]int, advance int) (*Glyph, error) {
	if bbx[0] < 0 || bbx[0] > 64 || bbx[1] < 0 {
		return nil, fmt.Errorf("glyph %s: invalid bounding box %v", name, bbx)
	}
	if len(rows) != bbx[1] {
		return nil, fmt.Errorf("glyph %s: %d bitmap rows for height %d", name, len(rows), bbx[1])
	}
	if _, dup := f.byName[name]; dup {
		return nil, fmt.Errorf("glyph name %s: %w", name, ErrGlyphExists)
	}
	if _, dup := f.byCode[cp]; dup {
		return nil, fmt.Errorf("codepoint %#x: %w", cp, ErrGlyphExists)
	}

	g := &Glyph{
		Name:        name,
		Encoding:    cp,
		Width:       advance,
		BoundingBox: bbx,
		Bitmap:      append([]uint64(nil), rows...),
	}
	f.add(g)
	return g, nil
}

func (f *Font) add(g *Glyph) {
	if f.byName == nil {
		f.byName = make(map[string]*Glyph)
		f.byCode = make(map[rune]*Glyph)
	}
	f.Glyphs = append(f.Glyphs, g)
	f.byName[g.Name] = g
	f.byCode[g.Encoding] = g
}

// Glyph returns the glyph for a codepoint, or nil.
func (f *Font) Glyph(cp rune) *Glyph {
	return f.byCode[cp]
}

// BoundingBox returns the union of all glyph bounding boxes, as
// width, height, x offset, y offset.
func (f *Font) BoundingBox() [4]int {
	if len(f.Glyphs) == 0 {
		return [4]int{}
	}
	first := f.Glyphs[0].BoundingBox
	minX, minY := first[2], first[3]
	maxX, maxY := minX+first[0], minY+first[1]
	for _, g := range f.Glyphs[1:] {
		b := g.BoundingBox
		minX = min(minX, b[2])
		minY = min(minY, b[3])
		maxX = max(maxX, b[2]+b[0])
		maxY = max(maxY, b[3]+b[1])
	}
	return [4]int{maxX - minX, maxY - minY, minX, minY}
}

// Ascent and Descent return the font extent above and below the baseline.
func (f *Font) Ascent() int {
	b := f.BoundingBox()
	return b[1] + b[3]
}

func (f *Font) Descent() int {
	return -f.BoundingBox()[3]
}

func (f *Font) propertyKeys() []string {
	keys := make([]string, 0, len(f.Properties))
	for k := range f.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
