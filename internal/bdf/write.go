package bdf

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Encode writes the font as a BDF 2.1 document.
//
// The header carries the font bounding box and the PIXEL_SIZE, POINT_SIZE,
// RESOLUTION_X, RESOLUTION_Y, FONT_ASCENT and FONT_DESCENT properties, unless
// Properties overrides them. Glyphs follow in the order they were added.
func (f *Font) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bbox := f.BoundingBox()
	fmt.Fprintln(bw, "STARTFONT 2.1")
	fmt.Fprintf(bw, "FONT %s\n", f.FontName)
	fmt.Fprintf(bw, "SIZE %d %d %d\n", f.PointSize, f.ResolutionX, f.ResolutionY)
	fmt.Fprintf(bw, "FONTBOUNDINGBOX %d %d %d %d\n", bbox[0], bbox[1], bbox[2], bbox[3])

	props := [][2]string{
		{"PIXEL_SIZE", strconv.Itoa(f.pixelSize())},
		{"POINT_SIZE", strconv.Itoa(f.PointSize * 10)},
		{"RESOLUTION_X", strconv.Itoa(f.ResolutionX)},
		{"RESOLUTION_Y", strconv.Itoa(f.ResolutionY)},
		{"FONT_ASCENT", strconv.Itoa(f.Ascent())},
		{"FONT_DESCENT", strconv.Itoa(f.Descent())},
	}
	builtin := make(map[string]bool, len(props))
	for i, p := range props {
		builtin[p[0]] = true
		if v, ok := f.Properties[p[0]]; ok {
			props[i][1] = v
		}
	}
	for _, k := range f.propertyKeys() {
		if !builtin[k] {
			props = append(props, [2]string{k, f.Properties[k]})
		}
	}

	fmt.Fprintf(bw, "STARTPROPERTIES %d\n", len(props))
	for _, p := range props {
		fmt.Fprintf(bw, "%s %s\n", p[0], propertyValue(p[1]))
	}
	fmt.Fprintln(bw, "ENDPROPERTIES")

	fmt.Fprintf(bw, "CHARS %d\n", len(f.Glyphs))
	for _, g := range f.Glyphs {
		f.encodeGlyph(bw, g)
	}
	fmt.Fprintln(bw, "ENDFONT")

	return bw.Flush()
}

func (f *Font) encodeGlyph(bw *bufio.Writer, g *Glyph) {
	fmt.Fprintf(bw, "STARTCHAR %s\n", g.Name)
	fmt.Fprintf(bw, "ENCODING %d\n", g.Encoding)
	fmt.Fprintf(bw, "SWIDTH %d 0\n", f.scalableWidth(g.Width))
	fmt.Fprintf(bw, "DWIDTH %d 0\n", g.Width)
	b := g.BoundingBox
	fmt.Fprintf(bw, "BBX %d %d %d %d\n", b[0], b[1], b[2], b[3])
	fmt.Fprintln(bw, "BITMAP")

	rowBytes := (b[0] + 7) / 8
	if rowBytes == 0 {
		rowBytes = 1
	}
	pad := uint(rowBytes*8 - b[0])
	for _, row := range g.Bitmap {
		fmt.Fprintf(bw, "%0*X\n", rowBytes*2, row<<pad)
	}
	fmt.Fprintln(bw, "ENDCHAR")
}

// pixelSize is the point size at the vertical resolution, rounded.
func (f *Font) pixelSize() int {
	return int(math.Round(float64(f.PointSize) * float64(f.ResolutionY) / 72))
}

// scalableWidth converts a device width in pixels to 1/1000ths of the
// point size.
func (f *Font) scalableWidth(dwidth int) int {
	if f.PointSize == 0 || f.ResolutionX == 0 {
		return 0
	}
	return int(math.Round(float64(dwidth) * 1000 * 72 / float64(f.PointSize*f.ResolutionX)))
}

func propertyValue(v string) string {
	if _, err := strconv.Atoi(v); err == nil {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
