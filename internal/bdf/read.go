package bdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SyntaxError reports malformed BDF input.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bdf: line %d: %s", e.Line, e.Msg)
}

type decoder struct {
	s    *bufio.Scanner
	line int
	font *Font
}

func (d *decoder) scan() bool {
	if d.s.Scan() {
		d.line++
		return true
	}
	return false
}

func (d *decoder) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Line: d.line, Msg: fmt.Sprintf(format, args...)}
}

func (d *decoder) eof(what string) error {
	if err := d.s.Err(); err != nil {
		return err
	}
	return d.errorf("unexpected end of file in %s", what)
}

// split returns the keyword of the current line and the rest of it.
func (d *decoder) split() (string, string) {
	parts := strings.SplitN(strings.TrimSpace(d.s.Text()), " ", 2)
	if len(parts) == 1 {
		parts = append(parts, "")
	}
	return parts[0], strings.TrimSpace(parts[1])
}

// Decode reads a BDF font. Unknown keywords are ignored. The font bounding
// box of the file is not kept; Font.BoundingBox derives it from the glyphs.
func Decode(r io.Reader) (*Font, error) {
	d := &decoder{
		s:    bufio.NewScanner(r),
		font: NewFont("", 0, 0, 0),
	}

	numGlyphs := -1
	for numGlyphs < 0 {
		if !d.scan() {
			return nil, d.eof("font header")
		}
		key, rest := d.split()
		switch key {
		case "STARTPROPERTIES":
			if err := d.properties(); err != nil {
				return nil, err
			}
		case "CHARS":
			if _, err := fmt.Sscanf(rest, "%d", &numGlyphs); err != nil {
				return nil, d.errorf("CHARS: %v", err)
			}
		default:
			if pfunc, ok := parsers[key]; ok {
				if err := pfunc(d.font, rest); err != nil {
					return nil, d.errorf("%s: %v", key, err)
				}
			}
		}
	}

	for {
		if !d.scan() {
			return nil, d.eof("glyph list")
		}
		key, rest := d.split()
		switch key {
		case "STARTCHAR":
			g, err := d.glyph(rest)
			if err != nil {
				return nil, err
			}
			d.font.add(g)
		case "ENDFONT":
			if len(d.font.Glyphs) != numGlyphs {
				return nil, d.errorf("found %d glyphs, CHARS declared %d", len(d.font.Glyphs), numGlyphs)
			}
			return d.font, nil
		}
	}
}

func (d *decoder) properties() error {
	for {
		if !d.scan() {
			return d.eof("properties")
		}
		key, rest := d.split()
		if key == "ENDPROPERTIES" {
			return nil
		}
		if key == "" || key == "COMMENT" {
			continue
		}
		if strings.HasPrefix(rest, `"`) && strings.HasSuffix(rest, `"`) && len(rest) >= 2 {
			rest = strings.ReplaceAll(rest[1:len(rest)-1], `""`, `"`)
		}
		d.font.Properties[key] = rest
	}
}

func (d *decoder) glyph(name string) (*Glyph, error) {
	g := &Glyph{Name: name}

	haveBBX := false
	for {
		if !d.scan() {
			return nil, d.eof("glyph " + name)
		}
		key, rest := d.split()
		if key == "BITMAP" {
			break
		}
		if cfunc, ok := charparsers[key]; ok {
			if err := cfunc(g, rest); err != nil {
				return nil, d.errorf("glyph %s: %s: %v", name, key, err)
			}
			haveBBX = haveBBX || key == "BBX"
		}
	}
	if !haveBBX {
		return nil, d.errorf("glyph %s: BITMAP before BBX", name)
	}

	w, h := g.BoundingBox[0], g.BoundingBox[1]
	if w < 0 || w > 64 || h < 0 {
		return nil, d.errorf("glyph %s: unsupported bounding box %v", name, g.BoundingBox)
	}
	g.Bitmap = make([]uint64, h)
	for y := 0; y < h; y++ {
		if !d.scan() {
			return nil, d.eof("glyph " + name)
		}
		hex := strings.TrimSpace(d.s.Text())
		shift := len(hex)*4 - w
		if len(hex) > 16 || shift < 0 {
			return nil, d.errorf("glyph %s: bitmap row %q does not match width %d", name, hex, w)
		}
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return nil, d.errorf("glyph %s: bitmap row: %v", name, err)
		}
		g.Bitmap[y] = v >> uint(shift)
	}

	if !d.scan() {
		return nil, d.eof("glyph " + name)
	}
	if key, _ := d.split(); key != "ENDCHAR" {
		return nil, d.errorf("glyph %s: expected ENDCHAR, found %q", name, key)
	}
	return g, nil
}

////////

var charparsers = map[string]func(*Glyph, string) error{
	"ENCODING": func(g *Glyph, line string) error {
		// "ENCODING -1 n" marks a glyph outside the standard encoding
		var nc int
		if _, err := fmt.Sscanf(line, "%d", &nc); err != nil {
			return err
		}
		g.Encoding = rune(nc)
		return nil
	},
	"DWIDTH": func(g *Glyph, line string) error {
		_, err := fmt.Sscanf(line, "%d", &g.Width)
		return err
	},
	"BBX": func(g *Glyph, line string) error {
		// width, height, x-offset, y-offset
		_, err := fmt.Sscanf(line, "%d %d %d %d", &g.BoundingBox[0], &g.BoundingBox[1], &g.BoundingBox[2], &g.BoundingBox[3])
		return err
	},
}

var parsers = map[string]func(*Font, string) error{
	"FONT": func(f *Font, line string) error {
		f.FontName = line
		return nil
	},
	"SIZE": func(f *Font, line string) error {
		_, err := fmt.Sscanf(line, "%d %d %d", &f.PointSize, &f.ResolutionX, &f.ResolutionY)
		return err
	},
}
