// Package charmap reads and writes codepoint maps, which assign a codepoint
// to each glyph slot of a packed binary font.
//
// A map file has one line per glyph slot. The first whitespace-delimited
// token of a line is the hexadecimal codepoint; anything after it is a
// comment. Codepoint 0 marks a slot without a glyph.
package charmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Skip is the codepoint of a slot that holds no glyph.
const Skip rune = 0

// Map holds one codepoint per glyph slot, in slot order.
type Map []rune

// SyntaxError reports a map line that does not start with a hexadecimal
// codepoint.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("codepoint map line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse reads a codepoint map. Any line without a valid codepoint is an error.
func Parse(r io.Reader) (Map, error) {
	var m Map
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		cp, err := parseCodepoint(text)
		if err != nil {
			return nil, &SyntaxError{Line: line, Text: text, Err: err}
		}
		m = append(m, cp)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseCodepoint(line string) (rune, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("missing codepoint")
	}
	tok := fields[0]
	if len(tok) > 2 && (tok[:2] == "0x" || tok[:2] == "0X") {
		tok = tok[2:]
	}
	v, err := strconv.ParseUint(tok, 16, 31)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

// Write writes one line per codepoint. When names is not nil, names[i] is
// written after the codepoint as a comment.
func Write(w io.Writer, m Map, names []string) error {
	bw := bufio.NewWriter(w)
	for i, cp := range m {
		if i < len(names) && names[i] != "" {
			fmt.Fprintf(bw, "%x %s\n", cp, names[i])
		} else {
			fmt.Fprintf(bw, "%x\n", cp)
		}
	}
	return bw.Flush()
}

// GlyphName returns the glyph name used for a codepoint: "uni" followed by
// four lower-case hex digits within the Basic Multilingual Plane, and "U+"
// followed by the hex value above it. The two forms never collide.
func GlyphName(cp rune) string {
	if cp <= 0xFFFF {
		return fmt.Sprintf("uni%04x", cp)
	}
	return fmt.Sprintf("U+%x", cp)
}

// Describe returns the glyph name together with the Unicode character name,
// if the codepoint has one.
func Describe(cp rune) string {
	name := runenames.Name(cp)
	if name == "" {
		return GlyphName(cp)
	}
	return GlyphName(cp) + " " + name
}
