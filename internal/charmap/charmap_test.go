package charmap

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	var document = `41 LATIN CAPITAL LETTER A
0	unused slot
  42
0x1F600 grinning face
ff
`
	m, err := Parse(strings.NewReader(document))
	if err != nil {
		t.Fatal(err)
	}
	want := Map{0x41, 0, 0x42, 0x1F600, 0xff}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		document string
		line     int
	}{
		{"41\nzz comment\n", 2},
		{"41\n\n42\n", 2},
		{"-1\n", 1},
		{"80000000\n", 1},
	} {
		_, err := Parse(strings.NewReader(tc.document))
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: expected SyntaxError, got %v", tc.document, err)
			continue
		}
		if se.Line != tc.line {
			t.Errorf("%q: expected error on line %d, got %d", tc.document, tc.line, se.Line)
		}
	}

	_, err := Parse(strings.NewReader("80000000\n"))
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected range error, got %v", err)
	}
}

func TestGlyphName(t *testing.T) {
	for cp, want := range map[rune]string{
		0x41:    "uni0041",
		0xe9:    "uni00e9",
		0xFFFF:  "uniffff",
		0x10000: "U+10000",
		0x1F600: "U+1f600",
	} {
		if got := GlyphName(cp); got != want {
			t.Errorf("GlyphName(%#x) = %q, want %q", cp, got, want)
		}
	}
}

func TestGlyphNameDistinct(t *testing.T) {
	seen := make(map[string]rune)
	for _, cp := range []rune{0x1, 0x10, 0x100, 0x1000, 0xFFFF, 0x10000, 0x1F600, 0x10FFFF} {
		name := GlyphName(cp)
		if other, dup := seen[name]; dup {
			t.Errorf("codepoints %#x and %#x share name %q", other, cp, name)
		}
		seen[name] = cp
	}
}

func TestDescribe(t *testing.T) {
	if got, want := Describe('A'), "uni0041 LATIN CAPITAL LETTER A"; got != want {
		t.Errorf("expected %q got %q", want, got)
	}
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Write(buf, Map{0x41, 0x1F600, 0x20}, []string{"uni0041", "U+1f600"})
	if err != nil {
		t.Fatal(err)
	}
	want := "41 uni0041\n1f600 U+1f600\n20\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q got %q", want, got)
	}

	m, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Map{0x41, 0x1F600, 0x20}, m); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}
