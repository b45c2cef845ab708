package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pbnjay/sheetfont"
)

func assertGlyphRows(t *testing.T, g Glyph, values ...uint64) {
	t.Helper()
	if g.Cell.Height() != len(values) {
		t.Errorf("character %c: expected %d rows got %d", g.Rune, len(values), g.Cell.Height())
		return
	}
	for i, v := range values {
		if g.Cell.Row(i) != v {
			t.Errorf("character %c row %d: expected %032b got %032b", g.Rune, i, v, g.Cell.Row(i))
		}
	}
}

func TestDecodeFixed(t *testing.T) {
	// These glyphs are uniformly 5x2.
	var document = `A  [X X X]
A  [ X X ]
B  [  XXX]
B  [XX   ]
`
	glyphs, err := Decode(strings.NewReader(document))
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 2 {
		t.Fatalf("unexpected glyph count %d", len(glyphs))
	}
	if glyphs[0].Cell.Width() != 5 {
		t.Error("unexpected glyph width", glyphs[0].Cell.Width())
	}

	assertGlyphRows(t, glyphs[0], 0b10101, 0b01010)
	assertGlyphRows(t, glyphs[1], 0b00111, 0b11000)
}

func TestDecodeVariable(t *testing.T) {
	// These glyphs vary in both width and height.
	var document = `A  [X]
A  [ ]
B  [  XXX]
B  [XX]
// third glyph
C  [  XXX]
C  [XX   ]
C  [XX   ]
C  [  XXX]
`
	glyphs, err := Decode(strings.NewReader(document))
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 3 {
		t.Fatalf("unexpected glyph count %d", len(glyphs))
	}

	assertGlyphRows(t, glyphs[0], 0b1, 0b0)
	assertGlyphRows(t, glyphs[1], 0b00111, 0b11000)
	assertGlyphRows(t, glyphs[2], 0b00111, 0b11000, 0b11000, 0b00111)
	if glyphs[2].Comment != "third glyph" {
		t.Errorf("unexpected comment %q", glyphs[2].Comment)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, doc := range []string{
		"A [X]\n",
		"A  [X\n",
		"A  [" + strings.Repeat("X", 65) + "]\n",
	} {
		if _, err := Decode(strings.NewReader(doc)); err == nil {
			t.Errorf("%q: expected an error", doc)
		}
	}
}

func TestEncode(t *testing.T) {
	a := sheetfont.CellFromRows(5, []uint64{0b01110, 0b10001, 0b11111})
	space := sheetfont.NewCell(3, 2)

	buf := &bytes.Buffer{}
	err := Encode(buf,
		Glyph{Rune: 'A', Comment: "uni0041 LATIN CAPITAL LETTER A", Cell: a},
		Glyph{Rune: ' ', Cell: space},
		Glyph{Rune: ' ', Comment: "another blank", Cell: space},
	)
	if err != nil {
		t.Fatal(err)
	}
	want := `// uni0041 LATIN CAPITAL LETTER A
A  [ XXX ]
A  [X   X]
A  [XXXXX]
.  [   ]
.  [   ]
// another blank
.  [   ]
.  [   ]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	glyphs, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(glyphs))
	}
	if glyphs[2].Comment != "another blank" {
		t.Errorf("unexpected comment %q", glyphs[2].Comment)
	}
	if diff := cmp.Diff(a.Rows(), glyphs[0].Cell.Rows()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if glyphs[1].Cell.Height() != 2 || !glyphs[1].Cell.Empty() {
		t.Errorf("unexpected second glyph:\n%s", glyphs[1].Cell)
	}
}
