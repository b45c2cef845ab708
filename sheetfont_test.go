package sheetfont

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCellSetAt(t *testing.T) {
	c := NewCell(12, 2)
	for _, x := range []int{0, 3, 11} {
		c.Set(x, 0, true)
	}
	c.Set(5, 1, true)
	c.Set(5, 1, false)
	c.Set(12, 0, true) // outside, ignored

	if c.Row(0) != 0b1001_0000_0001 {
		t.Errorf("row 0: expected %012b got %012b", 0b1001_0000_0001, c.Row(0))
	}
	if c.AlignedRow(0) != 0x9010 {
		t.Errorf("aligned row 0: expected %#04x got %#04x", 0x9010, c.AlignedRow(0))
	}
	if c.Row(1) != 0 {
		t.Errorf("row 1: expected 0 got %012b", c.Row(1))
	}
	if !c.At(3, 0) || c.At(4, 0) || c.At(-1, 0) || c.At(0, 2) {
		t.Error("unexpected At results")
	}
}

func TestCellFromAlignedDiscardsPad(t *testing.T) {
	for width := 1; width <= MaxWidth; width++ {
		pad := padBits(width)
		row := uint64(1)<<uint(width-1) | 1 // leftmost and rightmost pixel
		aligned := row<<uint(pad) | (1<<uint(pad) - 1)
		c := CellFromAligned(width, []uint64{aligned})
		if c.Row(0) != row {
			t.Errorf("width %d: expected %b got %b", width, row, c.Row(0))
		}
		if c.AlignedRow(0) != row<<uint(pad) {
			t.Errorf("width %d: aligned row kept pad bits: %b", width, c.AlignedRow(0))
		}
	}
}

func TestCellFromRowsMasks(t *testing.T) {
	c := CellFromRows(3, []uint64{0xff, 0b010})
	if diff := cmp.Diff([]uint64{0b111, 0b010}, c.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if c.Empty() {
		t.Error("cell should not be empty")
	}
	if !NewCell(4, 4).Empty() {
		t.Error("new cell should be empty")
	}
}

func TestCellString(t *testing.T) {
	c := CellFromRows(5, []uint64{0b00100, 0b01010, 0b10001, 0b11111, 0b00000})
	want := "  X  \n" +
		" X X \n" +
		"X   X\n" +
		"XXXXX\n" +
		"     \n"
	if got := c.String(); got != want {
		t.Errorf("unexpected rendering:\n%q\nwant\n%q", got, want)
	}
}

func TestCellDraw(t *testing.T) {
	c := CellFromRows(3, []uint64{0b101, 0b010})
	img := image.NewGray(image.Rect(0, 0, 5, 4))
	c.Draw(img, 1, 1, color.White)

	var got []image.Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if img.GrayAt(x, y).Y != 0 {
				got = append(got, image.Pt(x, y))
			}
		}
	}
	want := []image.Point{{1, 1}, {3, 1}, {2, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drawn pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestStringDrawablePrefix(t *testing.T) {
	sd := &StringDrawable{}
	sd.Set(2, 1, nil)
	sd.Set(-1, 0, nil)
	if got, want := sd.PrefixString("// "), "// \n//   X\n"; got != want {
		t.Errorf("expected %q got %q", want, got)
	}
}
