package main

import (
	"bytes"
	"image"
	"testing"

	"github.com/pbnjay/sheetfont/internal/sheet"
)

func TestEncode(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 7, 5))
	img.Pix[3] = 200

	for _, filename := range []string{"sheet.png", "SHEET.BMP", "sheet.tif", "sheet.tiff", "sheet"} {
		var buf bytes.Buffer
		if err := encode(&buf, filename, img); err != nil {
			t.Errorf("%s: %v", filename, err)
			continue
		}
		decoded, _, err := sheet.Decode(&buf)
		if err != nil {
			t.Errorf("%s: %v", filename, err)
			continue
		}
		if decoded.Bounds() != img.Bounds() {
			t.Errorf("%s: got bounds %v, expected %v", filename, decoded.Bounds(), img.Bounds())
		}
	}

	if err := encode(&bytes.Buffer{}, "sheet.gif", img); err == nil {
		t.Error("expected an error for .gif")
	}
}
