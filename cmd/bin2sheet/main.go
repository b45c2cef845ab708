// bin2sheet renders a raw bitmap font dump as a datasheet image, a grid of
// shaded character cells that sheet2bin reads back:
//
//	./bin2sheet -w 12 -H 18 -o sheet.png font.bin
//	./sheet2bin -W 12 -H 18 sheet.png > font.bin
//
// The output format follows the file extension: .png, .bmp or .tif/.tiff.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/pbnjay/sheetfont/internal/cli"
	"github.com/pbnjay/sheetfont/internal/convert"
)

var opts struct {
	Width        int    `short:"w" long:"width"         env:"SHEETFONT_WIDTH"         default:"12"  description:"glyph width in pixels"`
	Height       int    `short:"H" long:"height"        env:"SHEETFONT_HEIGHT"        default:"18"  description:"glyph height in pixels"`
	Columns      int    `short:"c" long:"columns"       env:"SHEETFONT_COLUMNS"       default:"16"  description:"cells per row"`
	Scale        int    `short:"s" long:"scale"         env:"SHEETFONT_SCALE"         default:"4"   description:"image pixels per glyph pixel"`
	Gap          int    `short:"g" long:"gap"           env:"SHEETFONT_GAP"           default:"3"   description:"background pixels between cells"`
	Thresh       int    `short:"t" long:"thresh"        env:"SHEETFONT_THRESH"        default:"192" description:"ink threshold the sheet will be read with"`
	BoundsThresh int    `short:"b" long:"bounds-thresh" env:"SHEETFONT_BOUNDS_THRESH" default:"32"  description:"bounds threshold the sheet will be read with"`
	Output       string `short:"o" long:"output"        env:"SHEETFONT_OUTPUT"        default:"sheet.png" description:"output image file"`
	cli.Verbose

	Args struct {
		BinFile string `positional-arg-name:"binfile" required:"yes"`
	} `positional-args:"yes"`
}

func encode(w io.Writer, filename string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png", "":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}

func main() {
	cli.Setup("bin2sheet")
	cli.Parse(&opts, "[options] binfile")

	data, err := os.ReadFile(opts.Args.BinFile)
	cli.Check(err)

	layout := convert.LayoutOptions{
		Width:           opts.Width,
		Height:          opts.Height,
		Columns:         opts.Columns,
		Scale:           opts.Scale,
		Gap:             opts.Gap,
		Threshold:       opts.Thresh,
		BoundsThreshold: opts.BoundsThresh,
	}
	img, n, err := convert.BinToSheet(data, layout)
	cli.Check(err)
	opts.Debug().Printf("%d cells on a %dx%d sheet", n, img.Rect.Dx(), img.Rect.Dy())

	out, err := cli.Create(opts.Output, true)
	cli.Check(err)
	if err := encode(out, opts.Output, img); err != nil {
		out.Close()
		cli.Fatal(err)
	}
	cli.Check(out.Close())
}
