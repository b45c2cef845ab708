// sheet2bin is a commandline tool for extracting a bitmap font from scanned
// "datasheet" images, such as the character tables printed in display
// controller manuals. Each sheet holds a grid of character cells on a light
// page:
//
//	+--------+  +--------+  +--------+
//	|  XX    |  | XXXX   |  |  XXX   |
//	| X  X   |  | X   X  |  | X      |  ...
//	| XXXX   |  | XXXX   |  | X      |
//	| X  X   |  | X   X  |  | X      |
//	| X  X   |  | XXXX   |  |  XXX   |
//	+--------+  +--------+  +--------+
//
// Cells are found by scanning for rows, then columns, of mean intensity above
// the bounds threshold, and each cell is resampled onto a width x height grid
// of logical pixels. Every row of every cell is written as a big-endian 16-bit
// word, cells in reading order, sheets in command-line order:
//
//	./sheet2bin -W 12 -H 18 -o font.bin page1.png page2.png
//
// Scans with light ink on a dark page need -i.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pbnjay/sheetfont/internal/cli"
	"github.com/pbnjay/sheetfont/internal/convert"
	"github.com/pbnjay/sheetfont/internal/sheet"
)

var opts struct {
	Width        int    `short:"W" long:"width"         env:"SHEETFONT_WIDTH"         default:"12"  description:"cell width in logical pixels, at most 16"`
	Height       int    `short:"H" long:"height"        env:"SHEETFONT_HEIGHT"        default:"18"  description:"cell height in logical pixels"`
	Thresh       int    `short:"t" long:"thresh"        env:"SHEETFONT_THRESH"        default:"192" description:"mean intensity above which a logical pixel is inked"`
	BoundsThresh int    `short:"b" long:"bounds-thresh" env:"SHEETFONT_BOUNDS_THRESH" default:"32"  description:"mean line intensity above which a line belongs to a cell"`
	Invert       bool   `short:"i" long:"invert"        env:"SHEETFONT_INVERT"        description:"sheet has light ink on a dark page"`
	Out          string `short:"o" long:"out"           env:"SHEETFONT_OUT"           description:"output file (default: stdout)"`
	KeepGoing    bool   `short:"k" long:"keep-going"    env:"SHEETFONT_KEEP_GOING"    description:"skip images that cannot be read instead of stopping"`
	Preview      bool   `short:"p" long:"preview"       env:"SHEETFONT_PREVIEW"       description:"print every extracted cell to stderr"`
	cli.Verbose

	Args struct {
		Images []string `positional-arg-name:"imgfile" required:"1"`
	} `positional-args:"yes"`
}

// processImage appends the cells of one sheet to w.
func processImage(w io.Writer, filename string, sopts convert.SheetOptions) (int, error) {
	f, err := cli.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	img, format, err := sheet.Decode(f)
	if err != nil {
		return 0, err
	}
	if sopts.Log != nil {
		b := img.Bounds()
		sopts.Log.Printf("%s: %s image, %dx%d", filename, format, b.Dx(), b.Dy())
	}
	return convert.SheetToBin(w, img, sopts)
}

// run appends the cells of every sheet to out in order. The first sheet that
// fails stops the run unless keepGoing is set, in which case it is logged,
// counted and skipped.
func run(out io.Writer, files []string, sopts convert.SheetOptions, keepGoing bool) (total, failed int, err error) {
	for _, filename := range files {
		n, err := processImage(out, filename, sopts)
		if err != nil {
			if !keepGoing {
				return total, failed, fmt.Errorf("%s: %w", filename, err)
			}
			log.Printf("%s: %v", filename, err)
			failed++
			continue
		}
		if sopts.Log != nil {
			sopts.Log.Printf("%s: %d cells", filename, n)
		}
		total += n
	}
	return total, failed, nil
}

func main() {
	cli.Setup("sheet2bin")
	cli.Parse(&opts, "[options] imgfile...")
	debug := opts.Debug()

	sopts := convert.SheetOptions{
		Options: sheet.Options{
			CellWidth:       opts.Width,
			CellHeight:      opts.Height,
			Threshold:       opts.Thresh,
			BoundsThreshold: opts.BoundsThresh,
			BrightInk:       opts.Invert,
			Log:             debug,
		},
	}
	if opts.Preview {
		sopts.Preview = os.Stderr
	}
	cli.Check(sopts.Validate())

	out, err := cli.Create(opts.Out, true)
	cli.Check(err)

	total, failed, err := run(out, opts.Args.Images, sopts, opts.KeepGoing)
	if err != nil {
		out.Close()
		cli.Fatal(err)
	}
	cli.Check(out.Close())

	debug.Printf("%d cells from %d images", total, len(opts.Args.Images)-failed)
	if failed > 0 {
		log.Printf("%d of %d images failed", failed, len(opts.Args.Images))
		os.Exit(1)
	}
}
