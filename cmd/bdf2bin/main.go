// Command bdf2bin opens a BDF format font and writes its glyphs as raw
// fixed-size bitmap records, plus a codepoint map for bin2bdf.
package main

import (
	"os"

	"github.com/pbnjay/sheetfont/internal/bdf"
	"github.com/pbnjay/sheetfont/internal/charmap"
	"github.com/pbnjay/sheetfont/internal/cli"
	"github.com/pbnjay/sheetfont/internal/convert"
)

var opts struct {
	Width  int    `short:"w" long:"width"  env:"SHEETFONT_WIDTH"  description:"cell width in pixels (default: font bounding box)"`
	Height int    `short:"H" long:"height" env:"SHEETFONT_HEIGHT" description:"cell height in pixels (default: font bounding box)"`
	Output string `short:"o" long:"output" env:"SHEETFONT_OUTPUT" description:"binary output file (default: stdout)"`
	Map    string `short:"m" long:"map"    env:"SHEETFONT_MAP"    description:"codepoint map output file"`
	cli.Verbose

	Args struct {
		BDFFile string `positional-arg-name:"filename.bdf" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	cli.Setup("bdf2bin")
	cli.Parse(&opts, "[options] filename.bdf")

	f, err := cli.Open(opts.Args.BDFFile)
	cli.Check(err)
	font, err := bdf.Decode(f)
	f.Close()
	cli.Check(err, opts.Args.BDFFile)

	out, err := cli.Create(opts.Output, true)
	cli.Check(err)
	cps, names, err := convert.BDFToBin(out, font, convert.RecordOptions{
		Width:  opts.Width,
		Height: opts.Height,
		Log:    opts.Debug(),
	})
	if err != nil {
		out.Close()
		cli.Fatal(err)
	}
	cli.Check(out.Close())

	if opts.Map == "" {
		return
	}
	mf, err := os.Create(opts.Map)
	cli.Check(err)
	if err := charmap.Write(mf, cps, names); err != nil {
		mf.Close()
		cli.Fatal(err)
	}
	cli.Check(mf.Close())
}
