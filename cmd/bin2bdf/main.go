// bin2bdf is a commandline tool for turning a raw bitmap font dump into a BDF
// font. The binary file holds fixed-size glyph records, each a height of rows
// of width pixels, every row padded to whole bytes, most significant bit
// first. The map file names the codepoint of each record, one hex value per
// line in record order, with anything after the value ignored:
//
//	41 A
//	42 B
//	0  unused slot
//
// A codepoint of 0 skips the record. Then run:
//
//	./bin2bdf -w 12 -H 18 -o myfont.bdf myfont.bin myfont.map
package main

import (
	"os"

	"github.com/pbnjay/sheetfont/internal/charmap"
	"github.com/pbnjay/sheetfont/internal/cli"
	"github.com/pbnjay/sheetfont/internal/convert"
)

var opts struct {
	Width      int               `short:"w" long:"width"    env:"SHEETFONT_WIDTH"   default:"12" description:"glyph width in pixels"`
	Height     int               `short:"H" long:"height"   env:"SHEETFONT_HEIGHT"  default:"18" description:"glyph height in pixels"`
	Descent    int               `short:"d" long:"descent"  env:"SHEETFONT_DESCENT" default:"-2" description:"baseline offset of the glyph bottom, negative below"`
	Name       string            `short:"n" long:"name"     env:"SHEETFONT_NAME"    description:"font name (default: binfile name without extension)"`
	Output     string            `short:"o" long:"output"   env:"SHEETFONT_OUTPUT"  description:"output file (default: stdout)"`
	Properties map[string]string `short:"P" long:"property" value-name:"KEY:VALUE" description:"extra BDF font property, may be repeated"`
	Preview    bool              `short:"p" long:"preview"  env:"SHEETFONT_PREVIEW" description:"print every glyph to stderr"`
	cli.Verbose

	Args struct {
		BinFile string `positional-arg-name:"binfile" required:"yes"`
		MapFile string `positional-arg-name:"mapfile" required:"yes"`
	} `positional-args:"yes"`
}

func readMap(filename string) (charmap.Map, error) {
	f, err := cli.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return charmap.Parse(f)
}

func main() {
	cli.Setup("bin2bdf")
	cli.Parse(&opts, "[options] binfile mapfile")

	data, err := os.ReadFile(opts.Args.BinFile)
	cli.Check(err)
	cps, err := readMap(opts.Args.MapFile)
	cli.Check(err, opts.Args.MapFile)

	bopts := convert.BDFOptions{
		Name:       opts.Name,
		Width:      opts.Width,
		Height:     opts.Height,
		Descent:    opts.Descent,
		Properties: opts.Properties,
		Log:        opts.Debug(),
	}
	if bopts.Name == "" {
		bopts.Name = cli.BaseName(opts.Args.BinFile)
	}
	if opts.Preview {
		bopts.Preview = os.Stderr
	}

	font, err := convert.BinToBDF(data, cps, bopts)
	cli.Check(err)

	out, err := cli.Create(opts.Output, false)
	cli.Check(err)
	if err := font.Encode(out); err != nil {
		out.Close()
		cli.Fatal(err)
	}
	cli.Check(out.Close())
}
