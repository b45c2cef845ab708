// Package cli holds the command-line plumbing shared by the sheetfont tools.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// ErrTerminal is returned when binary output would go to a terminal.
var ErrTerminal = errors.New("refusing to write binary data to a terminal, use -o")

// Verbose is embedded by every tool's option struct.
type Verbose struct {
	Verbose bool `short:"v" long:"verbose" env:"SHEETFONT_VERBOSE" description:"log detected bands, skipped slots and other details to stderr"`
}

// Setup configures the standard logger for a tool: program name prefix, no
// timestamps.
func Setup(name string) {
	log.SetFlags(0)
	log.SetPrefix(name + ": ")
}

// ParseArgs parses args into the tagged option struct opts and returns the
// remaining arguments.
func ParseArgs(opts interface{}, usage string, args []string) ([]string, error) {
	parser := flags.NewParser(opts, flags.Default)
	parser.Usage = usage
	return parser.ParseArgs(args)
}

// Parse parses the command line into opts. It exits with status 0 after
// printing help, and with status 1 on an option error, which go-flags has
// already printed.
func Parse(opts interface{}, usage string) []string {
	args, err := ParseArgs(opts, usage, os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return args
}

// Debug returns the logger for verbose output. It discards everything
// unless v.Verbose is set.
func (v Verbose) Debug() *log.Logger {
	if !v.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, log.Prefix(), 0)
}

// Open opens an input file, or standard input for "-".
func Open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Create creates the named output file. An empty name or "-" selects
// standard output, which is never closed. Binary output to standard output is
// refused when it is a terminal.
func Create(name string, binary bool) (io.WriteCloser, error) {
	return create(name, binary, os.Stdout)
}

func create(name string, binary bool, stdout *os.File) (io.WriteCloser, error) {
	if name != "" && name != "-" {
		return os.Create(name)
	}
	if binary && term.IsTerminal(int(stdout.Fd())) {
		return nil, ErrTerminal
	}
	return nopWriteCloser{stdout}, nil
}

// BaseName returns a file name without directory and extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Fatal reports err in the usual "prog: error" form and exits with status 1.
func Fatal(err error) {
	log.Print(err)
	os.Exit(1)
}

// Check is Fatal for a non-nil error, with optional context.
func Check(err error, context ...interface{}) {
	if err == nil {
		return
	}
	if len(context) > 0 {
		err = fmt.Errorf("%s: %w", fmt.Sprint(context...), err)
	}
	Fatal(err)
}
