package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	flags "github.com/jessevdk/go-flags"
)

type testOptions struct {
	Verbose
	Width      int               `short:"w" long:"width" env:"SHEETFONT_TEST_WIDTH" default:"12"`
	Properties map[string]string `short:"P" long:"property"`
	Args       struct {
		Files []string `positional-arg-name:"file" required:"1"`
	} `positional-args:"yes"`
}

func TestParseArgs(t *testing.T) {
	var opts testOptions
	_, err := ParseArgs(&opts, "[options] file...", []string{"-v", "-P", "FOUNDRY:pix", "-P", "WEIGHT_NAME:Bold", "a.png", "b.png"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Width != 12 || !opts.Verbose.Verbose {
		t.Errorf("got width %d verbose %t, expected 12 true", opts.Width, opts.Verbose.Verbose)
	}
	if diff := cmp.Diff(map[string]string{"FOUNDRY": "pix", "WEIGHT_NAME": "Bold"}, opts.Properties); diff != "" {
		t.Errorf("property mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a.png", "b.png"}, opts.Args.Files); diff != "" {
		t.Errorf("argument mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArgsEnv(t *testing.T) {
	t.Setenv("SHEETFONT_TEST_WIDTH", "9")
	var opts testOptions
	if _, err := ParseArgs(&opts, "", []string{"a.png"}); err != nil {
		t.Fatal(err)
	}
	if opts.Width != 9 {
		t.Errorf("got width %d, expected 9 from the environment", opts.Width)
	}

	opts = testOptions{}
	if _, err := ParseArgs(&opts, "", []string{"-w", "10", "a.png"}); err != nil {
		t.Fatal(err)
	}
	if opts.Width != 10 {
		t.Errorf("got width %d, expected the flag to win", opts.Width)
	}
}

func TestParseArgsErrors(t *testing.T) {
	var opts testOptions
	_, err := ParseArgs(&opts, "", []string{"-w", "wide", "a.png"})
	var flagsErr *flags.Error
	if !errors.As(err, &flagsErr) {
		t.Errorf("got %v, expected a flags error", err)
	}
	if _, err := ParseArgs(&opts, "", nil); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()

	// a regular file standing in for standard output is never a terminal
	stdout, err := os.Create(filepath.Join(dir, "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	defer stdout.Close()
	w, err := create("-", true, stdout)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	// still open
	if _, err := stdout.Write([]byte{3}); err != nil {
		t.Errorf("standard output was closed: %v", err)
	}

	name := filepath.Join(dir, "out.bin")
	w, err = create(name, true, stdout)
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte{4})
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{4}, data); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestBaseName(t *testing.T) {
	for path, expected := range map[string]string{
		"font.bin":            "font",
		"/data/fonts/a.b.bin": "a.b",
		"plain":               "plain",
	} {
		if got := BaseName(path); got != expected {
			t.Errorf("BaseName(%q) = %q, expected %q", path, got, expected)
		}
	}
}

func TestDebug(t *testing.T) {
	if l := (Verbose{}).Debug(); l.Writer() == os.Stderr {
		t.Error("debug output is not discarded")
	}
	if l := (Verbose{Verbose: true}).Debug(); l.Writer() != os.Stderr {
		t.Error("verbose debug output does not go to stderr")
	}
}
