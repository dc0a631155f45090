// attrdoc generates documentation for the options of a Nix
// configuration constructor from the comments above each option.
//
// See attrdoc -h for usage.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/styles"
	"go.abhg.dev/attrdoc/internal/attrdoc"
	"go.abhg.dev/attrdoc/internal/errdefer"
	"go.abhg.dev/attrdoc/internal/highlight"
	"go.abhg.dev/attrdoc/internal/nixsyntax"
	"go.abhg.dev/attrdoc/internal/render"
	"go.abhg.dev/attrdoc/internal/sliceutil"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errInvalidArguments) {
			cmd.log.Printf("attrdoc: %v", err)
		}
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("attrdoc: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, debugw)
	debugLog := log.New(debugw, "", 0)

	gen := Generator{
		Log:    debugLog,
		Parser: ParseFunc(nixsyntax.Parse),
		Extractor: &attrdoc.Extractor{
			Log:    debugLog,
			Marker: string(opts.Binding),
			Classifier: &attrdoc.Classifier{
				Absent:       opts.Absent,
				Wrappers:     sliceutil.Convert[string](opts.Wrappers),
				DefaultFuncs: sliceutil.Convert[string](opts.DefaultFuncs),
				Depth:        opts.Depth,
			},
		},
		Renderer: &render.Renderer{
			Mode:  opts.Mode,
			Title: opts.Title,
			Highlighter: &highlight.Highlighter{
				Style:      styles.Get(opts.Highlight),
				UseClasses: true,
			},
		},
	}

	return gen.Generate(cmd.Stdout, opts.Path)
}
