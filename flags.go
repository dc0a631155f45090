package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/attrdoc/internal/attrdoc"
	"go.abhg.dev/attrdoc/internal/flagvalue"
	"go.abhg.dev/attrdoc/internal/highlight"
	"go.abhg.dev/attrdoc/internal/render"
	"go.abhg.dev/attrdoc/internal/sliceutil"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that set flags.
const _envPrefix = "ATTRDOC"

// params holds all arguments for attrdoc.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	// Extraction:
	Binding      identName
	Absent       string
	Wrappers     []identName
	DefaultFuncs []identName
	Depth        int

	// Output:
	Mode      render.Mode
	Title     string
	Highlight string

	Path string
}

// cliParser parses the command line arguments for attrdoc.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("attrdoc", flag.ContinueOnError)
	// Errors are reported by the caller.
	flag.SetOutput(io.Discard)
	flag.Usage = func() {
		UsageHelp.Write(cmd.Stderr)
	}

	p := params{
		Binding:   attrdoc.DefaultMarker,
		Highlight: highlight.PlainStyle.Name,
	}

	// Extraction:
	flag.Var(&p.Binding, "binding", "")
	flag.StringVar(&p.Absent, "absent", attrdoc.DefaultAbsent, "")
	flag.Var(flagvalue.ListOf(&p.Wrappers), "wrapper", "")
	flag.Var(flagvalue.ListOf(&p.DefaultFuncs), "default-func", "")
	flag.IntVar(&p.Depth, "depth", attrdoc.DefaultDepth, "")

	// Output:
	flag.Var(&p.Mode, "mode", "")
	flag.StringVar(&p.Title, "title", "", "")
	flag.StringVar(&p.Highlight, "highlight", p.Highlight, "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithEnvVarSplit(","),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(yamlConfigParser),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "attrdoc", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h modes"
		// instead of "-h=modes".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			if _, ok := _helpTopics[h]; ok {
				p.help = h
			}
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if len(p.Wrappers) == 0 {
		p.Wrappers = sliceutil.Convert[identName](attrdoc.DefaultWrappers)
	}
	if len(p.DefaultFuncs) == 0 {
		p.DefaultFuncs = sliceutil.Convert[identName](attrdoc.DefaultFuncs)
	}
	if strings.Contains(string(p.Binding), ".") {
		return nil, errtrace.Errorf("-binding must be a single name: %q", p.Binding)
	}
	if p.Depth < 1 {
		return nil, errtrace.Errorf("-depth must be at least 1: %d", p.Depth)
	}
	if _, ok := styles.Registry[p.Highlight]; !ok {
		return nil, errtrace.Errorf("unknown highlight style %q: see -help=highlight", p.Highlight)
	}

	if len(args) != 1 {
		fmt.Fprintln(cmd.Stderr, "Please provide exactly one file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}
	p.Path = args[0]

	return p, nil
}

// identName is a possibly qualified Nix identifier
// like "allowFun" or "lib.allowFun".
type identName string

var _ flag.Getter = (*identName)(nil)

func (n *identName) Get() any { return *n }

func (n *identName) String() string { return string(*n) }

func (n *identName) Set(s string) error {
	for _, seg := range strings.Split(s, ".") {
		if !isIdent(seg) {
			return errtrace.Errorf("invalid identifier %q", s)
		}
	}
	*n = identName(s)
	return nil
}

func isIdent(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '\'' || c == '-'):
		default:
			return false
		}
	}
	return true
}
