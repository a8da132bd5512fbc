package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/alecthomas/kong"
	"github.com/broady/bricks/typedesc"
)

type CLI struct {
	Format  string            `help:"Output format (text, json, yaml)." enum:"text,json,yaml" default:"text" short:"o"`
	Option  map[string]string `help:"Resolver option: top, maxDepth or args." short:"O" placeholder:"KEY=VALUE"`
	Verbose bool              `help:"Log resolution details to stderr." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Parse   ParseCmd   `cmd:"" help:"Describe Java type expressions."`
	Java    JavaCmd    `cmd:"" help:"Describe the members of Java source files."`
	Go      GoCmd      `cmd:"" help:"Describe the fields of Go struct types."`
}

// session is the per-invocation state passed to commands.
type session struct {
	out     io.Writer
	format  string
	options url.Values
	logger  *slog.Logger
}

// resolver builds a Resolver from base with the command line options applied.
func (s *session) resolver(base typedesc.Config) (*typedesc.Resolver, error) {
	cfg, err := typedesc.DecodeConfig(base, s.options)
	if err != nil {
		return nil, err
	}
	cfg.Logger = s.logger
	return typedesc.New(cfg)
}

func run(args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bricks"),
		kong.Description("Describe Java and Go types as structural type descriptors."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	options := make(url.Values, len(cli.Option))
	for k, v := range cli.Option {
		options.Set(k, v)
	}
	s := &session{
		out:     stdout,
		format:  cli.Format,
		options: options,
		logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	return ctx.Run(s)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bricks: %v\n", err)
		os.Exit(1)
	}
}
