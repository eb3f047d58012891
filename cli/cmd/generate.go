package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/gendotenv/envvar"
	"github.com/ardnew/gendotenv/log"
	"github.com/ardnew/gendotenv/syntax"
)

// Output formats of [Generate].
const (
	FormatDotenv = "dotenv"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Generate reads a settings module and writes the template of the
// environment variables it declares.
type Generate struct {
	Input    string `default:"-"                  help:"Settings module to read, or '-' for stdin."            short:"i"`
	Sort     bool   `                             help:"Sort variables by name."                                short:"s"`
	Format   string `default:"dotenv"             help:"Output format."                                         short:"f" enum:"dotenv,json,yaml"`
	Filter   string `                             help:"Select variables with an expression over their fields."`
	Color    bool   `                             help:"Colorize dotenv comments."`
	Prefix   string `default:"${defaultPrefix}"   help:"Prefix of variables that do not set environ_prefix."`
	MaxDepth int    `default:"${defaultMaxDepth}" help:"Name-to-name links followed when rendering defaults."`
	Indent   int    `default:"2"                  help:"Indent width of JSON and YAML output."`
}

// Run executes the generate command.
func (g *Generate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	// Compile the filter first so a bad expression fails before any read.
	filter, err := envvar.NewFilter(g.Filter)
	if err != nil {
		return err
	}

	src, err := readSource(ctx, g.Input)
	if err != nil {
		return err
	}

	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return err
	}

	logger := log.With(
		slog.String("input", g.Input),
		slog.String("fingerprint", tree.Fingerprint()),
	)

	ds, err := envvar.Recognize(ctx, tree,
		envvar.WithPrefix(g.Prefix),
		envvar.WithMaxDepth(g.MaxDepth),
		envvar.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if ds, err = filter.Apply(ds); err != nil {
		return err
	}

	if g.Sort {
		envvar.Sort(ds)
	}

	logger.InfoContext(ctx, "generated template",
		slog.Int("variables", len(ds)),
		slog.String("format", g.Format),
		slog.String("filter", filter.String()),
	)

	if err := g.write(ctx, outputFrom(ctx), tree, ds); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", g.Format))
	}

	return nil
}

func (g *Generate) write(
	ctx context.Context,
	w io.Writer,
	tree *syntax.Tree,
	ds []*envvar.Descriptor,
) error {
	switch g.Format {
	case FormatJSON:
		return envvar.WriteJSON(ctx, w, envvar.NewDocument(tree.Fingerprint(), ds), g.Indent)

	case FormatYAML:
		return envvar.WriteYAML(ctx, w, envvar.NewDocument(tree.Fingerprint(), ds), g.Indent)

	default:
		text := envvar.Text(ds)
		if g.Color {
			text = envvar.ColorText(ds)
		}

		// An empty template is written as nothing at all.
		if text == "" {
			return nil
		}

		_, err := io.WriteString(w, text+"\n")

		return err
	}
}
