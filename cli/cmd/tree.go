package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/gendotenv/syntax"
)

// Tree prints the syntax tree recognition walks, one node per line.
type Tree struct {
	Input string `arg:"" default:"-" help:"Settings module to read, or '-' for stdin." name:"input"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src, err := readSource(ctx, t.Input)
	if err != nil {
		return err
	}

	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return err
	}

	if err := syntax.Dump(outputFrom(ctx), tree.Root); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("command", "tree"))
	}

	return nil
}
