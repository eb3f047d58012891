package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/gendotenv/log"
	"github.com/ardnew/gendotenv/pkg"
	"github.com/ardnew/gendotenv/syntax"
)

// stdinSource names standard input as a command's input.
const stdinSource = "-"

type (
	contextKey struct{}
	inputKey   struct{}
	outputKey  struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithInput returns a new context.Context whose commands read standard input
// from r.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// WithOutput returns a new context.Context whose commands write standard
// output to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// readSource returns the content of the named file, or of standard input
// when name is empty or "-".
//
// Reading standard input is abandoned when ctx is done, so an interrupt
// ends a run that is waiting on a terminal.
func readSource(ctx context.Context, name string) ([]byte, error) {
	if name == "" || name == stdinSource {
		return readStdin(ctx)
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, ErrOpenInput.Wrap(err).With(slog.String("file", name))
	}
	defer file.Close()

	src, err := syntax.ReadAll(file)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("file", name))
	}

	log.DebugContext(ctx, "read input",
		slog.String("file", name),
		slog.Int("bytes", len(src)),
	)

	return src, nil
}

func readStdin(ctx context.Context) ([]byte, error) {
	type result struct {
		src []byte
		err error
	}

	done := make(chan result, 1)

	go func() {
		src, err := syntax.ReadAll(inputFrom(ctx))
		done <- result{src, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ErrReadStdin.Wrap(context.Cause(ctx))

	case res := <-done:
		if res.err != nil {
			return nil, ErrReadStdin.Wrap(res.err)
		}

		log.DebugContext(ctx, "read input",
			slog.String("file", stdinSource),
			slog.Int("bytes", len(res.src)),
		)

		return res.src, nil
	}
}
