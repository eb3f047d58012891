package envvar

import (
	"context"
	"log/slog"

	"github.com/ardnew/gendotenv/log"
	"github.com/ardnew/gendotenv/syntax"
)

// Analyze parses src and recognizes its declarations. Empty source yields
// no descriptors.
func Analyze(ctx context.Context, src []byte, opts ...Option) ([]*Descriptor, error) {
	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return nil, err
	}

	return Recognize(ctx, tree, opts...)
}

// Recognize walks tree in depth-first pre-order and returns one descriptor
// per value constructor call, in discovery order.
//
// A call without an explicit environ_name is held until the enclosing
// assignment supplies its target name. Calls carrying environ=False are
// skipped entirely. A call left pending by a bare expression statement,
// such as values.Value() on its own line, is discarded: it is not bound to
// the target of the next assignment. Any malformed declaration or
// unresolvable reference aborts the walk; no partial result is returned.
func Recognize(ctx context.Context, tree *syntax.Tree, opts ...Option) ([]*Descriptor, error) {
	o := makeOptions(opts...)

	w := &walker{
		ctx:    ctx,
		opts:   o,
		res:    NewResolver(tree, o.maxDepth),
		logger: o.logger.With(slog.String("tree", tree.Fingerprint())),
	}

	if err := w.visit(tree.Root); err != nil {
		return nil, err
	}

	w.discard()

	w.logger.DebugContext(ctx, "recognized declarations", slog.Int("count", len(w.out)))

	return w.out, nil
}

// walker holds the traversal state of one [Recognize] call.
type walker struct {
	ctx    context.Context
	opts   options
	res    *Resolver
	logger log.Logger

	out []*Descriptor
	// pending is the declaration awaiting the target of its assignment.
	pending *Descriptor
}

func (w *walker) visit(n *syntax.Node) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case syntax.Module:
		for _, stmt := range n.Children {
			if err := w.ctx.Err(); err != nil {
				return err
			}

			if err := w.visit(stmt); err != nil {
				return err
			}
		}

		return nil

	case syntax.Assignment:
		return w.assignment(n)

	case syntax.Call:
		return w.call(n)
	}

	return w.children(n)
}

func (w *walker) children(n *syntax.Node) error {
	for _, c := range n.Nodes() {
		if err := w.visit(c); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) assignment(n *syntax.Node) error {
	// A declaration left over from a bare expression statement has no
	// enclosing assignment.
	w.discard()

	if err := w.children(n); err != nil {
		return err
	}

	d := w.pending
	if d == nil {
		return nil
	}

	w.pending = nil

	target := n.Targets[0]
	if target.Kind != syntax.Name {
		return d.malformed(target, "cannot bind declaration to target %s", syntax.Source(target))
	}

	d.EnvironName = target.Text
	w.emit(d)

	return nil
}

func (w *walker) call(n *syntax.Node) error {
	name, ok := n.CalleeName()
	if !ok {
		return w.children(n)
	}

	kind, ok := Lookup(name)
	if !ok {
		return w.children(n)
	}

	for _, kw := range n.Keywords {
		if kw.Text == "environ" && kw.Value.Kind == syntax.Boolean && kw.Value.Text == "False" {
			w.logger.TraceContext(w.ctx, "skipping declaration with environ=False",
				slog.String("constructor", name), slog.Any("pos", n.Pos))

			return nil
		}
	}

	d := newDescriptor(kind, w.opts.prefix, n.Pos, w.res)

	for _, kw := range n.Keywords {
		if err := d.keyword(kw); err != nil {
			return err
		}
	}

	for i, arg := range n.Args {
		if err := d.positional(i, arg); err != nil {
			return err
		}
	}

	if d.EnvironName != "" {
		w.emit(d)

		return nil
	}

	if w.pending != nil {
		return d.malformed(n, "more than one unnamed declaration in one statement")
	}

	w.pending = d

	return nil
}

func (w *walker) emit(d *Descriptor) {
	w.logger.TraceContext(w.ctx, "recognized declaration", slog.Any("descriptor", d))
	w.out = append(w.out, d)
}

// discard drops a pending declaration that no assignment claimed.
func (w *walker) discard() {
	if w.pending == nil {
		return
	}

	w.logger.DebugContext(w.ctx, "discarding unnamed declaration",
		slog.String("constructor", w.pending.Kind.Constructor()), slog.Any("pos", w.pending.Pos))

	w.pending = nil
}
