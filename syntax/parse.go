package syntax

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/klauspost/readahead"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/gendotenv/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrParse     = pkg.NewError("invalid settings module")
	ErrReadInput = pkg.NewError("failed to read input")
)

// Parse parses src as a Python module.
//
// A fresh parser is created for every call, so Parse is safe for concurrent
// use. Source that does not parse cleanly yields a *[ParseError] for the
// first syntax error found; no partial tree is returned.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	tree := &Tree{Source: src, Hash: xxh3.Hash(src)}

	if len(bytes.TrimSpace(src)) == 0 {
		tree.Root = &Node{Kind: Module, Type: "module", Pos: Pos{Line: 1, Column: 1}}

		return tree, nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	st, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, ErrParse.Wrap(err)
	}
	defer st.Close()

	if err := ctx.Err(); err != nil {
		return nil, ErrParse.Wrap(err)
	}

	root := st.RootNode()
	if root == nil {
		return nil, ErrParse
	}

	if bad := firstError(root); bad != nil {
		return nil, newParseError(bad, src)
	}

	if root.HasError() {
		return nil, newParseError(root, src)
	}

	tree.Root = converter{src: src}.convert(root)

	return tree, nil
}

// ReadAll reads the whole of r through a read-ahead buffer.
func ReadAll(r io.Reader) ([]byte, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return data, nil
}

// python2Only lists node types the grammar accepts only for Python 2.
var python2Only = map[string]bool{
	"print_statement": true,
	"exec_statement":  true,
	"<>":              true,
}

// firstError returns the first node in source order that makes the module
// invalid Python 3: an ERROR or MISSING node, or a Python 2 construct. It
// returns nil when there is none.
func firstError(n *sitter.Node) *sitter.Node {
	switch {
	case n.IsMissing():
		return n
	case n.Type() == "ERROR":
		return errorLeaf(n)
	case python2Only[n.Type()] && !callLike(n):
		return n
	}

	for i := range int(n.ChildCount()) {
		if ch := n.Child(i); ch != nil {
			if e := firstError(ch); e != nil {
				return e
			}
		}
	}

	return nil
}

// errorLeaf narrows an ERROR node to the token where parsing gave up: the
// first error nested in it, otherwise its last token.
func errorLeaf(n *sitter.Node) *sitter.Node {
	for i := range int(n.ChildCount()) {
		if ch := n.Child(i); ch != nil {
			if e := firstError(ch); e != nil {
				return e
			}
		}
	}

	for n.ChildCount() > 0 {
		last := n.Child(int(n.ChildCount()) - 1)
		if last == nil {
			break
		}

		n = last
	}

	return n
}

// callLike reports whether a print statement is also valid Python 3 call
// syntax, as in print("a", "b").
func callLike(n *sitter.Node) bool {
	if n.Type() != "print_statement" || n.NamedChildCount() != 1 {
		return false
	}

	switch n.NamedChild(0).Type() {
	case "parenthesized_expression", "tuple":
		return true
	}

	return false
}

// ParseError reports where a settings module failed to parse.
type ParseError struct {
	Pos Pos
	// Near is the offending source text, if any.
	Near string
	// Missing is set when the parser expected a token that was absent.
	Missing bool
	Source  []byte
}

func newParseError(n *sitter.Node, src []byte) *ParseError {
	p := n.StartPoint()

	near := n.Content(src)
	if i := strings.IndexByte(near, '\n'); i >= 0 {
		near = near[:i]
	}

	return &ParseError{
		Pos:     Pos{Line: int(p.Row) + 1, Column: int(p.Column) + 1},
		Near:    near,
		Missing: n.IsMissing(),
		Source:  src,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString(ErrParse.Error())
	buf.WriteString(": syntax error at line ")
	buf.WriteString(strconv.Itoa(e.Pos.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Pos.Column))

	switch {
	case e.Missing:
		buf.WriteString(" (missing ")
		buf.WriteString(strconv.Quote(e.Near))
		buf.WriteString(")")
	case e.Near != "":
		buf.WriteString(" near ")
		buf.WriteString(strconv.Quote(e.Near))
	}

	if snippet := e.Snippet(); snippet != "" {
		buf.WriteString(":\n")
		buf.WriteString(snippet)
	}

	return buf.String()
}

// Unwrap returns [ErrParse].
func (e *ParseError) Unwrap() error { return ErrParse }

// Snippet returns the offending source line with a caret under the error
// column, or "" when the position is outside the source.
func (e *ParseError) Snippet() string {
	lines := strings.Split(string(e.Source), "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return ""
	}

	line := strings.TrimRight(lines[e.Pos.Line-1], "\r")
	num := strconv.Itoa(e.Pos.Line)

	var src strings.Builder

	src.WriteString("  ")
	src.WriteString(num)
	src.WriteString(" | ")
	src.WriteString(line)
	src.WriteByte('\n')

	// 2 leading spaces + " | "
	padding := strings.Repeat(" ", len(num)+5)
	if e.Pos.Column > 1 {
		padding += strings.Repeat(" ", e.Pos.Column-1)
	}

	src.WriteString(padding)
	src.WriteString("^\n")

	return src.String()
}

// LogValue implements [slog.LogValuer].
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrParse.Error()),
		slog.Any("pos", e.Pos),
		slog.String("near", e.Near),
	)
}
