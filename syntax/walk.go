package syntax

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Walk visits n and its descendants in depth-first pre-order. If fn returns
// false the children of that node are skipped.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, c := range n.Nodes() {
		Walk(c, fn)
	}
}

// All returns an iterator over n and its descendants in depth-first
// pre-order.
func All(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var visit func(*Node) bool

		visit = func(n *Node) bool {
			if n == nil {
				return true
			}

			if !yield(n) {
				return false
			}

			for _, c := range n.Nodes() {
				if !visit(c) {
					return false
				}
			}

			return true
		}

		visit(n)
	}
}

// Dump writes an indented outline of the tree rooted at n, one node per
// line. Punctuation and keyword tokens are omitted.
func Dump(w io.Writer, n *Node) error {
	return dump(w, n, 0, "")
}

func dump(w io.Writer, n *Node, depth int, label string) error {
	if n == nil || token(n) != "" {
		return nil
	}

	var line strings.Builder

	line.WriteString(strings.Repeat("  ", depth))

	if label != "" {
		line.WriteString(label)
		line.WriteString(": ")
	}

	line.WriteString(n.Kind.String())

	if n.Kind == Other {
		line.WriteString(" <")
		line.WriteString(n.Type)
		line.WriteString(">")
	}

	switch n.Kind {
	case Name, Attribute, Keyword, Number, Boolean, None:
		if n.Text != "" {
			line.WriteString(" ")
			line.WriteString(n.Text)
		}

	case String:
		line.WriteString(" ")
		line.WriteString(Quote(n.Text))

	case Other:
		if len(n.Children) == 0 {
			line.WriteString(" ")
			line.WriteString(n.Text)
		}
	}

	if _, err := fmt.Fprintf(w, "%s @%s\n", line.String(), n.Pos); err != nil {
		return err
	}

	children := func(label string, ns ...*Node) error {
		for _, c := range ns {
			if err := dump(w, c, depth+1, label); err != nil {
				return err
			}
		}

		return nil
	}

	switch n.Kind {
	case Assignment:
		if err := children("target", n.Targets...); err != nil {
			return err
		}

		if err := children("annotation", n.Annotation); err != nil {
			return err
		}

		return children("value", n.Value)

	case Call:
		if err := children("func", n.Func); err != nil {
			return err
		}

		if err := children("arg", n.Args...); err != nil {
			return err
		}

		return children("", n.Keywords...)

	case Keyword:
		return children("", n.Value)

	case Attribute:
		return children("object", n.Object)

	default:
		return children("", n.Nodes()...)
	}
}
