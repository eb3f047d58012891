package syntax

import "strings"

// Source prints n as normalized Python source: one space between tokens
// where Python style puts one, none elsewhere, comments dropped and strings
// re-quoted with [Quote]. Layout differences in the input never show up in
// the output.
func Source(n *Node) string {
	var b strings.Builder

	writeSource(&b, n)

	return b.String()
}

func writeSource(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case Module:
		for i, s := range n.Children {
			if i > 0 {
				b.WriteByte('\n')
			}

			writeSource(b, s)
		}

	case Assignment:
		for i, t := range n.Targets {
			if i > 0 {
				b.WriteString(" = ")
			}

			writeSource(b, t)

			if i == 0 && n.Annotation != nil {
				b.WriteString(": ")
				writeSource(b, n.Annotation)
			}
		}

		if n.Value != nil {
			b.WriteString(" = ")
			writeSource(b, n.Value)
		}

	case Call:
		writeSource(b, n.Func)
		b.WriteByte('(')

		sep := ""
		for _, a := range n.Args {
			b.WriteString(sep)
			writeSource(b, a)

			sep = ", "
		}

		for _, k := range n.Keywords {
			b.WriteString(sep)
			writeSource(b, k)

			sep = ", "
		}

		b.WriteByte(')')

	case Keyword:
		if n.Text == "" {
			b.WriteString("**")
		} else {
			b.WriteString(n.Text)
			b.WriteByte('=')
		}

		writeSource(b, n.Value)

	case Attribute:
		writeSource(b, n.Object)
		b.WriteByte('.')
		b.WriteString(n.Text)

	case String:
		b.WriteString(Quote(n.Text))

	case Name, Number, Boolean, None:
		b.WriteString(n.Text)

	case List:
		writeElts(b, "[", n.Elts, "]")

	case Set:
		writeElts(b, "{", n.Elts, "}")

	case Tuple:
		if len(n.Elts) == 1 {
			writeElts(b, "(", n.Elts, ",)")
		} else {
			writeElts(b, "(", n.Elts, ")")
		}

	default:
		writeOther(b, n)
	}
}

func writeElts(b *strings.Builder, open string, elts []*Node, closing string) {
	b.WriteString(open)

	for i, e := range elts {
		if i > 0 {
			b.WriteString(", ")
		}

		writeSource(b, e)
	}

	b.WriteString(closing)
}

// tight reports whether the tokens of a node of grammar type t are printed
// without spaces.
func tight(t string) bool {
	switch t {
	case "unary_operator", "list_splat", "dictionary_splat",
		"list_splat_pattern", "dictionary_splat_pattern",
		"keyword_argument", "default_parameter", "slice",
		"dotted_name", "relative_import", "import_prefix":
		return true
	default:
		return false
	}
}

func writeOther(b *strings.Builder, n *Node) {
	if len(n.Children) == 0 {
		switch n.Type {
		case "string", "concatenated_string":
			b.WriteString(n.Text)
		default:
			b.WriteString(strings.Join(strings.Fields(n.Text), " "))
		}

		return
	}

	var prev *Node

	for _, c := range n.Children {
		if prev != nil && !tight(n.Type) && spaced(prev, c) {
			b.WriteByte(' ')
		}

		writeSource(b, c)

		prev = c
	}
}

// token returns the text of an anonymous grammar token, or "" for any node
// that carries an expression.
func token(n *Node) string {
	if n.Kind == Other && len(n.Children) == 0 && n.Type == n.Text {
		return n.Text
	}

	return ""
}

// spaced reports whether a space separates adjacent children prev and next.
func spaced(prev, next *Node) bool {
	switch token(next) {
	case ",", ")", "]", "}", ":", ".", ";":
		return false
	case "(", "[":
		// call or subscript, unless preceded by an operator or keyword
		if p := token(prev); p == "" || p == ")" || p == "]" || p == "}" {
			return false
		}
	}

	switch token(prev) {
	case "(", "[", "{", ".", "~":
		return false
	}

	return true
}
