package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// converter turns a tree-sitter concrete syntax tree into [Node] values.
type converter struct {
	src []byte
}

func (c converter) pos(n *sitter.Node) Pos {
	p := n.StartPoint()

	return Pos{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

func (c converter) text(n *sitter.Node) string { return n.Content(c.src) }

// named returns the named children of n, comments excluded.
func (c converter) named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node

	for i := range int(n.NamedChildCount()) {
		if ch := n.NamedChild(i); ch != nil && ch.Type() != "comment" {
			out = append(out, ch)
		}
	}

	return out
}

func (c converter) all(ns []*sitter.Node) []*Node {
	out := make([]*Node, 0, len(ns))
	for _, n := range ns {
		out = append(out, c.convert(n))
	}

	return out
}

func (c converter) newNode(kind Kind, n *sitter.Node) *Node {
	return &Node{Kind: kind, Type: n.Type(), Pos: c.pos(n)}
}

// convert converts n and its descendants.
func (c converter) convert(n *sitter.Node) *Node {
	switch n.Type() {
	case "module":
		node := c.newNode(Module, n)
		node.Children = c.all(c.named(n))

		return node

	case "expression_statement":
		named := c.named(n)
		if len(named) == 1 && n.ChildCount() == 1 {
			return c.convert(named[0])
		}

		node := c.newNode(Tuple, n)
		node.Elts = c.all(named)

		return node

	case "assignment":
		return c.assignment(n)

	case "call":
		return c.call(n)

	case "identifier":
		node := c.newNode(Name, n)
		node.Text = c.text(n)

		return node

	case "attribute":
		node := c.newNode(Attribute, n)
		if obj := n.ChildByFieldName("object"); obj != nil {
			node.Object = c.convert(obj)
		}

		if attr := n.ChildByFieldName("attribute"); attr != nil {
			node.Text = c.text(attr)
		}

		return node

	case "string":
		return c.str(n)

	case "concatenated_string":
		return c.concatenated(n)

	case "integer":
		node := c.newNode(Number, n)
		node.Text = canonicalInt(c.text(n))

		return node

	case "float":
		node := c.newNode(Number, n)
		node.Text = canonicalFloat(c.text(n))

		return node

	case "true", "false":
		node := c.newNode(Boolean, n)
		node.Text = "False"

		if n.Type() == "true" {
			node.Text = "True"
		}

		return node

	case "none":
		node := c.newNode(None, n)
		node.Text = "None"

		return node

	case "list", "list_pattern":
		node := c.newNode(List, n)
		node.Elts = c.all(c.named(n))

		return node

	case "tuple", "tuple_pattern", "expression_list", "pattern_list":
		node := c.newNode(Tuple, n)
		node.Elts = c.all(c.named(n))

		return node

	case "set":
		node := c.newNode(Set, n)
		node.Elts = c.all(c.named(n))

		return node

	case "parenthesized_expression":
		if named := c.named(n); len(named) == 1 && isAtom(named[0].Type()) {
			return c.convert(named[0])
		}
	}

	return c.other(n)
}

// isAtom reports whether parentheses around a node of grammar type t can be
// dropped without changing how it prints.
func isAtom(t string) bool {
	switch t {
	case "identifier", "attribute", "call", "subscript", "string",
		"concatenated_string", "integer", "float", "true", "false", "none",
		"list", "tuple", "set", "dictionary", "parenthesized_expression",
		"list_comprehension", "set_comprehension", "dictionary_comprehension":
		return true
	default:
		return false
	}
}

// other keeps every child, tokens included. A node without children keeps
// its source text.
func (c converter) other(n *sitter.Node) *Node {
	node := c.newNode(Other, n)

	if n.ChildCount() == 0 {
		node.Text = c.text(n)

		return node
	}

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)
		if ch == nil || ch.Type() == "comment" {
			continue
		}

		node.Children = append(node.Children, c.convert(ch))
	}

	return node
}

// assignment flattens a chained assignment (a = b = value) into one node
// whose Targets lists every target in source order.
func (c converter) assignment(n *sitter.Node) *Node {
	node := c.newNode(Assignment, n)

	if typ := n.ChildByFieldName("type"); typ != nil {
		node.Annotation = c.convert(typ)
	}

	for cur := n; cur != nil; {
		if left := cur.ChildByFieldName("left"); left != nil {
			node.Targets = append(node.Targets, c.convert(left))
		}

		right := cur.ChildByFieldName("right")
		if right == nil {
			break
		}

		if right.Type() != "assignment" {
			node.Value = c.convert(right)

			break
		}

		cur = right
	}

	return node
}

func (c converter) call(n *sitter.Node) *Node {
	node := c.newNode(Call, n)

	if fn := n.ChildByFieldName("function"); fn != nil {
		node.Func = c.convert(fn)
	}

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return node
	}

	if args.Type() != "argument_list" {
		// f(x for x in y)
		node.Args = []*Node{c.convert(args)}

		return node
	}

	for _, a := range c.named(args) {
		switch a.Type() {
		case "keyword_argument":
			kw := c.newNode(Keyword, a)
			if name := a.ChildByFieldName("name"); name != nil {
				kw.Text = c.text(name)
			}

			if value := a.ChildByFieldName("value"); value != nil {
				kw.Value = c.convert(value)
			}

			node.Keywords = append(node.Keywords, kw)

		case "dictionary_splat":
			kw := c.newNode(Keyword, a)
			if inner := c.named(a); len(inner) > 0 {
				kw.Value = c.convert(inner[0])
			}

			node.Keywords = append(node.Keywords, kw)

		default:
			node.Args = append(node.Args, c.convert(a))
		}
	}

	return node
}

func (c converter) str(n *sitter.Node) *Node {
	lit := c.text(n)

	if v, ok := decodeString(lit); ok {
		node := c.newNode(String, n)
		node.Text = v

		return node
	}

	node := c.newNode(Other, n)
	node.Text = lit

	return node
}

// concatenated joins adjacent string literals. When any part is not a plain
// text literal the whole expression is kept as source.
func (c converter) concatenated(n *sitter.Node) *Node {
	var (
		b     strings.Builder
		parts []string
		plain = true
	)

	for _, s := range c.named(n) {
		lit := c.text(s)
		parts = append(parts, lit)

		if v, ok := decodeString(lit); ok && plain {
			b.WriteString(v)
		} else {
			plain = false
		}
	}

	if plain {
		node := c.newNode(String, n)
		node.Text = b.String()

		return node
	}

	node := c.newNode(Other, n)
	node.Text = strings.Join(parts, " ")

	return node
}
