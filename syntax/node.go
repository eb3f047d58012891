package syntax

import (
	"log/slog"
	"strconv"
)

// Pos is a 1-based source position.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// LogValue implements [slog.LogValuer].
func (p Pos) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("line", p.Line), slog.Int("column", p.Column))
}

// Node is one element of a converted syntax tree.
//
// Which fields are populated depends on Kind:
//
//	Module      Children (statements)
//	Assignment  Targets, Value, Annotation
//	Call        Func, Args, Keywords
//	Keyword     Text (empty for **splat), Value
//	Name        Text (identifier)
//	Attribute   Object, Text (attribute name)
//	String      Text (decoded value)
//	Number      Text (canonical numeric text)
//	Boolean     Text ("True" or "False")
//	None        Text ("None")
//	List        Elts
//	Tuple       Elts
//	Set         Elts
//	Other       Children, or Text for a leaf token
//
// Nodes are never modified after [Parse] returns.
type Node struct {
	Kind Kind
	// Type is the tree-sitter grammar type the node was converted from.
	Type string
	Text string
	Pos  Pos

	Children []*Node

	Targets    []*Node
	Value      *Node
	Annotation *Node

	Func     *Node
	Args     []*Node
	Keywords []*Node

	Object *Node
	Elts   []*Node
}

// IsName reports whether n is a bare name, optionally with the given
// identifier.
func (n *Node) IsName(id ...string) bool {
	if n == nil || n.Kind != Name {
		return false
	}

	return len(id) == 0 || n.Text == id[0]
}

// CalleeName returns the name a call invokes: the identifier of a bare-name
// callee or the attribute of an attribute callee. Other callee forms yield
// ok == false.
func (n *Node) CalleeName() (name string, ok bool) {
	if n == nil || n.Kind != Call || n.Func == nil {
		return "", false
	}

	switch n.Func.Kind {
	case Name, Attribute:
		return n.Func.Text, true
	default:
		return "", false
	}
}

// Nodes returns the direct children of n in traversal order.
func (n *Node) Nodes() []*Node {
	if n == nil {
		return nil
	}

	var out []*Node

	switch n.Kind {
	case Assignment:
		out = append(out, n.Targets...)
		out = appendNonNil(out, n.Annotation, n.Value)

	case Call:
		out = appendNonNil(out, n.Func)
		out = append(out, n.Args...)
		out = append(out, n.Keywords...)

	case Keyword:
		out = appendNonNil(out, n.Value)

	case Attribute:
		out = appendNonNil(out, n.Object)

	case List, Tuple, Set:
		out = append(out, n.Elts...)

	default:
		out = append(out, n.Children...)
	}

	return out
}

func appendNonNil(s []*Node, n ...*Node) []*Node {
	for _, c := range n {
		if c != nil {
			s = append(s, c)
		}
	}

	return s
}

// Tree is a parsed settings module.
type Tree struct {
	Source []byte
	Root   *Node
	// Hash is the xxh3 fingerprint of Source.
	Hash uint64
}

// Fingerprint returns [Tree.Hash] in base 36.
func (t *Tree) Fingerprint() string {
	if t == nil {
		return ""
	}

	return strconv.FormatUint(t.Hash, 36)
}

// Empty reports whether the tree has no statements.
func (t *Tree) Empty() bool {
	return t == nil || t.Root == nil || len(t.Root.Children) == 0
}
