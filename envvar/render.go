package envvar

import (
	"strings"

	"github.com/ardnew/gendotenv/syntax"
)

// Render returns the canonical text of a literal node: the decoded value of
// a string, the base-10 or repr text of a number, and True, False or None as
// spelled. Any other node, sequences included, renders as normalized source.
func Render(n *syntax.Node) string {
	if n == nil {
		return ""
	}

	if n.Kind.IsLiteral() {
		return n.Text
	}

	return syntax.Source(n)
}

// Elements renders each element of a list, tuple or set with [Render] and
// leaves joining to the caller. Other nodes yield ok == false.
func Elements(n *syntax.Node) (elts []string, ok bool) {
	if n == nil || !n.Kind.IsSequence() {
		return nil, false
	}

	elts = make([]string, 0, len(n.Elts))
	for _, e := range n.Elts {
		elts = append(elts, Render(e))
	}

	return elts, true
}

// param is one extra parameter of a descriptor, already rendered.
type param struct {
	name  string
	value string
}

type params []param

func (ps params) get(name string) string {
	for _, p := range ps {
		if p.name == name {
			return p.value
		}
	}

	return ""
}

func (ps params) index(name string) int {
	for i, p := range ps {
		if p.name == name {
			return i
		}
	}

	return -1
}

func (ps params) names() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.name
	}

	return out
}

// variant holds the argument and rendering rules shared by a family of
// kinds.
type variant interface {
	// defaults returns the extra parameters with their initial values.
	defaults() params
	// positional returns the parameter bound by positional argument i > 0.
	positional(i int) (string, bool)
	// render renders a default or extra parameter value.
	render(n *syntax.Node, ps params) string
}

type scalar struct{}

func (scalar) defaults() params { return nil }
func (scalar) positional(int) (string, bool) { return "", false }
func (scalar) render(n *syntax.Node, _ params) string { return Render(n) }

// sequence joins the elements of a list, tuple or set default with the
// separator parameter. An empty display renders as the empty marker.
type sequence struct {
	empty string
}

func (sequence) defaults() params { return params{{"separator", ","}} }
func (sequence) positional(int) (string, bool) { return "", false }

func (s sequence) render(n *syntax.Node, ps params) string {
	elts, ok := Elements(n)
	if !ok {
		return Render(n)
	}

	if len(elts) == 0 {
		return s.empty
	}

	return strings.Join(elts, ps.get("separator"))
}

// nested renders a list or tuple of sequences: inner elements are joined
// with separator, inner results with seq_separator.
type nested struct {
	sequence
}

func (nested) defaults() params {
	return params{{"separator", ","}, {"seq_separator", ";"}}
}

func (v nested) render(n *syntax.Node, ps params) string {
	if n == nil || (n.Kind != syntax.List && n.Kind != syntax.Tuple) {
		return v.sequence.render(n, ps)
	}

	if len(n.Elts) == 0 {
		return v.empty
	}

	inner := make([]string, 0, len(n.Elts))
	for _, e := range n.Elts {
		inner = append(inner, v.sequence.render(e, ps))
	}

	return strings.Join(inner, ps.get("seq_separator"))
}

// regex accepts its pattern as the second positional argument.
type regex struct{ scalar }

func (regex) defaults() params { return params{{"regex", "None"}} }

func (regex) positional(i int) (string, bool) {
	if i == 1 {
		return "regex", true
	}

	return "", false
}

type path struct{ scalar }

func (path) defaults() params { return params{{"checks_exists", "True"}} }
