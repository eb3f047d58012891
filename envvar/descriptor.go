package envvar

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/gendotenv/pkg"
	"github.com/ardnew/gendotenv/syntax"
)

// DefaultPrefix is prepended to every environment variable name unless a
// declaration or [WithPrefix] overrides it.
const DefaultPrefix = "DJANGO"

// Keywords accepted by every constructor.
var (
	universal = []string{"default", "environ_name", "environ_prefix"}
	ignored   = []string{"environ", "environ_required", "alias", "converter"}
)

// Descriptor is one setting discovered in a settings module.
type Descriptor struct {
	Kind          Kind
	EnvironName   string
	EnvironPrefix string
	// Pos is the position of the declaring call.
	Pos syntax.Pos

	def     *syntax.Node
	params  params
	variant variant
	res     *Resolver
}

func newDescriptor(kind Kind, prefix string, pos syntax.Pos, res *Resolver) *Descriptor {
	v := kind.variant()

	return &Descriptor{
		Kind:          kind,
		EnvironPrefix: prefix,
		Pos:           pos,
		params:        v.defaults(),
		variant:       v,
		res:           res,
	}
}

// Name returns the full environment variable name, prefix included.
func (d *Descriptor) Name() string { return d.EnvironPrefix + "_" + d.EnvironName }

// Type returns the type label.
func (d *Descriptor) Type() string { return d.Kind.String() }

// Default returns the rendered default value. It is absent when the
// declaration has none, when it names a variable that is never assigned, or
// when it renders as the empty string.
//
// A default that names a variable is followed through the module. If the
// chain ends at a literal or sequence display, that value is rendered under
// the descriptor's rules. Otherwise the default is the marker
// "Variable: <assignment>" with the normalized source of the assignment the
// chain ended at.
func (d *Descriptor) Default() (string, bool) {
	n := d.def
	if n == nil {
		return "", false
	}

	var s string

	if n.Kind == syntax.Name {
		a, ok := d.res.Chase(n.Text, d.res.MaxDepth())
		if !ok {
			return "", false
		}

		if v := a.Value; v.Kind.IsLiteral() || v.Kind.IsSequence() {
			s = d.variant.render(v, d.params)
		} else {
			s = "Variable: " + syntax.Source(a)
		}
	} else {
		s = d.variant.render(n, d.params)
	}

	return s, s != ""
}

// Param is a rendered extra parameter.
type Param struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Params returns the extra parameters in declaration order.
func (d *Descriptor) Params() []Param {
	out := make([]Param, len(d.params))
	for i, p := range d.params {
		out[i] = Param{Name: p.name, Value: p.value}
	}

	return out
}

// Extra returns the extra parameter annotation, " (k=v)" per parameter.
func (d *Descriptor) Extra() string {
	var b strings.Builder

	for _, p := range d.params {
		b.WriteString(" (")
		b.WriteString(p.name)
		b.WriteByte('=')
		b.WriteString(p.value)
		b.WriteByte(')')
	}

	return b.String()
}

// String returns the comment line of the dotenv template.
func (d *Descriptor) String() string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(d.Name())
	b.WriteString(": ")
	b.WriteString(d.Type())

	if def, ok := d.Default(); ok {
		b.WriteByte('=')
		b.WriteString(def)
	}

	b.WriteString(d.Extra())

	return b.String()
}

// Export returns the export line of the dotenv template.
func (d *Descriptor) Export() string { return "export " + d.Name() + "=" }

// LogValue implements [slog.LogValuer].
func (d *Descriptor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", d.Name()),
		slog.String("type", d.Type()),
		slog.Any("pos", d.Pos),
	)
}

// keyword consumes one keyword argument of the declaring call.
func (d *Descriptor) keyword(kw *syntax.Node) error {
	name, value := kw.Text, kw.Value

	if i := d.params.index(name); i >= 0 {
		d.params[i].value = d.variant.render(value, d.params)

		return nil
	}

	switch name {
	case "default":
		d.def = value

		return nil

	case "environ_name":
		return d.setEnvironName(value)

	case "environ_prefix":
		return d.setEnvironPrefix(value)

	case "environ", "environ_required", "alias", "converter":
		return nil

	case "":
		return d.malformed(kw, "keyword argument unpacking (**%s) is not supported", syntax.Source(value))
	}

	candidates := append(append(d.params.names(), universal...), ignored...)

	hint := suggest(name, candidates)
	if hint == "" {
		return d.malformed(kw, "unknown keyword argument %q", name).
			With(slog.String("keyword", name))
	}

	return d.malformed(kw, "unknown keyword argument %q (did you mean %q?)", name, hint).
		With(slog.String("keyword", name), slog.String("suggestion", hint))
}

// positional consumes positional argument i of the declaring call.
func (d *Descriptor) positional(i int, arg *syntax.Node) error {
	if i == 0 {
		d.def = arg

		return nil
	}

	if name, ok := d.variant.positional(i); ok {
		d.params[d.params.index(name)].value = d.variant.render(arg, d.params)

		return nil
	}

	return d.malformed(arg, "unexpected positional argument %d (%s)", i, syntax.Source(arg))
}

func (d *Descriptor) setEnvironName(n *syntax.Node) error {
	name, err := d.text(n, "environ_name")
	if err != nil {
		return err
	}

	d.EnvironName = name

	return nil
}

func (d *Descriptor) setEnvironPrefix(n *syntax.Node) error {
	prefix, err := d.text(n, "environ_prefix")
	if err != nil {
		return err
	}

	d.EnvironPrefix = prefix

	return nil
}

// text returns the non-empty string denoted by a string literal or a
// resolvable name.
func (d *Descriptor) text(n *syntax.Node, keyword string) (string, error) {
	switch n.Kind {
	case syntax.String:
		if n.Text != "" {
			return n.Text, nil
		}

	case syntax.Name:
		if s, ok := d.res.Resolve(n.Text); ok && s != "" {
			return s, nil
		}

		return "", ErrUnresolvableReference.Wrap(
			fmt.Errorf("cannot resolve %s=%s in %s at %s",
				keyword, n.Text, d.Kind.Constructor(), n.Pos),
		).With(slog.String("keyword", keyword), slog.String("name", n.Text), slog.Any("pos", n.Pos))
	}

	return "", d.malformed(n, "%s must be a non-empty string or a variable, not %s", keyword, syntax.Source(n))
}

// malformed reports a declaration the descriptor cannot consume. The
// message names the constructor and the position of n.
func (d *Descriptor) malformed(n *syntax.Node, format string, args ...any) *pkg.Error {
	pos := d.Pos
	if n != nil {
		pos = n.Pos
	}

	return ErrMalformedDeclaration.Wrap(
		fmt.Errorf("%s in %s at %s", fmt.Sprintf(format, args...), d.Kind.Constructor(), pos),
	).With(slog.String("constructor", d.Kind.Constructor()), slog.Any("pos", pos))
}
