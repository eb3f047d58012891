package envvar

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over [Entry] fields, such as
//
//	Type == "List" && Param("separator") != ","
//	Name startsWith "DJANGO_DB" || !HasDefault
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles source. An empty source matches everything.
func NewFilter(source string) (*Filter, error) {
	f := &Filter{source: source}
	if source == "" {
		return f, nil
	}

	program, err := expr.Compile(source, expr.Env(Entry{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilter.Wrap(err).With(slog.String("expr", source))
	}

	f.program = program

	return f, nil
}

// Match reports whether d satisfies the filter.
func (f *Filter) Match(d *Descriptor) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, d.Entry())
	if err != nil {
		return false, ErrFilter.Wrap(err).With(slog.String("expr", f.source))
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Apply returns the descriptors of ds that satisfy the filter, preserving
// order.
func (f *Filter) Apply(ds []*Descriptor) ([]*Descriptor, error) {
	if f == nil || f.program == nil {
		return ds, nil
	}

	out := make([]*Descriptor, 0, len(ds))

	for _, d := range ds {
		ok, err := f.Match(d)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, d)
		}
	}

	return out, nil
}

// String returns the filter source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}

	return f.source
}
