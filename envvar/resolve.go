package envvar

import "github.com/ardnew/gendotenv/syntax"

// DefaultMaxDepth bounds how many name-to-name links the [Resolver] follows.
const DefaultMaxDepth = 3

// Resolver follows simple variable references within one module.
//
// It indexes every assignment to a bare name anywhere in the tree, at any
// nesting level and without regard to scope; the last assignment in
// depth-first order wins. Results are only meaningful for flat,
// module-level settings files.
type Resolver struct {
	bindings map[string]*syntax.Node
	maxDepth int
}

// NewResolver indexes the assignments of tree. A negative maxDepth selects
// [DefaultMaxDepth].
func NewResolver(tree *syntax.Tree, maxDepth int) *Resolver {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}

	r := &Resolver{bindings: make(map[string]*syntax.Node), maxDepth: maxDepth}

	if tree == nil {
		return r
	}

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if n.Kind != syntax.Assignment || n.Value == nil {
			return true
		}

		for _, t := range n.Targets {
			if t.Kind == syntax.Name {
				r.bindings[t.Text] = n
			}
		}

		return true
	})

	return r
}

// MaxDepth returns the resolution depth bound.
func (r *Resolver) MaxDepth() int { return r.maxDepth }

// Lookup returns the last assignment that binds name.
func (r *Resolver) Lookup(name string) (*syntax.Node, bool) {
	a, ok := r.bindings[name]

	return a, ok
}

// Chase follows name through assignments whose value is another bare name,
// at most depth times, and returns the assignment where the chain stops.
// It fails if any name along the way is unbound.
func (r *Resolver) Chase(name string, depth int) (*syntax.Node, bool) {
	for {
		a, ok := r.bindings[name]
		if !ok {
			return nil, false
		}

		if a.Value.Kind != syntax.Name || depth <= 0 {
			return a, true
		}

		name, depth = a.Value.Text, depth-1
	}
}

// Resolve returns the rendered value that name denotes, following
// name-to-name links up to [Resolver.MaxDepth] times. Reference cycles
// terminate at the depth bound.
func (r *Resolver) Resolve(name string) (string, bool) {
	a, ok := r.Chase(name, r.maxDepth)
	if !ok {
		return "", false
	}

	return Render(a.Value), true
}
