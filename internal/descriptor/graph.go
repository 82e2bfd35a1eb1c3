package descriptor

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownType is returned when a reference does not resolve in the Graph.
var ErrUnknownType = errors.New("unknown type")

// Graph holds every type descriptor of one generation unit, keyed by
// qualified name. It is built once and only read afterwards.
type Graph struct {
	types map[string]*TypeDescriptor
}

// NewGraph creates a Graph from the given types. Later duplicates replace
// earlier ones.
func NewGraph(types ...*TypeDescriptor) *Graph {
	g := &Graph{types: make(map[string]*TypeDescriptor, len(types))}
	g.Add(types...)

	return g
}

// Add registers types. It is meant for graph construction only.
func (g *Graph) Add(types ...*TypeDescriptor) {
	for _, t := range types {
		if t == nil {
			continue
		}

		g.types[TypeRef(t.QualifiedName).Raw()] = t
	}
}

// Lookup returns the type with the given qualified name, or nil.
func (g *Graph) Lookup(name string) *TypeDescriptor {
	if g == nil {
		return nil
	}

	return g.types[TypeRef(name).Raw()]
}

// Resolve returns the type a reference points at.
func (g *Graph) Resolve(ref TypeRef) (*TypeDescriptor, error) {
	if !ref.IsResolved() {
		return nil, errors.Wrapf(ErrUnknownType, "unresolvable reference %q", ref.String())
	}

	t := g.Lookup(ref.Raw())
	if t == nil {
		return nil, errors.Wrapf(ErrUnknownType, "%s", ref.Raw())
	}

	return t, nil
}

// Len returns the number of registered types.
func (g *Graph) Len() int {
	return len(g.types)
}

// Types returns all types sorted by qualified name.
func (g *Graph) Types() []*TypeDescriptor {
	out := make([]*TypeDescriptor, 0, len(g.types))
	for _, t := range g.types {
		out = append(out, t)
	}

	slices.SortFunc(out, func(a, b *TypeDescriptor) int {
		return strings.Compare(a.QualifiedName, b.QualifiedName)
	})

	return out
}

// Filter returns the sorted types for which keep returns true.
func (g *Graph) Filter(keep func(*TypeDescriptor) bool) []*TypeDescriptor {
	var out []*TypeDescriptor

	for _, t := range g.Types() {
		if keep(t) {
			out = append(out, t)
		}
	}

	return out
}
