package accessor

import (
	"slices"

	"accessor-naming/internal/descriptor"
)

const javaLangObject = "java.lang.Object"

// MethodSet is a set of method signatures.
type MethodSet map[descriptor.Signature]struct{}

// Contains reports whether m's signature is in the set.
func (s MethodSet) Contains(m *descriptor.MethodDescriptor) bool {
	_, ok := s[m.Signature()]
	return ok
}

// Len returns the number of signatures.
func (s MethodSet) Len() int {
	return len(s)
}

// Sorted returns the signatures in a stable order.
func (s MethodSet) Sorted() []descriptor.Signature {
	out := make([]descriptor.Signature, 0, len(s))
	for sig := range s {
		out = append(out, sig)
	}

	slices.SortFunc(out, descriptor.Signature.Compare)

	return out
}

// BuildInternalMethodSet collects the signatures declared by each root type
// and everything it inherits. Roots missing from the graph are skipped and
// java.lang.Object is never entered.
func BuildInternalMethodSet(graph *descriptor.Graph, roots ...string) MethodSet {
	set := make(MethodSet)
	visited := make(map[string]bool)

	for _, root := range roots {
		if t := graph.Lookup(root); t != nil {
			collectMethods(graph, t, set, visited)
		}
	}

	return set
}

func collectMethods(graph *descriptor.Graph, t *descriptor.TypeDescriptor, set MethodSet, visited map[string]bool) {
	if visited[t.QualifiedName] {
		return
	}

	visited[t.QualifiedName] = true

	for i := range t.Methods {
		set[t.Methods[i].Signature()] = struct{}{}
	}

	if t.Superclass.IsResolved() && t.Superclass.Raw() != javaLangObject {
		if super := graph.Lookup(t.Superclass.Raw()); super != nil {
			collectMethods(graph, super, set, visited)
		}
	}

	for _, iface := range t.Interfaces {
		if super := graph.Lookup(iface.Raw()); super != nil {
			collectMethods(graph, super, set, visited)
		}
	}
}
