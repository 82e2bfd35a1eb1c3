package accessor

import (
	"strings"

	"accessor-naming/internal/descriptor"
)

// SpecialRule is one row of a companion table: a method whose name is
// <prefix><base><Suffix> is a synthetic companion when Validate finds the
// sibling it shadows.
type SpecialRule struct {
	Suffix   string
	Prefixes []string
	Validate func(s Siblings, prefix, base string, m *descriptor.MethodDescriptor) bool
}

// Match reports whether the rule demotes m. The base must be non-empty.
func (r SpecialRule) Match(s Siblings, m *descriptor.MethodDescriptor) bool {
	for _, prefix := range r.Prefixes {
		rest, ok := strings.CutPrefix(m.Name, prefix)
		if !ok {
			continue
		}

		base, ok := strings.CutSuffix(rest, r.Suffix)
		if !ok || base == "" {
			continue
		}

		if r.Validate(s, prefix, base, m) {
			return true
		}
	}

	return false
}

// Siblings gives rule validators access to the declaring type.
type Siblings struct {
	Type  *descriptor.TypeDescriptor
	Kinds descriptor.TypeKinds
}

// Getter returns the public instance method with the given name and no
// parameters, or nil. Deprecation is ignored: companions are structural.
func (s Siblings) Getter(name string) *descriptor.MethodDescriptor {
	for _, m := range s.Type.MethodsNamed(name) {
		if len(m.Params) == 0 && m.IsPublic && !m.IsStatic {
			return m
		}
	}

	return nil
}

// SingleArg returns the public instance methods with the given name and
// exactly one parameter.
func (s Siblings) SingleArg(name string) []*descriptor.MethodDescriptor {
	var out []*descriptor.MethodDescriptor

	for _, m := range s.Type.MethodsNamed(name) {
		if len(m.Params) == 1 && m.IsPublic && !m.IsStatic {
			out = append(out, m)
		}
	}

	return out
}

func siblingGetterExists(suffix string) func(Siblings, string, string, *descriptor.MethodDescriptor) bool {
	return func(s Siblings, prefix, base string, _ *descriptor.MethodDescriptor) bool {
		return s.Getter(prefix+base+suffix) != nil
	}
}

func siblingGetterDiffers(suffix string) func(Siblings, string, string, *descriptor.MethodDescriptor) bool {
	return func(s Siblings, prefix, base string, m *descriptor.MethodDescriptor) bool {
		g := s.Getter(prefix + base + suffix)
		return g != nil && g.Returns != m.Returns
	}
}

// SpecialGetterRules returns the companion table for get-methods. Order
// matters only for readability; a getter is demoted if any row matches.
func SpecialGetterRules() []SpecialRule {
	get := []string{"get"}

	return []SpecialRule{
		{Suffix: "OrBuilderList", Prefixes: get, Validate: siblingGetterExists("List")},
		{Suffix: "BuilderList", Prefixes: get, Validate: siblingGetterExists("List")},
		{Suffix: "OrBuilder", Prefixes: get, Validate: siblingGetterExists("")},
		{Suffix: "Builder", Prefixes: get, Validate: siblingGetterExists("")},
		{
			Suffix:   "Bytes",
			Prefixes: get,
			Validate: func(s Siblings, prefix, base string, _ *descriptor.MethodDescriptor) bool {
				g := s.Getter(prefix + base)
				return g != nil && s.Kinds.IsString(g.Returns)
			},
		},
		{
			Suffix:   "Count",
			Prefixes: get,
			Validate: func(s Siblings, prefix, base string, _ *descriptor.MethodDescriptor) bool {
				if g := s.Getter(prefix + base + "Map"); g != nil && s.Kinds.IsMap(g.Returns) {
					return true
				}

				if g := s.Getter(prefix + base); g != nil && s.Kinds.IsMap(g.Returns) {
					return true
				}

				g := s.Getter(prefix + base + "List")

				return g != nil && s.Kinds.IsList(g.Returns)
			},
		},
		// Enum fields expose their numeric value next to the typed accessor.
		{Suffix: "ValueList", Prefixes: get, Validate: siblingGetterDiffers("List")},
		{Suffix: "ValueMap", Prefixes: get, Validate: siblingGetterDiffers("Map")},
		{Suffix: "Value", Prefixes: get, Validate: siblingGetterDiffers("")},
	}
}

// SpecialSetterRules returns the companion table for setter-shaped methods.
func SpecialSetterRules() []SpecialRule {
	return []SpecialRule{
		{
			// setFooBytes(ByteString) re-encodes setFoo(String).
			Suffix:   "Bytes",
			Prefixes: []string{"set"},
			Validate: func(s Siblings, prefix, base string, _ *descriptor.MethodDescriptor) bool {
				for _, sib := range s.SingleArg(prefix + base) {
					if s.Kinds.IsString(sib.Params[0]) {
						return true
					}
				}

				return false
			},
		},
		{
			Suffix:   "Value",
			Prefixes: []string{"set", "addAll", "putAll"},
			Validate: func(s Siblings, prefix, base string, m *descriptor.MethodDescriptor) bool {
				if len(m.Params) != 1 {
					return false
				}

				for _, sib := range s.SingleArg(prefix + base) {
					if sib.Params[0] != m.Params[0] {
						return true
					}
				}

				return false
			},
		},
	}
}
