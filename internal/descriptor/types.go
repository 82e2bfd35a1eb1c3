package descriptor

import (
	"slices"
	"strings"
)

// UnresolvedType is the name an introspector prints for a type it could not
// resolve (javac renders erroneous types the same way).
const UnresolvedType = "<any>"

// TypeRef is a reference to a type by its printed name,
// e.g. "java.util.List<java.lang.String>".
type TypeRef string

// String returns the printed type name.
func (r TypeRef) String() string {
	return string(r)
}

// Raw returns the type name without type arguments.
func (r TypeRef) Raw() string {
	s := string(r)
	if i := strings.IndexByte(s, '<'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}

	return strings.TrimSpace(s)
}

// HasPrefix reports whether the printed name starts with prefix.
func (r TypeRef) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(r), prefix)
}

// IsResolved reports whether the reference names an actual type.
func (r TypeRef) IsResolved() bool {
	s := strings.TrimSpace(string(r))
	return s != "" && !strings.Contains(s, UnresolvedType)
}

// MethodDescriptor describes one method of a type.
// Identity for sibling lookup is (Name, Params); the remaining fields are
// attributes.
type MethodDescriptor struct {
	Name         string
	Params       []TypeRef
	Returns      TypeRef
	IsStatic     bool
	IsPublic     bool
	IsDeprecated bool
}

// Signature returns the identity of the method.
func (m *MethodDescriptor) Signature() Signature {
	return NewSignature(m.Name, m.Params...)
}

// String renders the method as name(params) for diagnostics.
func (m *MethodDescriptor) String() string {
	return m.Signature().String()
}

// Signature is the (name, parameter types) identity of a method.
// Parameter types are joined so the value is comparable and usable as a map key.
type Signature struct {
	Name   string
	Params string
}

// NewSignature builds a Signature from a name and parameter types.
func NewSignature(name string, params ...TypeRef) Signature {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = string(p)
	}

	return Signature{Name: name, Params: strings.Join(parts, ",")}
}

// String returns "name(p1,p2)".
func (s Signature) String() string {
	return s.Name + "(" + s.Params + ")"
}

// Compare orders signatures by name, then by parameter list.
func (s Signature) Compare(other Signature) int {
	if c := strings.Compare(s.Name, other.Name); c != 0 {
		return c
	}

	return strings.Compare(s.Params, other.Params)
}

// TypeKind distinguishes classes, interfaces and enums.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindInterface
	KindEnum
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// EnumConstantDescriptor is one constant of an enum type.
type EnumConstantDescriptor struct {
	Name    string
	Ordinal int
}

// TypeDescriptor is an immutable snapshot of a type.
type TypeDescriptor struct {
	QualifiedName string
	Kind          TypeKind
	Interfaces    []TypeRef
	Superclass    TypeRef // empty when the chain terminates
	Methods       []MethodDescriptor
	Constants     []EnumConstantDescriptor
}

// Ref returns a TypeRef naming this type.
func (t *TypeDescriptor) Ref() TypeRef {
	return TypeRef(t.QualifiedName)
}

// SimpleName returns the last dotted segment of the qualified name.
func (t *TypeDescriptor) SimpleName() string {
	name := TypeRef(t.QualifiedName).Raw()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}

// MethodsNamed returns the methods with the given name, in declaration order.
func (t *TypeDescriptor) MethodsNamed(name string) []*MethodDescriptor {
	var out []*MethodDescriptor

	for i := range t.Methods {
		if t.Methods[i].Name == name {
			out = append(out, &t.Methods[i])
		}
	}

	return out
}

// HasMethodNamed reports whether any method carries the given name.
func (t *TypeDescriptor) HasMethodNamed(name string) bool {
	return slices.ContainsFunc(t.Methods, func(m MethodDescriptor) bool {
		return m.Name == name
	})
}

// Constant returns the constant with the given name.
func (t *TypeDescriptor) Constant(name string) (EnumConstantDescriptor, bool) {
	for _, c := range t.Constants {
		if c.Name == name {
			return c, true
		}
	}

	return EnumConstantDescriptor{}, false
}

// ConstantAt returns the constant with the given ordinal.
func (t *TypeDescriptor) ConstantAt(ordinal int) (EnumConstantDescriptor, bool) {
	for _, c := range t.Constants {
		if c.Ordinal == ordinal {
			return c, true
		}
	}

	return EnumConstantDescriptor{}, false
}
