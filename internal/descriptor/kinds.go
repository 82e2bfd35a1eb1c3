package descriptor

import "slices"

// TypeKinds groups the type-name prefixes used to recognise collection,
// string and boolean types. The zero value recognises nothing; use
// JavaTypeKinds for the protobuf Java runtime.
type TypeKinds struct {
	Lists     []string
	Maps      []string
	Iterables []string
	Strings   []string
	Booleans  []string
	Void      string
}

// JavaTypeKinds returns the kinds used by protoc-generated Java sources.
func JavaTypeKinds() TypeKinds {
	return TypeKinds{
		Lists:     []string{"java.util.List", "com.google.protobuf.ProtocolStringList"},
		Maps:      []string{"java.util.Map"},
		Iterables: []string{"java.lang.Iterable"},
		Strings:   []string{"java.lang.String"},
		Booleans:  []string{"boolean", "java.lang.Boolean"},
		Void:      "void",
	}
}

// IsList reports whether r is list-like.
func (k TypeKinds) IsList(r TypeRef) bool { return hasAnyPrefix(r, k.Lists) }

// IsMap reports whether r is map-like.
func (k TypeKinds) IsMap(r TypeRef) bool { return hasAnyPrefix(r, k.Maps) }

// IsIterable reports whether r is a bulk collection parameter.
func (k TypeKinds) IsIterable(r TypeRef) bool { return hasAnyPrefix(r, k.Iterables) }

// IsString reports whether r is string-like.
func (k TypeKinds) IsString(r TypeRef) bool {
	return slices.Contains(k.Strings, r.Raw())
}

// IsBoolean reports whether r is a boolean type.
func (k TypeKinds) IsBoolean(r TypeRef) bool {
	return slices.Contains(k.Booleans, r.Raw())
}

// IsVoid reports whether r is the void return type.
func (k TypeKinds) IsVoid(r TypeRef) bool {
	return r == "" || r.Raw() == k.Void
}

func hasAnyPrefix(r TypeRef, prefixes []string) bool {
	for _, p := range prefixes {
		if r.HasPrefix(p) {
			return true
		}
	}

	return false
}
