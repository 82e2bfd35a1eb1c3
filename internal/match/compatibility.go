package match

import (
	"go/types"

	"accessor-naming/internal/analyze"
	"accessor-naming/internal/common"
	"accessor-naming/internal/descriptor"
)

// TypeCompatibility represents the level of compatibility between a wire
// property type and a Go field type.
type TypeCompatibility int

const (
	// TypeIncompatible means the types cannot be converted.
	TypeIncompatible TypeCompatibility = iota
	// TypeNeedsTransform means a nested mapping or enum mapping is required.
	TypeNeedsTransform
	// TypeConvertible means an element-wise copy or Go conversion suffices.
	TypeConvertible
	// TypeAssignable means the value can be assigned, possibly through a pointer.
	TypeAssignable
	// TypeIdentical means the Go type is the natural counterpart of the Java type.
	TypeIdentical
)

const (
	VerdictIdentical      = "identical"
	VerdictAssignable     = "assignable"
	VerdictConvertible    = "convertible"
	VerdictNeedsTransform = "needs_transform"
	VerdictIncompatible   = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeConvertible:
		return VerdictConvertible
	case TypeNeedsTransform:
		return VerdictNeedsTransform
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return common.UnknownStr
	}
}

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Reason        string // Human-readable explanation
	SourceType    string // Java type of the wire property
	TargetType    string // Go type of the target field
}

// javaBasics maps Java primitives and boxes to the Go kind protoc-gen-go
// would use for the same proto scalar.
var javaBasics = map[string]types.BasicKind{
	"boolean":           types.Bool,
	"java.lang.Boolean": types.Bool,
	"int":               types.Int32,
	"java.lang.Integer": types.Int32,
	"long":              types.Int64,
	"java.lang.Long":    types.Int64,
	"float":             types.Float32,
	"java.lang.Float":   types.Float32,
	"double":            types.Float64,
	"java.lang.Double":  types.Float64,
	"java.lang.String":  types.String,
}

const byteString = "com.google.protobuf.ByteString"

// ScoreTypeCompatibility compares the Java type of a wire property with a Go
// type. enum reports whether the Java type is a wire enum.
func ScoreTypeCompatibility(
	source descriptor.TypeRef,
	enum bool,
	kinds descriptor.TypeKinds,
	target *analyze.TypeInfo,
) TypeCompatibilityResult {
	res := TypeCompatibilityResult{SourceType: source.String(), TargetType: target.String()}
	res.Compatibility, res.Reason = score(source, enum, kinds, target)

	return res
}

func score(source descriptor.TypeRef, enum bool, kinds descriptor.TypeKinds, target *analyze.TypeInfo) (TypeCompatibility, string) {
	if target == nil {
		return TypeIncompatible, "target type unknown"
	}

	if target.Kind == analyze.TypeKindPointer {
		c, reason := score(source, enum, kinds, target.ElemType)
		return min(c, TypeAssignable), reason
	}

	switch {
	case !source.IsResolved():
		return TypeIncompatible, "source type unresolved"
	case kinds.IsMap(source):
		if target.Kind == analyze.TypeKindMap || underlyingKind(target) == analyze.TypeKindMap {
			return TypeConvertible, "map copied entry by entry"
		}

		return TypeIncompatible, "map property needs a map field"
	case kinds.IsList(source):
		if isBytes(target) {
			return TypeIncompatible, "repeated property cannot fill []byte"
		}

		if target.Kind == analyze.TypeKindSlice || underlyingKind(target) == analyze.TypeKindSlice {
			return TypeConvertible, "list copied element by element"
		}

		return TypeIncompatible, "repeated property needs a slice field"
	case source.Raw() == byteString:
		if isBytes(target) {
			return TypeConvertible, "ByteString copied to []byte"
		}

		return TypeIncompatible, "bytes property needs a []byte field"
	case enum:
		if target.IsEnum() || target.Kind == analyze.TypeKindAlias {
			return TypeNeedsTransform, "enum constants mapped by name"
		}

		if basicKind(target) == types.String {
			return TypeNeedsTransform, "enum rendered as its canonical name"
		}

		return TypeIncompatible, "enum property needs a named type"
	}

	if want, ok := javaBasics[source.Raw()]; ok {
		return scoreBasic(want, target)
	}

	switch target.Kind {
	case analyze.TypeKindStruct, analyze.TypeKindExternal:
		return TypeNeedsTransform, "message mapped by a nested conversion"
	default:
		return TypeIncompatible, "message property needs a struct field"
	}
}

func scoreBasic(want types.BasicKind, target *analyze.TypeInfo) (TypeCompatibility, string) {
	got := basicKind(target)

	switch {
	case got == types.Invalid:
		return TypeIncompatible, "scalar property needs a basic field"
	case got == want && target.Kind == analyze.TypeKindBasic:
		return TypeIdentical, "same scalar type"
	case got == want:
		return TypeAssignable, "named type over the same scalar"
	case isNumeric(got) && isNumeric(want):
		return TypeConvertible, "numeric conversion"
	default:
		return TypeIncompatible, "scalar kinds differ"
	}
}

func basicKind(t *analyze.TypeInfo) types.BasicKind {
	for t != nil && t.Kind == analyze.TypeKindAlias {
		t = t.Underlying
	}

	if t == nil || t.Kind != analyze.TypeKindBasic {
		return types.Invalid
	}

	if b, ok := t.GoType.Underlying().(*types.Basic); ok {
		return b.Kind()
	}

	return types.Invalid
}

func underlyingKind(t *analyze.TypeInfo) analyze.TypeKind {
	for t != nil && t.Kind == analyze.TypeKindAlias {
		t = t.Underlying
	}

	if t == nil {
		return analyze.TypeKindUnknown
	}

	return t.Kind
}

func isBytes(t *analyze.TypeInfo) bool {
	return t.Kind == analyze.TypeKindSlice && basicKind(t.ElemType) == types.Uint8
}

func isNumeric(k types.BasicKind) bool {
	return types.Typ[k].Info()&types.IsNumeric != 0
}
