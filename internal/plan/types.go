package plan

import (
	"accessor-naming/internal/accessor"
	"accessor-naming/internal/analyze"
	"accessor-naming/internal/common"
	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/enummap"
	"accessor-naming/internal/match"
)

// Pairing is the result of pairing one wire-format type with a Go struct.
type Pairing struct {
	// WireType is the classified wire-format type.
	WireType *descriptor.TypeDescriptor
	// Target is the Go struct being populated.
	Target *analyze.TypeInfo
	// Fields is the list of paired target fields, in declaration order.
	Fields []FieldPairing
	// Unmapped are target fields without a wire property.
	Unmapped []UnmappedField
	// UnusedProperties are wire properties no target field consumed, sorted.
	UnusedProperties []string
}

// Complete reports whether every target field found a property.
func (p *Pairing) Complete() bool {
	return len(p.Unmapped) == 0
}

// Lookup returns the pairing of the target field with the given Go name.
func (p *Pairing) Lookup(fieldName string) (FieldPairing, bool) {
	for _, f := range p.Fields {
		if f.Target.Name == fieldName {
			return f, true
		}
	}

	return FieldPairing{}, false
}

// FieldPairing is one target field bound to a wire property.
type FieldPairing struct {
	// Target is the Go field.
	Target *analyze.FieldInfo
	// Property is the wire property it reads from.
	Property *accessor.Property
	// Source specifies how the pair was found.
	Source MatchSource
	// Strategy describes how the value should be carried over.
	Strategy ConversionStrategy
	// Compat is the type compatibility of the getter and the field.
	Compat match.TypeCompatibilityResult
	// Confidence is 1 for exact matches, the combined score otherwise.
	Confidence float64
	// Explanation describes why this pair was chosen.
	Explanation string
}

// UnmappedField represents a target field that couldn't be paired.
type UnmappedField struct {
	// Target is the unmapped field.
	Target *analyze.FieldInfo
	// Candidates are the ranked potential matches (for suggestions).
	Candidates match.CandidateList
	// Reason explains why it wasn't paired.
	Reason string
}

// MatchSource indicates how a pair was found.
type MatchSource int

const (
	// MatchExact - normalized names are equal.
	MatchExact MatchSource = iota
	// MatchAuto - accepted from ranked candidates.
	MatchAuto
)

// String returns a human-readable source name.
func (s MatchSource) String() string {
	switch s {
	case MatchExact:
		return "exact"
	case MatchAuto:
		return "auto"
	default:
		return common.UnknownStr
	}
}

// ConversionStrategy describes how to carry a wire value into the field.
type ConversionStrategy int

const (
	// StrategyDirectAssign - direct assignment.
	StrategyDirectAssign ConversionStrategy = iota
	// StrategyConvert - explicit Go type conversion.
	StrategyConvert
	// StrategyPointerWrap - take address to create pointer, guarded by the presence check if any.
	StrategyPointerWrap
	// StrategySliceMap - map over list elements.
	StrategySliceMap
	// StrategyMapCopy - copy map entries.
	StrategyMapCopy
	// StrategyBytesCopy - copy ByteString contents.
	StrategyBytesCopy
	// StrategyEnumMap - map enum constants by canonical name.
	StrategyEnumMap
	// StrategyNestedCast - convert the nested message through its own pairing.
	StrategyNestedCast
	// StrategyNone - no conversion exists.
	StrategyNone
)

// String returns a human-readable strategy name.
func (s ConversionStrategy) String() string {
	switch s {
	case StrategyDirectAssign:
		return "direct_assign"
	case StrategyConvert:
		return "convert"
	case StrategyPointerWrap:
		return "pointer_wrap"
	case StrategySliceMap:
		return "slice_map"
	case StrategyMapCopy:
		return "map_copy"
	case StrategyBytesCopy:
		return "bytes_copy"
	case StrategyEnumMap:
		return "enum_map"
	case StrategyNestedCast:
		return "nested_cast"
	case StrategyNone:
		return "none"
	default:
		return common.UnknownStr
	}
}

// EnumPairing is the result of pairing a mapped wire enum with a Go enum.
type EnumPairing struct {
	Wire      *enummap.EnumResult
	Target    *analyze.TypeInfo
	Constants []ConstantPairing // in wire ordinal order
	// UnmappedWire are canonical wire names without a Go constant.
	UnmappedWire []string
	// UnmappedGo are Go constant names without a wire constant.
	UnmappedGo []string
}

// Complete reports whether every present wire constant has a Go counterpart.
func (p *EnumPairing) Complete() bool {
	return len(p.UnmappedWire) == 0
}

// ConstantPairing binds one wire constant to one Go constant.
type ConstantPairing struct {
	Wire enummap.ConstantMapping
	Go   analyze.ConstantInfo
}
