package plan

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"accessor-naming/internal/accessor"
	"accessor-naming/internal/analyze"
	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/diagnostic"
	"accessor-naming/internal/logging"
	"accessor-naming/internal/match"
)

const byteString = "com.google.protobuf.ByteString"

// Config holds configuration for pairing.
type Config struct {
	// MinConfidence is the minimum score for auto-accepting a match.
	MinConfidence float64
	// MinGap is the minimum score gap between top candidates for auto-accept.
	MinGap float64
	// AmbiguityThreshold marks pairs as ambiguous if within this difference.
	AmbiguityThreshold float64
	// MaxCandidates is the maximum number of candidates to include in suggestions.
	MaxCandidates int
	// Kinds recognises list, map and string property types.
	Kinds descriptor.TypeKinds
	// Graph resolves property types to tell enums from messages. Optional.
	Graph *descriptor.Graph
	// Logger receives one debug entry per pairing. Optional.
	Logger *zap.Logger
}

// DefaultConfig returns the default pairing configuration for the Java
// protobuf runtime.
func DefaultConfig() Config {
	return Config{
		MinConfidence:      match.DefaultMinScore,
		MinGap:             match.DefaultMinGap,
		AmbiguityThreshold: match.DefaultAmbiguityThreshold,
		MaxCandidates:      5,
		Kinds:              descriptor.JavaTypeKinds(),
	}
}

// Pairer pairs wire properties with Go struct fields.
type Pairer struct {
	cfg    Config
	logger *zap.Logger
}

// NewPairer creates a new Pairer.
func NewPairer(cfg Config) *Pairer {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pairer{cfg: cfg, logger: logger}
}

// Pair binds every exported, non-ignored field of target to a property of the
// classified wire type. Exact normalized name matches win; the remaining
// fields are offered the remaining properties through the fuzzy matcher.
// A nil Pairing comes with an error diagnostic.
func (p *Pairer) Pair(result *accessor.TypeResult, target *analyze.TypeInfo) (*Pairing, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if result == nil || result.Type == nil {
		diags.AddError(diagnostic.CodeUnresolvedType, "no wire type to pair", "", "")
		return nil, diags
	}

	typeName := result.Type.QualifiedName

	if result.Err != nil {
		diags.AddError(diagnostic.CodeClassificationFail, result.Err.Error(), typeName, "")
		return nil, diags
	}

	target = target.Deref()
	if target == nil || target.Kind != analyze.TypeKindStruct {
		diags.AddError(diagnostic.CodeIncompatibleType,
			fmt.Sprintf("target %s is not a struct", target), typeName, "")

		return nil, diags
	}

	pairStr := typeName + "->" + target.ID.String()
	pairing := &Pairing{WireType: result.Type, Target: target}

	props := result.Properties()
	byName := make(map[string]*accessor.Property, len(props))
	byNorm := make(map[string][]*accessor.Property, len(props))

	for _, prop := range props {
		byName[prop.Name] = prop
		key := match.NormalizeIdent(prop.Name)
		byNorm[key] = append(byNorm[key], prop)
	}

	used := make(map[string]bool, len(props))

	var pending []*analyze.FieldInfo

	for i := range target.Fields {
		field := &target.Fields[i]
		if !field.Exported || field.Embedded || field.Ignored() {
			continue
		}

		prop := exactProperty(byNorm[match.NormalizeIdent(field.PropertyName())], field.PropertyName(), used)
		if prop == nil {
			pending = append(pending, field)
			continue
		}

		used[prop.Name] = true
		fp := p.bind(field, prop, MatchExact, 1.0, &diags, pairStr)
		fp.Explanation = fmt.Sprintf("exact: %s -> %s (%s)", prop.Name, field.Name, fp.Compat.Compatibility)
		pairing.Fields = append(pairing.Fields, fp)
	}

	for _, field := range pending {
		candidates := match.RankCandidates(field, p.sources(props, used), p.cfg.Kinds)

		best := candidates.HighConfidence(p.cfg.MinConfidence, p.cfg.MinGap)
		if best == nil {
			reason := p.unmappedReason(candidates)
			top := candidates.Top(p.cfg.MaxCandidates)

			pairing.Unmapped = append(pairing.Unmapped, UnmappedField{
				Target:     field,
				Candidates: top,
				Reason:     reason,
			})
			diags.AddWarning(diagnostic.CodeUnmappedField,
				fmt.Sprintf("target field %q: %s", field.Name, reason),
				pairStr, field.Name, top.Names()...)

			continue
		}

		prop := byName[best.Source.Name]
		used[prop.Name] = true

		fp := p.bind(field, prop, MatchAuto, best.CombinedScore, &diags, pairStr)
		fp.Explanation = fmt.Sprintf("auto-matched: %s -> %s (score: %.2f, %s)",
			prop.Name, field.Name, best.CombinedScore, fp.Compat.Compatibility)
		pairing.Fields = append(pairing.Fields, fp)

		diags.AddInfo(diagnostic.CodeAutoMatched,
			fmt.Sprintf("target field %q paired with property %q (score %.2f)", field.Name, prop.Name, best.CombinedScore),
			pairStr, field.Name)
	}

	slices.SortFunc(pairing.Fields, func(a, b FieldPairing) int {
		return a.Target.Index - b.Target.Index
	})

	for _, prop := range props {
		if used[prop.Name] {
			continue
		}

		pairing.UnusedProperties = append(pairing.UnusedProperties, prop.Name)
		diags.AddInfo(diagnostic.CodeUnmappedProperty,
			fmt.Sprintf("wire property %q has no target field", prop.Name), pairStr, prop.Name)
	}

	p.logger.Debug("type paired",
		zap.String(logging.FieldType, pairStr),
		zap.Int(logging.FieldCount, len(pairing.Fields)),
		zap.Int("unmapped", len(pairing.Unmapped)),
		zap.Int("unused", len(pairing.UnusedProperties)))

	return pairing, diags
}

// exactProperty picks among properties sharing a normalized name, preferring
// the one spelled exactly like the field.
func exactProperty(props []*accessor.Property, name string, used map[string]bool) *accessor.Property {
	var first *accessor.Property

	for _, prop := range props {
		if used[prop.Name] {
			continue
		}

		if prop.Name == name {
			return prop
		}

		if first == nil {
			first = prop
		}
	}

	return first
}

func (p *Pairer) bind(
	field *analyze.FieldInfo,
	prop *accessor.Property,
	source MatchSource,
	confidence float64,
	diags *diagnostic.Diagnostics,
	pairStr string,
) FieldPairing {
	typ := propertyType(prop)
	enum := p.isEnum(typ)
	compat := match.ScoreTypeCompatibility(typ, enum, p.cfg.Kinds, field.Type)

	if compat.Compatibility == match.TypeIncompatible {
		diags.AddWarning(diagnostic.CodeIncompatibleType,
			fmt.Sprintf("property %q (%s) cannot fill field %q (%s): %s",
				prop.Name, compat.SourceType, field.Name, compat.TargetType, compat.Reason),
			pairStr, field.Name)
	}

	return FieldPairing{
		Target:     field,
		Property:   prop,
		Source:     source,
		Strategy:   p.strategyFor(typ, enum, compat.Compatibility, field.Type),
		Compat:     compat,
		Confidence: confidence,
	}
}

func (p *Pairer) sources(props []*accessor.Property, used map[string]bool) []match.Source {
	var out []match.Source

	for _, prop := range props {
		if used[prop.Name] {
			continue
		}

		typ := propertyType(prop)
		out = append(out, match.Source{Name: prop.Name, Type: typ, Enum: p.isEnum(typ)})
	}

	return out
}

func (p *Pairer) unmappedReason(candidates match.CandidateList) string {
	switch {
	case len(candidates) == 0:
		return "no wire properties left"
	case len(candidates) >= 2 && candidates.IsAmbiguous(p.cfg.AmbiguityThreshold):
		return fmt.Sprintf("ambiguous: top candidates %q (%.2f) and %q (%.2f) are too close",
			candidates[0].Source.Name, candidates[0].CombinedScore,
			candidates[1].Source.Name, candidates[1].CombinedScore)
	case candidates[0].CombinedScore < p.cfg.MinConfidence:
		return fmt.Sprintf("best match %q (%.2f) below threshold %.2f",
			candidates[0].Source.Name, candidates[0].CombinedScore, p.cfg.MinConfidence)
	case candidates[0].TypeCompat.Compatibility == match.TypeIncompatible:
		return fmt.Sprintf("best match %q is %s", candidates[0].Source.Name, candidates[0].TypeCompat.Reason)
	default:
		return "no high-confidence match"
	}
}

func (p *Pairer) isEnum(ref descriptor.TypeRef) bool {
	if p.cfg.Graph == nil {
		return false
	}

	t := p.cfg.Graph.Lookup(ref.Raw())

	return t != nil && t.Kind == descriptor.KindEnum
}

func (p *Pairer) strategyFor(
	typ descriptor.TypeRef,
	enum bool,
	compat match.TypeCompatibility,
	target *analyze.TypeInfo,
) ConversionStrategy {
	switch {
	case compat == match.TypeIncompatible:
		return StrategyNone
	case p.cfg.Kinds.IsMap(typ):
		return StrategyMapCopy
	case p.cfg.Kinds.IsList(typ):
		return StrategySliceMap
	case typ.Raw() == byteString:
		return StrategyBytesCopy
	case enum:
		return StrategyEnumMap
	case compat == match.TypeNeedsTransform:
		return StrategyNestedCast
	case target.Kind == analyze.TypeKindPointer:
		return StrategyPointerWrap
	case compat == match.TypeIdentical:
		return StrategyDirectAssign
	default:
		return StrategyConvert
	}
}

// propertyType is the getter's return type, or the first setter's parameter
// for write-only properties.
func propertyType(prop *accessor.Property) descriptor.TypeRef {
	if g := prop.Getter(); g != nil {
		return g.Returns
	}

	for _, s := range prop.Setters {
		if len(s.Params) > 0 {
			return s.Params[0]
		}
	}

	return ""
}
