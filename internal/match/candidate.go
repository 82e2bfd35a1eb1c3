package match

import (
	"cmp"
	"slices"

	"accessor-naming/internal/analyze"
	"accessor-naming/internal/descriptor"
)

// Confidence thresholds for auto-accepting matches.
const (
	// DefaultMinScore is the minimum combined score for auto-acceptance.
	DefaultMinScore = 0.7
	// DefaultMinGap is the minimum score gap between top candidates.
	DefaultMinGap = 0.15
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)

// Source is a wire property offered for matching.
type Source struct {
	Name string            // Property name, e.g. "shippingAddress"
	Type descriptor.TypeRef // Java type of the property getter
	Enum bool               // Type is a wire enum
}

// Candidate represents a potential mapping from a wire property to a target field.
type Candidate struct {
	Source Source
	Target *analyze.FieldInfo

	NameScore  float64                 // Normalized Levenshtein similarity (0-1)
	TypeCompat TypeCompatibilityResult // Type compatibility result

	// Combined score for ranking (higher is better)
	CombinedScore float64

	NormalizedSourceName string
	NormalizedTargetName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every source against the target field.
// Returns candidates sorted by combined score (descending).
func RankCandidates(target *analyze.FieldInfo, sources []Source, kinds descriptor.TypeKinds) CandidateList {
	candidates := make(CandidateList, 0, len(sources))
	targetName := target.PropertyName()

	for _, src := range sources {
		nameScore := NameScore(src.Name, targetName)
		compat := ScoreTypeCompatibility(src.Type, src.Enum, kinds, target.Type)

		candidates = append(candidates, Candidate{
			Source:               src,
			Target:               target,
			NameScore:            nameScore,
			TypeCompat:           compat,
			CombinedScore:        calculateCombinedScore(nameScore, compat.Compatibility),
			NormalizedSourceName: NormalizeIdent(src.Name),
			NormalizedTargetName: NormalizeIdent(targetName),
		})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.CombinedScore, a.CombinedScore); c != 0 {
			return c
		}

		return cmp.Compare(a.Source.Name, b.Source.Name)
	})

	return candidates
}

// calculateCombinedScore weighs name similarity at 60% and type
// compatibility at 40%.
func calculateCombinedScore(nameScore float64, typeCompat TypeCompatibility) float64 {
	const (
		nameWeight = 0.6
		typeWeight = 0.4
	)

	var typeScore float64

	switch typeCompat {
	case TypeIdentical:
		typeScore = 1.0
	case TypeAssignable:
		typeScore = 0.9
	case TypeConvertible:
		typeScore = 0.7
	case TypeNeedsTransform:
		typeScore = 0.4
	case TypeIncompatible:
		typeScore = 0.0
	}

	return nameScore*nameWeight + typeScore*typeWeight
}

// Names returns the source property names in ranking order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i := range c {
		names[i] = c[i].Source.Name
	}

	return names
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].CombinedScore-c[1].CombinedScore < threshold
}

// AboveThreshold returns candidates with combined score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// HighConfidence returns the best candidate if it's significantly better than alternatives.
// Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	if len(c) == 0 {
		return nil
	}

	best := &c[0]

	if best.CombinedScore < minScore {
		return nil
	}

	if best.TypeCompat.Compatibility < TypeNeedsTransform {
		return nil
	}

	if len(c) > 1 && c[0].CombinedScore-c[1].CombinedScore < minGap {
		return nil
	}

	return best
}
