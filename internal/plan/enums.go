package plan

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"accessor-naming/internal/analyze"
	"accessor-naming/internal/diagnostic"
	"accessor-naming/internal/enummap"
	"accessor-naming/internal/match"
)

// PairEnum binds the present constants of a mapped wire enum to the
// constants of a Go enum. A Go constant matches when its value, or its name
// without the type-name prefix in upper snake case, equals the wire
// constant's canonical name. Absent constants are never paired.
func (p *Pairer) PairEnum(wire *enummap.EnumResult, target *analyze.TypeInfo) (*EnumPairing, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if wire == nil || wire.Type == nil {
		diags.AddError(diagnostic.CodeUnresolvedType, "no wire enum to pair", "", "")
		return nil, diags
	}

	typeName := wire.Type.QualifiedName

	if wire.Err != nil {
		diags.AddError(diagnostic.CodeInvalidEnum, wire.Err.Error(), typeName, "")
		return nil, diags
	}

	if target == nil || !target.IsEnum() {
		diags.AddError(diagnostic.CodeIncompatibleType,
			fmt.Sprintf("target %s is not a named type with constants", target), typeName, "")

		return nil, diags
	}

	pairStr := typeName + "->" + target.ID.String()
	pairing := &EnumPairing{Wire: wire, Target: target}

	byKey := make(map[string]int)

	for i, c := range target.Constants {
		for _, key := range constantKeys(target, c) {
			if _, ok := byKey[key]; !ok {
				byKey[key] = i
			}
		}
	}

	used := make([]bool, len(target.Constants))

	for _, wc := range wire.Constants {
		if wc.IsAbsent() {
			continue
		}

		if i, ok := byKey[wc.Canonical]; ok && !used[i] {
			used[i] = true
			pairing.Constants = append(pairing.Constants, ConstantPairing{Wire: wc, Go: target.Constants[i]})

			continue
		}

		pairing.UnmappedWire = append(pairing.UnmappedWire, wc.Canonical)
		diags.AddWarning(diagnostic.CodeUnmappedConstant,
			fmt.Sprintf("wire constant %s (%s) has no Go counterpart", wc.Name, wc.Canonical),
			pairStr, wc.Name, p.suggestConstants(wc.Canonical, target, used)...)
	}

	for i, c := range target.Constants {
		if used[i] {
			continue
		}

		pairing.UnmappedGo = append(pairing.UnmappedGo, c.Name)
		diags.AddInfo(diagnostic.CodeUnmappedConstant,
			fmt.Sprintf("Go constant %s has no wire counterpart", c.Name), pairStr, c.Name)
	}

	return pairing, diags
}

func constantKeys(target *analyze.TypeInfo, c analyze.ConstantInfo) []string {
	keys := []string{c.Value}

	if rest := strings.TrimPrefix(c.Name, target.ID.Name); rest != "" {
		keys = append(keys, enummap.CamelToUpperSnake(rest))
	}

	return keys
}

// suggestConstants ranks the unused Go constants by name similarity.
func (p *Pairer) suggestConstants(canonical string, target *analyze.TypeInfo, used []bool) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for i, c := range target.Constants {
		if used[i] {
			continue
		}

		rest := strings.TrimPrefix(c.Name, target.ID.Name)
		ranked = append(ranked, scored{name: c.Name, score: match.NameScore(canonical, rest)})
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	var out []string

	for _, s := range ranked {
		if len(out) == p.cfg.MaxCandidates {
			break
		}

		out = append(out, s.name)
	}

	return out
}
