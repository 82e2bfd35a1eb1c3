package accessor

import (
	"strings"

	"accessor-naming/internal/common"
	"accessor-naming/internal/descriptor"
)

const (
	prefixGet    = "get"
	prefixIs     = "is"
	prefixSet    = "set"
	prefixHas    = "has"
	prefixAdd    = "add"
	prefixAddAll = "addAll"
	prefixPutAll = "putAll"
	suffixMap    = "Map"
	suffixList   = "List"
)

// Classify assigns exactly one role to m, a method declared by t.
// The result depends only on t's full method set.
func (e *Engine) Classify(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) descriptor.AccessorRole {
	if !m.IsPublic || m.IsStatic {
		return descriptor.RoleNotAnAccessor
	}

	wire := e.IsWireFormat(t)
	if wire && e.internal.Contains(m) {
		return descriptor.RoleInternal
	}

	switch {
	case e.IsGetter(m, t):
		return descriptor.RoleGetter
	case e.IsSetter(m, t):
		return descriptor.RoleSetter
	case e.IsPresenceCheck(m, t):
		return descriptor.RolePresenceCheck
	case wire && e.isCompanion(m, t):
		return descriptor.RoleInternal
	default:
		return descriptor.RoleNotAnAccessor
	}
}

// IsGetter reports whether m reads a property of t.
func (e *Engine) IsGetter(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	if !m.IsPublic || m.IsStatic || len(m.Params) != 0 {
		return false
	}

	if !e.IsWireFormat(t) {
		return e.isBeanGetter(m)
	}

	if e.internal.Contains(m) {
		return false
	}

	if !common.HasUpperAt(m.Name, prefixGet) || m.IsDeprecated {
		return false
	}

	return !e.isSpecialGetter(m, t)
}

// IsSetter reports whether m replaces a property of t. On wire-format types
// that is setFoo(v), addAllFoo(iterable) or putAllFoo(map); singular
// addFoo/putFoo are never setters.
func (e *Engine) IsSetter(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	if !m.IsPublic || m.IsStatic || len(m.Params) != 1 {
		return false
	}

	if !e.IsWireFormat(t) {
		return e.isBeanSetter(m, t)
	}

	if e.internal.Contains(m) {
		return false
	}

	switch {
	case e.isAddAll(m), e.isPutAll(m), common.HasUpperAt(m.Name, prefixSet):
		return !e.isSpecialSetter(m, t)
	default:
		return false
	}
}

// IsPresenceCheck reports whether m is a hasFoo() check.
func (e *Engine) IsPresenceCheck(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	if !m.IsPublic || m.IsStatic || len(m.Params) != 0 {
		return false
	}

	if e.IsWireFormat(t) && e.internal.Contains(m) {
		return false
	}

	return common.HasUpperAt(m.Name, prefixHas) && e.kinds.IsBoolean(m.Returns)
}

// IsAdder reports whether m appends a single element. Wire-format types
// never expose adders: addAll/putAll are their only collection entry points.
func (e *Engine) IsAdder(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	if e.IsWireFormat(t) {
		return false
	}

	return m.IsPublic && !m.IsStatic && len(m.Params) == 1 &&
		common.HasUpperAt(m.Name, prefixAdd) && !e.kinds.IsIterable(m.Params[0])
}

func (e *Engine) isSpecialGetter(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	return matchAny(e.getterRules, e.siblings(t), m)
}

func (e *Engine) isSpecialSetter(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	return matchAny(e.setterRules, e.siblings(t), m)
}

// isCompanion reports whether a get/set-shaped method of a wire-format type
// only exists alongside a real accessor.
func (e *Engine) isCompanion(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	s := e.siblings(t)

	switch {
	case len(m.Params) == 0 && common.HasUpperAt(m.Name, prefixGet):
		if m.IsDeprecated && e.kinds.IsMap(m.Returns) {
			// getFoo() is the deprecated twin of getFooMap().
			if g := s.Getter(m.Name + suffixMap); g != nil && !g.IsDeprecated {
				return true
			}
		}

		return matchAny(e.getterRules, s, m)
	case len(m.Params) == 1:
		return matchAny(e.setterRules, s, m)
	default:
		return false
	}
}

func (e *Engine) siblings(t *descriptor.TypeDescriptor) Siblings {
	return Siblings{Type: t, Kinds: e.kinds}
}

func (e *Engine) isAddAll(m *descriptor.MethodDescriptor) bool {
	return len(m.Params) == 1 && common.HasUpperAt(m.Name, prefixAddAll) && e.kinds.IsIterable(m.Params[0])
}

func (e *Engine) isPutAll(m *descriptor.MethodDescriptor) bool {
	return len(m.Params) == 1 && common.HasUpperAt(m.Name, prefixPutAll) && e.kinds.IsMap(m.Params[0])
}

// isListGetter matches getFooList() returning a list-like type.
func (e *Engine) isListGetter(m *descriptor.MethodDescriptor) bool {
	return hasStem(m.Name, prefixGet, suffixList) && e.kinds.IsList(m.Returns)
}

// isMapGetter matches a non-deprecated getFooMap() returning a map-like type.
func (e *Engine) isMapGetter(m *descriptor.MethodDescriptor) bool {
	return !m.IsDeprecated && hasStem(m.Name, prefixGet, suffixMap) && e.kinds.IsMap(m.Returns)
}

func (e *Engine) isBeanGetter(m *descriptor.MethodDescriptor) bool {
	if common.HasUpperAt(m.Name, prefixGet) {
		return !e.kinds.IsVoid(m.Returns)
	}

	return common.HasUpperAt(m.Name, prefixIs) && e.kinds.IsBoolean(m.Returns)
}

func (e *Engine) isBeanSetter(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	if common.HasUpperAt(m.Name, prefixSet) {
		return true
	}

	return e.isFluentSetter(m, t)
}

// isFluentSetter matches foo(v) returning the declaring type.
func (e *Engine) isFluentSetter(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) bool {
	return len(m.Params) == 1 &&
		m.Returns.Raw() == descriptor.TypeRef(t.QualifiedName).Raw() &&
		!common.HasUpperAt(m.Name, prefixAdd)
}

func matchAny(rules []SpecialRule, s Siblings, m *descriptor.MethodDescriptor) bool {
	for _, r := range rules {
		if r.Match(s, m) {
			return true
		}
	}

	return false
}

// hasStem reports whether name is prefix + non-empty stem + suffix with the
// stem starting upper-case.
func hasStem(name, prefix, suffix string) bool {
	stem, ok := strings.CutSuffix(name, suffix)
	return ok && common.HasUpperAt(stem, prefix)
}
