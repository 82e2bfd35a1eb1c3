package accessor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"accessor-naming/internal/common"
	"accessor-naming/internal/descriptor"
)

// PropertyName derives the property m belongs to. The boolean is false when
// m is not an accessor of t.
func (e *Engine) PropertyName(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) (string, bool) {
	switch e.Classify(m, t) {
	case descriptor.RoleGetter, descriptor.RoleSetter, descriptor.RolePresenceCheck:
		return e.propertyName(m, t), true
	default:
		return "", false
	}
}

// propertyName strips the structural prefix/suffix of an accessor name.
// It assumes m has already been classified as an accessor.
func (e *Engine) propertyName(m *descriptor.MethodDescriptor, t *descriptor.TypeDescriptor) string {
	name := m.Name

	if e.IsWireFormat(t) {
		switch {
		case e.isMapGetter(m):
			return Decapitalize(name[len(prefixGet) : len(name)-len(suffixMap)])
		case e.isListGetter(m):
			return Decapitalize(name[len(prefixGet) : len(name)-len(suffixList)])
		case e.isAddAll(m):
			return Decapitalize(name[len(prefixAddAll):])
		case e.isPutAll(m):
			return Decapitalize(name[len(prefixPutAll):])
		}
	}

	for _, prefix := range []string{prefixGet, prefixSet, prefixHas, prefixIs} {
		if common.HasUpperAt(name, prefix) {
			return Decapitalize(strings.TrimPrefix(name, prefix))
		}
	}

	// Fluent setter: the method name is the property name.
	return name
}

// Decapitalize lower-cases the first letter following the JavaBeans rule:
// a name starting with two upper-case letters ("URL", "IPAddress") is
// returned unchanged.
func Decapitalize(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)
	if second, _ := utf8.DecodeRuneInString(s[size:]); len(s) > size &&
		unicode.IsUpper(first) && unicode.IsUpper(second) {
		return s
	}

	return string(unicode.ToLower(first)) + s[size:]
}
