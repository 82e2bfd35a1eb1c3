package enummap

import (
	"strings"

	"github.com/cockroachdb/errors"

	"accessor-naming/internal/diagnostic"
)

// ErrDuplicateOverride is returned when a prefix is configured twice.
var ErrDuplicateOverride = errors.New("duplicate enum postfix override")

// Override replaces the absent postfix for every enum whose qualified name
// starts with Prefix.
type Override struct {
	Prefix  string
	Postfix string
}

// OverrideTable holds overrides in declaration order.
type OverrideTable []Override

// ParseOverrides parses "prefix1=POSTFIX1,prefix2=POSTFIX2". Blank entries and
// entries without '=' are ignored; both sides are trimmed.
func ParseOverrides(s string) (OverrideTable, error) {
	var table OverrideTable

	seen := make(map[string]bool)

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" || !strings.Contains(entry, "=") {
			continue
		}

		prefix, postfix, _ := strings.Cut(entry, "=")
		prefix = strings.TrimSpace(prefix)
		postfix = strings.TrimSpace(postfix)

		if postfix == "" {
			return nil, errors.WithHint(
				errors.Newf("enum postfix override %q has an empty postfix", entry),
				"use the form com.example.Type=POSTFIX",
			)
		}

		if seen[prefix] {
			return nil, errors.Wrapf(ErrDuplicateOverride, "prefix %q", prefix)
		}

		seen[prefix] = true
		table = append(table, Override{Prefix: prefix, Postfix: postfix})
	}

	return table, nil
}

// Lookup returns the postfix of the first declared override whose prefix
// starts qualifiedName. Overlapping prefixes resolve by declaration order.
func (t OverrideTable) Lookup(qualifiedName string) (string, bool) {
	for _, o := range t {
		if strings.HasPrefix(qualifiedName, o.Prefix) {
			return o.Postfix, true
		}
	}

	return "", false
}

// Overlaps returns pairs of prefixes where one starts the other, in
// declaration order.
func (t OverrideTable) Overlaps() [][2]string {
	var out [][2]string

	for i := range t {
		for j := i + 1; j < len(t); j++ {
			a, b := t[i].Prefix, t[j].Prefix
			if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
				out = append(out, [2]string{a, b})
			}
		}
	}

	return out
}

// Diagnostics reports overlapping prefixes as warnings.
func (t OverrideTable) Diagnostics() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for _, pair := range t.Overlaps() {
		d.AddWarning(diagnostic.CodeOverlappingPrefix,
			"override prefixes "+pair[0]+" and "+pair[1]+" overlap; the first declared one wins",
			"", pair[1])
	}

	return d
}

// String renders the table back to its configuration form.
func (t OverrideTable) String() string {
	parts := make([]string, len(t))
	for i, o := range t {
		parts[i] = o.Prefix + "=" + o.Postfix
	}

	return strings.Join(parts, ",")
}
