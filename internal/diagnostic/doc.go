// Package diagnostic provides structured warnings, errors, and
// informational notes produced while classifying types and pairing
// properties.
//
// Key capabilities:
//   - Per-type failures that do not abort a batch
//   - Ambiguous getter reports (two getters resolving to one property)
//   - Overlapping enum postfix override prefixes
//   - Unmapped target property warnings with suggestions
package diagnostic
