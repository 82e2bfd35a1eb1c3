// Package plan pairs the properties of a classified wire-format type with
// the fields of a plain Go struct.
//
// Pairing pipeline:
//  1. Classify the wire type → properties with getters and setters
//  2. Analyze the Go package → struct fields with accessor/json tags
//  3. For each exported target field:
//     - Take the property whose normalized name equals the field's
//     - Otherwise rank the remaining properties via the fuzzy matcher
//     - Auto-accept only on high confidence, otherwise report unmapped
//  4. Emit diagnostics (unmapped fields, unused properties, incompatible types)
//
// Enum types are paired constant by constant on their canonical names.
package plan
