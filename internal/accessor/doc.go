// Package accessor classifies the methods of wire-format types into accessor
// roles and resolves the property each accessor belongs to.
//
// A protoc-generated message does not follow a plain getter/setter
// convention: every logical field is exposed through several synthetic
// methods (getFooList, getFooCount, getFooOrBuilder, getFooBytes,
// addAllFoo, putAllFoo, ...). Attributing a method to its field requires
// looking at its siblings, which is what the rule tables in rules.go encode.
//
// Types that are not wire-format fall back to JavaBeans conventions.
//
// Key types:
//   - Engine: owns the internal method set and the wire-format cache
//   - MethodSet: signatures inherited from the protobuf base contracts
//   - SpecialRule: one (suffix, validator) row of a companion table
//   - TypeResult: classification of every method of one type
package accessor
