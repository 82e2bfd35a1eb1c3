// Package descriptor defines the introspection contract of the engine.
//
// Types and methods are supplied as immutable value snapshots built once per
// generator run by an adapter (protobuf descriptors, go/types, YAML
// fixtures). Nothing in this package queries a live type system.
//
// Key types:
//   - TypeRef: textual type name as printed by the host introspector
//   - MethodDescriptor: name, parameters, return type, modifiers
//   - TypeDescriptor: qualified name, supertypes, methods, enum constants
//   - AccessorRole: the closed set of roles a method can be assigned
//   - Graph: registry resolving TypeRefs to TypeDescriptors
package descriptor
