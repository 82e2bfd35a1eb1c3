// Package analyze loads plain Go target types.
//
// It uses golang.org/x/tools/go/packages with go/types to describe the
// structs a wire-format type is paired with, and the named string or
// integer types (with their declared constants) that wire enums map to.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind, fields and constants of one type
//   - FieldInfo: field name, type, tags and embedding
package analyze
