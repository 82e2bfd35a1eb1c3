package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"accessor-naming/internal/common"
)

// PropertyTag names the struct tag that pins a field to a wire property,
// e.g. `accessor:"orderId"`.
const PropertyTag = "accessor"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "accessor-naming/dto"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindMap               // map type
	TypeKindAlias             // named type wrapping another (e.g. type Status string)
	TypeKindExternal          // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type.
type TypeInfo struct {
	ID         TypeID         // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind       // Kind of type
	Underlying *TypeInfo      // For named types, the underlying type
	ElemType   *TypeInfo      // For pointers, slices and maps, the element type
	KeyType    *TypeInfo      // For maps, the key type
	Fields     []FieldInfo    // For structs, the exported fields
	Constants  []ConstantInfo // For named basic types, the declared constants
	GoType     types.Type     // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsEnum reports whether t is a named basic type with declared constants.
func (t *TypeInfo) IsEnum() bool {
	return t.Kind == TypeKindAlias && len(t.Constants) > 0
}

// Deref returns the element of a pointer type, or t itself.
func (t *TypeInfo) Deref() *TypeInfo {
	if t != nil && t.Kind == TypeKindPointer && t.ElemType != nil {
		return t.ElemType
	}

	return t
}

// Field returns the field with the given Go name.
func (t *TypeInfo) Field(name string) *FieldInfo {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}

	return nil
}

// String renders the type the way it would appear in Go source,
// qualified by package name only.
func (t *TypeInfo) String() string {
	if t == nil {
		return "<nil>"
	}

	if t.IsNamed() {
		pkg := t.ID.PkgPath[strings.LastIndexByte(t.ID.PkgPath, '/')+1:]
		if pkg == "" {
			return t.ID.Name
		}

		return pkg + "." + t.ID.Name
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + t.ElemType.String()
	case TypeKindSlice:
		return "[]" + t.ElemType.String()
	case TypeKindMap:
		return "map[" + t.KeyType.String() + "]" + t.ElemType.String()
	case TypeKindBasic:
		return t.GoType.String()
	case TypeKindStruct:
		return "struct{...}"
	default:
		return common.UnknownStr
	}
}

// ConstantInfo is a package-level constant of a named type.
type ConstantInfo struct {
	Name  string // Go identifier, e.g. "OrderStatusPlaced"
	Value string // constant value; strings are unquoted
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// PropertyName returns the accessor tag value if present, otherwise the
// JSON name.
func (f *FieldInfo) PropertyName() string {
	if name, _, _ := strings.Cut(f.Tag.Get(PropertyTag), ","); name != "" && name != "-" {
		return name
	}

	return f.JSONName()
}

// Ignored reports whether the field is tagged accessor:"-".
func (f *FieldInfo) Ignored() bool {
	return f.Tag.Get(PropertyTag) == "-"
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *FieldInfo) JSONName() string {
	if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}

	return f.Name
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	return f.Tag.Get(key) != ""
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package, sorted
}
