package descriptor

//go:generate go tool stringer -type=AccessorRole -trimprefix=Role -output=role_string.go

// AccessorRole is the semantic category assigned to a method.
// Every method receives exactly one role.
type AccessorRole int

const (
	RoleNotAnAccessor AccessorRole = iota
	RoleGetter
	RoleSetter
	RolePresenceCheck
	RoleInternal
)

// IsAccessor reports whether methods with this role surface a property.
func (r AccessorRole) IsAccessor() bool {
	return r == RoleGetter || r == RoleSetter || r == RolePresenceCheck
}
