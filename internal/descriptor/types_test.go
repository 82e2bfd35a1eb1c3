package descriptor

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRef_Raw(t *testing.T) {
	tests := []struct {
		ref      TypeRef
		expected string
	}{
		{"java.lang.String", "java.lang.String"},
		{"java.util.List<java.lang.String>", "java.util.List"},
		{"java.util.Map<java.lang.String, java.lang.Integer>", "java.util.Map"},
		{" int ", "int"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Raw())
		})
	}
}

func TestTypeRef_IsResolved(t *testing.T) {
	assert.True(t, TypeRef("int").IsResolved())
	assert.False(t, TypeRef("").IsResolved())
	assert.False(t, TypeRef("<any>").IsResolved())
	assert.False(t, TypeRef("java.util.List<<any>>").IsResolved())
}

func TestSignature_IdentityIgnoresAttributes(t *testing.T) {
	a := MethodDescriptor{Name: "getFoo", Returns: "int"}
	b := MethodDescriptor{Name: "getFoo", Returns: "long", IsDeprecated: true}
	c := MethodDescriptor{Name: "getFoo", Params: []TypeRef{"int"}, Returns: "int"}

	assert.Equal(t, a.Signature(), b.Signature())
	assert.NotEqual(t, a.Signature(), c.Signature())
	assert.Equal(t, "getFoo(int)", c.String())
}

func TestSignature_Compare(t *testing.T) {
	assert.Negative(t, NewSignature("a").Compare(NewSignature("b")))
	assert.Negative(t, NewSignature("a").Compare(NewSignature("a", "int")))
	assert.Zero(t, NewSignature("a", "int").Compare(NewSignature("a", "int")))
}

func TestTypeDescriptor_SimpleName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"com.example.Status", "Status"},
		{"com.example.Outer.StatusCode", "StatusCode"},
		{"Status", "Status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := &TypeDescriptor{QualifiedName: tt.name}
			assert.Equal(t, tt.expected, td.SimpleName())
		})
	}
}

func TestTypeDescriptor_Constants(t *testing.T) {
	td := &TypeDescriptor{
		Kind: KindEnum,
		Constants: []EnumConstantDescriptor{
			{Name: "STATUS_UNSPECIFIED", Ordinal: 0},
			{Name: "STATUS_ACTIVE", Ordinal: 1},
		},
	}

	c, ok := td.ConstantAt(0)
	require.True(t, ok)
	assert.Equal(t, "STATUS_UNSPECIFIED", c.Name)

	_, ok = td.Constant("UNRECOGNIZED")
	assert.False(t, ok)
}

func TestJavaTypeKinds(t *testing.T) {
	k := JavaTypeKinds()

	assert.True(t, k.IsList("java.util.List<java.lang.Integer>"))
	assert.True(t, k.IsList("com.google.protobuf.ProtocolStringList"))
	assert.False(t, k.IsList("java.util.Map<K,V>"))
	assert.True(t, k.IsMap("java.util.Map<java.lang.String,java.lang.String>"))
	assert.True(t, k.IsIterable("java.lang.Iterable<? extends java.lang.String>"))
	assert.True(t, k.IsString("java.lang.String"))
	assert.False(t, k.IsString("java.lang.StringBuilder"))
	assert.True(t, k.IsBoolean("boolean"))
	assert.True(t, k.IsVoid("void"))
	assert.True(t, k.IsVoid(""))
}

func TestGraph_Resolve(t *testing.T) {
	foo := &TypeDescriptor{QualifiedName: "com.example.Foo"}
	g := NewGraph(foo, nil)

	got, err := g.Resolve("com.example.Foo")
	require.NoError(t, err)
	assert.Same(t, foo, got)

	_, err = g.Resolve("com.example.Bar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownType))

	_, err = g.Resolve("<any>")
	assert.True(t, errors.Is(err, ErrUnknownType))

	assert.Equal(t, 1, g.Len())
}

func TestGraph_TypesSorted(t *testing.T) {
	g := NewGraph(
		&TypeDescriptor{QualifiedName: "b.B"},
		&TypeDescriptor{QualifiedName: "a.A"},
		&TypeDescriptor{QualifiedName: "c.C", Kind: KindEnum},
	)

	types := g.Types()
	require.Len(t, types, 3)
	assert.Equal(t, "a.A", types[0].QualifiedName)
	assert.Equal(t, "c.C", types[2].QualifiedName)

	enums := g.Filter(func(td *TypeDescriptor) bool { return td.Kind == KindEnum })
	require.Len(t, enums, 1)
}

func TestAccessorRole_String(t *testing.T) {
	assert.Equal(t, "Getter", RoleGetter.String())
	assert.Equal(t, "PresenceCheck", RolePresenceCheck.String())
	assert.Equal(t, "NotAnAccessor", RoleNotAnAccessor.String())
	assert.Equal(t, "AccessorRole(9)", AccessorRole(9).String())
	assert.True(t, RoleSetter.IsAccessor())
	assert.False(t, RoleInternal.IsAccessor())
}
