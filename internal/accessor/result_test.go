package accessor

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/diagnostic"
)

func TestClassifyType_Unresolved(t *testing.T) {
	tests := []struct {
		name string
		m    descriptor.MethodDescriptor
	}{
		{"return type", method("getOwner", "<any>")},
		{"generic argument", method("getOwnersList", "java.util.List<<any>>")},
		{"parameter", method("setOwner", "void", "<any>")},
		{"missing return", descriptor.MethodDescriptor{Name: "getOwner", IsPublic: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := message("com.example.Broken", method("getName", tString), tt.m)
			e := newTestEngine(msg)

			_, err := e.ClassifyType(msg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnresolvedType))
			assert.Contains(t, err.Error(), "com.example.Broken")
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}

	_, err := newTestEngine().ClassifyType(nil)
	assert.Error(t, err)
}

func TestClassifyType_AmbiguousMapGetters(t *testing.T) {
	const mapType = "java.util.Map<java.lang.String,java.lang.String>"

	msg := message("com.example.Handwritten",
		method("getLabels", mapType),
		method("getLabelsMap", mapType),
	)
	e := newTestEngine(msg)

	result, err := e.ClassifyType(msg)
	require.NoError(t, err)

	getters := result.ByRole(descriptor.RoleGetter)
	require.Len(t, getters, 2)
	assert.Equal(t, "labels", getters[0].Property)
	assert.Equal(t, "labels", getters[1].Property)

	warnings := result.Diagnostics.WithCode(diagnostic.CodeAmbiguousGetter)
	require.Len(t, warnings, 1)
	assert.Equal(t, "labels", warnings[0].Member)
}

func TestClassifyType_SortedAndLookup(t *testing.T) {
	msg := message("com.example.User",
		method("getName", tString),
		method("getAge", "int"),
		method("getDescriptorForType", "com.google.protobuf.Descriptors.Descriptor"),
	)
	e := NewEngine(descriptor.NewGraph(append(baseTypes(), msg)...), WithLogger(zaptest.NewLogger(t)))

	result, err := e.ClassifyType(msg)
	require.NoError(t, err)
	assert.True(t, result.WireFormat)

	require.Len(t, result.Methods, 3)
	assert.Equal(t, "getAge", result.Methods[0].Method.Name)
	assert.Equal(t, "getDescriptorForType", result.Methods[1].Method.Name)
	assert.Equal(t, "getName", result.Methods[2].Method.Name)

	mr, ok := result.Lookup(descriptor.NewSignature("getDescriptorForType"))
	require.True(t, ok)
	assert.Equal(t, descriptor.RoleInternal, mr.Role)
	assert.Empty(t, mr.Property)

	_, ok = result.Lookup(descriptor.NewSignature("getMissing"))
	assert.False(t, ok)
}

func TestClassifyAll(t *testing.T) {
	good := message("com.example.Good", method("getName", tString))
	bad := message("com.example.Bad", method("getOwner", "<any>"))
	plain := &descriptor.TypeDescriptor{
		QualifiedName: "com.example.GoodDTO",
		Methods:       []descriptor.MethodDescriptor{method("getName", tString), method("setName", "void", tString)},
	}

	g := descriptor.NewGraph(baseTypes()...)
	g.Add(good, bad, plain)
	e := NewEngine(g, WithConcurrency(2), WithLogger(zaptest.NewLogger(t)))

	results, err := e.ClassifyAll(context.Background(), []*descriptor.TypeDescriptor{good, bad, plain})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Same(t, good, results[0].Type)
	assert.NoError(t, results[0].Err)
	assert.True(t, results[0].WireFormat)

	assert.Same(t, bad, results[1].Type)
	require.Error(t, results[1].Err)
	assert.True(t, errors.Is(results[1].Err, ErrUnresolvedType))
	assert.True(t, results[1].Diagnostics.HasErrors())

	assert.NoError(t, results[2].Err)
	assert.False(t, results[2].WireFormat)
	assert.Len(t, results[2].Properties(), 1)
}

func TestClassifyAll_Cancelled(t *testing.T) {
	msg := message("com.example.Good", method("getName", tString))
	e := newTestEngine(msg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ClassifyAll(ctx, []*descriptor.TypeDescriptor{msg})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClassifyAll_Deterministic(t *testing.T) {
	types := []*descriptor.TypeDescriptor{everythingMessage(), message("com.example.Good", method("getName", tString))}

	first, err := newTestEngine(types...).ClassifyAll(context.Background(), types)
	require.NoError(t, err)

	second, err := newTestEngine(types...).ClassifyAll(context.Background(), types)
	require.NoError(t, err)

	for i := range first {
		require.Len(t, second[i].Methods, len(first[i].Methods))

		for j := range first[i].Methods {
			assert.Equal(t, first[i].Methods[j].Role, second[i].Methods[j].Role)
			assert.Equal(t, first[i].Methods[j].Property, second[i].Methods[j].Property)
		}
	}
}
