package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
types:
  - name: com.example.User
    interfaces: [com.example.UserOrBuilder]
    superclass: com.google.protobuf.GeneratedMessageV3
    methods:
      - name: getName
        returns: java.lang.String
      - name: getNameBytes
        returns: com.google.protobuf.ByteString
      - name: getDefaultInstance
        returns: com.example.User
        static: true
      - name: getLegacy
        returns: int
        deprecated: true
      - name: internalGet
        public: false
        returns: int
  - name: com.example.Status
    kind: enum
    constants: [STATUS_UNSPECIFIED, STATUS_ACTIVE, UNRECOGNIZED]
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	user := g.Lookup("com.example.User")
	require.NotNil(t, user)
	assert.Equal(t, KindClass, user.Kind)
	assert.Equal(t, []TypeRef{"com.example.UserOrBuilder"}, user.Interfaces)
	assert.Equal(t, TypeRef("com.google.protobuf.GeneratedMessageV3"), user.Superclass)
	require.Len(t, user.Methods, 5)

	assert.True(t, user.Methods[0].IsPublic)
	assert.Empty(t, user.Methods[0].Params)
	assert.True(t, user.Methods[2].IsStatic)
	assert.True(t, user.Methods[3].IsDeprecated)
	assert.False(t, user.Methods[4].IsPublic)

	status := g.Lookup("com.example.Status")
	require.NotNil(t, status)
	assert.Equal(t, KindEnum, status.Kind)
	c, ok := status.Constant("UNRECOGNIZED")
	require.True(t, ok)
	assert.Equal(t, 2, c.Ordinal)
}

func TestParse_DefaultsVoidReturn(t *testing.T) {
	g, err := Parse([]byte("types:\n  - name: a.B\n    methods:\n      - name: clear\n"))
	require.NoError(t, err)

	assert.Equal(t, TypeRef("void"), g.Lookup("a.B").Methods[0].Returns)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "types: [\n"},
		{"missing type name", "types:\n  - kind: class\n"},
		{"unknown kind", "types:\n  - name: a.B\n    kind: record\n"},
		{"missing method name", "types:\n  - name: a.B\n    methods:\n      - returns: int\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
