package descriptor

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// File is the YAML form of a hand-written descriptor graph.
type File struct {
	Types []TypeEntry `yaml:"types"`
}

// TypeEntry is the YAML form of a TypeDescriptor.
type TypeEntry struct {
	Name       string        `yaml:"name"`
	Kind       string        `yaml:"kind,omitempty"`
	Interfaces []string      `yaml:"interfaces,omitempty"`
	Superclass string        `yaml:"superclass,omitempty"`
	Methods    []MethodEntry `yaml:"methods,omitempty"`
	// Constants lists enum constant names in ordinal order.
	Constants []string `yaml:"constants,omitempty"`
}

// MethodEntry is the YAML form of a MethodDescriptor.
type MethodEntry struct {
	Name       string   `yaml:"name"`
	Params     []string `yaml:"params,omitempty"`
	Returns    string   `yaml:"returns,omitempty"`
	Static     bool     `yaml:"static,omitempty"`
	Public     *bool    `yaml:"public,omitempty"`
	Deprecated bool     `yaml:"deprecated,omitempty"`
}

// LoadFile loads and parses a YAML descriptor file from the given path.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a Graph.
func Parse(data []byte) (*Graph, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse descriptor YAML")
	}

	types := make([]*TypeDescriptor, 0, len(f.Types))

	for i := range f.Types {
		t, err := f.Types[i].toDescriptor()
		if err != nil {
			return nil, errors.Wrapf(err, "types[%d]", i)
		}

		types = append(types, t)
	}

	return NewGraph(types...), nil
}

func (e *TypeEntry) toDescriptor() (*TypeDescriptor, error) {
	if e.Name == "" {
		return nil, errors.New("type name is required")
	}

	kind, err := parseKind(e.Kind)
	if err != nil {
		return nil, errors.Wrapf(err, "type %s", e.Name)
	}

	t := &TypeDescriptor{
		QualifiedName: e.Name,
		Kind:          kind,
		Superclass:    TypeRef(e.Superclass),
	}

	for _, i := range e.Interfaces {
		t.Interfaces = append(t.Interfaces, TypeRef(i))
	}

	for _, m := range e.Methods {
		if m.Name == "" {
			return nil, errors.Newf("type %s: method name is required", e.Name)
		}

		md := MethodDescriptor{
			Name:         m.Name,
			Returns:      TypeRef(m.Returns),
			IsStatic:     m.Static,
			IsPublic:     m.Public == nil || *m.Public,
			IsDeprecated: m.Deprecated,
		}
		if md.Returns == "" {
			md.Returns = "void"
		}

		for _, p := range m.Params {
			md.Params = append(md.Params, TypeRef(p))
		}

		t.Methods = append(t.Methods, md)
	}

	for i, c := range e.Constants {
		t.Constants = append(t.Constants, EnumConstantDescriptor{Name: c, Ordinal: i})
	}

	return t, nil
}

func parseKind(s string) (TypeKind, error) {
	switch s {
	case "", "class":
		return KindClass, nil
	case "interface":
		return KindInterface, nil
	case "enum":
		return KindEnum, nil
	default:
		return KindClass, errors.Newf("unknown kind %q", s)
	}
}
