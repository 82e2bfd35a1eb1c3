package protojava

import (
	"os"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jhump/protoreflect/desc/protoparse"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"accessor-naming/internal/descriptor"
)

// ParseProtoFiles parses .proto sources found under importPaths. Imports of
// the well-known types resolve without being present on disk.
func ParseProtoFiles(importPaths []string, names ...string) ([]protoreflect.FileDescriptor, error) {
	return parse(protoparse.Parser{ImportPaths: importPaths}, names...)
}

// ParseProtoSources parses .proto sources held in memory, keyed by path.
func ParseProtoSources(sources map[string]string, names ...string) ([]protoreflect.FileDescriptor, error) {
	return parse(protoparse.Parser{Accessor: protoparse.FileContentsFromMap(sources)}, names...)
}

func parse(p protoparse.Parser, names ...string) ([]protoreflect.FileDescriptor, error) {
	if len(names) == 0 {
		return nil, errors.New("no proto files to parse")
	}

	fds, err := p.ParseFiles(names...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", strings.Join(names, ", "))
	}

	out := make([]protoreflect.FileDescriptor, len(fds))
	for i, fd := range fds {
		out[i] = fd.UnwrapFile()
	}

	return out, nil
}

// LoadDescriptorSet reads a serialized FileDescriptorSet (protoc
// --descriptor_set_out). Missing imports are tolerated: types that cannot be
// resolved are printed as <any> and fail classification of the types that
// use them.
func LoadDescriptorSet(path string) ([]protoreflect.FileDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor set %s", path)
	}

	return ParseDescriptorSet(data)
}

// ParseDescriptorSet decodes a serialized FileDescriptorSet. Files are
// returned sorted by path.
func ParseDescriptorSet(data []byte) ([]protoreflect.FileDescriptor, error) {
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, errors.Wrap(err, "failed to decode descriptor set")
	}

	files, err := protodesc.FileOptions{AllowUnresolvable: true}.NewFiles(&set)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build file descriptors")
	}

	var out []protoreflect.FileDescriptor

	files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		out = append(out, fd)
		return true
	})

	slices.SortFunc(out, func(a, b protoreflect.FileDescriptor) int {
		return strings.Compare(a.Path(), b.Path())
	})

	return out, nil
}

// MarshalDescriptorSet serializes files and their transitive imports.
func MarshalDescriptorSet(files ...protoreflect.FileDescriptor) ([]byte, error) {
	set := &descriptorpb.FileDescriptorSet{}
	for _, fd := range WithImports(files...) {
		set.File = append(set.File, protodesc.ToFileDescriptorProto(fd))
	}

	data, err := proto.Marshal(set)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode descriptor set")
	}

	return data, nil
}

// WithImports returns files plus their transitive imports, dependencies
// first, each file once. Placeholder files are skipped.
func WithImports(files ...protoreflect.FileDescriptor) []protoreflect.FileDescriptor {
	var out []protoreflect.FileDescriptor

	seen := make(map[string]bool)

	var visit func(fd protoreflect.FileDescriptor)
	visit = func(fd protoreflect.FileDescriptor) {
		if fd == nil || fd.IsPlaceholder() || seen[fd.Path()] {
			return
		}

		seen[fd.Path()] = true

		imports := fd.Imports()
		for i := 0; i < imports.Len(); i++ {
			visit(imports.Get(i).FileDescriptor)
		}

		out = append(out, fd)
	}

	for _, fd := range files {
		visit(fd)
	}

	return out
}

// NewGraph returns a graph holding the runtime base types and the Java types
// of files and everything they import.
func NewGraph(files ...protoreflect.FileDescriptor) *descriptor.Graph {
	g := descriptor.NewGraph(BaseTypes()...)
	g.Add(FromFiles(WithImports(files...)...)...)

	return g
}
