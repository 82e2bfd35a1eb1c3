package protojava

import (
	"path"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

const outerClassSuffix = "OuterClass"

// CamelCase converts a proto identifier the way protoc's Java generator does:
// underscores and other separators are dropped and the following letter is
// upper-cased, as is any letter following a digit. When capFirst is false
// the first letter is lower-cased.
func CamelCase(name string, capFirst bool) string {
	var b strings.Builder

	b.Grow(len(name))

	capNext := capFirst

	for i := 0; i < len(name); i++ {
		c := name[i]

		switch {
		case 'a' <= c && c <= 'z':
			if capNext {
				c -= 'a' - 'A'
			}

			b.WriteByte(c)

			capNext = false
		case 'A' <= c && c <= 'Z':
			if i == 0 && !capFirst {
				c += 'a' - 'A'
			}

			b.WriteByte(c)

			capNext = false
		case '0' <= c && c <= '9':
			b.WriteByte(c)

			capNext = true
		default:
			capNext = true
		}
	}

	return b.String()
}

func fileOptions(fd protoreflect.FileDescriptor) *descriptorpb.FileOptions {
	if opts, ok := fd.Options().(*descriptorpb.FileOptions); ok && opts != nil {
		return opts
	}

	return &descriptorpb.FileOptions{}
}

// JavaPackage returns java_package, falling back to the proto package.
func JavaPackage(fd protoreflect.FileDescriptor) string {
	if pkg := fileOptions(fd).GetJavaPackage(); pkg != "" {
		return pkg
	}

	return string(fd.Package())
}

// OuterClassName returns java_outer_classname or the camel-cased file name,
// suffixed with OuterClass when a top-level type already uses that name.
func OuterClassName(fd protoreflect.FileDescriptor) string {
	if name := fileOptions(fd).GetJavaOuterClassname(); name != "" {
		return name
	}

	base := strings.TrimSuffix(path.Base(fd.Path()), ".proto")
	name := CamelCase(base, true)

	if conflictsWithTopLevel(fd, name) {
		name += outerClassSuffix
	}

	return name
}

func conflictsWithTopLevel(fd protoreflect.FileDescriptor, name string) bool {
	n := protoreflect.Name(name)

	if fd.Messages().ByName(n) != nil || fd.Enums().ByName(n) != nil {
		return true
	}

	return fd.Services().ByName(n) != nil
}

// MultipleFiles reports whether top-level types live in their own classes.
func MultipleFiles(fd protoreflect.FileDescriptor) bool {
	return fileOptions(fd).GetJavaMultipleFiles()
}

// JavaName returns the qualified Java name of a message or enum, e.g.
// "com.example.v1.Order.Line" or "com.example.v1.OrdersProto.Order".
func JavaName(d protoreflect.Descriptor) string {
	if d == nil {
		return ""
	}

	if d.IsPlaceholder() {
		return string(d.FullName())
	}

	parent := d.Parent()
	if parent == nil {
		return string(d.Name())
	}

	if fd, ok := parent.(protoreflect.FileDescriptor); ok {
		scope := JavaPackage(fd)
		if !MultipleFiles(fd) {
			scope = join(scope, OuterClassName(fd))
		}

		return join(scope, string(d.Name()))
	}

	return join(JavaName(parent), string(d.Name()))
}

// orBuilderName returns the name of the FooOrBuilder interface, declared in
// the same scope as Foo.
func orBuilderName(md protoreflect.MessageDescriptor) string {
	return JavaName(md) + "OrBuilder"
}

func builderName(md protoreflect.MessageDescriptor) string {
	return JavaName(md) + ".Builder"
}

func join(scope, name string) string {
	if scope == "" {
		return name
	}

	return scope + "." + name
}
