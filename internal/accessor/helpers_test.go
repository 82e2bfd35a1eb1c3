package accessor

import (
	"accessor-naming/internal/descriptor"
)

const (
	tString     = "java.lang.String"
	tByteString = "com.google.protobuf.ByteString"
	tFieldDesc  = "com.google.protobuf.Descriptors.FieldDescriptor"
)

func method(name string, returns descriptor.TypeRef, params ...descriptor.TypeRef) descriptor.MethodDescriptor {
	return descriptor.MethodDescriptor{Name: name, Params: params, Returns: returns, IsPublic: true}
}

func deprecated(m descriptor.MethodDescriptor) descriptor.MethodDescriptor {
	m.IsDeprecated = true
	return m
}

func static(m descriptor.MethodDescriptor) descriptor.MethodDescriptor {
	m.IsStatic = true
	return m
}

// baseTypes returns a trimmed-down copy of the protobuf runtime contracts.
func baseTypes() []*descriptor.TypeDescriptor {
	return []*descriptor.TypeDescriptor{
		{
			QualifiedName: "java.lang.Object",
			Methods: []descriptor.MethodDescriptor{
				method("getClass", "java.lang.Class<?>"),
				method("toString", tString),
			},
		},
		{
			QualifiedName: "com.google.protobuf.MessageLiteOrBuilder",
			Kind:          descriptor.KindInterface,
			Methods: []descriptor.MethodDescriptor{
				method("getDefaultInstanceForType", "com.google.protobuf.MessageLite"),
				method("isInitialized", "boolean"),
			},
		},
		{
			QualifiedName: "com.google.protobuf.MessageLite",
			Kind:          descriptor.KindInterface,
			Interfaces:    []descriptor.TypeRef{"com.google.protobuf.MessageLiteOrBuilder"},
			Methods: []descriptor.MethodDescriptor{
				method("getSerializedSize", "int"),
				method("toByteString", tByteString),
				method("toBuilder", "com.google.protobuf.MessageLite.Builder"),
				method("getParserForType", "com.google.protobuf.Parser<? extends com.google.protobuf.MessageLite>"),
			},
		},
		{
			QualifiedName: "com.google.protobuf.MessageOrBuilder",
			Kind:          descriptor.KindInterface,
			Interfaces:    []descriptor.TypeRef{"com.google.protobuf.MessageLiteOrBuilder"},
			Methods: []descriptor.MethodDescriptor{
				method("getDescriptorForType", "com.google.protobuf.Descriptors.Descriptor"),
				method("getAllFields", "java.util.Map<"+tFieldDesc+",java.lang.Object>"),
				method("getUnknownFields", "com.google.protobuf.UnknownFieldSet"),
				method("hasField", "boolean", tFieldDesc),
			},
		},
		{
			QualifiedName: "com.google.protobuf.Message",
			Kind:          descriptor.KindInterface,
			Interfaces:    []descriptor.TypeRef{"com.google.protobuf.MessageLite", "com.google.protobuf.MessageOrBuilder"},
			Methods: []descriptor.MethodDescriptor{
				method("equals", "boolean", "java.lang.Object"),
				method("hashCode", "int"),
			},
		},
		{
			QualifiedName: "com.google.protobuf.MessageLite.Builder",
			Kind:          descriptor.KindInterface,
			Interfaces:    []descriptor.TypeRef{"com.google.protobuf.MessageLiteOrBuilder"},
			Methods: []descriptor.MethodDescriptor{
				method("build", "com.google.protobuf.MessageLite"),
				method("clear", "com.google.protobuf.MessageLite.Builder"),
			},
		},
		{
			QualifiedName: "com.google.protobuf.Message.Builder",
			Kind:          descriptor.KindInterface,
			Interfaces:    []descriptor.TypeRef{"com.google.protobuf.MessageLite.Builder", "com.google.protobuf.MessageOrBuilder"},
			Methods: []descriptor.MethodDescriptor{
				method("mergeFrom", "com.google.protobuf.Message.Builder", "com.google.protobuf.Message"),
				method("setField", "com.google.protobuf.Message.Builder", tFieldDesc, "java.lang.Object"),
			},
		},
		{
			QualifiedName: "com.google.protobuf.GeneratedMessageV3",
			Superclass:    "java.lang.Object",
			Interfaces:    []descriptor.TypeRef{"com.google.protobuf.Message"},
		},
	}
}

// message builds a generated message class with the given declared methods.
func message(name string, methods ...descriptor.MethodDescriptor) *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{
		QualifiedName: name,
		Superclass:    "com.google.protobuf.GeneratedMessageV3",
		Methods:       methods,
	}
}

// builder builds a generated builder class implementing Message.Builder.
func builder(name string, methods ...descriptor.MethodDescriptor) *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{
		QualifiedName: name,
		Interfaces:    []descriptor.TypeRef{"com.google.protobuf.Message.Builder"},
		Methods:       methods,
	}
}

func newTestEngine(types ...*descriptor.TypeDescriptor) *Engine {
	g := descriptor.NewGraph(baseTypes()...)
	g.Add(types...)

	return NewEngine(g)
}

func find(t *descriptor.TypeDescriptor, name string, params ...descriptor.TypeRef) *descriptor.MethodDescriptor {
	sig := descriptor.NewSignature(name, params...)
	for i := range t.Methods {
		if t.Methods[i].Signature() == sig {
			return &t.Methods[i]
		}
	}

	panic("no method " + sig.String() + " on " + t.QualifiedName)
}
