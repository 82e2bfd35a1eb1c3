package protojava

import (
	"sync"

	"accessor-naming/internal/descriptor"
)

// Runtime contract names.
const (
	pbPrefix = "com.google.protobuf."

	MessageLiteOrBuilder      = pbPrefix + "MessageLiteOrBuilder"
	MessageLite               = pbPrefix + "MessageLite"
	MessageLiteBuilder        = pbPrefix + "MessageLite.Builder"
	MessageOrBuilder          = pbPrefix + "MessageOrBuilder"
	Message                   = pbPrefix + "Message"
	MessageBuilder            = pbPrefix + "Message.Builder"
	GeneratedMessageV3        = pbPrefix + "GeneratedMessageV3"
	GeneratedMessageV3Builder = pbPrefix + "GeneratedMessageV3.Builder"
	ProtocolMessageEnum       = pbPrefix + "ProtocolMessageEnum"
	EnumLite                  = pbPrefix + "Internal.EnumLite"

	javaObject = "java.lang.Object"
)

// Java type names used in synthesized signatures.
const (
	tVoid       = "void"
	tBoolean    = "boolean"
	tInt        = "int"
	tLong       = "long"
	tFloat      = "float"
	tDouble     = "double"
	tString     = "java.lang.String"
	tByteString = pbPrefix + "ByteString"
	tStringList = pbPrefix + "ProtocolStringList"
	tList       = "java.util.List"
	tMap        = "java.util.Map"
	tIterable   = "java.lang.Iterable"

	tDescriptor      = pbPrefix + "Descriptors.Descriptor"
	tFieldDescriptor = pbPrefix + "Descriptors.FieldDescriptor"
	tOneofDescriptor = pbPrefix + "Descriptors.OneofDescriptor"
	tEnumDescriptor  = pbPrefix + "Descriptors.EnumDescriptor"
	tEnumValueDesc   = pbPrefix + "Descriptors.EnumValueDescriptor"
	tUnknownFields   = pbPrefix + "UnknownFieldSet"
	tCodedInput      = pbPrefix + "CodedInputStream"
	tCodedOutput     = pbPrefix + "CodedOutputStream"
	tExtensionReg    = pbPrefix + "ExtensionRegistryLite"
	tInputStream     = "java.io.InputStream"
	tOutputStream    = "java.io.OutputStream"
)

func pub(name string, returns descriptor.TypeRef, params ...descriptor.TypeRef) descriptor.MethodDescriptor {
	return descriptor.MethodDescriptor{Name: name, Params: params, Returns: returns, IsPublic: true}
}

func static(m descriptor.MethodDescriptor) descriptor.MethodDescriptor {
	m.IsStatic = true
	return m
}

func deprecated(m descriptor.MethodDescriptor) descriptor.MethodDescriptor {
	m.IsDeprecated = true
	return m
}

func iface(name string, methods []descriptor.MethodDescriptor, extends ...descriptor.TypeRef) *descriptor.TypeDescriptor {
	return &descriptor.TypeDescriptor{
		QualifiedName: name,
		Kind:          descriptor.KindInterface,
		Interfaces:    extends,
		Methods:       methods,
	}
}

var runtimeTypes = sync.OnceValue(func() map[string]bool {
	names := make(map[string]bool)
	for _, t := range BaseTypes() {
		names[t.QualifiedName] = true
	}

	return names
})

// IsRuntimeType reports whether name is one of the BaseTypes.
func IsRuntimeType(name string) bool {
	return runtimeTypes()[name]
}

// BaseTypes returns the protobuf-java runtime contracts that generated
// types extend. Only the members relevant to accessor recognition are
// listed; java.lang.Object is included so walks have a terminal node.
func BaseTypes() []*descriptor.TypeDescriptor {
	return []*descriptor.TypeDescriptor{
		{
			QualifiedName: javaObject,
			Kind:          descriptor.KindClass,
			Methods: []descriptor.MethodDescriptor{
				pub("getClass", "java.lang.Class<?>"),
				pub("hashCode", tInt),
				pub("equals", tBoolean, javaObject),
				pub("toString", tString),
			},
		},
		iface(MessageLiteOrBuilder, []descriptor.MethodDescriptor{
			pub("getDefaultInstanceForType", MessageLite),
			pub("isInitialized", tBoolean),
		}),
		iface(MessageLite, []descriptor.MethodDescriptor{
			pub("writeTo", tVoid, tCodedOutput),
			pub("writeTo", tVoid, tOutputStream),
			pub("writeDelimitedTo", tVoid, tOutputStream),
			pub("getSerializedSize", tInt),
			pub("getParserForType", pbPrefix+"Parser<? extends "+MessageLite+">"),
			pub("toByteString", tByteString),
			pub("toByteArray", "byte[]"),
			pub("newBuilderForType", MessageLiteBuilder),
			pub("toBuilder", MessageLiteBuilder),
		}, MessageLiteOrBuilder),
		iface(MessageLiteBuilder, []descriptor.MethodDescriptor{
			pub("clear", MessageLiteBuilder),
			pub("build", MessageLite),
			pub("buildPartial", MessageLite),
			pub("clone", MessageLiteBuilder),
			pub("mergeFrom", MessageLiteBuilder, tCodedInput),
			pub("mergeFrom", MessageLiteBuilder, tCodedInput, tExtensionReg),
			pub("mergeFrom", MessageLiteBuilder, tByteString),
			pub("mergeFrom", MessageLiteBuilder, "byte[]"),
			pub("mergeFrom", MessageLiteBuilder, tInputStream),
			pub("mergeFrom", MessageLiteBuilder, MessageLite),
			pub("mergeDelimitedFrom", tBoolean, tInputStream),
		}, MessageLiteOrBuilder, "java.lang.Cloneable"),
		iface(MessageOrBuilder, []descriptor.MethodDescriptor{
			pub("getDefaultInstanceForType", Message),
			pub("findInitializationErrors", tList+"<"+tString+">"),
			pub("getInitializationErrorString", tString),
			pub("getDescriptorForType", tDescriptor),
			pub("getAllFields", tMap+"<"+tFieldDescriptor+","+javaObject+">"),
			pub("hasOneof", tBoolean, tOneofDescriptor),
			pub("getOneofFieldDescriptor", tFieldDescriptor, tOneofDescriptor),
			pub("hasField", tBoolean, tFieldDescriptor),
			pub("getField", javaObject, tFieldDescriptor),
			pub("getRepeatedFieldCount", tInt, tFieldDescriptor),
			pub("getRepeatedField", javaObject, tFieldDescriptor, tInt),
			pub("getUnknownFields", tUnknownFields),
		}, MessageLiteOrBuilder),
		iface(Message, []descriptor.MethodDescriptor{
			pub("getParserForType", pbPrefix+"Parser<? extends "+Message+">"),
			pub("equals", tBoolean, javaObject),
			pub("hashCode", tInt),
			pub("toString", tString),
			pub("newBuilderForType", MessageBuilder),
			pub("toBuilder", MessageBuilder),
		}, MessageLite, MessageOrBuilder),
		iface(MessageBuilder, []descriptor.MethodDescriptor{
			pub("clear", MessageBuilder),
			pub("mergeFrom", MessageBuilder, Message),
			pub("build", Message),
			pub("buildPartial", Message),
			pub("clone", MessageBuilder),
			pub("getDescriptorForType", tDescriptor),
			pub("newBuilderForField", MessageBuilder, tFieldDescriptor),
			pub("getFieldBuilder", MessageBuilder, tFieldDescriptor),
			pub("getRepeatedFieldBuilder", MessageBuilder, tFieldDescriptor, tInt),
			pub("setField", MessageBuilder, tFieldDescriptor, javaObject),
			pub("clearField", MessageBuilder, tFieldDescriptor),
			pub("clearOneof", MessageBuilder, tOneofDescriptor),
			pub("setRepeatedField", MessageBuilder, tFieldDescriptor, tInt, javaObject),
			pub("addRepeatedField", MessageBuilder, tFieldDescriptor, javaObject),
			pub("setUnknownFields", MessageBuilder, tUnknownFields),
			pub("mergeUnknownFields", MessageBuilder, tUnknownFields),
		}, MessageLiteBuilder, MessageOrBuilder),
		{
			QualifiedName: GeneratedMessageV3,
			Kind:          descriptor.KindClass,
			Superclass:    pbPrefix + "AbstractMessage",
			Interfaces:    []descriptor.TypeRef{Message},
			Methods: []descriptor.MethodDescriptor{
				pub("getUnknownFields", tUnknownFields),
				pub("getAllFields", tMap+"<"+tFieldDescriptor+","+javaObject+">"),
				pub("hasField", tBoolean, tFieldDescriptor),
				pub("getField", javaObject, tFieldDescriptor),
				pub("isInitialized", tBoolean),
			},
		},
		{
			QualifiedName: GeneratedMessageV3Builder,
			Kind:          descriptor.KindClass,
			Superclass:    pbPrefix + "AbstractMessage.Builder",
			Interfaces:    []descriptor.TypeRef{MessageBuilder},
			Methods: []descriptor.MethodDescriptor{
				pub("clear", GeneratedMessageV3Builder),
				pub("getDescriptorForType", tDescriptor),
				pub("getAllFields", tMap+"<"+tFieldDescriptor+","+javaObject+">"),
				pub("setField", GeneratedMessageV3Builder, tFieldDescriptor, javaObject),
				pub("clearField", GeneratedMessageV3Builder, tFieldDescriptor),
				pub("setUnknownFields", GeneratedMessageV3Builder, tUnknownFields),
			},
		},
		iface(EnumLite, []descriptor.MethodDescriptor{
			pub("getNumber", tInt),
		}),
		iface(ProtocolMessageEnum, []descriptor.MethodDescriptor{
			pub("getNumber", tInt),
			pub("getValueDescriptor", tEnumValueDesc),
			pub("getDescriptorForType", tEnumDescriptor),
		}, EnumLite),
	}
}
