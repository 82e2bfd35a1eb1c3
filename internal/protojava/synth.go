package protojava

import (
	"slices"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"accessor-naming/internal/descriptor"
)

const (
	caseSuffix  = "Case"
	sentinel    = "UNRECOGNIZED"
)

var boxes = map[descriptor.TypeRef]descriptor.TypeRef{
	tBoolean: "java.lang.Boolean",
	tInt:     "java.lang.Integer",
	tLong:    "java.lang.Long",
	tFloat:   "java.lang.Float",
	tDouble:  "java.lang.Double",
}

// FromFiles synthesizes the Java types protoc would generate for files,
// sorted by qualified name. Map entry messages are not emitted; their
// shape only shows up in the owning message's map accessors.
func FromFiles(files ...protoreflect.FileDescriptor) []*descriptor.TypeDescriptor {
	var out []*descriptor.TypeDescriptor

	for _, fd := range files {
		out = append(out, enumTypes(fd.Enums())...)
		out = append(out, messageTypes(fd.Messages())...)
	}

	slices.SortFunc(out, func(a, b *descriptor.TypeDescriptor) int {
		return strings.Compare(a.QualifiedName, b.QualifiedName)
	})

	return out
}

func messageTypes(msgs protoreflect.MessageDescriptors) []*descriptor.TypeDescriptor {
	var out []*descriptor.TypeDescriptor

	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		if md.IsMapEntry() {
			continue
		}

		out = append(out, synthesizeMessage(md)...)
		out = append(out, enumTypes(md.Enums())...)
		out = append(out, messageTypes(md.Messages())...)
	}

	return out
}

func enumTypes(enums protoreflect.EnumDescriptors) []*descriptor.TypeDescriptor {
	out := make([]*descriptor.TypeDescriptor, 0, enums.Len())
	for i := 0; i < enums.Len(); i++ {
		out = append(out, synthesizeEnum(enums.Get(i)))
	}

	return out
}

// synthesizeMessage returns FooOrBuilder, Foo and Foo.Builder.
func synthesizeMessage(md protoreflect.MessageDescriptor) []*descriptor.TypeDescriptor {
	name := JavaName(md)
	self := descriptor.TypeRef(name)
	builder := descriptor.TypeRef(builderName(md))

	var reads, writes []descriptor.MethodDescriptor

	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		r, w := fieldMethods(fields.Get(i), builder)
		reads = append(reads, r...)
		writes = append(writes, w...)
	}

	oneofs := md.Oneofs()
	for i := 0; i < oneofs.Len(); i++ {
		od := oneofs.Get(i)
		if od.IsSynthetic() {
			continue
		}

		n := CamelCase(string(od.Name()), true)
		reads = append(reads, pub("get"+n+caseSuffix, descriptor.TypeRef(name+"."+n+caseSuffix)))
		writes = append(writes, pub("clear"+n, builder))
	}

	orBuilder := iface(orBuilderName(md), reads, MessageOrBuilder)

	message := &descriptor.TypeDescriptor{
		QualifiedName: name,
		Kind:          descriptor.KindClass,
		Superclass:    GeneratedMessageV3,
		Interfaces:    []descriptor.TypeRef{descriptor.TypeRef(orBuilder.QualifiedName)},
		Methods: append(slices.Clone(reads),
			pub("getDefaultInstanceForType", self),
			pub("getParserForType", descriptor.TypeRef(pbPrefix+"Parser<"+name+">")),
			pub("getSerializedSize", tInt),
			pub("isInitialized", tBoolean),
			pub("writeTo", tVoid, tCodedOutput),
			pub("equals", tBoolean, javaObject),
			pub("hashCode", tInt),
			pub("newBuilderForType", builder),
			pub("toBuilder", builder),
			static(pub("getDescriptor", tDescriptor)),
			static(pub("getDefaultInstance", self)),
			static(pub("newBuilder", builder)),
			static(pub("newBuilder", builder, self)),
			static(pub("parseFrom", self, "byte[]")),
			static(pub("parseFrom", self, tByteString)),
			static(pub("parser", descriptor.TypeRef(pbPrefix+"Parser<"+name+">"))),
		),
	}

	builderType := &descriptor.TypeDescriptor{
		QualifiedName: string(builder),
		Kind:          descriptor.KindClass,
		Superclass:    descriptor.TypeRef(GeneratedMessageV3Builder + "<" + string(builder) + ">"),
		Interfaces:    []descriptor.TypeRef{descriptor.TypeRef(orBuilder.QualifiedName)},
		Methods: append(append(slices.Clone(reads), writes...),
			pub("clear", builder),
			pub("getDescriptorForType", tDescriptor),
			pub("getDefaultInstanceForType", self),
			pub("build", self),
			pub("buildPartial", self),
			pub("clone", builder),
			pub("mergeFrom", builder, Message),
			pub("mergeFrom", builder, self),
			pub("mergeFrom", builder, tCodedInput, tExtensionReg),
			pub("isInitialized", tBoolean),
			static(pub("getDescriptor", tDescriptor)),
		),
	}

	return []*descriptor.TypeDescriptor{orBuilder, message, builderType}
}

// fieldMethods returns the read accessors shared by the OrBuilder, message
// and builder, and the builder-only mutators.
func fieldMethods(fd protoreflect.FieldDescriptor, builder descriptor.TypeRef) (reads, writes []descriptor.MethodDescriptor) {
	n := CamelCase(string(fd.Name()), true)

	switch {
	case fd.IsMap():
		return mapMethods(fd, n, builder)
	case fd.IsList():
		return listMethods(fd, n, builder)
	default:
		return singularMethods(fd, n, builder)
	}
}

func singularMethods(fd protoreflect.FieldDescriptor, n string, builder descriptor.TypeRef) (reads, writes []descriptor.MethodDescriptor) {
	t := javaType(fd)

	reads = append(reads, pub("get"+n, t))
	if fd.HasPresence() {
		reads = append(reads, pub("has"+n, tBoolean))
	}

	writes = append(writes, pub("set"+n, builder, t), pub("clear"+n, builder))

	switch fd.Kind() {
	case protoreflect.StringKind:
		reads = append(reads, pub("get"+n+"Bytes", tByteString))
		writes = append(writes, pub("set"+n+"Bytes", builder, tByteString))
	case protoreflect.EnumKind:
		if isOpen(fd.Enum()) {
			reads = append(reads, pub("get"+n+"Value", tInt))
			writes = append(writes, pub("set"+n+"Value", builder, tInt))
		}
	case protoreflect.MessageKind, protoreflect.GroupKind:
		reads = append(reads, pub("get"+n+"OrBuilder", orBuilderRef(fd.Message())))
		writes = append(writes,
			pub("set"+n, builder, builderRef(fd.Message())),
			pub("merge"+n, builder, t),
			pub("get"+n+"Builder", builderRef(fd.Message())),
		)
	}

	return reads, writes
}

func listMethods(fd protoreflect.FieldDescriptor, n string, builder descriptor.TypeRef) (reads, writes []descriptor.MethodDescriptor) {
	t := javaType(fd)
	list := listOf(t)
	all := iterableOf(t, true)

	if fd.Kind() == protoreflect.StringKind {
		list = tStringList
		all = iterableOf(t, false)
	}

	reads = append(reads,
		pub("get"+n+"List", list),
		pub("get"+n+"Count", tInt),
		pub("get"+n, t, tInt),
	)
	writes = append(writes,
		pub("set"+n, builder, tInt, t),
		pub("add"+n, builder, t),
		pub("addAll"+n, builder, all),
		pub("clear"+n, builder),
	)

	switch fd.Kind() {
	case protoreflect.StringKind:
		reads = append(reads, pub("get"+n+"Bytes", tByteString, tInt))
		writes = append(writes, pub("add"+n+"Bytes", builder, tByteString))
	case protoreflect.EnumKind:
		if isOpen(fd.Enum()) {
			reads = append(reads,
				pub("get"+n+"ValueList", listOf(tInt)),
				pub("get"+n+"Value", tInt, tInt),
			)
			writes = append(writes,
				pub("set"+n+"Value", builder, tInt, tInt),
				pub("add"+n+"Value", builder, tInt),
				pub("addAll"+n+"Value", builder, iterableOf(tInt, false)),
			)
		}
	case protoreflect.MessageKind, protoreflect.GroupKind:
		ob := orBuilderRef(fd.Message())
		b := builderRef(fd.Message())

		reads = append(reads,
			pub("get"+n+"OrBuilderList", descriptor.TypeRef(tList+"<? extends "+string(ob)+">")),
			pub("get"+n+"OrBuilder", ob, tInt),
		)
		writes = append(writes,
			pub("set"+n, builder, tInt, b),
			pub("add"+n, builder, b),
			pub("add"+n, builder, tInt, t),
			pub("add"+n, builder, tInt, b),
			pub("remove"+n, builder, tInt),
			pub("get"+n+"Builder", b, tInt),
			pub("add"+n+"Builder", b),
			pub("add"+n+"Builder", b, tInt),
			pub("get"+n+"BuilderList", listOf(b)),
		)
	}

	return reads, writes
}

func mapMethods(fd protoreflect.FieldDescriptor, n string, builder descriptor.TypeRef) (reads, writes []descriptor.MethodDescriptor) {
	k := javaType(fd.MapKey())
	v := javaType(fd.MapValue())
	m := mapOf(k, v)

	reads = append(reads,
		pub("get"+n+"Count", tInt),
		pub("contains"+n, tBoolean, k),
		deprecated(pub("get"+n, m)),
		pub("get"+n+"Map", m),
		pub("get"+n+"OrDefault", v, k, v),
		pub("get"+n+"OrThrow", v, k),
	)
	writes = append(writes,
		pub("clear"+n, builder),
		pub("remove"+n, builder, k),
		deprecated(pub("getMutable"+n, m)),
		pub("put"+n, builder, k, v),
		pub("putAll"+n, builder, m),
	)

	if fd.MapValue().Kind() == protoreflect.EnumKind && isOpen(fd.MapValue().Enum()) {
		vm := mapOf(k, tInt)

		reads = append(reads,
			deprecated(pub("get"+n+"Value", vm)),
			pub("get"+n+"ValueMap", vm),
			pub("get"+n+"ValueOrDefault", tInt, k, tInt),
			pub("get"+n+"ValueOrThrow", tInt, k),
		)
		writes = append(writes,
			deprecated(pub("getMutable"+n+"Value", vm)),
			pub("put"+n+"Value", builder, k, tInt),
			pub("putAll"+n+"Value", builder, vm),
		)
	}

	return reads, writes
}

func synthesizeEnum(ed protoreflect.EnumDescriptor) *descriptor.TypeDescriptor {
	name := JavaName(ed)
	self := descriptor.TypeRef(name)

	t := &descriptor.TypeDescriptor{
		QualifiedName: name,
		Kind:          descriptor.KindEnum,
		Superclass:    descriptor.TypeRef("java.lang.Enum<" + name + ">"),
		Interfaces:    []descriptor.TypeRef{ProtocolMessageEnum},
		Methods: []descriptor.MethodDescriptor{
			pub("getNumber", tInt),
			pub("getValueDescriptor", tEnumValueDesc),
			pub("getDescriptorForType", tEnumDescriptor),
			static(pub("forNumber", self, tInt)),
			static(pub("valueOf", self, tString)),
			static(pub("valueOf", self, tEnumValueDesc)),
			static(deprecated(pub("valueOf", self, tInt))),
			static(pub("getDescriptor", tEnumDescriptor)),
		},
	}

	// Aliases share a number and become static fields, not constants.
	seen := make(map[protoreflect.EnumNumber]bool)
	values := ed.Values()

	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		if seen[v.Number()] {
			continue
		}

		seen[v.Number()] = true
		t.Constants = append(t.Constants, descriptor.EnumConstantDescriptor{
			Name:    string(v.Name()),
			Ordinal: len(t.Constants),
		})
	}

	if isOpen(ed) {
		t.Constants = append(t.Constants, descriptor.EnumConstantDescriptor{
			Name:    sentinel,
			Ordinal: len(t.Constants),
		})
	}

	return t
}

// isOpen reports whether unknown numbers are preserved, which is what makes
// protoc emit the *Value accessors and the UNRECOGNIZED constant.
func isOpen(ed protoreflect.EnumDescriptor) bool {
	return ed != nil && !ed.IsPlaceholder() && !ed.IsClosed()
}

// javaType returns the unboxed Java type of a singular value of fd.
func javaType(fd protoreflect.FieldDescriptor) descriptor.TypeRef {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return tBoolean
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return tInt
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return tLong
	case protoreflect.FloatKind:
		return tFloat
	case protoreflect.DoubleKind:
		return tDouble
	case protoreflect.StringKind:
		return tString
	case protoreflect.BytesKind:
		return tByteString
	case protoreflect.EnumKind:
		return refOf(fd.Enum())
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return refOf(fd.Message())
	default:
		return descriptor.UnresolvedType
	}
}

func refOf(d protoreflect.Descriptor) descriptor.TypeRef {
	if d == nil || d.IsPlaceholder() {
		return descriptor.UnresolvedType
	}

	return descriptor.TypeRef(JavaName(d))
}

func orBuilderRef(md protoreflect.MessageDescriptor) descriptor.TypeRef {
	if md == nil || md.IsPlaceholder() {
		return descriptor.UnresolvedType
	}

	return descriptor.TypeRef(orBuilderName(md))
}

func builderRef(md protoreflect.MessageDescriptor) descriptor.TypeRef {
	if md == nil || md.IsPlaceholder() {
		return descriptor.UnresolvedType
	}

	return descriptor.TypeRef(builderName(md))
}

func boxed(t descriptor.TypeRef) descriptor.TypeRef {
	if b, ok := boxes[t]; ok {
		return b
	}

	return t
}

func listOf(t descriptor.TypeRef) descriptor.TypeRef {
	return descriptor.TypeRef(tList + "<" + string(boxed(t)) + ">")
}

func mapOf(k, v descriptor.TypeRef) descriptor.TypeRef {
	return descriptor.TypeRef(tMap + "<" + string(boxed(k)) + "," + string(boxed(v)) + ">")
}

func iterableOf(t descriptor.TypeRef, wildcard bool) descriptor.TypeRef {
	if wildcard {
		return descriptor.TypeRef(tIterable + "<? extends " + string(boxed(t)) + ">")
	}

	return descriptor.TypeRef(tIterable + "<" + string(boxed(t)) + ">")
}
