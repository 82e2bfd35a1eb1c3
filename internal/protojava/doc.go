// Package protojava describes protobuf schemas the way protoc's Java
// generator exposes them.
//
// Each message becomes three types (the FooOrBuilder interface, the Foo
// class and Foo.Builder) carrying the accessor families protoc emits for
// every field shape; each enum becomes a ProtocolMessageEnum with the
// UNRECOGNIZED sentinel appended when the enum is open. BaseTypes supplies
// the runtime contracts (MessageLite, Message.Builder, ...) the accessor
// engine needs to recognise inherited methods.
//
// Schemas come from .proto sources (parsed in-process, no protoc needed) or
// from a serialized FileDescriptorSet.
package protojava
