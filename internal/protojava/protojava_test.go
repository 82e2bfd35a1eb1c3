package protojava

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"accessor-naming/internal/accessor"
	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/enummap"
)

const ordersProto = `
syntax = "proto3";

package acme.orders.v1;

option java_package = "com.acme.orders.v1";
option java_multiple_files = true;

import "google/protobuf/timestamp.proto";

enum OrderStatus {
  ORDER_STATUS_UNSPECIFIED = 0;
  ORDER_STATUS_PLACED = 1;
  ORDER_STATUS_SHIPPED = 2;
}

message Address {
  string street = 1;
  string city = 2;
}

message Order {
  string order_id = 1;
  int32 quantity = 2;
  OrderStatus status = 3;
  Address shipping_address = 4;
  repeated string tags = 5;
  repeated Line lines = 6;
  map<string, int64> counters = 7;
  map<string, OrderStatus> line_status = 8;
  repeated OrderStatus history = 9;
  optional string note = 10;
  google.protobuf.Timestamp created_at = 11;
  bytes payload = 12;

  oneof payment {
    string card_token = 13;
    string voucher_code = 14;
  }

  message Line {
    string sku = 1;
    uint32 count = 2;
  }
}
`

const legacyProto = `
syntax = "proto2";

package legacy;

enum Color {
  COLOR_UNSPECIFIED = 0;
  COLOR_RED = 1;
}

message Paint {
  optional Color color = 1;
  repeated int32 mix = 2;
}
`

func parseOrders(t *testing.T) []protoreflect.FileDescriptor {
	t.Helper()

	files, err := ParseProtoSources(map[string]string{"acme/orders/v1/orders.proto": ordersProto},
		"acme/orders/v1/orders.proto")
	require.NoError(t, err)
	require.Len(t, files, 1)

	return files
}

func propertyNames(r *accessor.TypeResult) []string {
	var out []string
	for _, p := range r.Properties() {
		out = append(out, p.Name)
	}

	return out
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in       string
		capFirst bool
		want     string
	}{
		{"order_id", true, "OrderId"},
		{"order_id", false, "orderId"},
		{"foo2bar", true, "Foo2Bar"},
		{"line-status", true, "LineStatus"},
		{"URL", true, "URL"},
		{"Name", false, "name"},
		{"_private", true, "Private"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.in, tt.capFirst))
		})
	}
}

func TestJavaNames(t *testing.T) {
	sources := map[string]string{
		"shop/order_service.proto": `
syntax = "proto3";
package shop;
message OrderService { string id = 1; }
message Item { message Tag { string v = 1; } }
`,
		"shop/named.proto": `
syntax = "proto3";
package shop.named;
option java_outer_classname = "NamedProtos";
message Thing {}
`,
	}

	files, err := ParseProtoSources(sources, "shop/order_service.proto", "shop/named.proto")
	require.NoError(t, err)

	svc, named := files[0], files[1]

	assert.Equal(t, "shop", JavaPackage(svc))
	assert.Equal(t, "OrderServiceOuterClass", OuterClassName(svc))
	assert.False(t, MultipleFiles(svc))
	assert.Equal(t, "shop.OrderServiceOuterClass.Item.Tag",
		JavaName(svc.Messages().ByName("Item").Messages().ByName("Tag")))

	assert.Equal(t, "NamedProtos", OuterClassName(named))
	assert.Equal(t, "shop.named.NamedProtos.Thing", JavaName(named.Messages().ByName("Thing")))

	orders := parseOrders(t)[0]
	assert.Equal(t, "com.acme.orders.v1.Order.Line",
		JavaName(orders.Messages().ByName("Order").Messages().ByName("Line")))
}

func TestFromFiles_Layout(t *testing.T) {
	types := FromFiles(parseOrders(t)...)

	var names []string
	for _, td := range types {
		names = append(names, td.QualifiedName)
	}

	assert.Equal(t, []string{
		"com.acme.orders.v1.Address",
		"com.acme.orders.v1.Address.Builder",
		"com.acme.orders.v1.AddressOrBuilder",
		"com.acme.orders.v1.Order",
		"com.acme.orders.v1.Order.Builder",
		"com.acme.orders.v1.Order.Line",
		"com.acme.orders.v1.Order.Line.Builder",
		"com.acme.orders.v1.Order.LineOrBuilder",
		"com.acme.orders.v1.OrderOrBuilder",
		"com.acme.orders.v1.OrderStatus",
	}, names)
}

func TestNewGraph_ClassifiesMessage(t *testing.T) {
	graph := NewGraph(parseOrders(t)...)
	engine := accessor.NewEngine(graph)

	require.NotNil(t, graph.Lookup("com.google.protobuf.Timestamp"), "imports are synthesized")

	order := graph.Lookup("com.acme.orders.v1.Order")
	require.NotNil(t, order)
	assert.True(t, engine.IsWireFormat(order))

	res, err := engine.ClassifyType(order)
	require.NoError(t, err)
	assert.False(t, res.Diagnostics.HasWarnings())

	assert.Equal(t, []string{
		"cardToken", "counters", "createdAt", "history", "lineStatus", "lines", "note",
		"orderId", "payload", "paymentCase", "quantity", "shippingAddress", "status",
		"tags", "voucherCode",
	}, propertyNames(res))

	internal := []descriptor.Signature{
		descriptor.NewSignature("getOrderIdBytes"),
		descriptor.NewSignature("getStatusValue"),
		descriptor.NewSignature("getShippingAddressOrBuilder"),
		descriptor.NewSignature("getTagsCount"),
		descriptor.NewSignature("getLinesOrBuilderList"),
		descriptor.NewSignature("getCounters"),
		descriptor.NewSignature("getLineStatusValue"),
		descriptor.NewSignature("getLineStatusValueMap"),
		descriptor.NewSignature("getHistoryValueList"),
		descriptor.NewSignature("getDefaultInstanceForType"),
		descriptor.NewSignature("getSerializedSize"),
		descriptor.NewSignature("toBuilder"),
	}
	for _, sig := range internal {
		mr, ok := res.Lookup(sig)
		require.True(t, ok, sig.String())
		assert.Equal(t, descriptor.RoleInternal, mr.Role, sig.String())
	}

	mr, ok := res.Lookup(descriptor.NewSignature("hasNote"))
	require.True(t, ok)
	assert.Equal(t, descriptor.RolePresenceCheck, mr.Role)

	_, ok = res.Lookup(descriptor.NewSignature("hasQuantity"))
	assert.False(t, ok, "proto3 scalars without optional have no presence")
}

func TestNewGraph_BuilderSymmetry(t *testing.T) {
	graph := NewGraph(parseOrders(t)...)
	engine := accessor.NewEngine(graph)

	res, err := engine.ClassifyType(graph.Lookup("com.acme.orders.v1.Order.Builder"))
	require.NoError(t, err)

	for _, p := range res.Properties() {
		if len(p.Setters) == 0 {
			assert.Equal(t, "paymentCase", p.Name)
			continue
		}

		assert.NotEmpty(t, p.Getters, "property %s has setters but no getter", p.Name)
	}

	for _, sig := range []descriptor.Signature{
		descriptor.NewSignature("addAllTags", "java.lang.Iterable<java.lang.String>"),
		descriptor.NewSignature("putAllCounters", "java.util.Map<java.lang.String,java.lang.Long>"),
		descriptor.NewSignature("setShippingAddress", "com.acme.orders.v1.Address.Builder"),
	} {
		mr, ok := res.Lookup(sig)
		require.True(t, ok, sig.String())
		assert.Equal(t, descriptor.RoleSetter, mr.Role, sig.String())
	}

	for _, sig := range []descriptor.Signature{
		descriptor.NewSignature("setOrderIdBytes", tByteString),
		descriptor.NewSignature("setStatusValue", tInt),
		descriptor.NewSignature("putAllLineStatusValue", "java.util.Map<java.lang.String,java.lang.Integer>"),
		descriptor.NewSignature("addAllHistoryValue", "java.lang.Iterable<java.lang.Integer>"),
		descriptor.NewSignature("getLinesBuilderList"),
		descriptor.NewSignature("getShippingAddressBuilder"),
		descriptor.NewSignature("mergeFrom", Message),
	} {
		mr, ok := res.Lookup(sig)
		require.True(t, ok, sig.String())
		assert.Equal(t, descriptor.RoleInternal, mr.Role, sig.String())
	}

	for _, sig := range []descriptor.Signature{
		descriptor.NewSignature("addTags", tString),
		descriptor.NewSignature("getMutableCounters"),
		descriptor.NewSignature("clearNote"),
	} {
		mr, ok := res.Lookup(sig)
		require.True(t, ok, sig.String())
		assert.Equal(t, descriptor.RoleNotAnAccessor, mr.Role, sig.String())
	}
}

func TestEnums_OpenAndClosed(t *testing.T) {
	files, err := ParseProtoSources(map[string]string{"legacy.proto": legacyProto}, "legacy.proto")
	require.NoError(t, err)

	graph := NewGraph(append(parseOrders(t), files...)...)
	mapper := enummap.NewMapper(graph, enummap.Config{})

	status := graph.Lookup("com.acme.orders.v1.OrderStatus")
	require.NotNil(t, status)
	assert.True(t, mapper.IsWireEnum(status))

	last := status.Constants[len(status.Constants)-1]
	assert.Equal(t, enummap.Unrecognized, last.Name)
	assert.Equal(t, 3, last.Ordinal)

	res, err := mapper.MapEnum(status)
	require.NoError(t, err)
	assert.Equal(t, []string{"PLACED", "SHIPPED"}, res.Present())

	color := graph.Lookup("legacy.Legacy.Color")
	require.NotNil(t, color)

	_, hasSentinel := color.Constant(enummap.Unrecognized)
	assert.False(t, hasSentinel, "closed enums have no sentinel")
	assert.True(t, errors.Is(mapper.Validate(color), enummap.ErrMissingSentinel))

	paint := graph.Lookup("legacy.Legacy.Paint")
	require.NotNil(t, paint)
	assert.False(t, paint.HasMethodNamed("getColorValue"))
	assert.True(t, paint.HasMethodNamed("hasColor"))
}

func TestEnumAliases(t *testing.T) {
	files, err := ParseProtoSources(map[string]string{"alias.proto": `
syntax = "proto3";
package alias;
enum Mode {
  option allow_alias = true;
  MODE_UNSPECIFIED = 0;
  MODE_ON = 1;
  MODE_ENABLED = 1;
}
`}, "alias.proto")
	require.NoError(t, err)

	types := FromFiles(files...)
	require.Len(t, types, 1)

	assert.Equal(t, []descriptor.EnumConstantDescriptor{
		{Name: "MODE_UNSPECIFIED", Ordinal: 0},
		{Name: "MODE_ON", Ordinal: 1},
		{Name: "UNRECOGNIZED", Ordinal: 2},
	}, types[0].Constants)
}

func TestDescriptorSetRoundTrip(t *testing.T) {
	data, err := MarshalDescriptorSet(parseOrders(t)...)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "orders.pb")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	files, err := LoadDescriptorSet(path)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "acme/orders/v1/orders.proto", files[0].Path())
	assert.Equal(t, "google/protobuf/timestamp.proto", files[1].Path())

	assert.Equal(t, FromFiles(parseOrders(t)...), FromFiles(files[0]))
}

func TestLoadDescriptorSet_Unresolvable(t *testing.T) {
	set := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{{
			Name:       proto.String("partial.proto"),
			Package:    proto.String("partial"),
			Syntax:     proto.String("proto3"),
			Dependency: []string{"missing.proto"},
			MessageType: []*descriptorpb.DescriptorProto{
				{
					Name: proto.String("Broken"),
					Field: []*descriptorpb.FieldDescriptorProto{{
						Name:     proto.String("thing"),
						Number:   proto.Int32(1),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
						TypeName: proto.String(".missing.Thing"),
					}},
				},
				{
					Name: proto.String("Fine"),
					Field: []*descriptorpb.FieldDescriptorProto{{
						Name:   proto.String("id"),
						Number: proto.Int32(1),
						Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
					}},
				},
			},
		}},
	}

	data, err := proto.Marshal(set)
	require.NoError(t, err)

	files, err := ParseDescriptorSet(data)
	require.NoError(t, err)

	graph := NewGraph(files...)
	engine := accessor.NewEngine(graph)

	broken := graph.Lookup("partial.Partial.Broken")
	require.NotNil(t, broken)

	getter := broken.MethodsNamed("getThing")
	require.Len(t, getter, 1)
	assert.Equal(t, descriptor.TypeRef(descriptor.UnresolvedType), getter[0].Returns)

	_, err = engine.ClassifyType(broken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, accessor.ErrUnresolvedType))

	res, err := engine.ClassifyType(graph.Lookup("partial.Partial.Fine"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, propertyNames(res))
}

func TestParseErrors(t *testing.T) {
	_, err := ParseProtoSources(map[string]string{"bad.proto": "syntax = \"proto3\"; message {"}, "bad.proto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.proto")

	_, err = ParseProtoSources(nil)
	require.Error(t, err)

	_, err = LoadDescriptorSet(filepath.Join(t.TempDir(), "absent.pb"))
	require.Error(t, err)

	_, err = ParseDescriptorSet([]byte{0xff, 0xff})
	require.Error(t, err)
}

func TestIsRuntimeType(t *testing.T) {
	assert.True(t, IsRuntimeType(GeneratedMessageV3))
	assert.True(t, IsRuntimeType("java.lang.Object"))
	assert.False(t, IsRuntimeType("com.google.protobuf.Timestamp"))
	assert.False(t, IsRuntimeType("com.acme.orders.v1.Order"))
}
