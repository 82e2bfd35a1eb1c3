package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dtoPkg = "accessor-naming/dto"

func loadDTO(t *testing.T) (*Analyzer, *TypeGraph) {
	t.Helper()

	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(dtoPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return analyzer, graph
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	_, graph := loadDTO(t)

	require.Contains(t, graph.Packages, dtoPkg)
	assert.Equal(t, "dto", graph.Packages[dtoPkg].Name)
	assert.Equal(t, []TypeID{
		{dtoPkg, "Address"},
		{dtoPkg, "Line"},
		{dtoPkg, "Order"},
		{dtoPkg, "OrderStatus"},
		{dtoPkg, "Priority"},
	}, graph.Packages[dtoPkg].Types)

	var ids []string
	for _, ti := range graph.SortedTypes() {
		ids = append(ids, ti.ID.Name)
	}

	assert.Equal(t, []string{"Address", "Line", "Order", "OrderStatus", "Priority"}, ids)
}

func TestAnalyzer_OrderFields(t *testing.T) {
	analyzer, _ := loadDTO(t)

	order, err := analyzer.GetStruct(dtoPkg, "Order")
	require.NoError(t, err)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}

	assert.NotContains(t, names, "revision")
	assert.Equal(t, []string{
		"OrderID", "Quantity", "Status", "ShippingAddress", "Tags", "Lines", "Counters",
		"LineStatus", "History", "Note", "Created", "Payload", "CardToken", "VoucherCod",
		"Rating", "AuditTrail",
	}, names)

	tests := []struct {
		field string
		kind  TypeKind
		str   string
	}{
		{"OrderID", TypeKindBasic, "string"},
		{"Status", TypeKindAlias, "dto.OrderStatus"},
		{"ShippingAddress", TypeKindPointer, "*dto.Address"},
		{"Lines", TypeKindSlice, "[]dto.Line"},
		{"Counters", TypeKindMap, "map[string]int64"},
		{"Created", TypeKindExternal, "time.Time"},
		{"Payload", TypeKindSlice, "[]byte"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := order.Field(tt.field)
			require.NotNil(t, f)
			assert.Equal(t, tt.kind, f.Type.Kind)
			assert.Equal(t, tt.str, f.Type.String())
		})
	}

	assert.Equal(t, TypeKindStruct, order.Field("ShippingAddress").Type.Deref().Kind)
	assert.Nil(t, order.Field("Missing"))
}

func TestAnalyzer_FieldTags(t *testing.T) {
	analyzer, _ := loadDTO(t)

	order, err := analyzer.GetStruct(dtoPkg, "Order")
	require.NoError(t, err)

	assert.Equal(t, "createdAt", order.Field("Created").PropertyName())
	assert.Equal(t, "lineStatus", order.Field("LineStatus").PropertyName())
	assert.Equal(t, "lineStatus", order.Field("LineStatus").JSONName())
	assert.Equal(t, "OrderID", order.Field("OrderID").PropertyName())
	assert.True(t, order.Field("AuditTrail").Ignored())
	assert.True(t, order.Field("Created").HasTag(PropertyTag))
	assert.False(t, order.Field("OrderID").HasTag("json"))

	line, err := analyzer.GetStruct(dtoPkg, "Line")
	require.NoError(t, err)
	assert.Equal(t, "sku", line.Field("SKU").PropertyName())
}

func TestAnalyzer_Enums(t *testing.T) {
	analyzer, _ := loadDTO(t)

	status, err := analyzer.GetEnum(dtoPkg, "OrderStatus")
	require.NoError(t, err)
	assert.True(t, status.IsEnum())
	assert.Equal(t, TypeKindBasic, status.Underlying.Kind)
	assert.Equal(t, []ConstantInfo{
		{Name: "OrderStatusPlaced", Value: "PLACED"},
		{Name: "OrderStatusShipped", Value: "SHIPPED"},
	}, status.Constants)

	priority, err := analyzer.GetEnum(dtoPkg, "Priority")
	require.NoError(t, err)
	assert.Equal(t, []ConstantInfo{
		{Name: "PriorityNormal", Value: "1"},
		{Name: "PriorityRush", Value: "2"},
	}, priority.Constants)

	_, err = analyzer.GetEnum(dtoPkg, "Order")
	require.Error(t, err)
	_, err = analyzer.GetStruct(dtoPkg, "OrderStatus")
	require.Error(t, err)
	_, err = analyzer.GetStruct(dtoPkg, "Nope")
	require.Error(t, err)
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("accessor-naming/does/not/exist")
	require.Error(t, err)
}

func TestParseTypeID(t *testing.T) {
	tests := []struct {
		in      string
		want    TypeID
		wantErr bool
	}{
		{in: "accessor-naming/dto.Order", want: TypeID{dtoPkg, "Order"}},
		{in: "time.Time", want: TypeID{"time", "Time"}},
		{in: "Order", wantErr: true},
		{in: "dto.", wantErr: true},
		{in: "github.com/acme/dto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTypeID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "unknown", TypeKind(99).String())
}
