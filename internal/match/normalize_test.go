package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Java bean, proto and Go spellings of one property
		{"orderId", "orderid"},
		{"order_id", "orderid"},
		{"OrderID", "orderid"},
		{"ORDER_ID", "orderid"},
		{"order-id", "orderid"},
		{"shippingAddress", "shippingaddress"},
		{"shipping_address", "shippingaddress"},
		{"HTTPHeaders", "httpheaders"},
		{"acme.orders.v1", "acmeordersv1"},

		{"", ""},
		{"a", "a"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"OrderID", "order"},
		{"customerIds", "customer"},
		{"created_at", "created"},
		{"CreatedAt", "created"},
		{"updatedUTC", "updated"},
		{"shippedTimestamp", "shipped"},
		{"timestampUTC", "timestamp"},

		// nothing left after stripping
		{"ID", "id"},
		{"At", "at"},

		{"lineStatus", "linestatus"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdentWithSuffixStrip(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"shippingAddress", []string{"shipping", "Address"}},
		{"XMLPayload", []string{"XML", "Payload"}},
		{"getHTTPHeaders", []string{"get", "HTTP", "Headers"}},
		{"line_status", []string{"line", "status"}},
		{"Version2Kind", []string{"Version2", "Kind"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"parseURL", []string{"parse", "URL"}},
		{"__x__", []string{"x"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenizeCamelCase(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"order", "id"}, TokenizeIdent("OrderID"))
	assert.Equal(t, []string{"xml", "payload"}, TokenizeIdent("XMLPayload"))
	assert.Equal(t, []string{"card", "token"}, TokenizeIdent("card_token"))
}
