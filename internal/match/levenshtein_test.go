package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// case-sensitive
		{"ABC", "abc", 3},

		{"orderid", "orderid", 0},
		{"vouchercod", "vouchercode", 1},
		{"createdat", "updatedat", 3},
		{"ürün", "urun", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want float64
	}{
		{"", "", 1.0},
		{"status", "status", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"vouchercod", "vouchercode", 1.0 - 1.0/11.0},
		{"ürün", "urun", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, LevenshteinNormalized(tt.a, tt.b), 0.001)
		})
	}
}

func TestNameScore(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
		maxScore float64
	}{
		{"orderId", "OrderID", 1.0, 1.0},
		{"shipping_address", "shippingAddress", 1.0, 1.0},

		// suffix strip makes these equal
		{"customerId", "Customer", 1.0, 1.0},
		{"createdAt", "created", 1.0, 1.0},

		{"voucherCode", "VoucherCod", 0.9, 0.95},
		{"tags", "rating", 0.0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := NameScore(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, tt.minScore)
			assert.LessOrEqual(t, got, tt.maxScore)
			assert.InDelta(t, got, NameScore(tt.b, tt.a), 0.0001)
		})
	}
}

func BenchmarkNameScore(b *testing.B) {
	for b.Loop() {
		NameScore("shippingAddressLine", "shipping_address_line_id")
	}
}
