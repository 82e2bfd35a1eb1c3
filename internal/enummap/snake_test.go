package enummap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelToUpperSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"StatusCode", "STATUS_CODE"},
		{"Status", "STATUS"},
		{"status", "STATUS"},
		{"HTTPMethod", "H_T_T_P_METHOD"},
		{"Version2Kind", "VERSION2_KIND"},
		{"", ""},
		{"A", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelToUpperSnake(tt.in))
		})
	}
}
