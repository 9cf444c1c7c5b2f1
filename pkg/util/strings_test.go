package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		maxSize int
		want    string
	}{
		{"short body untouched", `{"status":"success"}`, 100, `{"status":"success"}`},
		{"exact length", "12345", 5, "12345"},
		{"one over", "123456", 5, "12345...(truncated)"},
		{"zero maxSize uses default", "hello", 0, "hello"},
		{"negative maxSize uses default", "hello", -1, "hello"},
		{"empty body", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TruncateBody(tt.data, tt.maxSize)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateBody_DefaultMaxSize(t *testing.T) {
	t.Parallel()

	data := strings.Repeat("x", MaxLogBodySize+100)
	got := TruncateBody(data, 0)
	assert.Len(t, got, MaxLogBodySize+len("...(truncated)"))
	assert.Contains(t, got, "...(truncated)")

	// At the limit exactly, nothing is cut.
	assert.Equal(t, data[:MaxLogBodySize], TruncateBody(data[:MaxLogBodySize], 0))
}
