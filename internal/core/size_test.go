package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"below one unit", 500, "500 B"},
		{"just below boundary", 1023, "1023 B"},
		{"exactly 1 KB", 1024, "1 KB"},
		{"fractional KB", 1536, "1.5 KB"},
		{"two decimals", 1100, "1.07 KB"},
		{"rounds up into MB", 1048575, "1 MB"},
		{"exactly 1 MB", 1048576, "1 MB"},
		{"10 MB", 10 * 1024 * 1024, "10 MB"},
		{"rounds up into GB", 1073741823, "1 GB"},
		{"exactly 1 GB", 1073741824, "1 GB"},
		{"exactly 1 TB", 1 << 40, "1 TB"},
		{"stays in TB", 2048 << 40, "2048 TB"},
		{"negative clamps", -5, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestSumSizes(t *testing.T) {
	assert.Equal(t, int64(0), SumSizes())
	assert.Equal(t, int64(3<<20), SumSizes(1<<20, 1<<20, 1<<20))
}
