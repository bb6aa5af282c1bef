package extstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{500, "500 B"},
		{1023, "1023 B"},
		{1024, "1 KiB"},
		{1536, "1.5 KiB"},
		{1126, "1.1 KiB"},
		{1280, "1.25 KiB"},
		{10 * 1024, "10 KiB"},
		{1024*1024 - 1, "1024 KiB"},
		{2048, "2 KiB"},
		{3 * 1024 * 1024, "3 MiB"},
		{1 << 30, "1 GiB"},
		{1 << 40, "1 TiB"},
		{1 << 50, "1 PiB"},
		{1 << 60, "1 EiB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatSize(tt.size), "FormatSize(%d)", tt.size)
		})
	}
}

func TestFormatSizeUnitBoundaries(t *testing.T) {
	t.Parallel()

	// int64 reaches 1024^6; every exact power must render without decimals.
	n := int64(1)
	for k := 0; k <= 6; k++ {
		assert.Equal(t, "1 "+Units[k], FormatSize(n))

		if k < 6 {
			n *= 1024
		}
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	sizes := NewSizes()
	sizes.Set(".txt", 1024)
	sizes.Set("", 50)
	sizes.Set(".bin", 1536)

	formatted := Convert(sizes)

	assert.Equal(t, []string{".txt", "", ".bin"}, formatted.Keys())
	assert.Equal(t, map[string]string{".txt": "1 KiB", "": "50 B", ".bin": "1.5 KiB"}, formatted.Map())

	// The input is left untouched.
	v, ok := sizes.Get(".txt")
	assert.True(t, ok)
	assert.Equal(t, int64(1024), v)
}

func TestConvertEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Convert(NewSizes()).Len())
}
