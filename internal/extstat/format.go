package extstat

import (
	"strconv"
	"strings"
)

// Units lists the binary units in ascending order.
//
//nolint:gochecknoglobals // Unit table
var Units = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

// FormatSize renders n bytes in the largest binary unit that keeps the value
// below 1024, with at most two decimals and no trailing zeros.
func FormatSize(n int64) string {
	value := float64(n)
	unit := 0

	for value >= 1024 && unit < len(Units)-1 {
		value /= 1024
		unit++
	}

	num := strconv.FormatFloat(value, 'f', 2, 64)
	num = strings.TrimRight(num, "0")
	num = strings.TrimSuffix(num, ".")

	return num + " " + Units[unit]
}

// Convert formats every value of sizes, keeping key order.
func Convert(sizes *Sizes) *Formatted {
	formatted := NewReport[string]()
	for ext, n := range sizes.All() {
		formatted.Set(ext, FormatSize(n))
	}

	return formatted
}
