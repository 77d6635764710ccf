package core

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in the largest unit that keeps the value
// below 1024, rounded to two decimals with trailing zeros dropped:
// 1536 -> "1.5 KB", 10485760 -> "10 MB". TB is the largest unit.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}

	size := float64(bytes)
	unit := 0
	// Promote on the rounded value so 1048575 reads "1 MB", not "1024 KB".
	for math.Round(size*100)/100 >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	rounded := math.Round(size*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[unit]
}

// SumSizes adds byte counts as integers so no float error accumulates
// across many directories.
func SumSizes(sizes ...int64) int64 {
	var total int64
	for _, s := range sizes {
		total += s
	}
	return total
}
