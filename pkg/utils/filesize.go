package utils

import "fmt"

const (
	B  = 1
	KB = 1024 * B
	MB = 1024 * KB
	GB = 1024 * MB
	TB = 1024 * GB
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize converts bytes to a human-readable string using base-2 units.
// The value is divided by 1024 until it drops below 1024 or the TB unit is
// reached, and is always rendered with two decimal places.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}
