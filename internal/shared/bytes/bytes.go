package bytes

import (
	"fmt"
	"time"
)

const (
	KB = 1024
	MB = KB * 1024
	GB = MB * 1024
	TB = GB * 1024
)

// FmtMem renders a byte count with its two most significant units.
func FmtMem(bytes uint64) string {
	switch {
	case bytes >= TB:
		return fmt.Sprintf("%dTB %dGB", bytes/TB, bytes%TB/GB)
	case bytes >= GB:
		return fmt.Sprintf("%dGB %dMB", bytes/GB, bytes%GB/MB)
	case bytes >= MB:
		return fmt.Sprintf("%dMB %dKB", bytes/MB, bytes%MB/KB)
	case bytes >= KB:
		return fmt.Sprintf("%dKB %dB", bytes/KB, bytes%KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// FmtRate renders throughput of bytes processed over elapsed as "<mem>/s".
func FmtRate(bytes uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "INF/s"
	}
	perSec := float64(bytes) / elapsed.Seconds()
	return FmtMem(uint64(perSec)) + "/s"
}
