package utils

import (
	"fmt"
	"math"
	"time"
)

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	secs := math.Mod(d.Seconds(), 60)
	mins := math.Mod(d.Minutes(), 60)
	hours := math.Mod(d.Hours(), 24)

	switch {
	case d.Seconds() < 60:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	case d.Minutes() < 60:
		return fmt.Sprintf("%dm:%ds", int64(d.Minutes()), int64(secs))
	case d.Hours() < 24:
		return fmt.Sprintf("%dh:%dm:%ds", int64(d.Hours()), int64(mins), int64(secs))
	default:
		return fmt.Sprintf("%dd:%dh:%dm:%ds",
			int64(d.Hours()/24), int64(hours), int64(mins), int64(secs))
	}
}
