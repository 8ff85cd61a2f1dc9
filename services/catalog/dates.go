package catalog

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Nights computes the stay length between two YYYY-MM-DD dates. Collapsed,
// inverted, or unparseable ranges floor to 1 so downstream pricing never sees
// a non-positive duration; upstream data faults are flagged by the caller's
// logging, not by a hard failure.
func Nights(checkIn, checkOut string) int {
	in, errIn := time.Parse(dateLayout, checkIn)
	out, errOut := time.Parse(dateLayout, checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}

	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// DurationString renders a human-readable trip length, singular below two
// nights.
func DurationString(nights int) string {
	if nights <= 1 {
		return "2 Days / 1 Night"
	}
	return fmt.Sprintf("%d Days / %d Nights", nights+1, nights)
}

// formatDurationHours renders a fractional hour count as "13h 30m".
func formatDurationHours(hours float64) string {
	if hours <= 0 {
		return ""
	}
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m >= 60 {
		h++
		m -= 60
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}
