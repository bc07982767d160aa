// Package format renders intervals and durations as the short
// human-readable labels the review surfaces show. Everything here is
// pure and stateless.
package format

import (
	"fmt"
	"math"
)

// Interval renders a day count as a compact label: hours under a day,
// days under a month, months under a year, then years rounded to the
// nearest half.
func Interval(days float64) string {
	if days == 0 {
		return "Now"
	}
	if days < 1 {
		return fmt.Sprintf("%dh", int(math.Round(days*24)))
	}

	n := int(math.Round(days))
	switch {
	case n == 1:
		return "1 day"
	case n < 30:
		return fmt.Sprintf("%d days", n)
	case n < 365:
		months := int(math.Round(days / 30))
		if months == 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", months)
	default:
		years := math.Round(days/365*2) / 2
		if years == math.Trunc(years) {
			if years == 1 {
				return "1 year"
			}
			return fmt.Sprintf("%d years", int(years))
		}
		return fmt.Sprintf("%.1f years", years)
	}
}

// Duration renders a second count for session summaries. Seconds are
// dropped once hours appear.
func Duration(seconds int) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		m, s := seconds/60, seconds%60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		h, m := seconds/3600, seconds%3600/60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Time renders a second count as a clock readout: MM:SS under an hour,
// H:MM:SS (unpadded hour) from one hour up.
func Time(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
