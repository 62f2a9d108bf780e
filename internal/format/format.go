package format

import (
	"fmt"
	"strings"
	"time"
)

// Display styles for the timer readout.
const (
	StyleClock   = "HH:MM:SS"
	StyleCompact = "compact"
)

// Seconds renders a whole-second count in the given display style.
// Unknown styles fall back to the clock style.
func Seconds(total int, style string) string {
	if total < 0 {
		total = 0
	}
	switch style {
	case StyleCompact:
		return compactSeconds(total)
	default:
		h := total / 3600
		m := (total % 3600) / 60
		s := total % 60
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
}

func compactSeconds(total int) string {
	h := total / 3600
	m := (total % 3600) / 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", total)
	}
}

// HumanDate converts an ISO date key ("2025-12-01") to "Dec 1, 2025".
// Unparseable keys are returned unchanged.
func HumanDate(key string) string {
	d, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d, %d", d.Month().String()[:3], d.Day(), d.Year())
}

// AppBar renders a proportional bar with a trailing percentage for a
// per-app share of a day's total, e.g. "██████░░░░░░░░░░  38%".
func AppBar(appSeconds, totalSeconds, width int) string {
	if width <= 0 {
		width = 16
	}
	var pct float64
	if totalSeconds > 0 {
		pct = float64(appSeconds) / float64(totalSeconds)
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, pct*100)
}

// DayKey returns the ISO calendar-day key for t in local time.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
