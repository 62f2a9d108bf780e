package format

import (
	"strings"
	"testing"
	"time"
)

func TestSecondsClock(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3661, "01:01:01"},
		{36000, "10:00:00"},
		{-5, "00:00:00"},
	}
	for _, c := range cases {
		if got := Seconds(c.in, StyleClock); got != c.want {
			t.Errorf("Seconds(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSecondsCompact(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{3660, "1h 1m"},
		{7320, "2h 2m"},
	}
	for _, c := range cases {
		if got := Seconds(c.in, StyleCompact); got != c.want {
			t.Errorf("Seconds(%d, compact) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSecondsUnknownStyleFallsBack(t *testing.T) {
	if got := Seconds(61, "whatever"); got != "00:01:01" {
		t.Errorf("unknown style = %q, want clock format", got)
	}
}

func TestHumanDate(t *testing.T) {
	if got := HumanDate("2025-12-01"); got != "Dec 1, 2025" {
		t.Errorf("HumanDate = %q", got)
	}
	if got := HumanDate("not-a-date"); got != "not-a-date" {
		t.Errorf("HumanDate passthrough = %q", got)
	}
}

func TestAppBar(t *testing.T) {
	full := AppBar(100, 100, 10)
	if !strings.HasPrefix(full, strings.Repeat("█", 10)) {
		t.Errorf("full bar = %q", full)
	}
	if !strings.HasSuffix(full, "100%") {
		t.Errorf("full bar pct = %q", full)
	}

	empty := AppBar(0, 100, 10)
	if !strings.HasPrefix(empty, strings.Repeat("░", 10)) {
		t.Errorf("empty bar = %q", empty)
	}

	// Zero total must not divide by zero.
	if got := AppBar(5, 0, 10); !strings.HasSuffix(got, "0%") {
		t.Errorf("zero-total bar = %q", got)
	}
}

func TestDayKey(t *testing.T) {
	d := time.Date(2025, time.March, 7, 23, 59, 0, 0, time.Local)
	if got := DayKey(d); got != "2025-03-07" {
		t.Errorf("DayKey = %q", got)
	}
}
