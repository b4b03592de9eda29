// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	SecondsInAMinute = 60
	SecondsInAnHour  = 3600
	SecondsInADay    = 86400
)

// Clamp restricts v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// SplitSeconds expresses a seconds value in hours, minutes and seconds.
func SplitSeconds(total int) (hrs, mins, secs int) {
	if total < 0 {
		total = 0
	}

	hrs = total / SecondsInAnHour
	mins = (total % SecondsInAnHour) / SecondsInAMinute
	secs = total % SecondsInAMinute

	return
}

// FormatDuration renders a session length such as "2h 30m 15s", "4m 5s" or
// "9s". Zero-valued leading units are dropped.
func FormatDuration(seconds int) string {
	h, m, s := SplitSeconds(seconds)

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatStat renders an average for the statistics cards: "1h 5m" or "12m".
// Seconds are truncated.
func FormatStat(seconds int) string {
	h, m, _ := SplitSeconds(seconds)

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}

	return fmt.Sprintf("%dm", m)
}

// FormatClock renders the countdown as HH:MM:SS.
func FormatClock(seconds int) string {
	h, m, s := SplitSeconds(seconds)

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// DateTimeLayout returns the layout used for record timestamps.
func DateTimeLayout(twentyFourHour bool) string {
	if twentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

// ClockLayout returns the layout used for wall clock times.
func ClockLayout(twentyFourHour bool) string {
	if twentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

// FromStr parses absolute or relative dates ("2024-05-01", "3 days ago",
// "yesterday") relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	d, err := dps.Parse(cfg, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}
