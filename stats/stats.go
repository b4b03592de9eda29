// Package stats computes study time statistics over trailing windows
package stats

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/maruel/natural"

	"github.com/studytimer/studytimer/internal/models"
	"github.com/studytimer/studytimer/internal/timeutil"
)

// DefaultWindows are the trailing windows, in days, reported when none are
// configured.
var DefaultWindows = []int{1, 7, 30}

// Summary holds the totals for the records created inside one window.
type Summary struct {
	WindowDays     int `json:"window_days"`
	Count          int `json:"count"`
	TotalSeconds   int `json:"total_seconds"`
	AverageSeconds int `json:"average_seconds"`
}

// LabelTotal is the time logged under one session name.
type LabelTotal struct {
	Label        string `json:"label"`
	Count        int    `json:"count"`
	TotalSeconds int    `json:"total_seconds"`
}

// Report groups the summaries for several windows with a per-label
// breakdown of the widest one.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Windows     []Summary    `json:"windows"`
	Labels      []LabelTotal `json:"labels"`
}

// WindowName describes a window for display.
func WindowName(days int) string {
	switch days {
	case 1:
		return "Daily"
	case 7:
		return "Weekly"
	case 30:
		return "Monthly"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// cutoff returns the earliest creation time that falls inside the window.
// It works in Unix seconds since a time.Duration overflows past about 292
// years.
func cutoff(windowDays int, now time.Time) time.Time {
	secs := now.Unix() - int64(windowDays)*timeutil.SecondsInADay

	return time.Unix(secs, int64(now.Nanosecond())).In(now.Location())
}

// Compute sums the records created at or after now minus windowDays days.
// The average is floored, and is zero when the window holds no records.
func Compute(records []models.Record, windowDays int, now time.Time) Summary {
	s := Summary{
		WindowDays: windowDays,
	}

	from := cutoff(windowDays, now)

	for i := range records {
		if records[i].Date.Before(from) {
			continue
		}

		s.Count++
		s.TotalSeconds += records[i].Duration
	}

	if s.Count > 0 {
		s.AverageSeconds = s.TotalSeconds / s.Count
	}

	return s
}

// labelTotals aggregates the window's records by display name, ordered
// naturally so that "Chapter 2" sorts before "Chapter 10".
func labelTotals(
	records []models.Record,
	windowDays int,
	now time.Time,
) []LabelTotal {
	from := cutoff(windowDays, now)

	m := make(map[string]*LabelTotal)

	for i := range records {
		rec := records[i]

		if rec.Date.Before(from) {
			continue
		}

		name := rec.DisplayName()

		lt, ok := m[name]
		if !ok {
			lt = &LabelTotal{Label: name}
			m[name] = lt
		}

		lt.Count++
		lt.TotalSeconds += rec.Duration
	}

	totals := make([]LabelTotal, 0, len(m))
	for _, v := range m {
		totals = append(totals, *v)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return natural.Less(totals[i].Label, totals[j].Label)
	})

	return totals
}

// NewReport computes a summary for each window. The label breakdown covers
// the widest window.
func NewReport(records []models.Record, windows []int, now time.Time) *Report {
	if len(windows) == 0 {
		windows = DefaultWindows
	}

	r := &Report{
		GeneratedAt: now,
		Windows:     make([]Summary, 0, len(windows)),
	}

	widest := 0

	for _, days := range windows {
		r.Windows = append(r.Windows, Compute(records, days, now))

		if days > widest {
			widest = days
		}
	}

	r.Labels = labelTotals(records, widest, now)

	return r
}

// ToJSON returns the report as JSON.
func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}
