package stats

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytimer/studytimer/internal/models"
)

var now = time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC)

func record(name string, duration int, age time.Duration) models.Record {
	created := now.Add(-age)

	return models.Record{
		Name:      name,
		Duration:  duration,
		StartTime: created.Add(-time.Duration(duration) * time.Second),
		EndTime:   created,
		Date:      created,
	}
}

func sampleRecords() []models.Record {
	day := 24 * time.Hour

	return []models.Record{
		record("Algebra", 100, 0),
		record("Chapter 10", 200, 8*day),
		record("Chapter 2", 300, 40*day),
	}
}

func TestComputeWindows(t *testing.T) {
	records := sampleRecords()

	cases := []struct {
		name string
		want Summary
		days int
	}{
		{
			name: "today only",
			days: 1,
			want: Summary{WindowDays: 1, Count: 1, TotalSeconds: 100, AverageSeconds: 100},
		},
		{
			name: "week excludes eight days ago",
			days: 7,
			want: Summary{WindowDays: 7, Count: 1, TotalSeconds: 100, AverageSeconds: 100},
		},
		{
			name: "month",
			days: 30,
			want: Summary{WindowDays: 30, Count: 2, TotalSeconds: 300, AverageSeconds: 150},
		},
		{
			name: "everything",
			days: 365,
			want: Summary{WindowDays: 365, Count: 3, TotalSeconds: 600, AverageSeconds: 200},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compute(records, tc.days, now))
		})
	}
}

func TestComputeEmptyWindowAveragesZero(t *testing.T) {
	s := Compute(nil, 7, now)

	assert.Equal(t, Summary{WindowDays: 7}, s)
}

func TestComputeFloorsAverage(t *testing.T) {
	records := []models.Record{
		record("a", 10, 0),
		record("b", 11, 0),
	}

	assert.Equal(t, 10, Compute(records, 1, now).AverageSeconds)
}

func TestComputeIncludesCutoffBoundary(t *testing.T) {
	records := []models.Record{record("edge", 60, 24*time.Hour)}

	assert.Equal(t, 1, Compute(records, 1, now).Count)
}

func TestComputeHugeWindowKeepsRecentRecords(t *testing.T) {
	records := []models.Record{record("recent", 60, time.Hour)}

	for _, days := range []int{106752, 200000} {
		s := Compute(records, days, now)
		assert.Equal(t, 1, s.Count, "window %d", days)
		assert.Equal(t, 60, s.TotalSeconds, "window %d", days)
	}
}

func TestNewReportLabelsNaturalOrder(t *testing.T) {
	r := NewReport(sampleRecords(), nil, now)

	require.Len(t, r.Windows, len(DefaultWindows))

	labels := make([]string, 0, len(r.Labels))
	for _, l := range r.Labels {
		labels = append(labels, l.Label)
	}

	// widest default window is 30 days, so the 40 day old record is out
	assert.Equal(t, []string{"Algebra", "Chapter 10"}, labels)

	r = NewReport(sampleRecords(), []int{90}, now)

	labels = labels[:0]
	for _, l := range r.Labels {
		labels = append(labels, l.Label)
	}

	assert.Equal(t, []string{"Algebra", "Chapter 2", "Chapter 10"}, labels)
}

func TestReportToJSON(t *testing.T) {
	r := NewReport(sampleRecords(), []int{1}, now)

	b, err := r.ToJSON()
	require.NoError(t, err)

	var got struct {
		Windows []Summary `json:"windows"`
	}

	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, []Summary{{WindowDays: 1, Count: 1, TotalSeconds: 100, AverageSeconds: 100}}, got.Windows)
}

func TestRender(t *testing.T) {
	pterm.DisableColor()

	var buf bytes.Buffer

	require.NoError(t, NewReport(sampleRecords(), nil, now).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Monthly")
	assert.Contains(t, out, "2m")
	assert.Contains(t, out, "Chapter 10")
	assert.NotContains(t, out, noRecordsMsg)

	buf.Reset()

	require.NoError(t, NewReport(nil, nil, now).Render(&buf))
	assert.Contains(t, buf.String(), noRecordsMsg)
}

func TestWindowName(t *testing.T) {
	assert.Equal(t, "Daily", WindowName(1))
	assert.Equal(t, "Weekly", WindowName(7))
	assert.Equal(t, "Monthly", WindowName(30))
	assert.Equal(t, "90 days", WindowName(90))
}
