package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordDefaults(t *testing.T) {
	start := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)

	r := NewRecord(1500, start, end, end, "   ", "  reviewed chapter 3 \n")

	assert.Equal(t, DefaultName, r.Name)
	assert.Equal(t, "reviewed chapter 3", r.Notes)
	assert.Equal(t, 1500, r.Duration)
	assert.True(t, r.Valid())
}

func TestRecordValid(t *testing.T) {
	start := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		rec  Record
		want bool
	}{
		{"zero duration", Record{StartTime: start, EndTime: start}, false},
		{"end before start", Record{Duration: 5, StartTime: start, EndTime: start.Add(-time.Second)}, false},
		{"same instant", Record{Duration: 1, StartTime: start, EndTime: start}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rec.Valid())
		})
	}
}

func TestDisplayName(t *testing.T) {
	r := Record{}
	assert.Equal(t, DefaultName, r.DisplayName())

	r.Name = "Calculus"
	assert.Equal(t, "Calculus", r.DisplayName())
}
