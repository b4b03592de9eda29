package models

import (
	"strings"
	"time"
)

// DefaultName is the label given to sessions started without one.
const DefaultName = "Unnamed Session"

// Record is a completed, notes-confirmed study session. Records are never
// modified after they are created and are identified by their position in
// the record sequence.
type Record struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	// Date is when the record was created, i.e. when the notes were confirmed.
	Date  time.Time `json:"date"`
	Name  string    `json:"name"`
	Notes string    `json:"notes"`
	// Duration is the active study time in seconds.
	Duration int `json:"duration"`
}

// NewRecord builds a record, applying the default name and trimming notes.
func NewRecord(
	duration int,
	startTime, endTime, createdAt time.Time,
	name, notes string,
) Record {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	return Record{
		Duration:  duration,
		StartTime: startTime,
		EndTime:   endTime,
		Date:      createdAt,
		Name:      name,
		Notes:     strings.TrimSpace(notes),
	}
}

// Valid reports whether the record satisfies the data model invariants.
func (r *Record) Valid() bool {
	return r.Duration > 0 && !r.EndTime.Before(r.StartTime)
}

// DisplayName returns the record name, falling back to DefaultName for
// records imported without one.
func (r *Record) DisplayName() string {
	if strings.TrimSpace(r.Name) == "" {
		return DefaultName
	}

	return r.Name
}
