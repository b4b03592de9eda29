package timer

import (
	"time"

	"github.com/studytimer/studytimer/internal/models"
)

// Recorder saves confirmed sessions.
type Recorder interface {
	Append(rec models.Record) error
}

// Drafts holds a completed session until the user supplies notes for it.
// Nothing reaches the Recorder until the draft is confirmed.
type Drafts struct {
	rec     Recorder
	now     func() time.Time
	pending *Completion
}

// NewDrafts returns an empty draft holder saving to rec. A nil now uses
// time.Now.
func NewDrafts(rec Recorder, now func() time.Time) *Drafts {
	if now == nil {
		now = time.Now
	}

	return &Drafts{
		rec: rec,
		now: now,
	}
}

// Hold stores c as the pending draft, replacing any earlier one.
func (d *Drafts) Hold(c Completion) {
	d.pending = &c
}

// Pending returns the draft awaiting notes, if any.
func (d *Drafts) Pending() (Completion, bool) {
	if d.pending == nil {
		return Completion{}, false
	}

	return *d.pending, true
}

// Confirm turns the pending draft into a record with the given notes and
// saves it. The draft is kept if saving fails so that it can be retried.
func (d *Drafts) Confirm(notes string) (models.Record, error) {
	if d.pending == nil {
		return models.Record{}, ErrNoDraft
	}

	c := d.pending

	rec := models.NewRecord(
		c.Duration,
		c.StartTime,
		c.EndTime,
		d.now(),
		c.Label,
		notes,
	)

	err := d.rec.Append(rec)
	if err != nil {
		return models.Record{}, err
	}

	d.pending = nil

	return rec, nil
}

// Discard drops the pending draft, reporting whether there was one.
func (d *Drafts) Discard() bool {
	had := d.pending != nil
	d.pending = nil

	return had
}
