package store

import (
	"encoding/json"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/studytimer/studytimer/internal/models"
	"github.com/studytimer/studytimer/stats"
)

const recordsKey = "studyRecords"

// Records is the ordered collection of completed sessions. Every mutation
// rewrites the whole sequence to the database; the in-memory copy only
// changes once the write succeeds. A single writer is assumed.
type Records struct {
	db      DB
	records []models.Record
}

// OpenRecords loads the saved records. Missing or malformed data yields an
// empty collection.
func OpenRecords(db DB) (*Records, error) {
	r := &Records{
		db:      db,
		records: []models.Record{},
	}

	b, err := db.Get(recordsKey)
	if err != nil {
		return nil, errReadRecords.Wrap(err)
	}

	if len(b) == 0 {
		return r, nil
	}

	var records []models.Record

	err = json.Unmarshal(b, &records)
	if err != nil {
		slog.Warn(
			"discarding malformed records",
			slog.Any("error", err),
			slog.Int("bytes", len(b)),
		)

		return r, nil
	}

	if records != nil {
		r.records = records
	}

	return r, nil
}

func (r *Records) persist(records []models.Record) error {
	b, err := json.Marshal(records)
	if err != nil {
		return errSaveRecords.Wrap(err)
	}

	err = r.db.Put(recordsKey, b)
	if err != nil {
		return errSaveRecords.Wrap(err)
	}

	r.records = records

	return nil
}

// Append adds rec to the end of the sequence and saves it.
func (r *Records) Append(rec models.Record) error {
	if !rec.Valid() {
		return ErrInvalidRecord
	}

	next := append(slices.Clip(r.records), rec)

	err := r.persist(next)
	if err != nil {
		return err
	}

	slog.Info(
		"record appended",
		slog.String("name", rec.Name),
		slog.Int("duration", rec.Duration),
		slog.Int("count", len(r.records)),
	)

	return nil
}

// DeleteAt removes the record at the 0-based position index. An index out of
// range is ignored and reported as false.
func (r *Records) DeleteAt(index int) (bool, error) {
	if index < 0 || index >= len(r.records) {
		return false, nil
	}

	next := slices.Delete(slices.Clone(r.records), index, index+1)

	err := r.persist(next)
	if err != nil {
		return false, err
	}

	slog.Info("record deleted", slog.Int("index", index))

	return true, nil
}

// ListDescending yields records newest first, paired with their position in
// insertion order. The sequence may be iterated any number of times.
func (r *Records) ListDescending() iter.Seq2[int, models.Record] {
	return func(yield func(int, models.Record) bool) {
		for i := len(r.records) - 1; i >= 0; i-- {
			// the consumer may have deleted records mid-iteration
			if i >= len(r.records) {
				continue
			}

			if !yield(i, r.records[i]) {
				return
			}
		}
	}
}

// StatisticsOver summarises the records created within the trailing window.
func (r *Records) StatisticsOver(windowDays int, now time.Time) stats.Summary {
	return stats.Compute(r.records, windowDays, now)
}

// All returns a copy of the records in insertion order.
func (r *Records) All() []models.Record {
	return slices.Clone(r.records)
}

func (r *Records) Len() int {
	return len(r.records)
}
