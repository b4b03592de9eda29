package store

import (
	"encoding/json"
	"io"
	"log/slog"
	"slices"

	"github.com/studytimer/studytimer/internal/models"
)

// normalise applies the defaults the browser version applied when displaying
// records: a missing name and missing creation date.
func normalise(rec models.Record) models.Record {
	created := rec.Date
	if created.IsZero() {
		created = rec.EndTime
	}

	return models.NewRecord(
		rec.Duration,
		rec.StartTime,
		rec.EndTime,
		created,
		rec.Name,
		rec.Notes,
	)
}

// Import appends the records in r, a JSON array in the persisted layout such
// as the studyRecords value exported from the browser version of the timer.
// Entries that break the record invariants are skipped. The collection is
// saved once, after all entries are read, and the number added is returned.
func (r *Records) Import(in io.Reader) (int, error) {
	var incoming []json.RawMessage

	err := json.NewDecoder(in).Decode(&incoming)
	if err != nil {
		return 0, errImportFormat.Wrap(err)
	}

	next := slices.Clone(r.records)

	for i, raw := range incoming {
		var rec models.Record

		err = json.Unmarshal(raw, &rec)
		if err != nil {
			slog.Warn("skipping unreadable record", slog.Int("position", i), slog.Any("error", err))
			continue
		}

		m := normalise(rec)
		if !m.Valid() {
			slog.Warn("skipping invalid record", slog.Int("position", i))
			continue
		}

		next = append(next, m)
	}

	added := len(next) - len(r.records)
	if added == 0 {
		return 0, nil
	}

	return added, r.persist(next)
}

// Export writes all records as an indented JSON array.
func (r *Records) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r.records)
}
