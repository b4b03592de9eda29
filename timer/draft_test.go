package timer

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytimer/studytimer/internal/models"
	"github.com/studytimer/studytimer/store"
)

type fakeRecorder struct {
	err     error
	records []models.Record
}

func (f *fakeRecorder) Append(rec models.Record) error {
	if f.err != nil {
		return f.err
	}

	f.records = append(f.records, rec)

	return nil
}

func newTestStore(t *testing.T) (*store.Records, *store.Theme) {
	t.Helper()

	client, err := store.NewClient(filepath.Join(t.TempDir(), "studytimer.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	records, err := store.OpenRecords(client)
	require.NoError(t, err)

	return records, store.NewTheme(client)
}

func TestConfirmWithoutDraft(t *testing.T) {
	rec := &fakeRecorder{}
	d := NewDrafts(rec, nil)

	_, err := d.Confirm("notes")

	assert.ErrorIs(t, err, ErrNoDraft)
	assert.Empty(t, rec.records)
}

func TestConfirmBuildsRecord(t *testing.T) {
	rec := &fakeRecorder{}
	created := testNow.Add(time.Minute)
	d := NewDrafts(rec, func() time.Time { return created })

	d.Hold(Completion{
		Duration:  1500,
		StartTime: testNow.Add(-25 * time.Minute),
		EndTime:   testNow,
	})

	c, ok := d.Pending()
	require.True(t, ok)
	assert.Equal(t, 1500, c.Duration)

	got, err := d.Confirm("  chapter 4  ")
	require.NoError(t, err)

	expected := models.Record{
		Duration:  1500,
		StartTime: testNow.Add(-25 * time.Minute),
		EndTime:   testNow,
		Date:      created,
		Name:      models.DefaultName,
		Notes:     "chapter 4",
	}

	assert.Equal(t, expected, got)
	assert.Equal(t, []models.Record{expected}, rec.records)

	_, ok = d.Pending()
	assert.False(t, ok, "draft is cleared once confirmed")

	_, err = d.Confirm("again")
	assert.ErrorIs(t, err, ErrNoDraft)
	assert.Len(t, rec.records, 1)
}

func TestHoldReplacesDraft(t *testing.T) {
	rec := &fakeRecorder{}
	d := NewDrafts(rec, nil)

	d.Hold(Completion{Duration: 10, Label: "old"})
	d.Hold(Completion{Duration: 20, Label: "new"})

	got, err := d.Confirm("")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, 20, got.Duration)
}

func TestDiscard(t *testing.T) {
	rec := &fakeRecorder{}
	d := NewDrafts(rec, nil)

	assert.False(t, d.Discard())

	d.Hold(Completion{Duration: 10})
	assert.True(t, d.Discard())

	_, ok := d.Pending()
	assert.False(t, ok)
	assert.Empty(t, rec.records)
}

func TestConfirmFailureKeepsDraft(t *testing.T) {
	errWrite := errors.New("write failed")
	rec := &fakeRecorder{err: errWrite}
	d := NewDrafts(rec, nil)

	d.Hold(Completion{Duration: 10})

	_, err := d.Confirm("x")
	require.ErrorIs(t, err, errWrite)

	_, ok := d.Pending()
	assert.True(t, ok)

	rec.err = nil

	_, err = d.Confirm("x")
	require.NoError(t, err)
	assert.Len(t, rec.records, 1)
}

func TestCountdownToRecord(t *testing.T) {
	records, _ := newTestStore(t)
	s, clock := newTestState(t)
	d := NewDrafts(records, clock.Now)

	s.Configure(0, 0, 5)
	require.True(t, s.Start())

	completions := runTicks(s, clock, 5)
	require.Len(t, completions, 1)

	c := completions[0]
	assert.Equal(t, 5, c.Duration)
	assert.Equal(t, 5, s.Accumulated())

	d.Hold(c)

	_, err := d.Confirm("test")
	require.NoError(t, err)

	all := records.All()
	require.Len(t, all, 1)
	assert.Equal(t, "test", all[0].Notes)
	assert.Equal(t, 5, all[0].Duration)
	assert.Equal(t, models.DefaultName, all[0].Name)
	assert.Equal(t, testNow, all[0].StartTime)
	assert.Equal(t, testNow.Add(5*time.Second), all[0].EndTime)
}
