package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/studytimer/studytimer/internal/models"
	"github.com/studytimer/studytimer/internal/timeutil"
	"github.com/studytimer/studytimer/internal/ui"
	"github.com/studytimer/studytimer/store"
)

const (
	noRecordsMsg = "No sessions found for the specified time range"
)

// recordRow is a record with the ID used to refer to it on the command line:
// its position in the saved sequence, counting from one.
type recordRow struct {
	models.Record
	ID int `json:"id"`
}

// collectRows returns the records newest first, skipping those started
// before since. A positive limit caps the number of rows.
func collectRows(records *store.Records, since time.Time, limit int) []recordRow {
	var rows []recordRow

	for i, rec := range records.ListDescending() {
		if limit > 0 && len(rows) == limit {
			break
		}

		if !since.IsZero() && rec.StartTime.Before(since) {
			continue
		}

		rows = append(rows, recordRow{
			ID:     i + 1,
			Record: rec,
		})
	}

	return rows
}

// printRecordsTable prints a table of records to w.
func printRecordsTable(w io.Writer, rows []recordRow, twentyFourHour bool) {
	layout := timeutil.DateTimeLayout(twentyFourHour)

	tableBody := make([][]string, len(rows))

	for i := range rows {
		row := rows[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", row.ID),
			row.StartTime.Format(layout),
			row.EndTime.Format(layout),
			ui.Green(timeutil.FormatDuration(row.Duration)),
			row.DisplayName(),
			row.Notes,
		}
	}

	tableBody = append([][]string{
		{"ID", "START DATE", "END DATE", "DURATION", "NAME", "NOTES"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listRecords prints out a table of records.
func listRecords(w io.Writer, rows []recordRow, twentyFourHour bool) {
	if len(rows) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	printRecordsTable(w, rows, twentyFourHour)
}

func printRowsJSON(w io.Writer, rows []recordRow) error {
	if rows == nil {
		rows = []recordRow{}
	}

	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
