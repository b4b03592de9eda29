package app

import (
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/studytimer/studytimer/store"
)

// parseIDs converts record IDs from the command line into 0-based indexes,
// highest first and without duplicates.
func parseIDs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errNoIDs
	}

	indexes := make([]int, 0, len(args))

	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id < 1 {
			return nil, errInvalidID.Fmt(arg)
		}

		indexes = append(indexes, id-1)
	}

	slices.Sort(indexes)
	indexes = slices.Compact(indexes)
	slices.Reverse(indexes)

	return indexes, nil
}

// confirmDelete asks before deleting records permanently.
func confirmDelete() (bool, error) {
	var ok bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("The above sessions will be deleted permanently").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	)

	err := form.Run()

	return ok, err
}

// deleteRecords deletes the records at indexes, which must be sorted from
// highest to lowest so that earlier deletions do not shift later ones. IDs
// past the end of the store are reported and skipped. The remaining records
// are listed and confirm is asked first unless it is nil. It returns the
// number of records deleted.
func deleteRecords(
	w io.Writer,
	records *store.Records,
	indexes []int,
	twentyFourHour bool,
	confirm func() (bool, error),
) (int, error) {
	all := records.All()

	rows := make([]recordRow, 0, len(indexes))
	found := make([]int, 0, len(indexes))

	for _, i := range indexes {
		if i >= len(all) {
			pterm.Info.Printfln("No record with ID %d, skipping", i+1)
			continue
		}

		found = append(found, i)
		rows = append(rows, recordRow{
			ID:     i + 1,
			Record: all[i],
		})
	}

	if len(found) == 0 {
		pterm.Info.Println("Nothing was deleted")
		return 0, nil
	}

	printRecordsTable(w, rows, twentyFourHour)

	if confirm != nil {
		ok, err := confirm()
		if err != nil {
			return 0, err
		}

		if !ok {
			pterm.Info.Println("Nothing was deleted")
			return 0, nil
		}
	}

	var n int

	for _, i := range found {
		deleted, err := records.DeleteAt(i)
		if err != nil {
			return n, err
		}

		if deleted {
			n++
		}
	}

	return n, nil
}
