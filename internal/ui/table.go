package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		slog.Error("rendering table", slog.Any("error", err))
		pterm.Error.Printfln("Failed to output table: %s", err.Error())

		return
	}

	fmt.Fprintln(writer, str)
}
