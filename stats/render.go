package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/studytimer/studytimer/internal/timeutil"
	"github.com/studytimer/studytimer/internal/ui"
)

const (
	barChartChar  = "▇"
	noRecordsMsg  = "No study sessions recorded yet."
	reportingDate = "January 02, 2006"
)

func (r *Report) averagesTable() [][]string {
	data := [][]string{
		{"WINDOW", "SESSIONS", "TOTAL", "AVERAGE"},
	}

	for _, s := range r.Windows {
		data = append(data, []string{
			WindowName(s.WindowDays),
			fmt.Sprintf("%d", s.Count),
			timeutil.FormatStat(s.TotalSeconds),
			ui.Green(timeutil.FormatStat(s.AverageSeconds)),
		})
	}

	return data
}

func (r *Report) labelChart() (string, error) {
	if len(r.Labels) == 0 {
		return "", nil
	}

	bars := make(pterm.Bars, 0, len(r.Labels))

	for _, l := range r.Labels {
		bars = append(bars, pterm.Bar{
			Label: l.Label,
			Value: l.TotalSeconds / timeutil.SecondsInAMinute,
		})
	}

	chart, err := pterm.DefaultBarChart.
		WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return "", err
	}

	return ui.Blue("\nSessions by name (minutes)\n") + chart, nil
}

// Render writes a human readable report to w.
func (r *Report) Render(w io.Writer) error {
	empty := true

	for _, s := range r.Windows {
		if s.Count > 0 {
			empty = false
			break
		}
	}

	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Study statistics as of %s", r.GeneratedAt.Format(reportingDate))

	var b strings.Builder

	b.WriteString(header)

	if empty {
		b.WriteString(noRecordsMsg + "\n")
	}

	ui.PrintTable(r.averagesTable(), &b)

	chart, err := r.labelChart()
	if err != nil {
		return err
	}

	b.WriteString(chart)

	_, err = fmt.Fprintln(w, strings.TrimSpace(b.String()))

	return err
}
