package timer

import (
	"fmt"
	"strings"

	"github.com/studytimer/studytimer/internal/timeutil"
	"github.com/studytimer/studytimer/stats"
)

const panelRecords = 10

func (t *Timer) statusView() string {
	var text string

	switch t.state.Status() {
	case Running:
		text = "Studying"
	case Paused:
		text = "[Paused]"
	default:
		text = "Ready"
	}

	if label := t.state.Label(); label != "" && t.state.Status() != Idle {
		text += ": " + label
	}

	return t.style.Secondary.Render(text)
}

func (t *Timer) inputView(i int, title string) string {
	value := t.inputs[i].Value()

	if !t.state.Controls().InputsEnabled {
		if value == "" {
			value = t.inputs[i].Placeholder
		}

		return t.style.Disabled.Render(title + " " + value)
	}

	return t.style.Hint.Render(title+" ") + t.inputs[i].View()
}

func (t *Timer) inputsView() string {
	var s strings.Builder

	s.WriteString(t.inputView(hoursInput, "Hours"))
	s.WriteString("  ")
	s.WriteString(t.inputView(minutesInput, "Minutes"))
	s.WriteString("  ")
	s.WriteString(t.inputView(secondsInput, "Seconds"))
	s.WriteString("\n")
	s.WriteString(t.inputView(labelInput, "Label"))

	return s.String()
}

// percent returns the completed fraction of the countdown.
func (t *Timer) percent() float64 {
	length := t.state.Length()
	if length == 0 {
		return 0
	}

	return 1 - float64(t.state.Remaining())/float64(length)
}

func (t *Timer) notesView() string {
	c, _ := t.drafts.Pending()

	var s strings.Builder

	s.WriteString(t.style.Title.Render("Session complete"))
	s.WriteString("\n\n")
	s.WriteString(t.style.Secondary.Render(fmt.Sprintf(
		"You studied %s. Add some notes about this session.",
		timeutil.FormatDuration(c.Duration),
	)))
	s.WriteString("\n\n")
	s.WriteString(t.notes.View())
	s.WriteString(t.errView())
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView(t.keys.notesHelp()))

	return s.String()
}

func (t *Timer) errView() string {
	if t.err == nil {
		return ""
	}

	return "\n\n" + t.style.Error.Render(t.err.Error())
}

// panelView lists the latest records and the averages for each window.
func (t *Timer) panelView() string {
	var s strings.Builder

	now := t.state.now()
	layout := timeutil.DateTimeLayout(t.cfg.Display.TwentyFourHour)

	s.WriteString(t.style.Title.Render("Recent sessions"))
	s.WriteString("\n")

	n := 0

	for _, rec := range t.records.ListDescending() {
		if n == panelRecords {
			break
		}

		s.WriteString(fmt.Sprintf(
			"\n%s  %s  %s",
			t.style.Hint.Render(rec.EndTime.Format(layout)),
			rec.DisplayName(),
			t.style.Secondary.Render(timeutil.FormatDuration(rec.Duration)),
		))

		n++
	}

	if n == 0 {
		s.WriteString("\n" + t.style.Hint.Render("No sessions recorded yet"))
	}

	s.WriteString("\n\n")
	s.WriteString(t.style.Title.Render("Average study time"))
	s.WriteString("\n")

	for _, days := range t.cfg.Stats.Windows {
		summary := t.records.StatisticsOver(days, now)

		s.WriteString(fmt.Sprintf(
			"\n%s: %s",
			stats.WindowName(days),
			timeutil.FormatStat(summary.AverageSeconds),
		))
	}

	return t.style.Panel.Render(s.String())
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.style.Title.Render("studytimer"))
	s.WriteString("  ")
	s.WriteString(t.statusView())
	s.WriteString("\n\n")
	s.WriteString(t.style.Clock.Render(timeutil.FormatClock(t.state.Remaining())))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.percent()))
	s.WriteString("\n\n")
	s.WriteString(t.inputsView())

	if t.message != "" {
		s.WriteString("\n\n" + t.style.Hint.Render(t.message))
	}

	s.WriteString(t.errView())
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView(t.keys.timerHelp()))

	if t.panel {
		s.WriteString("\n\n" + t.panelView())
	}

	return s.String()
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	if _, ok := t.drafts.Pending(); ok {
		return t.style.Base.Render(t.notesView())
	}

	return t.style.Base.Render(t.timerView())
}
