package timer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/studytimer/studytimer/internal/timeutil"
)

// handleTick advances the countdown for ticks of the live clock. Ticks of a
// stopped or replaced clock, and ticks arriving while the countdown is not
// running, are dropped.
func (t *Timer) handleTick(msg btimer.TickMsg) (tea.Model, tea.Cmd) {
	if msg.ID != t.clock.ID() || !t.clock.Running() ||
		t.state.Status() != Running {
		return t, nil
	}

	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	c, completed := t.state.Tick()
	if completed {
		return t, t.complete(c)
	}

	if t.state.Status() != Running {
		t.stopAmbient()
		t.keys.apply(t.state.Controls())

		return t, t.stopClock()
	}

	return t, cmd
}

// playAmbient starts or resumes the ambient loop, if one is configured.
func (t *Timer) playAmbient() {
	if t.ambient == nil {
		return
	}

	err := t.ambient.Play()
	if err != nil {
		t.err = err
		slog.Error("unable to play ambient sound", slog.Any("error", err))
	}
}

func (t *Timer) pauseAmbient() {
	if t.ambient != nil {
		t.ambient.Pause()
	}
}

// stopAmbient silences the ambient loop and rewinds it.
func (t *Timer) stopAmbient() {
	if t.ambient == nil {
		return
	}

	err := t.ambient.Stop()
	if err != nil {
		slog.Error("unable to stop ambient sound", slog.Any("error", err))
	}
}

// complete holds c as a draft and asks for notes.
func (t *Timer) complete(c Completion) tea.Cmd {
	stop := t.stopClock()
	t.pauseAmbient()
	t.drafts.Hold(c)
	t.inputs[labelInput].SetValue("")
	t.blurInputs()
	t.notes.Reset()
	t.message = ""
	t.err = nil
	t.keys.apply(t.state.Controls())

	slog.Info(
		"session complete",
		slog.Int("duration", c.Duration),
		slog.String("label", c.Label),
	)

	return tea.Batch(stop, t.notes.Focus(), t.fireAlerts(c))
}

// handleNotesKey handles keys while a completed session awaits notes.
func (t *Timer) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.saveNotes):
		return t, t.confirm(t.notes.Value())

	case key.Matches(msg, t.keys.skipNotes):
		return t, t.confirm("")

	case key.Matches(msg, t.keys.discard):
		t.drafts.Discard()
		t.message = "Session discarded"
		t.err = nil

		return t, t.endNotes()
	}

	var cmd tea.Cmd
	t.notes, cmd = t.notes.Update(msg)

	return t, cmd
}

func (t *Timer) confirm(notes string) tea.Cmd {
	rec, err := t.drafts.Confirm(notes)
	if err != nil {
		t.err = err
		slog.Error("unable to save session", slog.Any("error", err))

		return nil
	}

	t.err = nil
	t.message = fmt.Sprintf(
		"Saved %q (%s)",
		rec.Name,
		timeutil.FormatDuration(rec.Duration),
	)

	return t.endNotes()
}

func (t *Timer) endNotes() tea.Cmd {
	t.notes.Reset()
	t.notes.Blur()

	return t.focusInput(t.focus)
}

func (t *Timer) start() tea.Cmd {
	t.syncInputs()

	if !t.state.Start() {
		return nil
	}

	t.message = ""
	t.err = nil
	t.blurInputs()
	t.keys.apply(t.state.Controls())
	t.playAmbient()

	return t.runClock()
}

func (t *Timer) toggleTheme() {
	dark := !t.dark

	if t.theme != nil {
		var err error

		dark, err = t.theme.Toggle(t.cfg.Display.DarkTheme)
		if err != nil {
			t.err = err
			return
		}
	}

	t.dark = dark
	t.style = newStyle(dark)
	t.progress = t.style.newProgress(t.progress.Width)
}

func (t *Timer) quit() (tea.Model, tea.Cmd) {
	if t.drafts.Discard() {
		slog.Info("discarded session awaiting notes on exit")
	}

	if t.ambient != nil {
		err := t.ambient.Close()
		if err != nil {
			slog.Error("unable to close ambient sound", slog.Any("error", err))
		}
	}

	t.quitting = true

	return t, tea.Quit
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, t.keys.quit) {
		return t.quit()
	}

	if _, ok := t.drafts.Pending(); ok {
		return t.handleNotesKey(msg)
	}

	switch {
	case key.Matches(msg, t.keys.start):
		return t, t.start()

	case key.Matches(msg, t.keys.pause):
		if !t.state.Pause() {
			return t, nil
		}

		t.pauseAmbient()
		t.keys.apply(t.state.Controls())

		return t, t.stopClock()

	case key.Matches(msg, t.keys.reset):
		t.state.Reset()
		t.stopAmbient()
		t.inputs[labelInput].SetValue("")
		t.syncInputs()
		t.keys.apply(t.state.Controls())

		return t, tea.Batch(t.stopClock(), t.focusInput(t.focus))

	case key.Matches(msg, t.keys.next):
		return t, t.focusInput(t.focus + 1)

	case key.Matches(msg, t.keys.prev):
		return t, t.focusInput(t.focus - 1)

	case key.Matches(msg, t.keys.theme):
		t.toggleTheme()

		return t, nil

	case key.Matches(msg, t.keys.records):
		t.panel = !t.panel

		return t, nil
	}

	if !t.state.Controls().InputsEnabled {
		return t, nil
	}

	var cmd tea.Cmd
	t.inputs[t.focus], cmd = t.inputs[t.focus].Update(msg)
	t.syncInputs()

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("update", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case btimer.TickMsg:
		return t.handleTick(msg)

	case btimer.StartStopMsg:
		var cmd tea.Cmd
		t.clock, cmd = t.clock.Update(msg)

		return t, cmd

	case btimer.TimeoutMsg:
		return t, nil

	case alertsDoneMsg:
		if msg.err != nil {
			t.message = "Some alerts failed, see the log for details"
		}

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	var cmd tea.Cmd

	if _, ok := t.drafts.Pending(); ok {
		t.notes, cmd = t.notes.Update(msg)
	} else if t.state.Controls().InputsEnabled {
		t.inputs[t.focus], cmd = t.inputs[t.focus].Update(msg)
	}

	return t, cmd
}
