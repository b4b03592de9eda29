package timer

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studytimer/studytimer/internal/config"
	"github.com/studytimer/studytimer/store"
)

const (
	hoursInput = iota
	minutesInput
	secondsInput
	labelInput
)

type alertsDoneMsg struct {
	err error
}

// Timer is the interactive countdown. It owns a State and the Drafts that
// hold completed sessions until their notes are confirmed.
type Timer struct {
	err      error
	ambient  ambientPlayer
	state    *State
	drafts   *Drafts
	records  *store.Records
	theme    *store.Theme
	alerts   *Alerts
	cfg      *config.Config
	keys     keymap
	style    Style
	inputs   []textinput.Model
	notes    textinput.Model
	help     help.Model
	progress progress.Model
	clock    btimer.Model
	message  string
	focus    int
	dark     bool
	panel    bool
	quitting bool
}

func newNumberInput(placeholder string, value int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 2
	ti.Width = 3
	ti.SetValue(strconv.Itoa(value))
	ti.CursorEnd()

	return ti
}

// NewTimer returns a timer configured from cfg that saves completed sessions to
// records.
func NewTimer(
	cfg *config.Config,
	records *store.Records,
	theme *store.Theme,
	opts ...Option,
) *Timer {
	state := New(opts...)

	label := textinput.New()
	label.Prompt = ""
	label.Placeholder = "What are you studying?"
	label.CharLimit = 120
	label.Width = 30
	label.SetValue(cfg.CLI.Label)
	label.CursorEnd()

	notes := textinput.New()
	notes.Prompt = "> "
	notes.Placeholder = "Notes (optional)"
	notes.CharLimit = 500
	notes.Width = 40

	t := &Timer{
		state:   state,
		drafts:  NewDrafts(records, state.now),
		records: records,
		theme:   theme,
		alerts:  NewAlerts(cfg),
		cfg:     cfg,
		keys:    newKeymap(),
		help:    help.New(),
		notes:   notes,
		inputs: []textinput.Model{
			newNumberInput("hh", cfg.Timer.Hours),
			newNumberInput("mm", cfg.Timer.Minutes),
			newNumberInput("ss", cfg.Timer.Seconds),
			label,
		},
	}

	if cfg.Sound.Ambient != "" {
		t.ambient = NewAmbient(cfg.Sound.Ambient)
	}

	t.dark = cfg.Display.DarkTheme
	if theme != nil {
		t.dark = theme.Dark(cfg.Display.DarkTheme)
	}

	t.style = newStyle(t.dark)
	t.progress = t.style.newProgress(maxWidth)

	t.syncInputs()
	t.inputs[t.focus].Focus()
	t.keys.apply(state.Controls())

	return t
}

// State exposes the underlying state machine.
func (t *Timer) State() *State {
	return t.state
}

// Drafts exposes the completed session awaiting notes, if any.
func (t *Timer) Drafts() *Drafts {
	return t.drafts
}

func (t *Timer) Init() tea.Cmd {
	return textinput.Blink
}

// runClock replaces the clock with one counting down what is left of the
// session. Ticks of the previous clock no longer match its ID.
func (t *Timer) runClock() tea.Cmd {
	t.clock = btimer.New(time.Duration(t.state.Remaining()) * time.Second)

	return t.clock.Init()
}

// stopClock stops the clock. Ticks already scheduled are ignored.
func (t *Timer) stopClock() tea.Cmd {
	if !t.clock.Running() {
		return nil
	}

	return t.clock.Stop()
}

// parseField reads a numeric input. Empty or non-numeric text counts as zero.
func parseField(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return n
}

// syncInputs pushes the input values into the state and writes the clamped
// durations back so the fields show what will actually run.
func (t *Timer) syncInputs() {
	if !t.state.Controls().InputsEnabled {
		return
	}

	t.state.Configure(
		parseField(t.inputs[hoursInput].Value()),
		parseField(t.inputs[minutesInput].Value()),
		parseField(t.inputs[secondsInput].Value()),
	)
	t.state.SetLabel(t.inputs[labelInput].Value())

	in := t.state.Input()

	for i, v := range []int{in.Hours, in.Minutes, in.Seconds} {
		value := t.inputs[i].Value()
		if value == "" {
			continue
		}

		if parseField(value) != v {
			t.inputs[i].SetValue(strconv.Itoa(v))
			t.inputs[i].CursorEnd()
		}
	}
}

func (t *Timer) focusInput(i int) tea.Cmd {
	n := len(t.inputs)
	t.focus = ((i % n) + n) % n

	for j := range t.inputs {
		t.inputs[j].Blur()
	}

	return t.inputs[t.focus].Focus()
}

func (t *Timer) blurInputs() {
	for j := range t.inputs {
		t.inputs[j].Blur()
	}
}

func (t *Timer) fireAlerts(c Completion) tea.Cmd {
	alerts := t.alerts

	return func() tea.Msg {
		return alertsDoneMsg{err: alerts.Fire(c)}
	}
}
