// Package timer operates the study countdown: the session state machine, the
// completion drafts awaiting notes, and the terminal interface driving them
package timer

import (
	"strings"
	"time"

	"github.com/studytimer/studytimer/internal/timeutil"
)

// Status is the current mode of the countdown.
type Status int

const (
	Idle Status = iota
	Running
	Paused
)

const (
	maxHours   = 23
	maxMinutes = 59
	maxSeconds = 59
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Input is the countdown configuration and session label as entered by the
// user. The durations are stored clamped.
type Input struct {
	Label   string
	Hours   int
	Minutes int
	Seconds int
}

// Total returns the configured countdown length in seconds.
func (in Input) Total() int {
	return in.Hours*timeutil.SecondsInAnHour +
		in.Minutes*timeutil.SecondsInAMinute +
		in.Seconds
}

// Completion describes a countdown that ran to zero.
type Completion struct {
	StartTime time.Time
	EndTime   time.Time
	Label     string
	// Duration is the active time in seconds, excluding pauses.
	Duration int
}

// State is the countdown state machine: Idle -> Running <-> Paused, and
// Running -> Idle when the countdown completes. It is driven by one Tick per
// second while Running and is not safe for concurrent use.
type State struct {
	sessionStart time.Time
	now          func() time.Time
	label        string
	input        Input
	remaining    int
	accumulated  int
	status       Status
}

// Option configures a State.
type Option func(*State)

// WithClock sets the time source used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// New returns an Idle state with nothing configured.
func New(opts ...Option) *State {
	s := &State{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Configure sets the countdown length. Each field is clamped to its natural
// range. The inputs are locked once a session starts, so Configure only has
// an effect while Idle.
func (s *State) Configure(hours, minutes, seconds int) {
	if s.status != Idle {
		return
	}

	s.input.Hours = timeutil.Clamp(hours, 0, maxHours)
	s.input.Minutes = timeutil.Clamp(minutes, 0, maxMinutes)
	s.input.Seconds = timeutil.Clamp(seconds, 0, maxSeconds)

	s.remaining = s.input.Total()
}

// SetLabel updates the label input. It is ignored unless Idle.
func (s *State) SetLabel(label string) {
	if s.status != Idle {
		return
	}

	s.input.Label = label
}

// Start begins a new session from Idle or resumes a paused one, reporting
// whether the state changed. Nothing happens if the countdown is already
// running or no time is configured.
func (s *State) Start() bool {
	if s.status == Running {
		return false
	}

	if s.remaining == 0 {
		s.remaining = s.input.Total()
	}

	if s.remaining == 0 {
		return false
	}

	if s.status == Idle {
		s.accumulated = 0
		s.sessionStart = s.now()
		s.label = strings.TrimSpace(s.input.Label)
	}

	s.status = Running

	return true
}

// Tick advances a running countdown by one second. When the countdown
// reaches zero the state returns to Idle and the completed session is
// returned with ok set. Ticks outside Running are ignored, so a countdown
// completes exactly once.
func (s *State) Tick() (c Completion, ok bool) {
	if s.status != Running {
		return Completion{}, false
	}

	if s.remaining > 0 {
		s.remaining--
		s.accumulated++
	}

	if s.remaining > 0 {
		return Completion{}, false
	}

	s.status = Idle
	s.input.Label = ""

	if s.accumulated == 0 {
		return Completion{}, false
	}

	return Completion{
		Duration:  s.accumulated,
		StartTime: s.sessionStart,
		EndTime:   s.now(),
		Label:     s.label,
	}, true
}

// Pause suspends a running countdown, reporting whether it did.
func (s *State) Pause() bool {
	if s.status != Running {
		return false
	}

	s.status = Paused

	return true
}

// Reset abandons the current session and reloads the configured length.
func (s *State) Reset() {
	s.status = Idle
	s.accumulated = 0
	s.sessionStart = time.Time{}
	s.label = ""
	s.input.Label = ""
	s.remaining = s.input.Total()
}

func (s *State) Status() Status {
	return s.status
}

// Remaining returns the seconds left in the countdown.
func (s *State) Remaining() int {
	return s.remaining
}

// Accumulated returns the active seconds of the current or last session.
func (s *State) Accumulated() int {
	return s.accumulated
}

// SessionStart returns when the current session started, or the zero time.
func (s *State) SessionStart() time.Time {
	return s.sessionStart
}

// Label returns the label locked in when the session started.
func (s *State) Label() string {
	return s.label
}

func (s *State) Input() Input {
	return s.input
}

// Length returns the configured countdown length in seconds.
func (s *State) Length() int {
	return s.input.Total()
}

// Controls describes which actions the interface should offer. It is
// derived from the status on every call and never stored.
type Controls struct {
	StartText     string
	CanStart      bool
	CanPause      bool
	CanReset      bool
	InputsEnabled bool
}

func (s *State) Controls() Controls {
	switch s.status {
	case Running:
		return Controls{
			StartText: "Running...",
			CanPause:  true,
			CanReset:  true,
		}
	case Paused:
		return Controls{
			StartText: "Resume",
			CanStart:  true,
			CanReset:  true,
		}
	default:
		return Controls{
			StartText:     "Start",
			CanStart:      true,
			CanReset:      true,
			InputsEnabled: true,
		}
	}
}
