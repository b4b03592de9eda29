package timer

import (
	"testing"
	"time"

	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytimer/studytimer/internal/config"
	"github.com/studytimer/studytimer/internal/testutil"
	"github.com/studytimer/studytimer/store"
)

type testTimer struct {
	*Timer
	records *store.Records
	theme   *store.Theme
	wall    *testutil.Clock
}

func newTestTimer(t *testing.T, hours, minutes, seconds int) *testTimer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Timer = config.TimerConfig{
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}
	cfg.Stats.Windows = []int{1, 7, 30}

	records, theme := newTestStore(t)
	wall := testutil.NewClock(testNow)

	return &testTimer{
		Timer:   NewTimer(cfg, records, theme, WithClock(wall.Now)),
		records: records,
		theme:   theme,
		wall:    wall,
	}
}

func (tt *testTimer) send(msg tea.Msg) tea.Cmd {
	_, cmd := tt.Update(msg)
	return cmd
}

func (tt *testTimer) key(k tea.KeyType) tea.Cmd {
	return tt.send(tea.KeyMsg{Type: k})
}

func (tt *testTimer) typeText(s string) {
	tt.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// tickN delivers n ticks of the live clock.
func (tt *testTimer) tickN(n int) {
	for range n {
		tt.wall.Advance(time.Second)
		tt.send(btimer.TickMsg{ID: tt.clock.ID()})
	}
}

// settle delivers the StartStopMsg produced by cmd, as the runtime would.
func (tt *testTimer) settle(cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	if msg, ok := cmd().(btimer.StartStopMsg); ok {
		tt.send(msg)
	}
}

type ambientRecorder struct {
	playErr error
	calls   []string
}

func (a *ambientRecorder) Play() error {
	a.calls = append(a.calls, "play")
	return a.playErr
}

func (a *ambientRecorder) Pause() {
	a.calls = append(a.calls, "pause")
}

func (a *ambientRecorder) Stop() error {
	a.calls = append(a.calls, "stop")
	return nil
}

func (a *ambientRecorder) Close() error {
	a.calls = append(a.calls, "close")
	return nil
}

func TestNewTimerUsesConfig(t *testing.T) {
	tt := newTestTimer(t, 0, 25, 0)

	assert.Equal(t, 1500, tt.State().Remaining())
	assert.Equal(t, "25", tt.inputs[minutesInput].Value())
	assert.Contains(t, tt.View(), "00:25:00")
}

func TestTypingConfiguresState(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 0)

	tt.key(tea.KeyBackspace)
	tt.typeText("1")
	assert.Equal(t, 3600, tt.State().Remaining())

	tt.key(tea.KeyTab)
	tt.key(tea.KeyBackspace)
	tt.typeText("75")

	assert.Equal(t, "59", tt.inputs[minutesInput].Value())
	assert.Equal(t, 3600+59*60, tt.State().Remaining())

	tt.key(tea.KeyTab)
	tt.key(tea.KeyTab)
	tt.typeText("Organic chemistry")
	assert.Equal(t, "Organic chemistry", tt.State().Input().Label)
}

func TestStartAndPause(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 10)

	cmd := tt.key(tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, Running, tt.State().Status())

	tt.tickN(3)
	assert.Equal(t, 7, tt.State().Remaining())

	first := tt.clock.ID()

	tt.key(tea.KeySpace)
	assert.Equal(t, Paused, tt.State().Status())
	assert.Contains(t, tt.View(), "[Paused]")

	tt.send(btimer.TickMsg{ID: first})
	assert.Equal(t, 7, tt.State().Remaining(), "no clock runs while paused")

	cmd = tt.key(tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, Running, tt.State().Status())
	assert.NotEqual(t, first, tt.clock.ID())

	tt.send(btimer.TickMsg{ID: first})
	assert.Equal(t, 7, tt.State().Remaining(), "ticks of an old clock are dropped")

	tt.tickN(2)
	assert.Equal(t, 5, tt.State().Remaining())
}

func TestPauseStopsClock(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 10)

	tt.key(tea.KeyEnter)
	tt.tickN(2)
	assert.True(t, tt.clock.Running())
	assert.Equal(t, 8*time.Second, tt.clock.Timeout)

	tt.settle(tt.key(tea.KeySpace))
	assert.False(t, tt.clock.Running())

	tt.key(tea.KeyEnter)
	assert.True(t, tt.clock.Running())
	assert.Equal(t, 8*time.Second, tt.clock.Timeout, "resumes with what is left")
}

func TestStartWithoutTime(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 0)

	cmd := tt.key(tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, Idle, tt.State().Status())
}

func TestInputsLockedWhileRunning(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 10)
	tt.key(tea.KeyEnter)

	tt.typeText("5")

	assert.Equal(t, "0", tt.inputs[hoursInput].Value())
	assert.Equal(t, 10, tt.State().Length())
}

func TestResetKey(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 10)
	tt.key(tea.KeyTab)
	tt.key(tea.KeyTab)
	tt.key(tea.KeyTab)
	tt.typeText("Latin")
	tt.key(tea.KeyEnter)
	tt.tickN(4)

	tt.key(tea.KeyCtrlR)

	assert.Equal(t, Idle, tt.State().Status())
	assert.Zero(t, tt.State().Accumulated())
	assert.Equal(t, 10, tt.State().Remaining())
	assert.Empty(t, tt.inputs[labelInput].Value())

	tt.tickN(2)
	assert.Equal(t, 10, tt.State().Remaining())
}

func TestCompletionWithNotes(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 5)

	tt.key(tea.KeyEnter)
	tt.tickN(5)

	c, ok := tt.Drafts().Pending()
	require.True(t, ok)
	assert.Equal(t, 5, c.Duration)
	assert.Equal(t, 5, tt.State().Accumulated())
	assert.Contains(t, tt.View(), "Session complete")
	assert.Zero(t, tt.records.Len(), "nothing is saved before confirmation")

	tt.tickN(3)
	_, ok = tt.Drafts().Pending()
	assert.True(t, ok)

	tt.typeText("test")
	tt.key(tea.KeyEnter)

	_, ok = tt.Drafts().Pending()
	assert.False(t, ok)

	all := tt.records.All()
	require.Len(t, all, 1)
	assert.Equal(t, "test", all[0].Notes)
	assert.Equal(t, 5, all[0].Duration)
	assert.Contains(t, tt.View(), "Saved")
}

func TestSkipNotes(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 2)

	tt.key(tea.KeyEnter)
	tt.tickN(2)
	tt.typeText("half written")
	tt.key(tea.KeyEsc)

	all := tt.records.All()
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Notes)
}

func TestDiscardDraft(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 2)

	tt.key(tea.KeyEnter)
	tt.tickN(2)
	tt.key(tea.KeyCtrlX)

	_, ok := tt.Drafts().Pending()
	assert.False(t, ok)
	assert.Zero(t, tt.records.Len())
	assert.Equal(t, Idle, tt.State().Status())
}

func TestQuitDiscardsDraft(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 1)

	tt.key(tea.KeyEnter)
	tt.tickN(1)

	cmd := tt.key(tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, ok := tt.Drafts().Pending()
	assert.False(t, ok)
	assert.Zero(t, tt.records.Len())
	assert.Empty(t, tt.View())
}

func TestAmbientFollowsCountdown(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 3)
	ambient := &ambientRecorder{}
	tt.ambient = ambient

	tt.key(tea.KeyEnter)
	tt.tickN(1)
	tt.key(tea.KeySpace)
	tt.key(tea.KeyEnter)
	tt.key(tea.KeyCtrlR)
	assert.Equal(t, []string{"play", "pause", "play", "stop"}, ambient.calls)

	ambient.calls = nil

	tt.key(tea.KeyEnter)
	tt.tickN(3)
	_, ok := tt.Drafts().Pending()
	require.True(t, ok)
	assert.Equal(t, []string{"play", "pause"}, ambient.calls)

	tt.key(tea.KeyCtrlC)
	assert.Equal(t, []string{"play", "pause", "close"}, ambient.calls)
}

func TestAmbientErrorShown(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 3)
	tt.ambient = &ambientRecorder{playErr: errInvalidSoundFormat.Fmt("lofi.aac")}

	tt.key(tea.KeyEnter)

	assert.Equal(t, Running, tt.State().Status(), "the countdown runs without sound")
	assert.ErrorIs(t, tt.err, errInvalidSoundFormat)
	assert.Contains(t, tt.View(), "lofi.aac")
}

func TestNewTimerAmbientFromConfig(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 3)
	assert.Nil(t, tt.ambient)

	cfg := &config.Config{}
	cfg.Timer.Seconds = 3
	cfg.Sound.Ambient = "rain.ogg"

	timer := NewTimer(cfg, tt.records, tt.theme)
	require.IsType(t, &Ambient{}, timer.ambient)
	assert.Equal(t, "rain.ogg", timer.ambient.(*Ambient).path)
}

func TestToggleTheme(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 5)

	tt.key(tea.KeyCtrlT)
	assert.True(t, tt.dark)
	assert.True(t, tt.theme.Dark(false))

	tt.key(tea.KeyCtrlT)
	assert.False(t, tt.dark)
	assert.False(t, tt.theme.Dark(true))
}

func TestRecordsPanel(t *testing.T) {
	tt := newTestTimer(t, 0, 0, 1)

	tt.key(tea.KeyCtrlL)
	view := tt.View()
	assert.Contains(t, view, "No sessions recorded yet")
	assert.Contains(t, view, "Weekly")

	tt.key(tea.KeyTab)
	tt.key(tea.KeyTab)
	tt.key(tea.KeyTab)
	tt.typeText("Geometry")
	tt.key(tea.KeyEnter)
	tt.tickN(1)
	tt.key(tea.KeyEnter)

	view = tt.View()
	assert.Contains(t, view, "Geometry")
	assert.Contains(t, view, "1s")

	tt.key(tea.KeyCtrlL)
	assert.NotContains(t, tt.View(), "Recent sessions")
}
