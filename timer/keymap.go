package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start     key.Binding
	pause     key.Binding
	reset     key.Binding
	next      key.Binding
	prev      key.Binding
	theme     key.Binding
	records   key.Binding
	saveNotes key.Binding
	skipNotes key.Binding
	discard   key.Binding
	quit      key.Binding
}

func newKeymap() keymap {
	return keymap{
		start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		records: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "records"),
		),
		saveNotes: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		skipNotes: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip notes"),
		),
		discard: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "discard"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// apply enables the timer bindings allowed by c.
func (k *keymap) apply(c Controls) {
	k.start.SetEnabled(c.CanStart)
	k.start.SetHelp("enter", c.StartText)
	k.pause.SetEnabled(c.CanPause)
	k.reset.SetEnabled(c.CanReset)
	k.next.SetEnabled(c.InputsEnabled)
	k.prev.SetEnabled(c.InputsEnabled)
}

func (k *keymap) timerHelp() []key.Binding {
	return []key.Binding{
		k.start,
		k.pause,
		k.reset,
		k.next,
		k.theme,
		k.records,
		k.quit,
	}
}

func (k *keymap) notesHelp() []key.Binding {
	return []key.Binding{
		k.saveNotes,
		k.skipNotes,
		k.discard,
		k.quit,
	}
}
