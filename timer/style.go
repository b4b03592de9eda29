package timer

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	padding  = 2
	maxWidth = 60
)

type palette struct {
	main      lipgloss.Color
	secondary lipgloss.Color
	hint      lipgloss.Color
	accent    lipgloss.Color
	danger    lipgloss.Color
}

var (
	lightPalette = palette{
		main:      lipgloss.Color("#1F2937"),
		secondary: lipgloss.Color("#4B5563"),
		hint:      lipgloss.Color("#9CA3AF"),
		accent:    lipgloss.Color("#2563EB"),
		danger:    lipgloss.Color("#DC2626"),
	}

	darkPalette = palette{
		main:      lipgloss.Color("#F9FAFB"),
		secondary: lipgloss.Color("#D1D5DB"),
		hint:      lipgloss.Color("#6B7280"),
		accent:    lipgloss.Color("#60A5FA"),
		danger:    lipgloss.Color("#F87171"),
	}
)

// Style is the set of lipgloss styles used to render the timer.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Clock     lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Disabled  lipgloss.Style
	Error     lipgloss.Style
	Panel     lipgloss.Style
	accent    lipgloss.Color
}

func newStyle(dark bool) Style {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Clock:     lipgloss.NewStyle().Bold(true).Foreground(p.main),
		Secondary: lipgloss.NewStyle().Foreground(p.secondary),
		Hint:      lipgloss.NewStyle().Foreground(p.hint),
		Disabled:  lipgloss.NewStyle().Foreground(p.hint).Faint(true),
		Error:     lipgloss.NewStyle().Foreground(p.danger),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.hint).
			Padding(0, 1),
		accent: p.accent,
	}
}

// newProgress returns a progress bar coloured for the style, keeping width.
func (s Style) newProgress(width int) progress.Model {
	p := progress.New(
		progress.WithSolidFill(string(s.accent)),
		progress.WithoutPercentage(),
	)

	if width > 0 {
		p.Width = width
	}

	return p
}
