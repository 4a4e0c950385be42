// Package panel has the UI surfaces bound to the settings store. Each panel is a
// settings.Listener re-rendering its own region from the snapshot it gets, and never reads
// settings from anywhere else.
package panel

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of styles shared by all panels
type Theme struct {
	Name  string
	Title lipgloss.Style
	Group lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Box   lipgloss.Style
}

// NewTheme returns the theme for name, anything but "dark" gives the light one
func NewTheme(name string) Theme {
	if name == "dark" {
		return palette("dark", "230", "214", "250", "86", "240", "203", "62")
	}
	return palette("light", "0", "130", "238", "28", "245", "160", "170")
}

func palette(name, title, group, label, value, muted, errColor, border string) Theme {
	return Theme{
		Name:  name,
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color(title)).Bold(true),
		Group: lipgloss.NewStyle().Foreground(lipgloss.Color(group)).Bold(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color(label)),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color(value)),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Italic(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			PaddingLeft(1).
			PaddingRight(1),
	}
}

// box renders a titled, bordered panel
func (t Theme) box(title, body string) string {
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, t.Title.Render(title), "", body))
}
