package views

import (
	"moodtracker/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	Foreground = lipgloss.Color("#f2f2f2")
	Muted      = lipgloss.Color("#9ca3af")
	Border     = lipgloss.Color("#374151")
	Accent     = lipgloss.Color("#8b5cf6")
)

// Styles holds the styled components shared by every view.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Card  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(Accent).MarginBottom(1),
		Label: lipgloss.NewStyle().Foreground(Muted),
		Value: lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Muted: lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
	}
}

// moodStyle colors text with the mood's hex color, gray when out of range.
func moodStyle(mood int) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(models.HexOf(mood)))
}
