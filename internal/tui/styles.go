package tui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the chat screen.
type Styles struct {
	Title     lipgloss.Style
	Status    lipgloss.Style
	User      lipgloss.Style
	Assistant lipgloss.Style
	Poem      lipgloss.Style
	Notice    lipgloss.Style
	Help      lipgloss.Style
	InputBox  lipgloss.Style
}

// DefaultStyles returns the standard Kelly palette.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("#c792ea")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7089")),
		User:      lipgloss.NewStyle().Foreground(lipgloss.Color("#82aaff")).Bold(true),
		Assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("#c3e88d")).Bold(true),
		Poem:      lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d0d0")),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f78c6c")).Italic(true),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7089")),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3b4261")).
			Padding(0, 1),
	}
}
