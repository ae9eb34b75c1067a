package controller

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

var styledPalette = palette{
	title:   withStyle(titleStyle),
	success: withStyle(successStyle),
	warning: withStyle(warningStyle),
	failure: withStyle(failureStyle),
	muted:   withStyle(mutedStyle),
}

func withStyle(style lipgloss.Style) paint {
	return func(s string) string {
		return style.Render(s)
	}
}

// NewStyledUI returns a SimpleUI that colors its output with lipgloss.
// Structured reports are never styled.
func NewStyledUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, palette: styledPalette}
}
