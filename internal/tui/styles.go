package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	onlineBadgeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	offlineBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	unknownBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)
