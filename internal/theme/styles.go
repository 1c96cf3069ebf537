package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/shellbridge/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrompt).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorStatusBg).
			Foreground(ColorNormal)

	StatusTargetStyle = lipgloss.NewStyle().
				Background(ColorStatusBg).
				Foreground(ColorHighlight).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(16)
)

// StateStyle returns the badge style for a connection state
func StateStyle(state domain.ConnectionState) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("0"))
	switch state {
	case domain.StateConnected:
		return base.Background(ColorConnected)
	case domain.StateConnecting:
		return base.Background(ColorConnecting)
	case domain.StateDisconnecting:
		return base.Background(ColorDisconnecting)
	default:
		return base.Background(ColorDisconnected)
	}
}
