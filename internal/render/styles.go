package render

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	// HeaderStyle for the table header row
	HeaderStyle = lipgloss.NewStyle().
			Bold(true)

	// OKStyle for healthy endpoints
	OKStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	// WarnStyle for endpoints due renewal
	WarnStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// ErrorStyle for endpoints with hard problems
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	// MutedStyle for separators
	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
