package initcmd

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	colorPrimary = lipgloss.Color("#0EA5E9") // Sky blue
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorDark    = lipgloss.Color("#1F2937") // Dark gray
	colorLight   = lipgloss.Color("#F9FAFB") // Light gray
)

// Component styles
var (
	// TitleStyle for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// MutedStyle for secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// CodeStyle for command/code display
	CodeStyle = lipgloss.NewStyle().
			Background(colorDark).
			Foreground(colorLight).
			Padding(0, 1)

	// HeaderStyle for the main header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Background(lipgloss.Color("#1E3A5F")).
			Padding(0, 2).
			MarginBottom(1)
)

// RenderHeader renders the wizard banner.
func RenderHeader() string {
	return HeaderStyle.Render("certprobe setup")
}

// RenderSection renders a section divider.
func RenderSection(title string) string {
	return TitleStyle.Render(title)
}

// RenderSuccess renders a success message.
func RenderSuccess(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// RenderError renders an error message.
func RenderError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// RenderWarning renders a warning message.
func RenderWarning(msg string) string {
	return WarningStyle.Render("! " + msg)
}

// RenderCode renders a shell command.
func RenderCode(cmd string) string {
	return CodeStyle.Render(cmd)
}
