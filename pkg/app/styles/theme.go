package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary = lipgloss.Color("#7AA2F7")
	Success = lipgloss.Color("#9ECE6A")
	Warning = lipgloss.Color("#E0AF68")
	Error   = lipgloss.Color("#F7768E")
	Muted   = lipgloss.Color("#565F89")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	TextStyle = lipgloss.NewStyle()

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)
)

// StatusStyle picks a style for a pipeline stage name.
func StatusStyle(stage string) lipgloss.Style {
	switch stage {
	case "complete":
		return SuccessStyle
	case "error":
		return ErrorStyle
	default:
		return MutedStyle
	}
}
