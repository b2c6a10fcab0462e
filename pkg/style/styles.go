package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// GetStyle returns a named CLI style, falling back to the unstyled style.
func GetStyle(name string) lipgloss.Style {
	switch name {
	case "Title":
		return TitleStyle
	case "Muted":
		return MutedStyle
	case "Success":
		return SuccessStyle
	case "Error":
		return ErrorStyle
	case "Warning":
		return WarningStyle
	}
	return lipgloss.NewStyle()
}

// statusStyles names the style each module outcome is drawn with in the
// inspect reports
var statusStyles = map[string]string{
	"rendered":         "Success",
	"template-error":   "Error",
	"malformed-output": "Warning",
	"unknown module":   "Warning",
}

// ForStatus returns the style for an outcome label. Anything not listed
// is muted.
func ForStatus(status string) lipgloss.Style {
	if name, ok := statusStyles[status]; ok {
		return GetStyle(name)
	}
	return MutedStyle
}
