package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(10)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Outcome icon styles
var (
	FailedIconStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	MatchedIconStyle = lipgloss.NewStyle().
				Foreground(ColorMatched)

	NoMatchIconStyle = lipgloss.NewStyle().
				Foreground(ColorNoMatch)
)

// Session state styles
var (
	RunningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRunning)

	StoppedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorStopped)
)

// Error styles
var (
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)
)

// Outcome icons
const (
	IconFailed  = "✗"
	IconMatched = "●"
	IconNoMatch = "○"
)
