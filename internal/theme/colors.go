package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Dispatch outcome colors
const (
	ColorFailed  Color = "1" // Red - write failed
	ColorMatched Color = "2" // Green - reply written
	ColorNoMatch Color = "8" // Gray - dropped
)

// Session state colors
const (
	ColorRunning Color = "2" // Green
	ColorStopped Color = "3" // Yellow
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSpinner   Color = "205" // Pink
)
