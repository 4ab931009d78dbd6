// ABOUTME: Shared lipgloss styles with light/dark theme support
// ABOUTME: Defines the palette, borders, and text styles used across components

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects which palette the TUI renders with
type Mode string

const (
	ModeDark   Mode = "dark"
	ModeLight  Mode = "light"
	ModeSystem Mode = "system"
)

// ParseMode maps a stored preference string to a Mode, defaulting to system
func ParseMode(s string) Mode {
	switch strings.ToLower(s) {
	case "dark":
		return ModeDark
	case "light":
		return ModeLight
	default:
		return ModeSystem
	}
}

// Palette holds the resolved colors for one theme
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color
	Accent    lipgloss.Color
	Info      lipgloss.Color
}

var darkPalette = Palette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#10B981"), // Green
	Warning:   lipgloss.Color("#F59E0B"), // Amber
	Danger:    lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#6B7280"), // Gray
	Text:      lipgloss.Color("#F9FAFB"), // Light
	Surface:   lipgloss.Color("#374151"), // Elevated surface
	Accent:    lipgloss.Color("#8B5CF6"), // Lighter purple
	Info:      lipgloss.Color("#3B82F6"), // Blue
}

var lightPalette = Palette{
	Primary:   lipgloss.Color("#6D28D9"),
	Secondary: lipgloss.Color("#059669"),
	Warning:   lipgloss.Color("#D97706"),
	Danger:    lipgloss.Color("#DC2626"),
	Muted:     lipgloss.Color("#9CA3AF"),
	Text:      lipgloss.Color("#111827"),
	Surface:   lipgloss.Color("#E5E7EB"),
	Accent:    lipgloss.Color("#7C3AED"),
	Info:      lipgloss.Color("#2563EB"),
}

// Current is the active palette. Apply swaps it and rebuilds the styles.
var Current = darkPalette

// Styles rebuilt by Apply
var (
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	StatusOK       lipgloss.Style
	StatusWarning  lipgloss.Style
	StatusCritical lipgloss.Style
	Panel          lipgloss.Style
	ActivePanel    lipgloss.Style
	Help           lipgloss.Style
	KeyStyle       lipgloss.Style
	ValueStyle     lipgloss.Style
	ErrorBanner    lipgloss.Style
)

func init() {
	rebuild()
}

// Apply switches the palette. ModeSystem follows the terminal background.
func Apply(mode Mode) {
	switch mode {
	case ModeLight:
		Current = lightPalette
	case ModeDark:
		Current = darkPalette
	default:
		if lipgloss.HasDarkBackground() {
			Current = darkPalette
		} else {
			Current = lightPalette
		}
	}
	rebuild()
}

func rebuild() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Current.Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(Current.Muted).
		MarginBottom(1)

	StatusOK = lipgloss.NewStyle().
		Foreground(Current.Secondary).
		Bold(true)

	StatusWarning = lipgloss.NewStyle().
		Foreground(Current.Warning).
		Bold(true)

	StatusCritical = lipgloss.NewStyle().
		Foreground(Current.Danger).
		Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Current.Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Current.Primary).
		Padding(1, 2)

	Help = lipgloss.NewStyle().
		Foreground(Current.Muted).
		MarginTop(1)

	KeyStyle = lipgloss.NewStyle().
		Foreground(Current.Accent).
		Bold(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(Current.Text).
		Bold(true)

	ErrorBanner = lipgloss.NewStyle().
		Foreground(Current.Danger).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Current.Danger).
		Padding(0, 1)
}

// ProgressBar returns a styled progress bar string
func ProgressBar(percent float64, width int) string {
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	return lipgloss.NewStyle().Foreground(Current.Secondary).Render(bar)
}
