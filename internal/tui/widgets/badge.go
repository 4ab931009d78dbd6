// ABOUTME: Status badge widgets for product state indication
// ABOUTME: Provides colored inline badges for active/inactive and rate displays

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/icons"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/styles"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg lipgloss.Color
	fg := lipgloss.Color("#FFFFFF")

	switch level {
	case StatusOK:
		bg = styles.Current.Secondary
	case StatusWarning:
		bg = styles.Current.Warning
		fg = lipgloss.Color("#000000")
	case StatusCritical:
		bg = styles.Current.Danger
	case StatusInfo:
		bg = styles.Current.Info
	default:
		bg = styles.Current.Muted
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// ActiveBadge renders the product status as a colored badge
func ActiveBadge(active bool) string {
	if active {
		return Badge("ACTIVE", StatusOK)
	}
	return Badge("INACTIVE", StatusNeutral)
}

// StatusIcon returns the colored check or cross for a product status
func StatusIcon(active bool) string {
	if active {
		return lipgloss.NewStyle().Foreground(styles.Current.Secondary).Render(icons.Active.String())
	}
	return lipgloss.NewStyle().Foreground(styles.Current.Muted).Render(icons.Inactive.String())
}

// RateBadge renders the catalog activity rate with color reflecting health:
// most of the catalog inactive is worth a warning color
func RateBadge(percent int) string {
	text := fmt.Sprintf("%d%%", percent)
	switch {
	case percent >= 75:
		return Badge(text, StatusOK)
	case percent >= 40:
		return Badge(text, StatusWarning)
	default:
		return Badge(text, StatusCritical)
	}
}
