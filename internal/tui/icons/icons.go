// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	// Explicit override via environment variable
	if env := os.Getenv("AGENUS_NERD_FONTS"); env != "" {
		return env == "1" || strings.ToLower(env) == "true"
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	// iTerm2, Alacritty, WezTerm, Kitty typically have Nerd Fonts
	nerdFontTerminals := []string{
		"iTerm.app",
		"alacritty",
		"WezTerm",
		"kitty",
		"ghostty",
	}

	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	if os.Getenv("NERD_FONTS") == "1" {
		return true
	}

	// Default to Unicode fallback for maximum compatibility
	return false
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Catalog entities
	Product   = Icon{"󰏖", "▣"} // nf-md-package_variant
	Thumbnail = Icon{"󰋩", "◨"} // nf-md-image
	User      = Icon{"󰀉", "◉"} // nf-md-account_circle
	Calendar  = Icon{"󰃭", "▤"} // nf-md-calendar

	// Status indicators
	Active   = Icon{"", "✓"} // nf-oct-check_circle
	Inactive = Icon{"", "✗"} // nf-oct-x_circle
	Warning  = Icon{"", "⚠"} // nf-oct-alert
	Info     = Icon{"", "ℹ"} // nf-oct-info

	// Filtering and navigation
	Search = Icon{"󰍉", "⌕"} // nf-md-magnify
	Sort   = Icon{"󰒺", "⇅"} // nf-md-sort
	Filter = Icon{"󰈲", "▽"} // nf-md-filter

	// Charts
	TrendUp = Icon{"󰄬", "↗"} // nf-md-trending_up
	Chart   = Icon{"󰄭", "▁"} // nf-md-chart_line

	// Actions
	Add     = Icon{"󰐕", "+"} // nf-md-plus
	Edit    = Icon{"󰏫", "✎"} // nf-md-pencil
	Trash   = Icon{"󰩹", "⌫"} // nf-md-trash_can
	Refresh = Icon{"󰑓", "↻"} // nf-md-refresh
	Back    = Icon{"󰁍", "←"} // nf-md-arrow_left
	Quit    = Icon{"󰗼", "×"} // nf-md-exit_to_app
	Login   = Icon{"󰍂", "→"} // nf-md-login
	Logout  = Icon{"󰍃", "⇤"} // nf-md-logout

	// Application
	App       = Icon{"󰓜", "◈"} // nf-md-storefront
	Dashboard = Icon{"󰕮", "▦"} // nf-md-view_dashboard
	Settings  = Icon{"󰒓", "⚙"} // nf-md-cog
)
