// ABOUTME: Dashboard component displaying catalog-wide metrics
// ABOUTME: Shows totals, activity rate, monthly trend, and recently created products

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/icons"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/styles"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/widgets"
)

// Dashboard displays aggregated catalog metrics
type Dashboard struct {
	metrics *catalog.Metrics
	width   int
	height  int
}

// New creates a dashboard with the given metrics
func New(metrics *catalog.Metrics, width, height int) *Dashboard {
	return &Dashboard{
		metrics: metrics,
		width:   width,
		height:  height,
	}
}

// Update refreshes the dashboard with new metrics
func (d *Dashboard) Update(metrics *catalog.Metrics) {
	d.metrics = metrics
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.metrics == nil {
		return styles.Subtitle.Render("Loading catalog metrics...")
	}

	m := d.metrics
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Dashboard.String() + " Catalog Overview"))
	sb.WriteString("\n")

	// Count blocks side by side
	cfg := widgets.DefaultMetricBlockConfig()
	blocks := lipgloss.JoinHorizontal(lipgloss.Top,
		widgets.CountBlock(icons.Product, "Total", m.Total, "products", cfg),
		" ",
		widgets.CountBlock(icons.Active, "Active", m.Active, "visible in store", cfg),
		" ",
		widgets.CountBlock(icons.Inactive, "Inactive", m.Inactive, "hidden from store", cfg),
	)
	sb.WriteString(blocks)
	sb.WriteString("\n\n")

	// Activity rate
	sb.WriteString("Activity rate  ")
	sb.WriteString(widgets.RateBadge(m.ActivityRate))
	sb.WriteString("\n")
	sb.WriteString(styles.ProgressBar(float64(m.ActivityRate), 30))
	sb.WriteString(fmt.Sprintf(" %d%%\n\n", m.ActivityRate))

	// Monthly creation trend, labeled with the newest month on record
	if len(m.ByMonth) > 0 {
		values := make([]float64, len(m.ByMonth))
		for i, mc := range m.ByMonth {
			values[i] = float64(mc.Count)
		}
		first := m.ByMonth[0]
		last := m.ByMonth[len(m.ByMonth)-1]
		trendCfg := cfg
		trendCfg.Width = 46
		sb.WriteString(widgets.MetricBlockWithSparkline(
			icons.Chart, "Created per month",
			fmt.Sprintf("%s: %d", last.Month, last.Count),
			values,
			fmt.Sprintf("%s .. %s", first.Month, last.Month),
			trendCfg))
		sb.WriteString("\n\n")
	}

	// Recently created
	if len(m.Recent) > 0 {
		sb.WriteString(icons.Calendar.String() + " Recently created\n")
		for _, p := range m.Recent {
			sb.WriteString(fmt.Sprintf("  %s %s\n", widgets.StatusIcon(p.Status), p.Title))
		}
	}

	return lipgloss.NewStyle().
		Width(d.width).
		Render(sb.String())
}
