// ABOUTME: Render tests for the catalog dashboard
// ABOUTME: Verifies metric values and sections appear in the output

package dashboard

import (
	"strings"
	"testing"

	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
)

func testMetrics() *catalog.Metrics {
	return &catalog.Metrics{
		Total:        12,
		Active:       9,
		Inactive:     3,
		ActivityRate: 75,
		ByMonth: []catalog.MonthCount{
			{Month: "2025-06", Count: 4},
			{Month: "2025-07", Count: 8},
		},
		Recent: []client.ProductSummary{
			{ID: "p1", Title: "Red Shirt", Status: true},
			{ID: "p2", Title: "Blue Pants", Status: false},
		},
	}
}

func TestViewShowsCounts(t *testing.T) {
	d := New(testMetrics(), 100, 30)
	out := d.View()

	for _, want := range []string{"12", "Active", "Inactive", "75%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in dashboard output", want)
		}
	}
}

func TestViewShowsRecentProducts(t *testing.T) {
	d := New(testMetrics(), 100, 30)
	out := d.View()

	if !strings.Contains(out, "Red Shirt") {
		t.Error("expected recent product title in output")
	}
	if !strings.Contains(out, "Recently created") {
		t.Error("expected recent section header")
	}
}

func TestViewShowsMonthRange(t *testing.T) {
	d := New(testMetrics(), 100, 30)
	out := d.View()

	if !strings.Contains(out, "2025-06") || !strings.Contains(out, "2025-07") {
		t.Error("expected month range in trend section")
	}
}

func TestViewTrendLabelsNewestMonth(t *testing.T) {
	m := testMetrics()
	m.ByMonth = []catalog.MonthCount{
		{Month: "2024-11", Count: 2},
		{Month: "2024-12", Count: 5},
	}
	d := New(m, 100, 30)
	out := d.View()

	if !strings.Contains(out, "2024-12: 5") {
		t.Error("expected trend to label the newest month with its count")
	}
	if strings.Contains(out, "this month") {
		t.Error("trend caption must name the month, not assume the current one")
	}
}

func TestViewWithoutMetrics(t *testing.T) {
	d := New(nil, 100, 30)
	if !strings.Contains(d.View(), "Loading") {
		t.Error("expected loading placeholder without metrics")
	}
}

func TestViewEmptyCatalog(t *testing.T) {
	d := New(&catalog.Metrics{}, 100, 30)
	out := d.View()
	if strings.Contains(out, "Recently created") {
		t.Error("empty catalog must not render the recent section")
	}
}
