// ABOUTME: Tests for dashboard metric aggregation over the product working set
// ABOUTME: Covers status totals, activity rate rounding, month buckets, and recent picks

package catalog

import (
	"fmt"
	"testing"

	"github.com/juliomonteiiro/agenus-admin/internal/client"
)

func TestComputeMetrics_StatusTotals(t *testing.T) {
	items := []client.ProductSummary{
		{ID: "1", Status: true},
		{ID: "2", Status: true},
		{ID: "3", Status: false},
	}

	m := ComputeMetrics(items)
	if m.Total != 3 || m.Active != 2 || m.Inactive != 1 {
		t.Errorf("unexpected totals: %+v", m)
	}
	if m.ActivityRate != 67 {
		t.Errorf("expected activity rate 67, got %d", m.ActivityRate)
	}
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil)
	if m.Total != 0 || m.ActivityRate != 0 {
		t.Errorf("expected zero metrics, got %+v", m)
	}
	if len(m.ByMonth) != 0 || len(m.Recent) != 0 {
		t.Errorf("expected empty aggregates, got %+v", m)
	}
}

func TestComputeMetrics_ActivityRateRounds(t *testing.T) {
	cases := []struct {
		active, total int
		want          int
	}{
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{0, 3, 0},
	}
	for _, tc := range cases {
		items := make([]client.ProductSummary, tc.total)
		for i := range items {
			items[i].Status = i < tc.active
		}
		if got := ComputeMetrics(items).ActivityRate; got != tc.want {
			t.Errorf("%d/%d: expected rate %d, got %d", tc.active, tc.total, tc.want, got)
		}
	}
}

func TestComputeMetrics_ByMonthSortedAscending(t *testing.T) {
	items := []client.ProductSummary{
		{ID: "1", CreatedAt: "2025-03-10T08:00:00Z"},
		{ID: "2", CreatedAt: "2025-01-05T08:00:00Z"},
		{ID: "3", CreatedAt: "2025-03-20T08:00:00Z"},
		{ID: "4", CreatedAt: "2024-12-31T23:00:00Z"},
	}

	m := ComputeMetrics(items)
	want := []MonthCount{
		{Month: "2024-12", Count: 1},
		{Month: "2025-01", Count: 1},
		{Month: "2025-03", Count: 2},
	}
	if len(m.ByMonth) != len(want) {
		t.Fatalf("expected %d buckets, got %d: %+v", len(want), len(m.ByMonth), m.ByMonth)
	}
	for i, w := range want {
		if m.ByMonth[i] != w {
			t.Errorf("bucket %d: expected %+v, got %+v", i, w, m.ByMonth[i])
		}
	}
}

func TestComputeMetrics_RecentTopFiveNewestFirst(t *testing.T) {
	var items []client.ProductSummary
	for i := 1; i <= 8; i++ {
		items = append(items, client.ProductSummary{
			ID:        fmt.Sprintf("p%d", i),
			CreatedAt: fmt.Sprintf("2025-01-%02dT00:00:00Z", i),
		})
	}

	m := ComputeMetrics(items)
	if len(m.Recent) != 5 {
		t.Fatalf("expected 5 recent products, got %d", len(m.Recent))
	}
	wantOrder := []string{"p8", "p7", "p6", "p5", "p4"}
	for i, id := range wantOrder {
		if m.Recent[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, m.Recent[i].ID)
		}
	}
}

func TestComputeMetrics_FewerThanFiveRecent(t *testing.T) {
	items := []client.ProductSummary{
		{ID: "1", CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: "2", CreatedAt: "2025-01-02T00:00:00Z"},
	}
	m := ComputeMetrics(items)
	if len(m.Recent) != 2 {
		t.Errorf("expected 2 recent products, got %d", len(m.Recent))
	}
	if m.Recent[0].ID != "2" {
		t.Errorf("expected newest first, got %s", m.Recent[0].ID)
	}
}
