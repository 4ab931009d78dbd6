// ABOUTME: Tests for product subcommand helpers
// ABOUTME: Verifies filter parsing and output formatting

package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
)

func resetListFlags() {
	listSearch = ""
	listSort = "updatedAt"
	listOrder = "desc"
	listStatus = "all"
}

func TestParseListFilters_Defaults(t *testing.T) {
	resetListFlags()

	f, err := parseListFilters()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsDefault() {
		t.Errorf("expected default filters, got %+v", f)
	}
}

func TestParseListFilters_AllFields(t *testing.T) {
	resetListFlags()
	listSearch = "shirt"
	listSort = "title"
	listOrder = "asc"
	listStatus = "active"
	defer resetListFlags()

	f, err := parseListFilters()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Query != "shirt" || f.SortBy != catalog.SortByTitle ||
		f.Order != catalog.OrderAsc || f.Status != catalog.StatusActive {
		t.Errorf("unexpected filters: %+v", f)
	}
}

func TestParseListFilters_RejectsUnknownValues(t *testing.T) {
	cases := []func(){
		func() { listSort = "price" },
		func() { listOrder = "sideways" },
		func() { listStatus = "archived" },
	}
	for _, set := range cases {
		resetListFlags()
		set()
		if _, err := parseListFilters(); err == nil {
			t.Error("expected an error for an unknown filter value")
		}
	}
	resetListFlags()
}

func TestFormatListHuman(t *testing.T) {
	view := catalog.View{
		Products: []client.ProductSummary{
			{ID: "p1", Title: "Red Shirt", Status: true, UpdatedAt: "2025-02-01T00:00:00Z"},
			{ID: "p2", Title: "Blue Pants", Status: false, UpdatedAt: "2025-02-02T00:00:00Z"},
		},
		Page: 1, PageSize: 10, Total: 2, TotalPages: 1,
	}

	out := formatListHuman(view)
	for _, want := range []string{"Red Shirt", "Blue Pants", "active", "inactive", "Page 1/1", "2 products"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestFormatListHuman_Empty(t *testing.T) {
	out := formatListHuman(catalog.View{})
	if !strings.Contains(out, "No products") {
		t.Error("expected empty-state message")
	}
}

func TestFormatListJSON(t *testing.T) {
	view := catalog.View{
		Products:   []client.ProductSummary{{ID: "p1", Title: "Red Shirt"}},
		Page:       2,
		PageSize:   10,
		Total:      15,
		TotalPages: 2,
	}

	out := formatListJSON(view)

	var parsed struct {
		Data []client.ProductSummary `json:"data"`
		Meta map[string]int          `json:"meta"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Data) != 1 || parsed.Data[0].ID != "p1" {
		t.Errorf("unexpected data: %+v", parsed.Data)
	}
	if parsed.Meta["total"] != 15 || parsed.Meta["page"] != 2 {
		t.Errorf("unexpected meta: %+v", parsed.Meta)
	}
}
