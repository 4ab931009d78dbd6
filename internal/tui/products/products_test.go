// ABOUTME: Tests for the product list screen
// ABOUTME: Covers key routing, filter messages, and delete confirmation flow

package products

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
)

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testView() catalog.View {
	return catalog.View{
		Products: []client.ProductSummary{
			{ID: "p1", Title: "Red Shirt", Status: true, CreatedAt: "2025-01-01T00:00:00Z", UpdatedAt: "2025-02-01T00:00:00Z"},
			{ID: "p2", Title: "Blue Pants", Status: false, CreatedAt: "2025-01-02T00:00:00Z", UpdatedAt: "2025-02-02T00:00:00Z"},
		},
		Page:       1,
		PageSize:   10,
		Total:      2,
		TotalPages: 1,
		Filters:    catalog.DefaultFilters(),
	}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestSortKeyCyclesField(t *testing.T) {
	p := New()
	p.SetView(testView())

	_, cmd := p.Update(key("s"))
	msg, ok := runCmd(t, cmd).(ApplyMsg)
	if !ok {
		t.Fatal("expected ApplyMsg")
	}
	if msg.Filters.SortBy != catalog.SortByCreatedAt {
		t.Errorf("expected sort to advance from updatedAt to createdAt, got %v", msg.Filters.SortBy)
	}
}

func TestOrderKeyTogglesDirection(t *testing.T) {
	p := New()
	p.SetView(testView())

	_, cmd := p.Update(key("o"))
	msg := runCmd(t, cmd).(ApplyMsg)
	if msg.Filters.Order != catalog.OrderAsc {
		t.Errorf("expected desc to flip to asc, got %v", msg.Filters.Order)
	}
}

func TestStatusKeyCyclesFilter(t *testing.T) {
	p := New()
	p.SetView(testView())

	_, cmd := p.Update(key("f"))
	msg := runCmd(t, cmd).(ApplyMsg)
	if msg.Filters.Status != catalog.StatusActive {
		t.Errorf("expected all to advance to active, got %v", msg.Filters.Status)
	}
}

func TestSearchFlow(t *testing.T) {
	p := New()
	p.SetView(testView())

	model, _ := p.Update(key("/"))
	p = model.(*Products)
	if p.mode != modeSearch {
		t.Fatal("expected search mode after /")
	}

	for _, r := range "shirt" {
		model, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		p = model.(*Products)
	}

	model, cmd := p.Update(key("enter"))
	p = model.(*Products)
	msg := runCmd(t, cmd).(ApplyMsg)
	if msg.Filters.Query != "shirt" {
		t.Errorf("expected query shirt, got %q", msg.Filters.Query)
	}
	if p.mode != modeBrowse {
		t.Error("expected browse mode after submit")
	}
}

func TestClearFiltersKey(t *testing.T) {
	p := New()
	p.SetView(testView())

	_, cmd := p.Update(key("c"))
	if _, ok := runCmd(t, cmd).(ClearFiltersMsg); !ok {
		t.Error("expected ClearFiltersMsg")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	p := New()
	p.SetView(testView())

	model, _ := p.Update(key("d"))
	p = model.(*Products)
	if p.mode != modeConfirmDelete {
		t.Fatal("expected confirm mode after d")
	}

	// Declining keeps the product
	model, cmd := p.Update(key("n"))
	p = model.(*Products)
	if cmd != nil {
		t.Error("expected no command on decline")
	}
	if p.mode != modeBrowse {
		t.Error("expected browse mode after decline")
	}

	// Confirming emits the delete
	model, _ = p.Update(key("d"))
	p = model.(*Products)
	_, cmd = p.Update(key("y"))
	msg := runCmd(t, cmd).(DeleteConfirmedMsg)
	if msg.ID != "p1" {
		t.Errorf("expected delete for p1, got %q", msg.ID)
	}
}

func TestPaginationKeysBounded(t *testing.T) {
	p := New()
	view := testView()
	view.Page = 1
	view.TotalPages = 3
	p.SetView(view)

	_, cmd := p.Update(key("n"))
	msg := runCmd(t, cmd).(PageRequestMsg)
	if msg.Page != 2 {
		t.Errorf("expected page 2, got %d", msg.Page)
	}

	// Already on the first page; prev must do nothing
	_, cmd = p.Update(key("p"))
	if cmd != nil {
		t.Error("expected no command for prev on page 1")
	}

	view.Page = 3
	p.SetView(view)
	_, cmd = p.Update(key("n"))
	if cmd != nil {
		t.Error("expected no command for next on the last page")
	}
}

func TestViewShowsErrorBanner(t *testing.T) {
	p := New()
	view := testView()
	view.Error = "something went wrong, try again"
	p.SetView(view)

	out := p.View()
	if !strings.Contains(out, "something went wrong, try again") {
		t.Error("expected error banner in view")
	}
	if !strings.Contains(out, "r to retry") {
		t.Error("expected retry hint in view")
	}
}

func TestViewShowsEmptyState(t *testing.T) {
	p := New()
	view := testView()
	view.Products = nil
	view.Total = 0
	p.SetView(view)

	if !strings.Contains(p.View(), "No products") {
		t.Error("expected empty state message")
	}
}

func TestViewShowsSelectedStatusBadge(t *testing.T) {
	p := New()
	p.SetView(testView())

	// First row (Red Shirt) is active
	out := p.View()
	if !strings.Contains(out, "ACTIVE") || strings.Contains(out, "INACTIVE") {
		t.Error("expected the active badge for the highlighted row")
	}

	view := testView()
	view.Products = view.Products[1:] // only the inactive product remains
	p.SetView(view)
	if !strings.Contains(p.View(), "INACTIVE") {
		t.Error("expected inactive badge for the highlighted row")
	}
}

func TestSelectedID(t *testing.T) {
	p := New()
	p.SetView(testView())

	if got := p.SelectedID(); got != "p1" {
		t.Errorf("expected first row selected, got %q", got)
	}

	p.SetView(catalog.View{Filters: catalog.DefaultFilters()})
	if got := p.SelectedID(); got != "" {
		t.Errorf("expected empty selection, got %q", got)
	}
}
