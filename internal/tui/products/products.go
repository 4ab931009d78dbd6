// ABOUTME: Product list screen with table, search, sort, and pagination controls
// ABOUTME: Renders controller snapshots and emits request messages for the root model

package products

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/icons"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/styles"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/widgets"
)

// ApplyMsg asks the root model to apply the edited filters client-side
type ApplyMsg struct {
	Filters catalog.Filters
}

// PageRequestMsg asks for a different page
type PageRequestMsg struct {
	Page int
}

// ClearFiltersMsg asks for a reset to defaults plus a fresh server fetch
type ClearFiltersMsg struct{}

// RefreshMsg asks for a re-fetch of the current page
type RefreshMsg struct{}

// CreateRequestedMsg opens the create form
type CreateRequestedMsg struct{}

// EditRequestedMsg opens the edit form for a product
type EditRequestedMsg struct {
	ID string
}

// DeleteConfirmedMsg is sent after the user confirms a delete
type DeleteConfirmedMsg struct {
	ID string
}

// ThumbnailRequestedMsg opens the image picker for a product
type ThumbnailRequestedMsg struct {
	ID string
}

// BackMsg leaves the product list
type BackMsg struct{}

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeConfirmDelete
)

// Products is the product list component
type Products struct {
	view    catalog.View
	tbl     table.Model
	search  textinput.Model
	mode    mode
	pending string // product id awaiting delete confirmation
	width   int
	height  int
}

// New creates the product list screen
func New() *Products {
	ti := textinput.New()
	ti.Placeholder = "search title or description"
	ti.CharLimit = 120
	ti.Width = 40

	tbl := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(styles.Current.Muted).
		Foreground(styles.Current.Primary).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Current.Text).
		Background(styles.Current.Surface).
		Bold(true)
	tbl.SetStyles(s)

	return &Products{tbl: tbl, search: ti}
}

func columns(width int) []table.Column {
	titleWidth := width - 52
	if titleWidth < 20 {
		titleWidth = 20
	}
	return []table.Column{
		{Title: "Title", Width: titleWidth},
		{Title: "Status", Width: 10},
		{Title: "Created", Width: 12},
		{Title: "Updated", Width: 12},
	}
}

// SetView replaces the rendered snapshot
func (p *Products) SetView(view catalog.View) {
	p.view = view
	rows := make([]table.Row, len(view.Products))
	for i, item := range view.Products {
		status := "inactive"
		if item.Status {
			status = "active"
		}
		rows[i] = table.Row{item.Title, status, shortDate(item.CreatedAt), shortDate(item.UpdatedAt)}
	}
	p.tbl.SetRows(rows)
	if p.tbl.Cursor() >= len(rows) && len(rows) > 0 {
		p.tbl.SetCursor(len(rows) - 1)
	}
}

// SetSize adjusts the table to the available area
func (p *Products) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.tbl.SetColumns(columns(width))
	if height > 10 {
		p.tbl.SetHeight(height - 8)
	}
}

// SelectedID returns the id of the highlighted product, empty when none
func (p *Products) SelectedID() string {
	cursor := p.tbl.Cursor()
	if cursor < 0 || cursor >= len(p.view.Products) {
		return ""
	}
	return p.view.Products[cursor].ID
}

// Init implements tea.Model
func (p *Products) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p *Products) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.tbl, cmd = p.tbl.Update(msg)
		return p, cmd
	}

	switch p.mode {
	case modeSearch:
		return p.updateSearch(keyMsg)
	case modeConfirmDelete:
		return p.updateConfirm(keyMsg)
	default:
		return p.updateBrowse(keyMsg)
	}
}

func (p *Products) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		p.mode = modeSearch
		p.search.SetValue(p.view.Filters.Query)
		p.search.Focus()
		return p, textinput.Blink

	case "s":
		f := p.view.Filters
		f.SortBy = nextSortField(f.SortBy)
		return p, emit(ApplyMsg{Filters: f})

	case "o":
		f := p.view.Filters
		if f.Order == catalog.OrderAsc {
			f.Order = catalog.OrderDesc
		} else {
			f.Order = catalog.OrderAsc
		}
		return p, emit(ApplyMsg{Filters: f})

	case "f":
		f := p.view.Filters
		f.Status = nextStatusFilter(f.Status)
		return p, emit(ApplyMsg{Filters: f})

	case "c":
		return p, emit(ClearFiltersMsg{})

	case "n", "right":
		if p.view.Page < p.view.TotalPages {
			return p, emit(PageRequestMsg{Page: p.view.Page + 1})
		}
		return p, nil

	case "p", "left":
		if p.view.Page > 1 {
			return p, emit(PageRequestMsg{Page: p.view.Page - 1})
		}
		return p, nil

	case "r":
		return p, emit(RefreshMsg{})

	case "a":
		return p, emit(CreateRequestedMsg{})

	case "e", "enter":
		if id := p.SelectedID(); id != "" {
			return p, emit(EditRequestedMsg{ID: id})
		}
		return p, nil

	case "t":
		if id := p.SelectedID(); id != "" {
			return p, emit(ThumbnailRequestedMsg{ID: id})
		}
		return p, nil

	case "d", "x":
		if id := p.SelectedID(); id != "" {
			p.pending = id
			p.mode = modeConfirmDelete
		}
		return p, nil

	case "b", "esc":
		return p, emit(BackMsg{})
	}

	var cmd tea.Cmd
	p.tbl, cmd = p.tbl.Update(msg)
	return p, cmd
}

func (p *Products) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.mode = modeBrowse
		p.search.Blur()
		return p, nil
	case "enter":
		p.mode = modeBrowse
		p.search.Blur()
		f := p.view.Filters
		f.Query = p.search.Value()
		return p, emit(ApplyMsg{Filters: f})
	}

	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	return p, cmd
}

func (p *Products) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := p.pending
		p.pending = ""
		p.mode = modeBrowse
		return p, emit(DeleteConfirmedMsg{ID: id})
	case "n", "esc":
		p.pending = ""
		p.mode = modeBrowse
	}
	return p, nil
}

// View implements tea.Model
func (p *Products) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Product.String() + " Products"))
	sb.WriteString("\n")

	if p.view.Error != "" {
		sb.WriteString(styles.ErrorBanner.Render(p.view.Error + "  (r to retry)"))
		sb.WriteString("\n")
	}

	sb.WriteString(p.renderFilterLine())
	sb.WriteString("\n")

	if p.mode == modeSearch {
		sb.WriteString(icons.Search.String() + " " + p.search.View())
		sb.WriteString("\n")
	}

	if p.view.IsLoading {
		sb.WriteString(styles.Subtitle.Render("Loading products..."))
		sb.WriteString("\n")
	}

	if len(p.view.Products) == 0 && !p.view.IsLoading {
		sb.WriteString(styles.Subtitle.Render("No products on this page."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(p.tbl.View())
		sb.WriteString("\n")
	}

	sb.WriteString(p.renderPagination())

	if p.mode == modeConfirmDelete {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusCritical.Render(
			fmt.Sprintf("%s Delete %q? (y/n)", icons.Trash.String(), p.pendingTitle())))
	}

	return sb.String()
}

func (p *Products) pendingTitle() string {
	for _, item := range p.view.Products {
		if item.ID == p.pending {
			return item.Title
		}
	}
	return p.pending
}

func (p *Products) renderFilterLine() string {
	f := p.view.Filters

	parts := []string{
		icons.Sort.String() + " " + sortLabel(f.SortBy) + " " + orderLabel(f.Order),
		icons.Filter.String() + " " + statusLabel(f.Status),
	}
	if f.Query != "" {
		parts = append(parts, icons.Search.String()+" "+fmt.Sprintf("%q", f.Query))
	}
	line := strings.Join(parts, "   ")

	if !f.IsDefault() {
		line += "   " + widgets.Badge("FILTERED", widgets.StatusInfo)
	}

	return styles.Subtitle.Render(line)
}

func (p *Products) renderPagination() string {
	totalPages := p.view.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	line := styles.Subtitle.Render(fmt.Sprintf(
		"Page %d/%d  •  %d products", p.view.Page, totalPages, p.view.Total))

	if cursor := p.tbl.Cursor(); cursor >= 0 && cursor < len(p.view.Products) {
		line += "  " + widgets.ActiveBadge(p.view.Products[cursor].Status)
	}
	return line
}

func nextSortField(f catalog.SortField) catalog.SortField {
	switch f {
	case catalog.SortByUpdatedAt:
		return catalog.SortByCreatedAt
	case catalog.SortByCreatedAt:
		return catalog.SortByTitle
	case catalog.SortByTitle:
		return catalog.SortByStatus
	default:
		return catalog.SortByUpdatedAt
	}
}

func nextStatusFilter(s catalog.StatusFilter) catalog.StatusFilter {
	switch s {
	case catalog.StatusAll:
		return catalog.StatusActive
	case catalog.StatusActive:
		return catalog.StatusInactive
	default:
		return catalog.StatusAll
	}
}

func sortLabel(f catalog.SortField) string {
	switch f {
	case catalog.SortByTitle:
		return "title"
	case catalog.SortByCreatedAt:
		return "created"
	case catalog.SortByStatus:
		return "status"
	default:
		return "updated"
	}
}

func orderLabel(o catalog.SortOrder) string {
	if o == catalog.OrderAsc {
		return "↑"
	}
	return "↓"
}

func statusLabel(s catalog.StatusFilter) string {
	switch s {
	case catalog.StatusActive:
		return "active only"
	case catalog.StatusInactive:
		return "inactive only"
	default:
		return "all statuses"
	}
}

// shortDate trims an RFC3339 timestamp to its date part for table display
func shortDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
