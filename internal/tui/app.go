// ABOUTME: Root bubbletea model for the admin TUI
// ABOUTME: Manages screen state, session lifecycle, and routes input to child components

package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
	"github.com/juliomonteiiro/agenus-admin/internal/session"
	"github.com/juliomonteiiro/agenus-admin/internal/storage"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/dashboard"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/filepicker"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/icons"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/login"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/productform"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/products"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/styles"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/uistate"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenProducts
	ScreenDashboard
	ScreenForm
	ScreenFilePicker
)

// Layout constants
const minTerminalWidth = 80

// loginResultMsg is sent when a login attempt completes
type loginResultMsg struct {
	err error
}

// catalogUpdatedMsg is sent after any catalog operation finishes;
// the fresh snapshot is read from the controller
type catalogUpdatedMsg struct{}

// metricsLoadedMsg is sent when dashboard aggregation completes
type metricsLoadedMsg struct {
	metrics *catalog.Metrics
	err     error
}

// productLoadedMsg is sent when a full product has been fetched for editing
type productLoadedMsg struct {
	product *client.Product
	err     error
}

// sessionChangedMsg is forwarded from the session manager's subscriber
type sessionChangedMsg struct {
	state session.State
}

// App is the root model for the TUI
type App struct {
	session    *session.Manager
	controller *catalog.Controller
	prefs      *uistate.Manager
	store      *storage.Store

	screen    Screen
	themeMode styles.Mode
	width     int
	height    int
	err       error
	notice    string
	pendingID string // product awaiting a thumbnail selection
	lastSync  time.Time

	loginScreen *login.Login
	productList *products.Products
	dashView    *dashboard.Dashboard
	formScreen  *productform.Form
	filePicker  *filepicker.FilePicker
}

// New creates the TUI application. The session manager should already be
// initialized from durable storage.
func New(mgr *session.Manager, controller *catalog.Controller, store *storage.Store) *App {
	prefs := uistate.New(store)
	prefs.Load()

	mode := uistate.LoadTheme(store)
	styles.Apply(mode)

	a := &App{
		session:     mgr,
		controller:  controller,
		prefs:       prefs,
		store:       store,
		themeMode:   mode,
		loginScreen: login.New(),
		productList: products.New(),
	}

	if mgr.IsAuthenticated() {
		a.screen = ScreenProducts
	} else {
		a.screen = ScreenLogin
	}
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenProducts {
		return tea.Batch(a.loginScreen.Init(), a.fetchPage(1))
	}
	return a.loginScreen.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.productList.SetSize(a.contentWidth(), a.contentHeight())
		if a.dashView != nil {
			a.dashView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.screen == ScreenLogin || a.screen == ScreenForm {
			return a.forwardToScreen(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "ctrl+t" {
			return a.cycleTheme()
		}
		if msg.String() == "ctrl+b" {
			return a.toggleSidebar()
		}
		return a.routeKey(msg)

	case sessionChangedMsg:
		return a.handleSessionChanged(msg)

	case login.SubmittedMsg:
		a.loginScreen.SetBusy()
		return a, a.doLogin(msg.Email, msg.Password)

	case login.CancelledMsg:
		return a, tea.Quit

	case loginResultMsg:
		if msg.err != nil {
			return a, a.loginScreen.SetError(msg.err.Error())
		}
		a.screen = ScreenProducts
		return a, a.fetchPage(1)

	case products.ApplyMsg:
		return a, a.applyFilters(msg.Filters)

	case products.PageRequestMsg:
		return a, a.changePage(msg.Page)

	case products.ClearFiltersMsg:
		return a, a.clearFilters()

	case products.RefreshMsg:
		view := a.controller.Snapshot()
		return a, a.fetchPage(view.Page)

	case products.CreateRequestedMsg:
		a.controller.OpenCreateModal()
		a.formScreen = productform.NewCreate()
		a.screen = ScreenForm
		return a, a.formScreen.Init()

	case products.EditRequestedMsg:
		return a, a.loadProduct(msg.ID)

	case products.DeleteConfirmedMsg:
		return a, a.deleteProduct(msg.ID)

	case products.ThumbnailRequestedMsg:
		a.pendingID = msg.ID
		a.filePicker = filepicker.New(a.prefs.RecentImages())
		a.screen = ScreenFilePicker
		return a, nil

	case products.BackMsg:
		return a.showDashboard()

	case productLoadedMsg:
		if msg.err != nil {
			a.productList.SetView(a.controller.Snapshot())
			return a, nil
		}
		a.controller.OpenEditModal(msg.product)
		a.formScreen = productform.NewEdit(msg.product)
		a.screen = ScreenForm
		return a, a.formScreen.Init()

	case productform.SubmittedMsg:
		return a, a.saveProduct(msg)

	case productform.CancelledMsg:
		a.controller.CloseModal()
		a.formScreen = nil
		a.screen = ScreenProducts
		a.productList.SetView(a.controller.Snapshot())
		return a, nil

	case filepicker.FileSelectedMsg:
		a.prefs.AddRecentImage(msg.Path)
		id := a.pendingID
		a.pendingID = ""
		a.filePicker = nil
		a.screen = ScreenProducts
		return a, a.updateThumbnail(id, msg.Path)

	case filepicker.CancelledMsg:
		a.pendingID = ""
		a.filePicker = nil
		a.screen = ScreenProducts
		return a, nil

	case catalogUpdatedMsg:
		a.lastSync = time.Now()
		view := a.controller.Snapshot()
		a.productList.SetView(view)
		// A completed save closes the form unless the controller kept an error
		if a.screen == ScreenForm {
			if view.Error == "" {
				a.controller.CloseModal()
				a.formScreen = nil
				a.screen = ScreenProducts
			} else if a.formScreen != nil {
				return a, a.formScreen.SetError(view.Error)
			}
		}
		return a, nil

	case metricsLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.lastSync = time.Now()
		if a.dashView == nil {
			a.dashView = dashboard.New(msg.metrics, a.contentWidth(), a.contentHeight())
		} else {
			a.dashView.Update(msg.metrics)
		}
		return a, nil

	default:
		// huh forms need non-key messages (blink, etc.)
		if a.screen == ScreenLogin || a.screen == ScreenForm {
			return a.forwardToScreen(msg)
		}
	}

	return a, nil
}

func (a *App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin, ScreenForm:
		return a.forwardToScreen(msg)

	case ScreenFilePicker:
		if a.filePicker == nil {
			return a, nil
		}
		model, cmd := a.filePicker.Update(msg)
		a.filePicker = model.(*filepicker.FilePicker)
		return a, cmd

	case ScreenDashboard:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "r":
			return a, a.loadMetrics()
		case "b", "esc":
			a.screen = ScreenProducts
			return a, nil
		}
		return a, nil

	default: // ScreenProducts
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "v":
			return a.showDashboard()
		case "ctrl+o":
			return a, a.doLogout()
		}
		model, cmd := a.productList.Update(msg)
		a.productList = model.(*products.Products)
		return a, cmd
	}
}

func (a *App) forwardToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		model, cmd := a.loginScreen.Update(msg)
		a.loginScreen = model.(*login.Login)
		return a, cmd
	case ScreenForm:
		if a.formScreen == nil {
			return a, nil
		}
		model, cmd := a.formScreen.Update(msg)
		a.formScreen = model.(*productform.Form)
		return a, cmd
	}
	return a, nil
}

func (a *App) cycleTheme() (tea.Model, tea.Cmd) {
	switch a.themeMode {
	case styles.ModeDark:
		a.themeMode = styles.ModeLight
	case styles.ModeLight:
		a.themeMode = styles.ModeSystem
	default:
		a.themeMode = styles.ModeDark
	}
	styles.Apply(a.themeMode)
	uistate.SaveTheme(a.store, a.themeMode)
	a.notice = "theme: " + string(a.themeMode)
	return a, nil
}

// toggleSidebar collapses or expands the shortcut pane in the footer and
// persists the choice for the next session
func (a *App) toggleSidebar() (tea.Model, tea.Cmd) {
	a.prefs.ToggleSidebar()
	if a.prefs.SidebarCollapsed() {
		a.notice = "shortcuts hidden"
	} else {
		a.notice = "shortcuts shown"
	}
	return a, nil
}

func (a *App) showDashboard() (tea.Model, tea.Cmd) {
	a.screen = ScreenDashboard
	return a, a.loadMetrics()
}

func (a *App) handleSessionChanged(msg sessionChangedMsg) (tea.Model, tea.Cmd) {
	if msg.state == session.StateUnauthenticated && a.screen != ScreenLogin {
		a.controller.Reset()
		a.screen = ScreenLogin
		a.formScreen = nil
		a.filePicker = nil
		a.dashView = nil
		a.loginScreen = login.New()
		return a, a.loginScreen.SetError("session expired, sign in again")
	}
	return a, nil
}

// Commands

func (a *App) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		err := a.session.Login(context.Background(), email, password)
		return loginResultMsg{err: err}
	}
}

func (a *App) doLogout() tea.Cmd {
	return func() tea.Msg {
		a.session.Logout()
		return sessionChangedMsg{state: session.StateUnauthenticated}
	}
}

func (a *App) fetchPage(page int) tea.Cmd {
	return func() tea.Msg {
		view := a.controller.Snapshot()
		a.controller.FetchProducts(context.Background(), page, view.PageSize)
		return catalogUpdatedMsg{}
	}
}

func (a *App) changePage(page int) tea.Cmd {
	return func() tea.Msg {
		a.controller.SetPage(page)
		if a.controller.HasActiveFilters() {
			a.controller.ApplyFilters(context.Background())
		} else {
			view := a.controller.Snapshot()
			a.controller.FetchProducts(context.Background(), page, view.PageSize)
		}
		return catalogUpdatedMsg{}
	}
}

func (a *App) applyFilters(f catalog.Filters) tea.Cmd {
	return func() tea.Msg {
		a.controller.SetSearchQuery(f.Query)
		a.controller.SetSortBy(f.SortBy)
		a.controller.SetSortOrder(f.Order)
		a.controller.SetStatusFilter(f.Status)
		a.controller.ApplyFilters(context.Background())
		return catalogUpdatedMsg{}
	}
}

func (a *App) clearFilters() tea.Cmd {
	return func() tea.Msg {
		a.controller.ClearFilters(context.Background())
		return catalogUpdatedMsg{}
	}
}

func (a *App) loadProduct(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.controller.FetchProduct(context.Background(), id); err != nil {
			return productLoadedMsg{err: err}
		}
		view := a.controller.Snapshot()
		return productLoadedMsg{product: view.CurrentProduct}
	}
}

func (a *App) saveProduct(msg productform.SubmittedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if msg.ID == "" {
			input := client.CreateProductInput{
				Title:       msg.Title,
				Description: msg.Description,
			}
			if msg.ThumbnailPath != "" {
				f, err := os.Open(msg.ThumbnailPath)
				if err == nil {
					defer f.Close()
					input.Thumbnail = &client.Upload{
						Filename: msg.ThumbnailPath,
						Content:  f,
					}
				}
			}
			a.controller.CreateProduct(ctx, input)
		} else {
			a.controller.UpdateProduct(ctx, msg.ID, client.UpdateProductInput{
				Title:       msg.Title,
				Description: msg.Description,
				Status:      msg.Status,
			})
		}
		return catalogUpdatedMsg{}
	}
}

func (a *App) updateThumbnail(id, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return catalogUpdatedMsg{}
		}
		defer f.Close()
		a.controller.UpdateThumbnail(context.Background(), id, client.Upload{
			Filename: path,
			Content:  f,
		})
		return catalogUpdatedMsg{}
	}
}

func (a *App) deleteProduct(id string) tea.Cmd {
	return func() tea.Msg {
		a.controller.DeleteProduct(context.Background(), id)
		return catalogUpdatedMsg{}
	}
}

func (a *App) loadMetrics() tea.Cmd {
	return func() tea.Msg {
		items, err := a.controller.WorkingSet(context.Background())
		if err != nil {
			return metricsLoadedMsg{err: err}
		}
		m := catalog.ComputeMetrics(items)
		return metricsLoadedMsg{metrics: &m}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin:
		content = a.loginScreen.View()
	case ScreenProducts:
		content = a.productList.View()
	case ScreenDashboard:
		content = a.viewDashboard()
	case ScreenForm:
		if a.formScreen != nil {
			content = a.formScreen.View()
		}
	case ScreenFilePicker:
		if a.filePicker != nil {
			content = a.filePicker.View()
		}
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewDashboard() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}
	if a.dashView == nil {
		return styles.Subtitle.Render("Loading catalog metrics...")
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(a.dashView.View())
}

func (a *App) contentWidth() int {
	if a.width < minTerminalWidth {
		return minTerminalWidth - 4
	}
	return a.width - 4
}

func (a *App) contentHeight() int {
	// Header, footer, panel borders, and spacing
	return a.height - 8
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Current.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Current.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Current.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Agenus Admin"))

	rightText := ""
	if user := a.session.User(); user != nil && a.screen != ScreenLogin {
		rightText = contextStyle.Render(icons.User.String()+" "+user.Name) + " "
	}

	leftRendered := lipgloss.NewStyle().Render(leftText)
	rightRendered := lipgloss.NewStyle().Align(lipgloss.Right).Render(rightText)

	fillWidth := width - 4 - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftRendered + strings.Repeat("─", fillWidth) + rightRendered + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and sync status
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Current.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Current.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Current.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Current.Secondary)

	var shortcuts []string
	switch {
	case a.prefs.SidebarCollapsed():
		shortcuts = []string{"ctrl+b Shortcuts"}
	case a.screen == ScreenLogin:
		shortcuts = []string{"Tab Next", "Enter Submit", "Esc Quit"}
	case a.screen == ScreenProducts:
		shortcuts = []string{"/ Search", "s Sort", "f Filter", "a Add", "d Delete", "v Dashboard", "q Quit"}
	case a.screen == ScreenDashboard:
		shortcuts = []string{"r Refresh", "b Back", "q Quit"}
	case a.screen == ScreenForm:
		shortcuts = []string{"Tab Next", "Enter Submit", "Esc Cancel"}
	case a.screen == ScreenFilePicker:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "Esc Cancel"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if a.notice != "" {
		rightText = statusStyle.Render(a.notice) + " "
		rightPlainText = a.notice + " "
	} else if !a.lastSync.IsZero() && a.screen != ScreenLogin {
		elapsed := formatTimeSince(a.lastSync)
		rightText = statusStyle.Render("Synced "+elapsed) + " "
		rightPlainText = "Synced " + elapsed + " "
	}

	fillWidth := width - 4 - lipgloss.Width(leftPlainText) - lipgloss.Width(rightPlainText)
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI and forwards session transitions into the program
func Run(mgr *session.Manager, controller *catalog.Controller, store *storage.Store) error {
	app := New(mgr, controller, store)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	mgr.Subscribe(func(s session.State) {
		p.Send(sessionChangedMsg{state: s})
	})

	_, err := p.Run()
	return err
}
