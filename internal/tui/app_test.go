// ABOUTME: Integration tests for the TUI app
// ABOUTME: Tests component wiring, screen transitions, and session handling

package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
	"github.com/juliomonteiiro/agenus-admin/internal/session"
	"github.com/juliomonteiiro/agenus-admin/internal/storage"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/login"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/products"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/uistate"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.ProductList{
			Meta: client.ListMeta{Page: 1, PageSize: 10},
		})
	}))
	t.Cleanup(server.Close)

	api := client.New(server.URL)
	store := storage.New(t.TempDir())
	mgr := session.NewManager(api, store)
	controller := catalog.NewController(api)
	return New(mgr, controller, store)
}

func TestAppStartsOnLoginWithoutSession(t *testing.T) {
	app := newTestApp(t)

	if app.screen != ScreenLogin {
		t.Errorf("expected login screen without a session, got %d", app.screen)
	}
	if app.loginScreen == nil {
		t.Error("expected login screen to be initialized")
	}
}

func TestAppStartsOnProductsWithStoredSession(t *testing.T) {
	store := storage.New(t.TempDir())
	store.Write(storage.NamespaceSession, map[string]interface{}{
		"token":           "tok-123",
		"user":            map[string]string{"id": "u1", "name": "Julio", "email": "j@example.com"},
		"isAuthenticated": true,
	})

	api := client.New("http://localhost:1")
	mgr := session.NewManager(api, store)
	mgr.Initialize()
	controller := catalog.NewController(api)

	app := New(mgr, controller, store)
	if app.screen != ScreenProducts {
		t.Errorf("expected products screen with a stored session, got %d", app.screen)
	}
}

func TestAppLoginResultSwitchesScreens(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(loginResultMsg{err: nil})
	app = model.(*App)
	if app.screen != ScreenProducts {
		t.Errorf("expected products screen after login, got %d", app.screen)
	}
}

func TestAppLoginFailureStaysOnLogin(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(loginResultMsg{err: errLogin{}})
	app = model.(*App)
	if app.screen != ScreenLogin {
		t.Errorf("expected to stay on login, got %d", app.screen)
	}
}

type errLogin struct{}

func (errLogin) Error() string { return "login failed, check your credentials" }

func TestAppSessionExpiryRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenProducts

	model, _ := app.Update(sessionChangedMsg{state: session.StateUnauthenticated})
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Errorf("expected redirect to login on session expiry, got %d", app.screen)
	}
	view := app.controller.Snapshot()
	if len(view.Products) != 0 || !view.Filters.IsDefault() {
		t.Error("expected catalog state reset on session expiry")
	}
}

func TestAppCreateRequestOpensForm(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenProducts

	model, _ := app.Update(products.CreateRequestedMsg{})
	app = model.(*App)

	if app.screen != ScreenForm {
		t.Errorf("expected form screen, got %d", app.screen)
	}
	if app.controller.Snapshot().ModalMode != catalog.ModalCreate {
		t.Error("expected controller in create mode")
	}
}

func TestAppThumbnailRequestOpensPicker(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenProducts

	model, _ := app.Update(products.ThumbnailRequestedMsg{ID: "p1"})
	app = model.(*App)

	if app.screen != ScreenFilePicker {
		t.Errorf("expected file picker screen, got %d", app.screen)
	}
	if app.pendingID != "p1" {
		t.Errorf("expected pending id p1, got %q", app.pendingID)
	}
}

func TestAppLoginCancelQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(login.CancelledMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %T", msg)
	}
}

func TestSidebarToggleHidesShortcutsAndPersists(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenProducts

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app = model.(*App)

	if !strings.Contains(app.renderFooter(), "Search") {
		t.Fatal("expected shortcut hints in the footer before collapsing")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	app = model.(*App)

	footer := app.renderFooter()
	if strings.Contains(footer, "Search") {
		t.Error("expected shortcut hints hidden while collapsed")
	}
	if !strings.Contains(footer, "ctrl+b") {
		t.Error("expected the reopen hint while collapsed")
	}

	// Preference survives a reload from the same store
	reloaded := uistate.New(app.store)
	reloaded.Load()
	if !reloaded.SidebarCollapsed() {
		t.Error("expected the collapsed preference persisted")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	app = model.(*App)
	if !strings.Contains(app.renderFooter(), "Search") {
		t.Error("expected shortcut hints restored after a second toggle")
	}
}

func TestFrameAlignment(t *testing.T) {
	widths := []int{80, 100, 120}

	for _, targetWidth := range widths {
		app := newTestApp(t)

		model, _ := app.Update(tea.WindowSizeMsg{Width: targetWidth, Height: 30})
		app = model.(*App)

		view := app.View()

		for _, line := range strings.Split(view, "\n") {
			if strings.HasPrefix(line, "╭") && !strings.HasSuffix(line, "╮") {
				t.Errorf("width %d: header not closed: %q", targetWidth, line)
			}
			if strings.HasPrefix(line, "╰") && !strings.HasSuffix(line, "╯") {
				t.Errorf("width %d: footer not closed: %q", targetWidth, line)
			}
		}
	}
}
