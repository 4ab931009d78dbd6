// ABOUTME: Persisted UI preferences for the admin TUI
// ABOUTME: Stores recent image paths, sidebar state, and theme choice via the storage namespaces

package uistate

import (
	"errors"
	"os"

	"github.com/juliomonteiiro/agenus-admin/internal/storage"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/styles"
)

// MaxRecentImages is the maximum number of recent thumbnail paths to keep
const MaxRecentImages = 5

// Preferences is the durable UI state slice
type Preferences struct {
	RecentImages     []string `json:"recentImages"`
	SidebarCollapsed bool     `json:"sidebarCollapsed"`
}

type themeData struct {
	Mode string `json:"mode"`
}

// Manager reads and writes UI preferences
type Manager struct {
	store *storage.Store
	prefs Preferences
}

// New creates a preferences manager backed by the store
func New(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// Load reads the preferences, filtering out recent images that no longer
// exist on disk. Missing or damaged state starts fresh.
func (m *Manager) Load() (Preferences, error) {
	var p Preferences
	err := m.store.Read(storage.NamespaceUI, &p)
	if errors.Is(err, storage.ErrNotFound) {
		m.prefs = Preferences{}
		return m.prefs, nil
	}
	if err != nil {
		return Preferences{}, err
	}

	kept := make([]string, 0, len(p.RecentImages))
	for _, path := range p.RecentImages {
		if _, err := os.Stat(path); err == nil {
			kept = append(kept, path)
		}
	}
	p.RecentImages = kept

	m.prefs = p
	return m.prefs, nil
}

// Save persists the preferences
func (m *Manager) Save(p Preferences) error {
	if len(p.RecentImages) > MaxRecentImages {
		p.RecentImages = p.RecentImages[:MaxRecentImages]
	}
	m.prefs = p
	return m.store.Write(storage.NamespaceUI, p)
}

// AddRecentImage moves the path to the front of the recent list
func (m *Manager) AddRecentImage(path string) error {
	images := make([]string, 0, len(m.prefs.RecentImages)+1)
	images = append(images, path)
	for _, f := range m.prefs.RecentImages {
		if f != path {
			images = append(images, f)
		}
	}
	m.prefs.RecentImages = images
	return m.Save(m.prefs)
}

// RecentImages returns the current recent image paths
func (m *Manager) RecentImages() []string {
	return m.prefs.RecentImages
}

// ToggleSidebar flips and persists the sidebar preference
func (m *Manager) ToggleSidebar() error {
	m.prefs.SidebarCollapsed = !m.prefs.SidebarCollapsed
	return m.Save(m.prefs)
}

// SidebarCollapsed returns the persisted sidebar preference
func (m *Manager) SidebarCollapsed() bool {
	return m.prefs.SidebarCollapsed
}

// LoadTheme reads the persisted theme mode, defaulting to system
func LoadTheme(store *storage.Store) styles.Mode {
	var t themeData
	if err := store.Read(storage.NamespaceTheme, &t); err != nil {
		return styles.ModeSystem
	}
	return styles.ParseMode(t.Mode)
}

// SaveTheme persists the theme mode in its own namespace so clearing the
// session never resets the theme
func SaveTheme(store *storage.Store, mode styles.Mode) error {
	return store.Write(storage.NamespaceTheme, themeData{Mode: string(mode)})
}
