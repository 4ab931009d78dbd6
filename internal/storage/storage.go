// ABOUTME: Durable client storage under the XDG config directory
// ABOUTME: Persists session, UI, and theme preferences as independent JSON namespaces

package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Namespaces for the independently persisted state slices
const (
	NamespaceSession = "session"
	NamespaceUI      = "ui"
	NamespaceTheme   = "theme"
)

// ErrNotFound is returned when a namespace has never been written
var ErrNotFound = errors.New("storage: namespace not found")

// Store reads and writes JSON documents, one file per namespace
type Store struct {
	configDir string
}

// New creates a store rooted at the given config directory
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "agenus-admin")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "agenus-admin")
}

// Dir returns the config directory backing this store
func (s *Store) Dir() string {
	return s.configDir
}

func (s *Store) file(namespace string) string {
	return filepath.Join(s.configDir, namespace+".json")
}

// Read unmarshals the namespace document into v.
// A missing file returns ErrNotFound; corrupt JSON is treated the same way
// so a damaged file never blocks startup.
func (s *Store) Read(namespace string, v interface{}) error {
	data, err := os.ReadFile(s.file(namespace))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return ErrNotFound
	}
	return nil
}

// Write marshals v and persists it under the namespace
func (s *Store) Write(namespace string, v interface{}) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.file(namespace), data, 0600)
}

// Clear removes the namespace document. Clearing a namespace never touches
// the others. Missing files are not an error.
func (s *Store) Clear(namespace string) error {
	err := os.Remove(s.file(namespace))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
