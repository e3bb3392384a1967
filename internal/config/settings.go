package config

import (
	"sync"

	"fyne.io/fyne/v2"
)

// Key names a persisted preference
type Key string

// Settings keys for Fyne preferences
const (
	KeyLanguage Key = "language"
	KeyTheme    Key = "theme"
)

// Store is the durable key-value medium behind the language and theme
// preferences. Load reports false for keys that were never set. Save writes
// through immediately; each key is independent and the last write wins.
type Store interface {
	Load(key Key) (string, bool)
	Save(key Key, value string)
}

// Settings manages application preferences on top of the Fyne preference store
type Settings struct {
	app fyne.App
	mu  sync.Mutex
}

var _ Store = (*Settings)(nil)

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Load returns the stored value for key. Fyne reports unset strings as empty,
// and no valid preference is empty, so an empty value counts as absent.
func (s *Settings) Load(key Key) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := s.app.Preferences().String(string(key))
	if value == "" {
		return "", false
	}
	return value, true
}

// Save overwrites the stored value for key
func (s *Settings) Save(key Key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.app.Preferences().SetString(string(key), value)
}

// Clear removes the stored value for key
func (s *Settings) Clear(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.app.Preferences().RemoveValue(string(key))
}
