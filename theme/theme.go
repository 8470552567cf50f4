package theme

import (
	"github.com/taskman/client-go/internal/stream"
	"github.com/taskman/client-go/store"
)

// Stored preference values.
const (
	Dark  = "dark"
	Light = "light"
)

// Manager keeps the dark/light preference, persisted in the client-side
// store so it survives restarts.
type Manager struct {
	store store.Store
	dark  *stream.Value[bool]
}

func New(s store.Store) *Manager {
	saved, _ := s.Preference(store.KeyTheme)
	return &Manager{store: s, dark: stream.NewValue(saved == Dark)}
}

func (m *Manager) IsDark() bool {
	return m.dark.Get()
}

// DarkMode is the push view of IsDark.
func (m *Manager) DarkMode() *stream.Value[bool] {
	return m.dark
}

// Toggle flips the preference and persists it.
func (m *Manager) Toggle() error {
	dark := !m.dark.Get()
	value := Light
	if dark {
		value = Dark
	}
	if err := m.store.SavePreference(store.KeyTheme, value); err != nil {
		return err
	}
	m.dark.Set(dark)
	return nil
}
