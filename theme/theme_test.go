package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskman/client-go/store"
)

func TestManager_TogglePersists(t *testing.T) {
	backing := store.NewMemoryStore()
	m := New(backing)
	assert.False(t, m.IsDark())

	require.NoError(t, m.Toggle())
	assert.True(t, m.IsDark())
	saved, _ := backing.Preference(store.KeyTheme)
	assert.Equal(t, Dark, saved)

	require.NoError(t, m.Toggle())
	assert.False(t, m.IsDark())
	saved, _ = backing.Preference(store.KeyTheme)
	assert.Equal(t, Light, saved)
}

func TestManager_RestoresSavedPreference(t *testing.T) {
	backing := store.NewMemoryStore()
	require.NoError(t, backing.SavePreference(store.KeyTheme, Dark))

	m := New(backing)
	assert.True(t, m.IsDark())
}

func TestManager_DarkModeStream(t *testing.T) {
	m := New(store.NewMemoryStore())
	var emissions []bool
	release := m.DarkMode().Subscribe(func(v bool) { emissions = append(emissions, v) })
	defer release()

	require.NoError(t, m.Toggle())
	require.NoError(t, m.Toggle())
	assert.Equal(t, []bool{true, false}, emissions)
}
