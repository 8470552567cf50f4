package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_TokenLifecycle(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Token()
	assert.False(t, ok)

	require.NoError(t, s.SaveToken("abc.def.ghi"))
	token, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	require.NoError(t, s.ClearToken())
	_, ok = s.Token()
	assert.False(t, ok)
}

func TestMemoryStore_ClearIdempotent(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.ClearToken())
	require.NoError(t, s.ClearToken())
	_, ok := s.Token()
	assert.False(t, ok)
}

func TestMemoryStore_WithToken(t *testing.T) {
	s := NewMemoryStore(WithToken("seed"))
	token, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "seed", token)
}

func TestFileStore_SurvivesReload(t *testing.T) {
	URL := fmt.Sprintf("mem://localhost/store/%v/state.json", time.Now().UnixNano())

	s := NewFileStore(URL)
	require.NoError(t, s.SaveToken("persisted"))
	require.NoError(t, s.SavePreference(KeyTheme, "dark"))

	reloaded := NewFileStore(URL)
	token, ok := reloaded.Token()
	require.True(t, ok)
	assert.Equal(t, "persisted", token)
	theme, ok := reloaded.Preference(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "dark", theme)
}

func TestFileStore_ClearTokenKeepsPreferences(t *testing.T) {
	URL := fmt.Sprintf("mem://localhost/store/%v/state.json", time.Now().UnixNano())

	s := NewFileStore(URL)
	require.NoError(t, s.SaveToken("tok"))
	require.NoError(t, s.SavePreference(KeyTheme, "light"))
	require.NoError(t, s.ClearToken())
	require.NoError(t, s.ClearToken())

	reloaded := NewFileStore(URL)
	_, ok := reloaded.Token()
	assert.False(t, ok)
	theme, ok := reloaded.Preference(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "light", theme)
}
