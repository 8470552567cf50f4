package store

import "sync"

// Well-known keys in the durable client-side area.
const (
	KeyToken = "token"
	KeyTheme = "theme"
)

// Store is a pluggable persistence layer for the bearer token and small
// client preferences. The in-memory default is fine for tests; swap with
// a FileStore to survive restarts. At most one token is current at a time,
// and clearing an absent token is not an error.
type Store interface {
	SaveToken(token string) error
	Token() (string, bool)
	ClearToken() error
	SavePreference(key, value string) error
	Preference(key string) (string, bool)
	ClearPreference(key string) error
}

type MemoryStoreOption func(*memoryStore)

// WithToken seeds the store with an initial token.
func WithToken(token string) MemoryStoreOption {
	return func(m *memoryStore) {
		m.values[KeyToken] = token
	}
}

type memoryStore struct {
	mux    sync.RWMutex
	values map[string]string
}

func (m *memoryStore) SaveToken(token string) error {
	return m.SavePreference(KeyToken, token)
}

func (m *memoryStore) Token() (string, bool) {
	return m.Preference(KeyToken)
}

func (m *memoryStore) ClearToken() error {
	return m.ClearPreference(KeyToken)
}

func (m *memoryStore) SavePreference(key, value string) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Preference(key string) (string, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *memoryStore) ClearPreference(key string) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	delete(m.values, key)
	return nil
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: map[string]string{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
