package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/viant/afs"
)

// FileStore persists the token and preferences as a JSON snapshot at the
// given URL (file://, mem://, ...). It is a lightweight way to survive
// process restarts in CLI or single-host use.
type FileStore struct {
	mux    sync.RWMutex
	fs     afs.Service
	url    string
	values map[string]string
}

// NewFileStore creates a Store persisted at URL. A missing snapshot is not
// an error; it simply starts empty.
func NewFileStore(URL string) *FileStore {
	ret := &FileStore{
		fs:     afs.New(),
		url:    URL,
		values: map[string]string{},
	}
	_ = ret.load()
	return ret
}

func (f *FileStore) SaveToken(token string) error {
	return f.SavePreference(KeyToken, token)
}

func (f *FileStore) Token() (string, bool) {
	return f.Preference(KeyToken)
}

func (f *FileStore) ClearToken() error {
	return f.ClearPreference(KeyToken)
}

func (f *FileStore) SavePreference(key, value string) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.values[key] = value
	return f.save()
}

func (f *FileStore) Preference(key string) (string, bool) {
	f.mux.RLock()
	defer f.mux.RUnlock()
	value, ok := f.values[key]
	return value, ok
}

func (f *FileStore) ClearPreference(key string) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.save()
}

type snapshot struct {
	Values map[string]string `json:"values"`
}

func (f *FileStore) save() error {
	data, err := json.MarshalIndent(snapshot{Values: f.values}, "", "  ")
	if err != nil {
		return err
	}
	ctx := context.Background()
	tmp := f.url + ".tmp"
	if err = f.fs.Upload(ctx, tmp, os.FileMode(0o600), bytes.NewReader(data)); err != nil {
		return err
	}
	return f.fs.Move(ctx, tmp, f.url)
}

func (f *FileStore) load() error {
	ctx := context.Background()
	if ok, _ := f.fs.Exists(ctx, f.url); !ok {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.url)
	if err != nil {
		return err
	}
	var snap snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if snap.Values != nil {
		f.values = snap.Values
	}
	return nil
}
