package stream

import (
	"sort"
	"sync"
)

// Value holds a current value that callers can read synchronously and
// subscribe to. Subscribers are notified only when the value actually
// changes, in subscription order.
type Value[T comparable] struct {
	mux     sync.RWMutex
	current T
	subs    map[int]func(T)
	nextID  int
}

func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{current: initial, subs: map[int]func(T){}}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mux.RLock()
	defer v.mux.RUnlock()
	return v.current
}

// Set replaces the current value and notifies subscribers when it changed.
func (v *Value[T]) Set(value T) {
	v.mux.Lock()
	if v.current == value {
		v.mux.Unlock()
		return
	}
	v.current = value
	notify := make([]func(T), 0, len(v.subs))
	ids := make([]int, 0, len(v.subs))
	for id := range v.subs {
		ids = append(ids, id)
	}
	// stable order keeps notification deterministic
	sort.Ints(ids)
	for _, id := range ids {
		notify = append(notify, v.subs[id])
	}
	v.mux.Unlock()
	for _, fn := range notify {
		fn(value)
	}
}

// Subscribe registers fn for change notifications and returns a release
// function. Releasing twice is harmless.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mux.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mux.Unlock()
	return func() {
		v.mux.Lock()
		delete(v.subs, id)
		v.mux.Unlock()
	}
}
