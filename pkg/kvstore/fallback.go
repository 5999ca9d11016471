package kvstore

import (
	"context"
	"sync"

	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

// Fallback serves from a durable store until it fails once, then keeps the
// rest of the session's writes in memory. Keys never written in memory are
// still read from the durable store while it stays readable.
type Fallback struct {
	mu         sync.Mutex
	primary    Store
	memory     *MemoryStore
	degraded   bool
	unreadable bool
}

func NewFallback(primary Store) *Fallback {
	return &Fallback{
		primary:    primary,
		memory:     NewMemoryStore(),
		degraded:   primary == nil,
		unreadable: primary == nil,
	}
}

func (f *Fallback) Get(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.degraded {
		v, ok, err := f.primary.Get(key)
		if err == nil {
			return v, ok, nil
		}
		f.unreadable = true
		f.degrade(err)
	}

	if v, ok, _ := f.memory.Get(key); ok || f.unreadable {
		return v, ok, nil
	}

	v, ok, err := f.primary.Get(key)
	if err != nil {
		f.unreadable = true
		slogx.Warn(context.Background(), "local storage unreadable, keeping data in memory", slogx.Err(err))
		return "", false, nil
	}
	if ok {
		_ = f.memory.Set(key, v)
	}

	return v, ok, nil
}

func (f *Fallback) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.degraded {
		err := f.primary.Set(key, value)
		if err == nil {
			return nil
		}
		f.degrade(err)
	}

	return f.memory.Set(key, value)
}

// Degraded reports whether the store switched to memory only.
func (f *Fallback) Degraded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.degraded
}

func (f *Fallback) degrade(err error) {
	f.degraded = true
	slogx.Warn(context.Background(), "local storage unavailable, keeping data in memory", slogx.Err(err))
}
