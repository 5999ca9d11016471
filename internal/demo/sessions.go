package demo

import (
	"sync"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/kvstore"
)

// Sessions hands out demo backends over one store. All of them share a lock,
// so concurrent sessions of the same role never overwrite each other's writes.
type Sessions struct {
	store kvstore.Store

	mu       sync.Mutex
	storeMu  sync.Mutex
	backends map[entity.CurrentUser]*Backend
}

func NewSessions(store kvstore.Store) *Sessions {
	return &Sessions{store: store, backends: make(map[entity.CurrentUser]*Backend)}
}

// For returns the backend of user, creating it on first use.
func (s *Sessions) For(user entity.CurrentUser) *Backend {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.backends[user]; ok {
		return b
	}

	b := newBackend(s.store, user, &s.storeMu)
	s.backends[user] = b

	return b
}
