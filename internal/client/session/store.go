package session

import (
	"context"
	"sync"
)

// Store persists at most one credential token. Implementations behave as a
// single-writer register with read-your-writes consistency: a Save or Clear
// is visible to every subsequent Token call.
type Store interface {
	// Token returns the persisted token, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// Save replaces the persisted token.
	Save(ctx context.Context, token string) error

	// Clear removes the persisted token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in memory. Intended for tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
