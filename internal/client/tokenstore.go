package client

import "sync"

// TokenStore persists the access/refresh token pair. Implementations must be
// safe for concurrent use; every mutation is immediately visible to
// subsequent reads. The store never validates token contents.
type TokenStore interface {
	Access() string
	Refresh() string
	SetTokens(access, refresh string)
	Clear()
}

// MemoryTokenStore keeps the token pair in process memory. Useful for tests
// and one-shot invocations that should not touch the profile file.
type MemoryTokenStore struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

func (s *MemoryTokenStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

func (s *MemoryTokenStore) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
}
