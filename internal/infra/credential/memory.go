package credential

import "sync"

// MemoryStore keeps the token in process memory only. Nothing survives a
// restart; it exists for tests and throwaway sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore is the constructor for MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ReadToken returns the held token, if any.
func (s *MemoryStore) ReadToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, s.token != ""
}

// WriteToken replaces the held token.
func (s *MemoryStore) WriteToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	return nil
}

// Clear drops the held token. Idempotent.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	return nil
}
