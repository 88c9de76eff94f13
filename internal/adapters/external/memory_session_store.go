package external

import (
	"context"
	"sync"
	"time"

	"weatherdash.app/pkg/errors"
)

// MemorySessionStore implements the SessionStore port in process memory
type MemorySessionStore struct {
	mutex    sync.Mutex
	sessions map[string]*memorySession
	now      func() time.Time
}

type memorySession struct {
	state      []byte
	generation uint64
	darkMode   bool
	expiresAt  time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*memorySession),
		now:      time.Now,
	}
}

// session returns the live entry for id, dropping it first if it has expired.
// Callers hold the mutex.
func (s *MemorySessionStore) session(id string) *memorySession {
	entry, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil
	}
	return entry
}

func (s *MemorySessionStore) NextGeneration(ctx context.Context, sessionID string, ttl time.Duration) (uint64, error) {
	if err := validateSessionArgs(sessionID, ttl); err != nil {
		return 0, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := s.session(sessionID)
	if entry == nil {
		entry = &memorySession{}
		s.sessions[sessionID] = entry
	}
	entry.generation++
	entry.expiresAt = s.now().Add(ttl)
	return entry.generation, nil
}

func (s *MemorySessionStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	if sessionID == "" {
		return nil, errors.NewValidationError("session id cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := s.session(sessionID)
	if entry == nil || entry.state == nil {
		return nil, errors.NewNotFoundError("session not found")
	}
	return append([]byte(nil), entry.state...), nil
}

func (s *MemorySessionStore) SaveIfCurrent(ctx context.Context, sessionID string, generation uint64, state []byte, ttl time.Duration) (bool, error) {
	if err := validateSessionArgs(sessionID, ttl); err != nil {
		return false, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := s.session(sessionID)
	if entry == nil || entry.generation != generation {
		return false, nil
	}
	entry.state = append([]byte(nil), state...)
	entry.expiresAt = s.now().Add(ttl)
	return true, nil
}

func (s *MemorySessionStore) ToggleDarkMode(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	if err := validateSessionArgs(sessionID, ttl); err != nil {
		return false, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := s.session(sessionID)
	if entry == nil {
		entry = &memorySession{}
		s.sessions[sessionID] = entry
	}
	entry.darkMode = !entry.darkMode
	entry.expiresAt = s.now().Add(ttl)
	return entry.darkMode, nil
}

func (s *MemorySessionStore) DarkMode(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, errors.NewValidationError("session id cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := s.session(sessionID)
	return entry != nil && entry.darkMode, nil
}

func (s *MemorySessionStore) Ping(ctx context.Context) error {
	return nil
}

// Len reports how many sessions are held, expired ones included until touched
func (s *MemorySessionStore) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions
func (s *MemorySessionStore) Sweep() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	removed := 0
	now := s.now()
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func validateSessionArgs(sessionID string, ttl time.Duration) error {
	if sessionID == "" {
		return errors.NewValidationError("session id cannot be empty")
	}
	if ttl <= 0 {
		return errors.NewValidationError("session TTL must be positive")
	}
	return nil
}
