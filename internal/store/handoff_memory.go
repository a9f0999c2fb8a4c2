package store

import (
	"context"
	"sync"
	"time"

	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryHandoff keeps sessions in process memory. Sessions are stored
// encoded, so callers never share state with the store.
type MemoryHandoff struct {
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

var _ HandoffStore = (*MemoryHandoff)(nil)

// NewMemoryHandoff creates a store whose entries expire after ttl without
// access. A zero ttl disables expiry.
func NewMemoryHandoff(ttl time.Duration) *MemoryHandoff {
	return &MemoryHandoff{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemoryHandoff) SaveSession(ctx context.Context, s practicesession.PracticeSession) error {
	data, err := encodeSession(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep(time.Now())
	m.sessions[s.ID] = memoryEntry{data: data, expiresAt: m.expiry(time.Now())}
	return nil
}

func (m *MemoryHandoff) GetSession(ctx context.Context, id string) (practicesession.PracticeSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	entry, ok := m.sessions[id]
	if !ok || m.expired(entry, now) {
		delete(m.sessions, id)
		return practicesession.PracticeSession{}, ErrNotFound
	}
	entry.expiresAt = m.expiry(now)
	m.sessions[id] = entry

	return decodeSession(entry.data)
}

func (m *MemoryHandoff) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryHandoff) expiry(now time.Time) time.Time {
	if m.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(m.ttl)
}

func (m *MemoryHandoff) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// sweep drops expired entries. Callers hold m.mu.
func (m *MemoryHandoff) sweep(now time.Time) {
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
		}
	}
}
