package storage

import (
	"context"
	"sync"
	"time"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

// MemoryStore holds sessions in memory for development and testing.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry

	// now is replaceable in tests to exercise expiry.
	now func() time.Time
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// Get returns the session for a phone number. Expired and invalid entries
// are removed and reported as absent.
func (m *MemoryStore) Get(ctx context.Context, phone string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.entries[phone]
	if !exists {
		return nil, nil
	}
	if !m.now().Before(entry.expiresAt) || !entry.session.Valid() {
		delete(m.entries, phone)
		return nil, nil
	}

	session := entry.session
	return &session, nil
}

// Set overwrites the session and resets its expiry.
func (m *MemoryStore) Set(ctx context.Context, phone string, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[phone] = &memoryEntry{
		session:   *session,
		expiresAt: m.now().Add(models.SessionTTL),
	}
	return nil
}

// Delete removes the session immediately.
func (m *MemoryStore) Delete(ctx context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, phone)
	return nil
}

// PurgeExpired removes all expired sessions.
func (m *MemoryStore) PurgeExpired() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for phone, entry := range m.entries {
		if !m.now().Before(entry.expiresAt) {
			delete(m.entries, phone)
			purged++
		}
	}
	return purged, nil
}
