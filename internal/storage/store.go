package storage

import (
	"context"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

// SessionStore defines the interface for session persistence.
type SessionStore interface {
	// Get returns the session for a phone number, or nil when the record is
	// absent, expired or corrupt. Corrupt records are deleted on read.
	Get(ctx context.Context, phone string) (*models.Session, error)

	// Set overwrites the session and resets its expiry to SessionTTL from now.
	Set(ctx context.Context, phone string, session *models.Session) error

	// Delete removes the session immediately.
	Delete(ctx context.Context, phone string) error
}

// Purger is implemented by backends that cannot expire records natively and
// rely on the cleanup job instead.
type Purger interface {
	// PurgeExpired removes all expired sessions and returns how many were removed.
	PurgeExpired() (int, error)
}
