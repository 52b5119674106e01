package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

// DatabaseStore persists sessions in PostgreSQL. Expired rows are treated as
// absent on read and removed by the cleanup job.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a session store backed by the database.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Get returns the session for a phone number. Expired or invalid rows are
// deleted and reported as absent.
func (d *DatabaseStore) Get(ctx context.Context, phone string) (*models.Session, error) {
	var record models.SessionRecord
	err := d.db.WithContext(ctx).Where("phone_number = ?", phone).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session for %s: %w", phone, err)
	}

	if !time.Now().Before(record.ExpiresAt) {
		_ = d.Delete(ctx, phone)
		return nil, nil
	}

	session := models.Session{
		Step:    models.Step(record.Step),
		Layanan: record.Layanan,
		Metode:  record.Metode,
	}
	if !session.Valid() {
		log.Printf("⚠️  Corrupt session record for %s, deleting row", phone)
		_ = d.Delete(ctx, phone)
		return nil, nil
	}

	return &session, nil
}

// Set overwrites the session and resets its expiry.
func (d *DatabaseStore) Set(ctx context.Context, phone string, session *models.Session) error {
	record := models.SessionRecord{
		PhoneNumber: phone,
		Step:        string(session.Step),
		Layanan:     session.Layanan,
		Metode:      session.Metode,
		ExpiresAt:   time.Now().Add(models.SessionTTL),
	}

	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"step", "layanan", "metode", "expires_at", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save session for %s: %w", phone, err)
	}
	return nil
}

// Delete removes the session immediately.
func (d *DatabaseStore) Delete(ctx context.Context, phone string) error {
	err := d.db.WithContext(ctx).Where("phone_number = ?", phone).
		Unscoped().Delete(&models.SessionRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete session for %s: %w", phone, err)
	}
	return nil
}

// PurgeExpired removes all expired session rows.
func (d *DatabaseStore) PurgeExpired() (int, error) {
	result := d.db.Where("expires_at <= ?", time.Now()).
		Unscoped().Delete(&models.SessionRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}
