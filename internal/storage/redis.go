package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

// RedisStore persists sessions in Redis. Expiry is handled natively by the
// per-key TTL, so this backend needs no cleanup job.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store backed by Redis.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping verifies connectivity to the Redis server.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func sessionKey(phone string) string {
	return "session:" + phone
}

// Get returns the session for a phone number. Records that cannot be decoded
// or violate the step invariants are deleted and reported as absent.
func (r *RedisStore) Get(ctx context.Context, phone string) (*models.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(phone)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session for %s: %w", phone, err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil || !session.Valid() {
		log.Printf("⚠️  Corrupt session for %s, deleting key", phone)
		if delErr := r.client.Del(ctx, sessionKey(phone)).Err(); delErr != nil {
			log.Printf("❌ Failed to delete corrupt session for %s: %v", phone, delErr)
		}
		return nil, nil
	}

	return &session, nil
}

// Set overwrites the session and resets its expiry.
func (r *RedisStore) Set(ctx context.Context, phone string, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session for %s: %w", phone, err)
	}
	if err := r.client.Set(ctx, sessionKey(phone), data, models.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session for %s: %w", phone, err)
	}
	return nil
}

// Delete removes the session immediately.
func (r *RedisStore) Delete(ctx context.Context, phone string) error {
	if err := r.client.Del(ctx, sessionKey(phone)).Err(); err != nil {
		return fmt.Errorf("failed to delete session for %s: %w", phone, err)
	}
	return nil
}
