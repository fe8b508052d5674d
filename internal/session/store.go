package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
)

// Store holds at most one platform API token per operator in Redis.
// Read, write and delete are the only operations; the token is opaque.
type Store struct {
	client *redis.Client
	exp    time.Duration // token retention, matched to the platform token lifetime
}

// NewStore creates a token store with the given retention.
func NewStore(client *redis.Client, expiration time.Duration) *Store {
	return &Store{
		client: client,
		exp:    expiration,
	}
}

func tokenKey(operatorID uuid.UUID) string {
	return fmt.Sprintf("master_node_token:%s", operatorID)
}

// Get returns the stored token for the operator, or "" when none is held.
func (s *Store) Get(ctx context.Context, operatorID uuid.UUID) (string, error) {
	key := tokenKey(operatorID)

	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read token", "key", key, "error", err)
		return "", err
	}
	return val, nil
}

// Set stores the operator's token, replacing any previous one.
func (s *Store) Set(ctx context.Context, operatorID uuid.UUID, token string) error {
	key := tokenKey(operatorID)

	err := s.client.Set(ctx, key, token, s.exp).Err()
	logger.Log.Infow("token stored",
		"key", key,
		"error", err,
	)
	return err
}

// Delete drops the operator's token. Used on logout.
func (s *Store) Delete(ctx context.Context, operatorID uuid.UUID) error {
	key := tokenKey(operatorID)

	err := s.client.Del(ctx, key).Err()
	logger.Log.Infow("token deleted",
		"key", key,
		"error", err,
	)
	return err
}
