package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	store := NewStore(rdb, 2*time.Second)

	t.Run("Get without token returns empty", func(t *testing.T) {
		token, err := store.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("Set then Get round-trips", func(t *testing.T) {
		operatorID := uuid.New()

		err := store.Set(ctx, operatorID, "platform-token")
		assert.NoError(t, err)

		got, err := store.Get(ctx, operatorID)
		assert.NoError(t, err)
		assert.Equal(t, "platform-token", got)
	})

	t.Run("Set replaces the held token", func(t *testing.T) {
		operatorID := uuid.New()

		assert.NoError(t, store.Set(ctx, operatorID, "first"))
		assert.NoError(t, store.Set(ctx, operatorID, "second"))

		got, err := store.Get(ctx, operatorID)
		assert.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("Delete drops the token", func(t *testing.T) {
		operatorID := uuid.New()

		assert.NoError(t, store.Set(ctx, operatorID, "platform-token"))
		assert.NoError(t, store.Delete(ctx, operatorID))

		got, err := store.Get(ctx, operatorID)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Token expires with the configured retention", func(t *testing.T) {
		operatorID := uuid.New()

		assert.NoError(t, store.Set(ctx, operatorID, "platform-token"))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, err := store.Get(ctx, operatorID)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
