package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
)

// TokenStorage defines the store operations the resolver needs.
type TokenStorage interface {
	Get(ctx context.Context, operatorID uuid.UUID) (string, error)   // Returns "" when no token is held
	Set(ctx context.Context, operatorID uuid.UUID, token string) error // Replaces the held token
}

// TokenGenerator exchanges an operator identity for a platform token.
type TokenGenerator interface {
	Generate(ctx context.Context, masterNodeID string) (string, error)
}

// Resolver supplies the platform token for an operator, exchanging the
// operator identity for a fresh one only when none is stored. The token
// is persisted before it is handed to any dependent call.
type Resolver struct {
	store     TokenStorage
	generator TokenGenerator
}

// NewResolver creates a new Resolver.
func NewResolver(store TokenStorage, generator TokenGenerator) *Resolver {
	return &Resolver{
		store:     store,
		generator: generator,
	}
}

// Resolve returns the operator's platform token. On exchange or
// persistence failure no token is returned and the caller must not
// proceed with dependent calls.
func (r *Resolver) Resolve(ctx context.Context, operatorID uuid.UUID) (string, error) {
	token, err := r.store.Get(ctx, operatorID)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	token, err = r.generator.Generate(ctx, operatorID.String())
	if err != nil {
		logger.Log.Errorw("token exchange failed", "operator_id", operatorID, "error", err)
		return "", err
	}

	if err := r.store.Set(ctx, operatorID, token); err != nil {
		return "", err
	}

	return token, nil
}
