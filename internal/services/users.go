package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/clients"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// Allowed page sizes for the user directory.
var userPageSizes = map[int]struct{}{10: {}, 20: {}, 50: {}, 100: {}}

const defaultUserPageSize = 10

// UsersAPI defines the read-only platform calls the directory drives.
type UsersAPI interface {
	List(ctx context.Context, token string, f models.UserFilters) (*clients.UserList, error)
	Stats(ctx context.Context, token, userID string) (*models.UserStatsAggregate, error)
}

// UserDirectoryService is the read-only user listing with on-demand
// stats aggregation. It performs no mutations and records no audit
// events.
type UserDirectoryService struct {
	tokens TokenResolver
	api    UsersAPI
}

// NewUserDirectoryService creates a new UserDirectoryService.
func NewUserDirectoryService(tokens TokenResolver, api UsersAPI) *UserDirectoryService {
	return &UserDirectoryService{
		tokens: tokens,
		api:    api,
	}
}

// List fetches one page of the directory. Page sizes outside the
// allowed set snap to the default instead of erroring.
func (s *UserDirectoryService) List(ctx context.Context, operatorID uuid.UUID, f models.UserFilters) (*clients.UserList, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if _, ok := userPageSizes[f.Limit]; !ok {
		f.Limit = defaultUserPageSize
	}
	if f.Page < 1 {
		f.Page = 1
	}

	return s.api.List(ctx, token, f)
}

// Stats fetches the aggregate for one user, triggered only by explicit
// operator action.
func (s *UserDirectoryService) Stats(ctx context.Context, operatorID uuid.UUID, userID string) (*models.UserStatsAggregate, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return s.api.Stats(ctx, token, userID)
}
