package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

const usersBasePath = "/api/v1/god/users"

// UserList is a page of platform users with pagination metadata.
type UserList struct {
	Items      []models.User     `json:"users"`
	Pagination models.Pagination `json:"pagination"`
}

// UsersClient calls the read-only user directory endpoints.
type UsersClient struct {
	caller *Caller
}

// NewUsersClient creates a new UsersClient.
func NewUsersClient(caller *Caller) *UsersClient {
	return &UsersClient{caller: caller}
}

// List fetches one page of the user directory.
func (c *UsersClient) List(ctx context.Context, token string, f models.UserFilters) (*UserList, error) {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}

	path := usersBasePath
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env, err := c.caller.JSON(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var list UserList
	if err := decodeData(env, &list); err != nil {
		return nil, err
	}
	if env.Pagination != nil {
		list.Pagination = *env.Pagination
	}
	return &list, nil
}

// Stats fetches the on-demand aggregate for a single user. It is never
// prefetched for a whole listing.
func (c *UsersClient) Stats(ctx context.Context, token, userID string) (*models.UserStatsAggregate, error) {
	env, err := c.caller.JSON(ctx, http.MethodGet, usersBasePath+"/"+userID+"/stats", token, nil)
	if err != nil {
		return nil, err
	}

	var stats models.UserStatsAggregate
	if err := decodeData(env, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
