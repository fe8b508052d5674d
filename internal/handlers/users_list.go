package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/clients"
	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// UsersListTokener defines only the methods needed by this handler.
type UsersListTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UsersLister defines the interface that the directory service must implement.
type UsersLister interface {
	List(ctx context.Context, operatorID uuid.UUID, f models.UserFilters) (*clients.UserList, error)
}

// UsersListErrorResponse represents an error response for the user directory
// swagger:model UsersListErrorResponse
type UsersListErrorResponse struct {
	// Error message
	// default: Unable to reach the platform API
	Error string `json:"error"`
}

// NewUsersListHandler returns an HTTP handler listing platform users.
// @Summary List users
// @Description List one page of the user directory. Page sizes outside 10, 20, 50, 100 snap to 10.
// @Tags users
// @Produce json
// @Param status query string false "Status filter"
// @Param search query string false "Search term"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} clients.UserList "One page of users"
// @Failure 401 {object} handlers.UsersListErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.UsersListErrorResponse "Platform API unreachable"
// @Router /users [get]
// @Security BearerAuth
func NewUsersListHandler(svc UsersLister, tokenGetter UsersListTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UsersListErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UsersListErrorResponse{Error: "Unauthorized"})
			return
		}

		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		filters := models.UserFilters{
			Page:   page,
			Limit:  limit,
			Status: q.Get("status"),
			Search: q.Get("search"),
		}

		list, err := svc.List(ctx, claims.OperatorID, filters)
		if err != nil {
			if status, msg, ok := upstreamError(err); ok {
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(UsersListErrorResponse{Error: msg})
				return
			}
			logger.Log.Errorw("failed to list users", "operatorID", claims.OperatorID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UsersListErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}
