package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// UserStatsTokener defines only the methods needed by this handler.
type UserStatsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserStatsGetter defines the interface that the directory service must implement.
type UserStatsGetter interface {
	Stats(ctx context.Context, operatorID uuid.UUID, userID string) (*models.UserStatsAggregate, error)
}

// UserStatsErrorResponse represents an error response for user stats
// swagger:model UserStatsErrorResponse
type UserStatsErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUserStatsHandler returns an HTTP handler for one user's aggregate stats.
// @Summary Get user stats
// @Description Fetch investment, transaction, referral and flow aggregates for one user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserStatsAggregate "User aggregates"
// @Failure 401 {object} handlers.UserStatsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UserStatsErrorResponse "User not found"
// @Router /users/{id}/stats [get]
// @Security BearerAuth
func NewUserStatsHandler(svc UserStatsGetter, tokenGetter UserStatsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserStatsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserStatsErrorResponse{Error: "Unauthorized"})
			return
		}

		userID := chi.URLParam(r, "id")

		stats, err := svc.Stats(ctx, claims.OperatorID, userID)
		if err != nil {
			if status, msg, ok := upstreamError(err); ok {
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(UserStatsErrorResponse{Error: msg})
				return
			}
			logger.Log.Errorw("failed to get user stats", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserStatsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}
