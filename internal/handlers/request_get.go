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

// RequestGetTokener defines only the methods needed by this handler.
type RequestGetTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RequestGetter defines the interface that the review service must implement.
type RequestGetter interface {
	Get(ctx context.Context, operatorID uuid.UUID, id string) (*models.AddMoneyRequest, error)
}

// RequestGetErrorResponse represents an error response for the request detail
// swagger:model RequestGetErrorResponse
type RequestGetErrorResponse struct {
	// Error message
	// default: Request not found
	Error string `json:"error"`
}

// NewRequestGetHandler returns an HTTP handler for one request's detail record.
// @Summary Get add-money request
// @Description Fetch the full detail record for one add-money request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} models.AddMoneyRequest "Request detail"
// @Failure 401 {object} handlers.RequestGetErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RequestGetErrorResponse "Request not found"
// @Router /requests/{id} [get]
// @Security BearerAuth
func NewRequestGetHandler(svc RequestGetter, tokenGetter RequestGetTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RequestGetErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RequestGetErrorResponse{Error: "Unauthorized"})
			return
		}

		id := chi.URLParam(r, "id")

		req, err := svc.Get(ctx, claims.OperatorID, id)
		if err != nil {
			if status, msg, ok := upstreamError(err); ok {
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(RequestGetErrorResponse{Error: msg})
				return
			}
			logger.Log.Errorw("failed to get request", "requestID", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RequestGetErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(req)
	}
}
