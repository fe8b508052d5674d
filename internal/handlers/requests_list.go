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

// RequestsListTokener defines only the methods needed by this handler.
type RequestsListTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RequestsLister defines the interface that the review service must implement.
type RequestsLister interface {
	List(ctx context.Context, operatorID uuid.UUID, mode string, f models.RequestFilters) (*clients.RequestList, error)
}

// RequestsListErrorResponse represents an error response for the request listing
// swagger:model RequestsListErrorResponse
type RequestsListErrorResponse struct {
	// Error message
	// default: Unable to reach the platform API
	Error string `json:"error"`
}

// parseRequestFilters extracts listing filters from the query string.
func parseRequestFilters(r *http.Request) models.RequestFilters {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return models.RequestFilters{
		Page:     page,
		Limit:    limit,
		Status:   q.Get("status"),
		Currency: q.Get("currency"),
	}
}

// NewRequestsListHandler returns an HTTP handler listing add-money requests.
// @Summary List add-money requests
// @Description List one page of add-money requests with summary counts. Mode "pending" forces the PENDING status filter.
// @Tags requests
// @Produce json
// @Param mode query string false "Listing mode: pending or all" default(all)
// @Param status query string false "Status filter (all mode only)"
// @Param currency query string false "Currency filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} clients.RequestList "One page of requests"
// @Failure 401 {object} handlers.RequestsListErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.RequestsListErrorResponse "Platform API unreachable"
// @Router /requests [get]
// @Security BearerAuth
func NewRequestsListHandler(svc RequestsLister, tokenGetter RequestsListTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RequestsListErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RequestsListErrorResponse{Error: "Unauthorized"})
			return
		}

		mode := r.URL.Query().Get("mode")
		if mode == "" {
			mode = "all"
		}

		list, err := svc.List(ctx, claims.OperatorID, mode, parseRequestFilters(r))
		if err != nil {
			if status, msg, ok := upstreamError(err); ok {
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(RequestsListErrorResponse{Error: msg})
				return
			}
			logger.Log.Errorw("failed to list requests", "operatorID", claims.OperatorID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RequestsListErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}
