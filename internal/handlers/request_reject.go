package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/clients"
	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
	"github.com/Evecotrip/god-aurumx-sub000/internal/services"
)

// RejectTokener defines only the methods needed by this handler.
type RejectTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RequestRejecter defines the interface that the review service must implement.
type RequestRejecter interface {
	Reject(ctx context.Context, operatorID uuid.UUID, id, reason string, refresh models.RequestFilters) (*clients.RequestList, error)
}

// RejectRequest represents the JSON body for rejecting a request
// swagger:model RejectRequest
type RejectRequest struct {
	// Rejection reason shown to the user
	// required: true
	// default: Payment proof does not match the transaction reference
	Reason string `json:"reason"`
}

// RejectErrorResponse represents an error response for rejection
// swagger:model RejectErrorResponse
type RejectErrorResponse struct {
	// Error message
	// default: Rejection reason is required
	Error string `json:"error"`
}

// NewRejectHandler returns an HTTP handler rejecting a PROCESSING request.
// @Summary Reject request
// @Description Reject a PROCESSING request with a mandatory reason and return the refreshed listing.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param rejectRequest body handlers.RejectRequest true "Reject Request"
// @Success 200 {object} clients.RequestList "Refreshed request listing"
// @Failure 400 {object} handlers.RejectErrorResponse "Rejection reason is required"
// @Failure 401 {object} handlers.RejectErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.RejectErrorResponse "Request not in an actionable state"
// @Router /requests/{id}/reject [post]
// @Security BearerAuth
func NewRejectHandler(svc RequestRejecter, tokenGetter RejectTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RejectErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RejectErrorResponse{Error: "Unauthorized"})
			return
		}

		var req RejectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RejectErrorResponse{Error: "invalid request body"})
			return
		}

		id := chi.URLParam(r, "id")

		list, err := svc.Reject(ctx, claims.OperatorID, id, req.Reason, parseRequestFilters(r))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRejectionReasonRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RejectErrorResponse{
					Error: "Rejection reason is required",
				})
			case errors.Is(err, services.ErrInvalidRequestState):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RejectErrorResponse{
					Error: "Request is not in an actionable state",
				})
			case errors.Is(err, services.ErrNoPaymentProof):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RejectErrorResponse{
					Error: "Request has no payment proof",
				})
			default:
				if status, msg, ok := upstreamError(err); ok {
					w.WriteHeader(status)
					json.NewEncoder(w).Encode(RejectErrorResponse{Error: msg})
					return
				}
				logger.Log.Errorw("failed to reject request", "requestID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RejectErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}
