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

// VerifyTokener defines only the methods needed by this handler.
type VerifyTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RequestVerifier defines the interface that the review service must implement.
type RequestVerifier interface {
	Verify(ctx context.Context, operatorID uuid.UUID, id, adminNotes string, refresh models.RequestFilters) (*clients.RequestList, error)
}

// VerifyRequest represents the JSON body for verifying a request
// swagger:model VerifyRequest
type VerifyRequest struct {
	// Optional notes attached to the completion
	AdminNotes string `json:"adminNotes"`
}

// VerifyErrorResponse represents an error response for verification
// swagger:model VerifyErrorResponse
type VerifyErrorResponse struct {
	// Error message
	// default: Request is not in an actionable state
	Error string `json:"error"`
}

// NewVerifyHandler returns an HTTP handler completing a PROCESSING request.
// @Summary Verify payment
// @Description Complete a PROCESSING request with payment proof, crediting the computed total, and return the refreshed listing.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param verifyRequest body handlers.VerifyRequest false "Verify Request"
// @Success 200 {object} clients.RequestList "Refreshed request listing"
// @Failure 401 {object} handlers.VerifyErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.VerifyErrorResponse "Request not in an actionable state"
// @Router /requests/{id}/verify [post]
// @Security BearerAuth
func NewVerifyHandler(svc RequestVerifier, tokenGetter VerifyTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(VerifyErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(VerifyErrorResponse{Error: "Unauthorized"})
			return
		}

		var req VerifyRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VerifyErrorResponse{Error: "invalid request body"})
				return
			}
		}

		id := chi.URLParam(r, "id")

		list, err := svc.Verify(ctx, claims.OperatorID, id, req.AdminNotes, parseRequestFilters(r))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRequestState):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(VerifyErrorResponse{
					Error: "Request is not in an actionable state",
				})
			case errors.Is(err, services.ErrNoPaymentProof):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(VerifyErrorResponse{
					Error: "Request has no payment proof",
				})
			default:
				if status, msg, ok := upstreamError(err); ok {
					w.WriteHeader(status)
					json.NewEncoder(w).Encode(VerifyErrorResponse{Error: msg})
					return
				}
				logger.Log.Errorw("failed to verify request", "requestID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}
