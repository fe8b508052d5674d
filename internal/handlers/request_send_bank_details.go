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

// BankDetailsTokener defines only the methods needed by this handler.
type BankDetailsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BankDetailsSender defines the interface that the review service must implement.
type BankDetailsSender interface {
	SendBankDetails(ctx context.Context, operatorID uuid.UUID, id string, refresh models.RequestFilters) (*clients.RequestList, error)
}

// BankDetailsErrorResponse represents an error response for sending bank details
// swagger:model BankDetailsErrorResponse
type BankDetailsErrorResponse struct {
	// Error message
	// default: Bank details were already sent
	Error string `json:"error"`
}

// NewSendBankDetailsHandler returns an HTTP handler that sends deposit
// instructions for a PENDING request and returns the refreshed listing.
// @Summary Send bank details
// @Description Send deposit instructions to the requesting user. Allowed once per request, only while PENDING.
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} clients.RequestList "Refreshed request listing"
// @Failure 401 {object} handlers.BankDetailsErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.BankDetailsErrorResponse "Request not in an actionable state"
// @Router /requests/{id}/send-bank-details [post]
// @Security BearerAuth
func NewSendBankDetailsHandler(svc BankDetailsSender, tokenGetter BankDetailsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BankDetailsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BankDetailsErrorResponse{Error: "Unauthorized"})
			return
		}

		id := chi.URLParam(r, "id")

		list, err := svc.SendBankDetails(ctx, claims.OperatorID, id, parseRequestFilters(r))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRequestState):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(BankDetailsErrorResponse{
					Error: "Request is not in an actionable state",
				})
			case errors.Is(err, services.ErrBankDetailsAlreadySent):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(BankDetailsErrorResponse{
					Error: "Bank details were already sent",
				})
			default:
				if status, msg, ok := upstreamError(err); ok {
					w.WriteHeader(status)
					json.NewEncoder(w).Encode(BankDetailsErrorResponse{Error: msg})
					return
				}
				logger.Log.Errorw("failed to send bank details", "requestID", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BankDetailsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}
