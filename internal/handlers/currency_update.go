package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
	"github.com/Evecotrip/god-aurumx-sub000/internal/services"
)

// CurrencyUpdateTokener defines only the methods needed by this handler.
type CurrencyUpdateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CurrencyUpdater defines the interface that the configuration service must implement.
type CurrencyUpdater interface {
	Update(ctx context.Context, operatorID uuid.UUID, code string, draft models.CurrencyDraft) (*models.CurrencyBankAccount, []models.CurrencyBankAccount, error)
}

// CurrencyUpdateResponse carries the updated record plus the re-fetched full set
// swagger:model CurrencyUpdateResponse
type CurrencyUpdateResponse struct {
	Account  *models.CurrencyBankAccount  `json:"account"`
	Accounts []models.CurrencyBankAccount `json:"accounts"`
}

// CurrencyUpdateErrorResponse represents an error response for currency updates
// swagger:model CurrencyUpdateErrorResponse
type CurrencyUpdateErrorResponse struct {
	// Error message
	// default: At least one bank account is required
	Error string `json:"error"`
}

// NewCurrencyUpdateHandler returns an HTTP handler updating a currency configuration.
// @Summary Update currency configuration
// @Description Apply a partial draft to an existing configuration. The currency code is immutable; a draft carrying a bank-account list may never empty it.
// @Tags currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency code"
// @Param draft body models.CurrencyDraft true "Currency Draft"
// @Success 200 {object} handlers.CurrencyUpdateResponse "Updated record plus refreshed set"
// @Failure 400 {object} handlers.CurrencyUpdateErrorResponse "Validation failure"
// @Failure 401 {object} handlers.CurrencyUpdateErrorResponse "Unauthorized"
// @Router /currencies/{code} [put]
// @Security BearerAuth
func NewCurrencyUpdateHandler(svc CurrencyUpdater, tokenGetter CurrencyUpdateTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrencyUpdateErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrencyUpdateErrorResponse{Error: "Unauthorized"})
			return
		}

		var draft models.CurrencyDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CurrencyUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		code := chi.URLParam(r, "code")

		updated, accounts, err := svc.Update(ctx, claims.OperatorID, code, draft)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBankAccountRequired),
				errors.Is(err, services.ErrInvalidAmountRange):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CurrencyUpdateErrorResponse{Error: err.Error()})
			default:
				if status, msg, ok := upstreamError(err); ok {
					w.WriteHeader(status)
					json.NewEncoder(w).Encode(CurrencyUpdateErrorResponse{Error: msg})
					return
				}
				logger.Log.Errorw("failed to update currency", "currency", code, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CurrencyUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrencyUpdateResponse{Account: updated, Accounts: accounts})
	}
}
