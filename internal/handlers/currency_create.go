package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
	"github.com/Evecotrip/god-aurumx-sub000/internal/services"
)

// CurrencyCreateTokener defines only the methods needed by this handler.
type CurrencyCreateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CurrencyCreator defines the interface that the configuration service must implement.
type CurrencyCreator interface {
	Create(ctx context.Context, operatorID uuid.UUID, draft models.CurrencyDraft) (*models.CurrencyBankAccount, []models.CurrencyBankAccount, error)
}

// CurrencyCreateResponse carries the created record plus the re-fetched full set
// swagger:model CurrencyCreateResponse
type CurrencyCreateResponse struct {
	Account  *models.CurrencyBankAccount  `json:"account"`
	Accounts []models.CurrencyBankAccount `json:"accounts"`
}

// CurrencyCreateErrorResponse represents an error response for currency creation
// swagger:model CurrencyCreateErrorResponse
type CurrencyCreateErrorResponse struct {
	// Error message
	// default: At least one bank account is required
	Error string `json:"error"`
}

// NewCurrencyCreateHandler returns an HTTP handler creating a currency configuration.
// @Summary Create currency configuration
// @Description Register a new per-currency deposit configuration. Requires code, name, symbol and at least one bank account.
// @Tags currencies
// @Accept json
// @Produce json
// @Param draft body models.CurrencyDraft true "Currency Draft"
// @Success 201 {object} handlers.CurrencyCreateResponse "Created record plus refreshed set"
// @Failure 400 {object} handlers.CurrencyCreateErrorResponse "Validation failure"
// @Failure 401 {object} handlers.CurrencyCreateErrorResponse "Unauthorized"
// @Router /currencies [post]
// @Security BearerAuth
func NewCurrencyCreateHandler(svc CurrencyCreator, tokenGetter CurrencyCreateTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrencyCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrencyCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		var draft models.CurrencyDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CurrencyCreateErrorResponse{Error: "invalid request body"})
			return
		}

		created, accounts, err := svc.Create(ctx, claims.OperatorID, draft)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCurrencyFieldsRequired),
				errors.Is(err, services.ErrBankAccountRequired),
				errors.Is(err, services.ErrInvalidAmountRange):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CurrencyCreateErrorResponse{Error: err.Error()})
			default:
				if status, msg, ok := upstreamError(err); ok {
					w.WriteHeader(status)
					json.NewEncoder(w).Encode(CurrencyCreateErrorResponse{Error: msg})
					return
				}
				logger.Log.Errorw("failed to create currency", "currency", draft.Currency, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CurrencyCreateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CurrencyCreateResponse{Account: created, Accounts: accounts})
	}
}
