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

// Removal modes. There is no default: the caller must choose.
const (
	RemovalModeDeactivate = "deactivate"
	RemovalModeDelete     = "delete"
)

// CurrencyDeleteTokener defines only the methods needed by this handler.
type CurrencyDeleteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CurrencyRemover defines the interface that the configuration service must implement.
type CurrencyRemover interface {
	Deactivate(ctx context.Context, operatorID uuid.UUID, code string) ([]models.CurrencyBankAccount, error)
	Purge(ctx context.Context, operatorID uuid.UUID, code string) ([]models.CurrencyBankAccount, error)
}

// CurrencyDeleteResponse carries the re-fetched configuration set after removal
// swagger:model CurrencyDeleteResponse
type CurrencyDeleteResponse struct {
	Accounts []models.CurrencyBankAccount `json:"accounts"`
}

// CurrencyDeleteErrorResponse represents an error response for currency removal
// swagger:model CurrencyDeleteErrorResponse
type CurrencyDeleteErrorResponse struct {
	// Error message
	// default: Removal mode must be deactivate or delete
	Error string `json:"error"`
}

// NewCurrencyDeleteHandler returns an HTTP handler removing a currency configuration.
// Deactivation keeps the record; delete is irreversible, so the mode is
// an explicit required choice.
// @Summary Remove currency configuration
// @Description Deactivate (mode=deactivate) or permanently delete (mode=delete) a currency configuration. The mode parameter is required.
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code"
// @Param mode query string true "Removal mode: deactivate or delete"
// @Success 200 {object} handlers.CurrencyDeleteResponse "Refreshed configuration set"
// @Failure 400 {object} handlers.CurrencyDeleteErrorResponse "Missing or invalid mode"
// @Failure 401 {object} handlers.CurrencyDeleteErrorResponse "Unauthorized"
// @Router /currencies/{code} [delete]
// @Security BearerAuth
func NewCurrencyDeleteHandler(svc CurrencyRemover, tokenGetter CurrencyDeleteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrencyDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrencyDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		code := chi.URLParam(r, "code")

		var accounts []models.CurrencyBankAccount
		switch r.URL.Query().Get("mode") {
		case RemovalModeDeactivate:
			accounts, err = svc.Deactivate(ctx, claims.OperatorID, code)
		case RemovalModeDelete:
			accounts, err = svc.Purge(ctx, claims.OperatorID, code)
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CurrencyDeleteErrorResponse{
				Error: "Removal mode must be deactivate or delete",
			})
			return
		}

		if err != nil {
			if status, msg, ok := upstreamError(err); ok {
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(CurrencyDeleteErrorResponse{Error: msg})
				return
			}
			logger.Log.Errorw("failed to remove currency", "currency", code, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CurrencyDeleteErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrencyDeleteResponse{Accounts: accounts})
	}
}
