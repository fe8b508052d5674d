package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// CurrenciesListTokener defines only the methods needed by this handler.
type CurrenciesListTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CurrenciesLister defines the interface that the configuration service must implement.
type CurrenciesLister interface {
	List(ctx context.Context, operatorID uuid.UUID) ([]models.CurrencyBankAccount, error)
}

// CurrenciesListResponse represents the full currency configuration set
// swagger:model CurrenciesListResponse
type CurrenciesListResponse struct {
	Accounts []models.CurrencyBankAccount `json:"accounts"`
}

// CurrenciesListErrorResponse represents an error response for the currency listing
// swagger:model CurrenciesListErrorResponse
type CurrenciesListErrorResponse struct {
	// Error message
	// default: Unable to reach the platform API
	Error string `json:"error"`
}

// NewCurrenciesListHandler returns an HTTP handler listing every currency configuration.
// @Summary List currency configurations
// @Description Fetch every configured currency with its bank accounts
// @Tags currencies
// @Produce json
// @Success 200 {object} handlers.CurrenciesListResponse "All currency configurations"
// @Failure 401 {object} handlers.CurrenciesListErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.CurrenciesListErrorResponse "Platform API unreachable"
// @Router /currencies [get]
// @Security BearerAuth
func NewCurrenciesListHandler(svc CurrenciesLister, tokenGetter CurrenciesListTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrenciesListErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CurrenciesListErrorResponse{Error: "Unauthorized"})
			return
		}

		accounts, err := svc.List(ctx, claims.OperatorID)
		if err != nil {
			if status, msg, ok := upstreamError(err); ok {
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(CurrenciesListErrorResponse{Error: msg})
				return
			}
			logger.Log.Errorw("failed to list currencies", "operatorID", claims.OperatorID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CurrenciesListErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrenciesListResponse{Accounts: accounts})
	}
}
