package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

func TestCurrencyDeleteHandler(t *testing.T) {
	operatorID := uuid.New()
	remaining := []models.CurrencyBankAccount{{Currency: "USD", Name: "US Dollar", Symbol: "$"}}

	tests := []struct {
		name         string
		mode         string
		setupMocks   func(svc *MockCurrencyRemover, tok *MockSessionTokener)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "deactivate keeps the record",
			mode: "deactivate",
			setupMocks: func(svc *MockCurrencyRemover, tok *MockSessionTokener) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{OperatorID: operatorID}, nil)
				svc.EXPECT().Deactivate(gomock.Any(), operatorID, "INR").Return(remaining, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "delete is permanent",
			mode: "delete",
			setupMocks: func(svc *MockCurrencyRemover, tok *MockSessionTokener) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{OperatorID: operatorID}, nil)
				svc.EXPECT().Purge(gomock.Any(), operatorID, "INR").Return(remaining, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing mode is rejected",
			mode: "",
			setupMocks: func(svc *MockCurrencyRemover, tok *MockSessionTokener) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{OperatorID: operatorID}, nil)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Removal mode must be deactivate or delete",
		},
		{
			name: "unknown mode is rejected",
			mode: "archive",
			setupMocks: func(svc *MockCurrencyRemover, tok *MockSessionTokener) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{OperatorID: operatorID}, nil)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Removal mode must be deactivate or delete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCurrencyRemover(ctrl)
			tok := NewMockSessionTokener(ctrl)
			tt.setupMocks(svc, tok)

			router := chi.NewRouter()
			router.Delete("/currencies/{code}", NewCurrencyDeleteHandler(svc, tok))

			target := "/currencies/INR"
			if tt.mode != "" {
				target += "?mode=" + tt.mode
			}
			req := httptest.NewRequest(http.MethodDelete, target, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp CurrencyDeleteResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, remaining, resp.Accounts)
			} else {
				var resp CurrencyDeleteErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
		})
	}
}
