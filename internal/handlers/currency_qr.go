package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/services"
)

// 5 MiB cap on QR uploads.
const maxQRUploadBytes = 5 << 20

// QRUploadTokener defines only the methods needed by this handler.
type QRUploadTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// QRUploader defines the interface that the configuration service must implement.
type QRUploader interface {
	UploadQR(ctx context.Context, operatorID uuid.UUID, code, filename string, content []byte) (string, error)
}

// QRUploadResponse carries the stored QR image URL
// swagger:model QRUploadResponse
type QRUploadResponse struct {
	// URL of the stored QR image
	QRCodeURL string `json:"qrCodeUrl"`
}

// QRUploadErrorResponse represents an error response for QR uploads
// swagger:model QRUploadErrorResponse
type QRUploadErrorResponse struct {
	// Error message
	// default: QR image is required
	Error string `json:"error"`
}

// NewQRUploadHandler returns an HTTP handler storing a QR image for a currency.
// @Summary Upload QR image
// @Description Store a payment QR image for the currency. Multipart form with field "qrCode".
// @Tags currencies
// @Accept multipart/form-data
// @Produce json
// @Param code path string true "Currency code"
// @Param qrCode formData file true "QR image"
// @Success 200 {object} handlers.QRUploadResponse "Stored QR image URL"
// @Failure 400 {object} handlers.QRUploadErrorResponse "QR image missing or empty"
// @Failure 401 {object} handlers.QRUploadErrorResponse "Unauthorized"
// @Router /currencies/{code}/qr [post]
// @Security BearerAuth
func NewQRUploadHandler(svc QRUploader, tokenGetter QRUploadTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(QRUploadErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(QRUploadErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := r.ParseMultipartForm(maxQRUploadBytes); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(QRUploadErrorResponse{Error: "invalid multipart form"})
			return
		}

		file, header, err := r.FormFile("qrCode")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(QRUploadErrorResponse{Error: "QR image is required"})
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read QR upload", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(QRUploadErrorResponse{Error: "Internal server error"})
			return
		}

		code := chi.URLParam(r, "code")

		url, err := svc.UploadQR(ctx, claims.OperatorID, code, header.Filename, content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyQRImage):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(QRUploadErrorResponse{Error: "QR image is required"})
			default:
				if status, msg, ok := upstreamError(err); ok {
					w.WriteHeader(status)
					json.NewEncoder(w).Encode(QRUploadErrorResponse{Error: msg})
					return
				}
				logger.Log.Errorw("failed to upload QR", "currency", code, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(QRUploadErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(QRUploadResponse{QRCodeURL: url})
	}
}
