package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Evecotrip/god-aurumx-sub000/internal/jwt"
)

func multipartQRBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestQRUploadHandler(t *testing.T) {
	operatorID := uuid.New()

	t.Run("stores the QR image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockQRUploader(ctrl)
		tok := NewMockSessionTokener(ctrl)

		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{OperatorID: operatorID}, nil)
		svc.EXPECT().
			UploadQR(gomock.Any(), operatorID, "INR", "qr.png", []byte("png-bytes")).
			Return("https://cdn.example.com/qr/INR.png", nil)

		router := chi.NewRouter()
		router.Post("/currencies/{code}/qr", NewQRUploadHandler(svc, tok))

		body, contentType := multipartQRBody(t, "qrCode", "qr.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/currencies/INR/qr", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp QRUploadResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "https://cdn.example.com/qr/INR.png", resp.QRCodeURL)
	})

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockQRUploader(ctrl)
		tok := NewMockSessionTokener(ctrl)

		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{OperatorID: operatorID}, nil)

		router := chi.NewRouter()
		router.Post("/currencies/{code}/qr", NewQRUploadHandler(svc, tok))

		body, contentType := multipartQRBody(t, "wrongField", "qr.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/currencies/INR/qr", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp QRUploadErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "QR image is required", resp.Error)
	})

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockQRUploader(ctrl)
		tok := NewMockSessionTokener(ctrl)

		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{OperatorID: operatorID}, nil)

		router := chi.NewRouter()
		router.Post("/currencies/{code}/qr", NewQRUploadHandler(svc, tok))

		req := httptest.NewRequest(http.MethodPost, "/currencies/INR/qr", bytes.NewReader([]byte("not multipart")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
