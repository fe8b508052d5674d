package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
	"github.com/Evecotrip/god-aurumx-sub000/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockOperatorReader(ctrl)
	mockWriter := services.NewMockOperatorWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockTokens := services.NewMockTokenDropper(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockTokens)

	tests := []struct {
		name             string
		username         string
		password         string
		email            string
		existingOperator *models.OperatorDB
		readerErr        error
		writerErr        error
		wantErr          error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			email:    "alice@example.com",
		},
		{
			name:             "operator already exists",
			username:         "bob",
			password:         "pass123",
			email:            "bob@example.com",
			existingOperator: &models.OperatorDB{OperatorID: uuid.New()},
			wantErr:          services.ErrOperatorAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingOperator, tt.readerErr)

			if tt.existingOperator == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any(), tt.email).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.username, tt.password, tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockOperatorReader(ctrl)
	mockWriter := services.NewMockOperatorWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockTokens := services.NewMockTokenDropper(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockTokens)

	operatorID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	t.Run("successful login returns token", func(t *testing.T) {
		username := "alice"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(&models.OperatorDB{OperatorID: operatorID, Username: username, PasswordHash: string(hash)}, nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), operatorID).
			Return("SESSION_TOKEN", nil)

		token, err := svc.Login(context.Background(), username, "pass123")
		assert.NoError(t, err)
		assert.Equal(t, "SESSION_TOKEN", token)
	})

	t.Run("unknown operator", func(t *testing.T) {
		username := "ghost"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(nil, nil)

		_, err := svc.Login(context.Background(), username, "pass123")
		assert.ErrorIs(t, err, services.ErrOperatorDoesNotExist)
	})

	t.Run("wrong password", func(t *testing.T) {
		username := "alice"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(&models.OperatorDB{OperatorID: operatorID, Username: username, PasswordHash: string(hash)}, nil)

		_, err := svc.Login(context.Background(), username, "wrongpass")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockOperatorReader(ctrl)
	mockWriter := services.NewMockOperatorWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockTokens := services.NewMockTokenDropper(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockTokens)
	operatorID := uuid.New()

	t.Run("logout drops the platform token", func(t *testing.T) {
		mockTokens.EXPECT().Delete(gomock.Any(), operatorID).Return(nil)
		assert.NoError(t, svc.Logout(context.Background(), operatorID))
	})

	t.Run("store failure propagates", func(t *testing.T) {
		mockTokens.EXPECT().Delete(gomock.Any(), operatorID).Return(errors.New("redis down"))
		assert.Error(t, svc.Logout(context.Background(), operatorID))
	})
}
