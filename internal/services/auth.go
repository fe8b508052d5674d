package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// Error variables
var (
	ErrOperatorAlreadyExists = errors.New("username or email already exists")
	ErrOperatorDoesNotExist  = errors.New("username does not exist")
	ErrInvalidCredentials    = errors.New("invalid username or password")
)

// OperatorReader defines read-only operations for operators.
type OperatorReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.OperatorDB, error)
}

// OperatorWriter defines write operations for operators.
type OperatorWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) error
}

// JWTGenerator defines an interface for generating console session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, operatorID uuid.UUID) (string, error)
}

// TokenDropper removes an operator's stored platform token.
type TokenDropper interface {
	Delete(ctx context.Context, operatorID uuid.UUID) error
}

// AuthService handles operator registration, login and logout.
type AuthService struct {
	reader OperatorReader
	writer OperatorWriter
	jwt    JWTGenerator
	tokens TokenDropper
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader OperatorReader, writer OperatorWriter, jwt JWTGenerator, tokens TokenDropper) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		tokens: tokens,
	}
}

// Register registers a new console operator.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	operator, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check operator exists", "err", err)
		return err
	}
	if operator != nil {
		logger.Log.Errorw("operator already exists", "username", username, "email", email)
		return ErrOperatorAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword), email); err != nil {
		logger.Log.Errorw("failed to save operator", "err", err)
		return err
	}

	return nil
}

// Login authenticates an operator and returns a console session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	operator, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get operator", "err", err)
		return "", err
	}
	if operator == nil {
		logger.Log.Errorw("operator does not exist", "username", username)
		return "", ErrOperatorDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, operator.OperatorID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout drops the operator's stored platform token so the next page
// mount triggers a fresh exchange.
func (svc *AuthService) Logout(ctx context.Context, operatorID uuid.UUID) error {
	if err := svc.tokens.Delete(ctx, operatorID); err != nil {
		logger.Log.Errorw("failed to drop platform token", "operator_id", operatorID, "err", err)
		return err
	}
	return nil
}
