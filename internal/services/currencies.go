package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// Error variables
var (
	ErrCurrencyFieldsRequired = errors.New("currency code, name and symbol are required")
	ErrBankAccountRequired    = errors.New("at least one bank account is required")
	ErrInvalidAmountRange     = errors.New("minimum amount must not exceed maximum amount")
	ErrEmptyQRImage           = errors.New("QR image content is empty")
)

// CurrenciesAPI defines the platform calls the configuration workflow drives.
type CurrenciesAPI interface {
	List(ctx context.Context, token string) ([]models.CurrencyBankAccount, error)
	Create(ctx context.Context, token string, draft models.CurrencyDraft) (*models.CurrencyBankAccount, error)
	Update(ctx context.Context, token, code string, draft models.CurrencyDraft) (*models.CurrencyBankAccount, error)
	UploadQR(ctx context.Context, token, code, filename string, content []byte) (string, error)
	Delete(ctx context.Context, token, code string) error
}

// CurrencyConfigService manages per-currency bank-account
// configurations. Draft invariants are enforced here, before any call
// leaves the gateway; deactivation and permanent deletion are separate
// operations so removal is never the default.
type CurrencyConfigService struct {
	tokens TokenResolver
	api    CurrenciesAPI
	audit  ActionRecorder
}

// NewCurrencyConfigService creates a new CurrencyConfigService.
func NewCurrencyConfigService(tokens TokenResolver, api CurrenciesAPI, audit ActionRecorder) *CurrencyConfigService {
	return &CurrencyConfigService{
		tokens: tokens,
		api:    api,
		audit:  audit,
	}
}

// List fetches every configured currency.
func (s *CurrencyConfigService) List(ctx context.Context, operatorID uuid.UUID) ([]models.CurrencyBankAccount, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return s.api.List(ctx, token)
}

func validateCreateDraft(draft models.CurrencyDraft) error {
	if strings.TrimSpace(draft.Currency) == "" ||
		draft.Name == nil || strings.TrimSpace(*draft.Name) == "" ||
		draft.Symbol == nil || strings.TrimSpace(*draft.Symbol) == "" {
		return ErrCurrencyFieldsRequired
	}
	if len(draft.BankAccounts) == 0 {
		return ErrBankAccountRequired
	}
	return validateAmountRange(draft)
}

// validateAmountRange checks min against max only when the draft carries
// both bounds; a partial draft with one bound cannot be range-checked.
func validateAmountRange(draft models.CurrencyDraft) error {
	if draft.MinAmount != nil && draft.MaxAmount != nil && *draft.MinAmount > *draft.MaxAmount {
		return ErrInvalidAmountRange
	}
	return nil
}

// Create registers a new currency configuration and returns it together
// with the re-fetched full set.
func (s *CurrencyConfigService) Create(ctx context.Context, operatorID uuid.UUID, draft models.CurrencyDraft) (*models.CurrencyBankAccount, []models.CurrencyBankAccount, error) {
	if err := validateCreateDraft(draft); err != nil {
		return nil, nil, err
	}

	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, nil, err
	}

	created, err := s.api.Create(ctx, token, draft)
	if err != nil {
		return nil, nil, err
	}

	s.audit.Record(ctx, operatorID, models.AuditActionCreateCurrency, created.Currency, "")

	accounts, err := s.api.List(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	return created, accounts, nil
}

// Update applies a partial draft to an existing configuration. A draft
// that carries a bank-account list may never empty it.
func (s *CurrencyConfigService) Update(ctx context.Context, operatorID uuid.UUID, code string, draft models.CurrencyDraft) (*models.CurrencyBankAccount, []models.CurrencyBankAccount, error) {
	if draft.BankAccounts != nil && len(draft.BankAccounts) == 0 {
		return nil, nil, ErrBankAccountRequired
	}
	if err := validateAmountRange(draft); err != nil {
		return nil, nil, err
	}

	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, nil, err
	}

	updated, err := s.api.Update(ctx, token, code, draft)
	if err != nil {
		return nil, nil, err
	}

	s.audit.Record(ctx, operatorID, models.AuditActionUpdateCurrency, code, "")

	accounts, err := s.api.List(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	return updated, accounts, nil
}

// UploadQR stores a QR image for the currency and returns its URL.
func (s *CurrencyConfigService) UploadQR(ctx context.Context, operatorID uuid.UUID, code, filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyQRImage
	}

	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return "", err
	}

	url, err := s.api.UploadQR(ctx, token, code, filename, content)
	if err != nil {
		return "", err
	}

	s.audit.Record(ctx, operatorID, models.AuditActionUploadQR, code, filename)
	return url, nil
}

// Deactivate soft-disables a currency, keeping its configuration.
func (s *CurrencyConfigService) Deactivate(ctx context.Context, operatorID uuid.UUID, code string) ([]models.CurrencyBankAccount, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	inactive := false
	if _, err := s.api.Update(ctx, token, code, models.CurrencyDraft{IsActive: &inactive}); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, operatorID, models.AuditActionDeactivateCurrency, code, "")
	return s.api.List(ctx, token)
}

// Purge irreversibly deletes a currency configuration.
func (s *CurrencyConfigService) Purge(ctx context.Context, operatorID uuid.UUID, code string) ([]models.CurrencyBankAccount, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if err := s.api.Delete(ctx, token, code); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, operatorID, models.AuditActionPurgeCurrency, code, "")
	return s.api.List(ctx, token)
}
