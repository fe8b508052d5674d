package clients

import (
	"context"
	"net/http"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

const currenciesBasePath = "/api/v1/currency-bank-accounts"

// CurrenciesClient calls the currency bank-account endpoints. Records
// are addressed by currency code, never by row id.
type CurrenciesClient struct {
	caller *Caller
}

// NewCurrenciesClient creates a new CurrenciesClient.
func NewCurrenciesClient(caller *Caller) *CurrenciesClient {
	return &CurrenciesClient{caller: caller}
}

type currencyListData struct {
	Accounts []models.CurrencyBankAccount `json:"accounts"`
}

// List fetches every configured currency. The set is small (one row per
// supported currency) so there is no pagination.
func (c *CurrenciesClient) List(ctx context.Context, token string) ([]models.CurrencyBankAccount, error) {
	env, err := c.caller.JSON(ctx, http.MethodGet, currenciesBasePath, token, nil)
	if err != nil {
		return nil, err
	}

	var data currencyListData
	if err := decodeData(env, &data); err != nil {
		return nil, err
	}
	return data.Accounts, nil
}

// Create registers a new currency configuration. Currency uniqueness is
// enforced server-side; a duplicate comes back as a failed envelope.
func (c *CurrenciesClient) Create(ctx context.Context, token string, draft models.CurrencyDraft) (*models.CurrencyBankAccount, error) {
	env, err := c.caller.JSON(ctx, http.MethodPost, currenciesBasePath, token, draft)
	if err != nil {
		return nil, err
	}

	var acc models.CurrencyBankAccount
	if err := decodeData(env, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// Update applies a partial draft to the configuration for code. The
// currency code and creation metadata are immutable through this path.
func (c *CurrenciesClient) Update(ctx context.Context, token, code string, draft models.CurrencyDraft) (*models.CurrencyBankAccount, error) {
	draft.Currency = ""
	env, err := c.caller.JSON(ctx, http.MethodPut, currenciesBasePath+"/"+code, token, draft)
	if err != nil {
		return nil, err
	}

	var acc models.CurrencyBankAccount
	if err := decodeData(env, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

type qrUploadData struct {
	QRCodeURL string `json:"qrCodeUrl"`
}

// UploadQR stores a QR image for the currency and returns its URL. The
// file travels as the multipart field "qrCode".
func (c *CurrenciesClient) UploadQR(ctx context.Context, token, code, filename string, content []byte) (string, error) {
	env, err := c.caller.Multipart(ctx, currenciesBasePath+"/"+code+"/qr-code", token, "qrCode", filename, content)
	if err != nil {
		return "", err
	}

	var data qrUploadData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	return data.QRCodeURL, nil
}

// Delete permanently removes the configuration for code. Soft
// deactivation goes through Update with isActive=false instead.
func (c *CurrenciesClient) Delete(ctx context.Context, token, code string) error {
	_, err := c.caller.JSON(ctx, http.MethodDelete, currenciesBasePath+"/"+code, token, nil)
	return err
}
