package models

import "time"

// BankAccount is one deposit destination inside a currency configuration.
type BankAccount struct {
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode,omitempty"`
	Branch        string `json:"branch,omitempty"`
	UPIID         string `json:"upiId,omitempty"`
}

// CurrencyBankAccount is the per-currency deposit configuration. The
// currency code, not the row id, is the stable key for update, delete
// and QR upload operations.
type CurrencyBankAccount struct {
	ID             string        `json:"id"`
	Currency       string        `json:"currency"`
	Name           string        `json:"name"`
	Symbol         string        `json:"symbol"`
	BankAccounts   []BankAccount `json:"bankAccounts"`
	QRCodeURL      string        `json:"qrCodeUrl,omitempty"`
	QRCodeProvider string        `json:"qrCodeProvider,omitempty"`
	Instructions   string        `json:"instructions,omitempty"`
	IsActive       bool          `json:"isActive"`
	Priority       int           `json:"priority"`
	MinAmount      int           `json:"minAmount"`
	MaxAmount      int           `json:"maxAmount"`
	Country        string        `json:"country"`
	ProcessingTime string        `json:"processingTime,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	UpdatedBy      string        `json:"updatedBy,omitempty"`
}

// CurrencyDraft is the validated payload for creating or updating a
// currency configuration. On update, nil slices and pointers mean
// "leave unchanged"; the currency code itself is immutable.
type CurrencyDraft struct {
	Currency       string        `json:"currency,omitempty"`
	Name           *string       `json:"name,omitempty"`
	Symbol         *string       `json:"symbol,omitempty"`
	BankAccounts   []BankAccount `json:"bankAccounts,omitempty"`
	QRCodeProvider string        `json:"qrCodeProvider,omitempty"`
	Instructions   string        `json:"instructions,omitempty"`
	IsActive       *bool         `json:"isActive,omitempty"`
	Priority       *int          `json:"priority,omitempty"`
	MinAmount      *int          `json:"minAmount,omitempty"`
	MaxAmount      *int          `json:"maxAmount,omitempty"`
	Country        *string       `json:"country,omitempty"`
	ProcessingTime string        `json:"processingTime,omitempty"`
}
