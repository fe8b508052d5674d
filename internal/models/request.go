package models

import "time"

// Add-money request lifecycle states. PENDING and PROCESSING are the only
// states an operator can act on; COMPLETED and REJECTED are terminal.
const (
	RequestStatusPending    = "PENDING"
	RequestStatusProcessing = "PROCESSING"
	RequestStatusCompleted  = "COMPLETED"
	RequestStatusRejected   = "REJECTED"
)

// RequestUser is the owner block embedded in an add-money request.
type RequestUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ReferralCode string `json:"referralCode"`
}

// AddMoneyRequest represents one user's request to convert external
// currency into platform credit.
type AddMoneyRequest struct {
	ID                string      `json:"id"`
	User              RequestUser `json:"user"`
	Currency          string      `json:"currency"`
	Amount            float64     `json:"amount"`
	USDTAmount        float64     `json:"usdtAmount"`
	BonusAmount       float64     `json:"bonusAmount"`
	TotalAmount       float64     `json:"totalAmount"`
	ExchangeRate      float64     `json:"exchangeRate"`
	PaymentMethod     string      `json:"paymentMethod"`
	Status            string      `json:"status"`
	PaymentProof      string      `json:"paymentProof,omitempty"`
	TransactionRef    string      `json:"transactionRef,omitempty"`
	UserNotes         string      `json:"userNotes,omitempty"`
	AdminNotes        string      `json:"adminNotes,omitempty"`
	RejectionReason   string      `json:"rejectionReason,omitempty"`
	BankDetailsSentAt *time.Time  `json:"bankDetailsSentAt,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// RequestSummary aggregates counts shown alongside every request listing.
// swagger:model RequestSummary
type RequestSummary struct {
	// Requests awaiting bank details or payment
	// example: 4
	Pending int `json:"pending"`

	// Requests with payment proof under review
	// example: 2
	Processing int `json:"processing"`

	// Verified and credited requests
	// example: 31
	Completed int `json:"completed"`

	// Sum of credited USDT across completed requests
	// example: 10250.5
	TotalCredited float64 `json:"totalCredited"`
}

// RequestFilters narrows a request listing.
type RequestFilters struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
}
