package models

import "time"

// KYC verification states for platform end users.
const (
	KYCApproved     = "APPROVED"
	KYCPending      = "PENDING"
	KYCRejected     = "REJECTED"
	KYCNotSubmitted = "NOT_SUBMITTED"
	KYCExpired      = "EXPIRED"
)

// Account states for platform end users.
const (
	UserStatusActive    = "ACTIVE"
	UserStatusInactive  = "INACTIVE"
	UserStatusSuspended = "SUSPENDED"
	UserStatusPending   = "PENDING"
)

// WalletSnapshot is the balance block embedded in a user record.
type WalletSnapshot struct {
	Balance       float64 `json:"balance"`
	LockedBalance float64 `json:"lockedBalance"`
	TotalEarnings float64 `json:"totalEarnings"`
}

// User is a platform end user as listed in the directory. The console
// never mutates users; records are remote-owned and fetched per view.
type User struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	KYCStatus    string         `json:"kycStatus"`
	Status       string         `json:"status"`
	Wallet       WalletSnapshot `json:"wallet"`
	ReferralCode string         `json:"referralCode"`
	ReferredBy   string         `json:"referredBy,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// UserFilters narrows a user directory listing.
type UserFilters struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Status string `json:"status"`
	Search string `json:"search"`
}
