package models

// InvestmentSummary aggregates a user's investment positions.
type InvestmentSummary struct {
	ActiveCount   int     `json:"activeCount"`
	TotalInvested float64 `json:"totalInvested"`
	TotalReturns  float64 `json:"totalReturns"`
}

// TransactionSummary aggregates a user's transaction history.
type TransactionSummary struct {
	Count       int     `json:"count"`
	TotalVolume float64 `json:"totalVolume"`
}

// ReferralSummary describes a user's position in the referral hierarchy.
type ReferralSummary struct {
	DirectCount int `json:"directCount"`
	TotalCount  int `json:"totalCount"`
	Depth       int `json:"depth"`
}

// FlowSummary aggregates one money-flow direction (add money or withdrawals).
type FlowSummary struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
	Pending     int     `json:"pending"`
}

// UserStatsAggregate is the read-only composite fetched on demand for a
// single user. It is never cached or mutated by the console.
type UserStatsAggregate struct {
	UserID       string             `json:"userId"`
	Wallet       WalletSnapshot     `json:"wallet"`
	Investments  InvestmentSummary  `json:"investments"`
	Transactions TransactionSummary `json:"transactions"`
	Referrals    ReferralSummary    `json:"referrals"`
	AddMoney     FlowSummary        `json:"addMoney"`
	Withdrawals  FlowSummary        `json:"withdrawals"`
}
