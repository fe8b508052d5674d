package models

import "encoding/json"

// Pagination carries list paging metadata returned by the platform API
// and mirrored back to the console.
// swagger:model Pagination
type Pagination struct {
	// Current page, 1-based
	// example: 1
	Page int `json:"page"`

	// Page size
	// example: 20
	Limit int `json:"limit"`

	// Total matching records
	// example: 57
	Total int `json:"total"`

	// Total pages at the current limit
	// example: 3
	TotalPages int `json:"totalPages"`
}

// Envelope is the uniform response wrapper used by every platform API
// endpoint. Data stays raw until the caller decodes it into a typed value.
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}
