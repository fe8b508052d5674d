package models

import (
	"time"

	"github.com/google/uuid"
)

// OperatorDB represents a console operator record in the database
type OperatorDB struct {
	OperatorID   uuid.UUID `json:"operator_id" db:"operator_id"` // Primary key
	Username     string    `json:"username" db:"username"`       // Unique username
	Email        string    `json:"email" db:"email"`             // Operator email
	PasswordHash string    `json:"password_hash" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
