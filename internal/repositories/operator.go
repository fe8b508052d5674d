package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

type OperatorReadRepository struct {
	db *sqlx.DB
}

func NewOperatorReadRepository(db *sqlx.DB) *OperatorReadRepository {
	return &OperatorReadRepository{db: db}
}

// GetByUsernameOrEmail returns the matching operator or nil when none exists.
func (r *OperatorReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.OperatorDB, error) {
	const query = `
		SELECT operator_id, username, email, password_hash, created_at, updated_at
		FROM operators
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var operator models.OperatorDB
	err := r.db.GetContext(ctx, &operator, query, username, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &operator, nil
}

type OperatorWriteRepository struct {
	db *sqlx.DB
}

func NewOperatorWriteRepository(db *sqlx.DB) *OperatorWriteRepository {
	return &OperatorWriteRepository{db: db}
}

func (r *OperatorWriteRepository) Save(ctx context.Context, username, passwordHash, email string) error {
	query := `
		INSERT INTO operators (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    email = EXCLUDED.email,
		    updated_at = NOW()
	`
	args := []any{username, email, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
