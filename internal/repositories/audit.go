package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// AuditWriteRepository persists operator actions into the local audit
// table. The table is append-only; the console never updates or deletes
// audit rows.
type AuditWriteRepository struct {
	db *sqlx.DB
}

func NewAuditWriteRepository(db *sqlx.DB) *AuditWriteRepository {
	return &AuditWriteRepository{db: db}
}

func (r *AuditWriteRepository) Save(ctx context.Context, event models.AuditEvent) error {
	query := `
		INSERT INTO audit_events (event_id, operator_id, action, target_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, TO_TIMESTAMP($6))
	`
	args := []any{event.EventID, event.OperatorID, event.Action, event.TargetID, event.Detail, event.Timestamp}

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
