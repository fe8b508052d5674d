package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

func newAuditEvent() models.AuditEvent {
	return models.AuditEvent{
		EventID:    uuid.NewString(),
		OperatorID: uuid.NewString(),
		Action:     models.AuditActionRejectRequest,
		TargetID:   "r42",
		Detail:     "duplicate transaction id",
		Timestamp:  time.Now().Unix(),
	}
}

func TestAuditWriteRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "pgx")
	repo := NewAuditWriteRepository(sqlxDB)

	event := newAuditEvent()

	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(event.EventID, event.OperatorID, event.Action, event.TargetID, event.Detail, event.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(context.Background(), event)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditWriteRepository_SaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "pgx")
	repo := NewAuditWriteRepository(sqlxDB)

	event := newAuditEvent()

	mock.ExpectExec("INSERT INTO audit_events").
		WillReturnError(errors.New("connection reset"))

	err = repo.Save(context.Background(), event)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
