package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// AuditWriter persists audit events locally.
type AuditWriter interface {
	Save(ctx context.Context, event models.AuditEvent) error // Appends one audit row
}

// AuditKafkaWriter defines a Kafka writer abstraction.
type AuditKafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuditRecorder records operator actions to the audit table and Kafka.
// Recording never fails the workflow that triggered it: failures are
// logged and dropped.
type AuditRecorder struct {
	writer      AuditWriter
	kafkaWriter AuditKafkaWriter
}

// NewAuditRecorder creates a new AuditRecorder. Either sink may be nil.
func NewAuditRecorder(writer AuditWriter, kafkaWriter AuditKafkaWriter) *AuditRecorder {
	return &AuditRecorder{
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Record captures one operator action against a platform record.
func (r *AuditRecorder) Record(ctx context.Context, operatorID uuid.UUID, action, targetID, detail string) {
	event := models.AuditEvent{
		EventID:    uuid.NewString(),
		OperatorID: operatorID.String(),
		Action:     action,
		TargetID:   targetID,
		Detail:     detail,
		Timestamp:  time.Now().Unix(),
	}

	if r.writer != nil {
		if err := r.writer.Save(ctx, event); err != nil {
			logger.Log.Errorw("failed to persist audit event", "event_id", event.EventID, "action", action, "error", err)
		}
	}

	r.publish(ctx, event)
}

func (r *AuditRecorder) publish(ctx context.Context, event models.AuditEvent) {
	if r.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal audit event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := r.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish audit event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Audit event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}
