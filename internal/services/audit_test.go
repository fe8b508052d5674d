package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
	"github.com/Evecotrip/god-aurumx-sub000/internal/services"
)

func TestAuditRecorder_Record(t *testing.T) {
	operatorID := uuid.New()
	ctx := context.Background()

	t.Run("persists and publishes the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := services.NewMockAuditWriter(ctrl)
		kafkaWriter := services.NewMockAuditKafkaWriter(ctrl)

		var saved models.AuditEvent
		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event models.AuditEvent) error {
				saved = event
				return nil
			})

		var published kafka.Message
		kafkaWriter.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				published = msgs[0]
				return nil
			})

		recorder := services.NewAuditRecorder(writer, kafkaWriter)
		recorder.Record(ctx, operatorID, models.AuditActionVerifyRequest, "r5", "ok")

		assert.Equal(t, operatorID.String(), saved.OperatorID)
		assert.Equal(t, models.AuditActionVerifyRequest, saved.Action)
		assert.Equal(t, "r5", saved.TargetID)
		assert.NotEmpty(t, saved.EventID)

		var fromKafka models.AuditEvent
		assert.NoError(t, json.Unmarshal(published.Value, &fromKafka))
		assert.Equal(t, saved.EventID, fromKafka.EventID)
		assert.Equal(t, []byte(saved.EventID), published.Key)
	})

	t.Run("persistence failure does not block publishing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := services.NewMockAuditWriter(ctrl)
		kafkaWriter := services.NewMockAuditKafkaWriter(ctrl)

		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("pg down"))
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		recorder := services.NewAuditRecorder(writer, kafkaWriter)
		recorder.Record(ctx, operatorID, models.AuditActionPurgeCurrency, "NGN", "")
	})

	t.Run("nil kafka writer skips publishing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := services.NewMockAuditWriter(ctrl)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		recorder := services.NewAuditRecorder(writer, nil)
		recorder.Record(ctx, operatorID, models.AuditActionUploadQR, "INR", "qr.png")
	})
}
