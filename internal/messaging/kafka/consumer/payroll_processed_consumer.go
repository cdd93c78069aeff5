package consumer

import (
	"context"
	"encoding/json"

	"hrms/internal/bootstrap"
	"hrms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumePayrollProcessed(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_processed")
	log.Info("payroll processed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll processed consumer stopped")
				return
			}
			log.Error("fetch payroll processed message failed", zap.Error(err))
			continue
		}

		var event events.PayrollProcessedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll.processed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "PAYROLL_PROCESSED",
			Message: "Payroll run completed",
			Meta: map[string]any{
				"payroll_id":      event.PayrollID,
				"organization_id": event.OrganizationID,
				"processed_by":    event.ProcessedBy,
				"total_amount":    event.TotalAmount,
				"occurred_at":     event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll processed message failed", zap.Error(err))
			continue
		}

		log.Info("payroll.processed event consumed",
			zap.String("payroll_id", event.PayrollID),
			zap.String("organization_id", event.OrganizationID),
		)
	}
}
