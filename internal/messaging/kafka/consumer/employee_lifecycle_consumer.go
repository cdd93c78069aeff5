package consumer

import (
	"context"
	"encoding/json"

	"hrms/internal/bootstrap"
	"hrms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle turns employee.created events into audit entries
// so onboarding shows up in the audit stream even when the API node that
// created the employee is gone.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "EMPLOYEE_ONBOARDED",
			Message: "Employee record created",
			Meta: map[string]any{
				"employee_id":     event.EmployeeID,
				"organization_id": event.OrganizationID,
				"occurred_at":     event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee_created event consumed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("organization_id", event.OrganizationID),
		)
	}
}
