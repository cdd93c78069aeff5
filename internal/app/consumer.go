package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hrms/internal/bootstrap"
	"hrms/internal/events"
	"hrms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer subscribes to the domain event topics and feeds the audit
// stream.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()

	employeeReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        "hrms-employee-lifecycle",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer employeeReader.Close()

	payrollReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayrollProcessedTopic,
		GroupID:        "hrms-payroll-processed",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer payrollReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, employeeReader, auditLogger, logger)
	go consumer.ConsumePayrollProcessed(ctx, payrollReader, auditLogger, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
