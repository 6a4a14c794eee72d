package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"leave-payroll/internal/events"
	"leave-payroll/internal/messaging/kafka/consumer"
	"leave-payroll/internal/webhook"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const payrollWebhookGroupID = "leave-payroll-payroll-webhook"

// RunConsumer forwards salary_recorded events to the payroll webhook until
// SIGINT/SIGTERM.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.requireKafka(); err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.SalaryRecordedTopic,
		GroupID:        payrollWebhookGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	client := webhook.NewClient(cfg.PayrollWebhookURL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeSalaryRecorded(ctx, reader, client, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
