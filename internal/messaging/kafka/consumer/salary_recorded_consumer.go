package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"leave-payroll/internal/events"
	"leave-payroll/internal/shared/contextutil"
	"leave-payroll/internal/webhook"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeSalaryRecorded forwards salary_recorded events to the payroll webhook.
// Undecodable messages are committed and dropped; webhook failures leave the
// message uncommitted so the group redelivers it.
func ConsumeSalaryRecorded(
	ctx context.Context,
	reader MessageReader,
	client webhook.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_recorded")
	log.Info("salary recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary recorded consumer stopped")
				return
			}
			log.Error("fetch salary recorded message failed", zap.Error(err))
			continue
		}

		if err := handleSalaryRecorded(ctx, msg, client); err != nil {
			var decodeErr decodeError
			if errors.As(err, &decodeErr) {
				log.Error("decode salary recorded event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			log.Error("forward salary recorded event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary recorded message failed", zap.Error(err))
			continue
		}

		log.Info("salary recorded event forwarded", zap.Int64("offset", msg.Offset))
	}
}

type decodeError struct{ err error }

func (e decodeError) Error() string { return e.err.Error() }

func handleSalaryRecorded(ctx context.Context, msg kafkago.Message, client webhook.Client) error {
	var event events.SalaryRecordedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return decodeError{err: err}
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}

	return client.Notify(ctx, webhook.PayrollNotification{
		EmployeeID: event.EmployeeID,
		Event:      events.SalaryRecordedEventType,
		Data:       json.RawMessage(msg.Value),
	})
}
