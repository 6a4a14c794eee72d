package notifier

import (
	"context"

	"leave-payroll/internal/events"
)

// Publisher fans changes out to live observers. Delivery is best effort:
// Publish never fails the caller, problems are only logged.
//
//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, changes ...events.Change)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ...events.Change) {}

// Nop returns a Publisher that drops everything.
func Nop() Publisher {
	return nopPublisher{}
}
