package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/inkwell-market/inkwell/internal/domain"
)

// Sink delivers user-facing events. Delivery is fire-and-forget: a failing
// sink never rolls back the financial transaction that produced the event.
type Sink interface {
	Notify(ctx context.Context, userID int, event string, ref domain.EntityRef)
	Recall(ctx context.Context, userID int, event string, ref domain.EntityRef)
}

// LogSink writes events to the structured log. It stands in for a real
// delivery channel in development and tests.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (LogSink) Notify(_ context.Context, userID int, event string, ref domain.EntityRef) {
	zap.L().Info("notification",
		zap.Int("userID", userID),
		zap.String("event", event),
		zap.String("refKind", string(ref.Kind)),
		zap.Int("refID", ref.ID),
	)
}

func (LogSink) Recall(_ context.Context, userID int, event string, ref domain.EntityRef) {
	zap.L().Info("notification recalled",
		zap.Int("userID", userID),
		zap.String("event", event),
		zap.String("refKind", string(ref.Kind)),
		zap.Int("refID", ref.ID),
	)
}
