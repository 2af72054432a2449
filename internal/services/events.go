package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
)

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// AfterCommitFunc schedules fn to run once the transaction carried by ctx
// commits. It reports false when ctx carries no transaction.
type AfterCommitFunc func(ctx context.Context, fn func()) bool

// CommitAwareWriter holds messages written inside a request transaction back
// until that transaction commits, so a rolled back write is never announced.
// Messages written outside a transaction go out immediately.
type CommitAwareWriter struct {
	next        EventWriter
	afterCommit AfterCommitFunc
}

// NewCommitAwareWriter wraps next.
func NewCommitAwareWriter(next EventWriter, afterCommit AfterCommitFunc) *CommitAwareWriter {
	return &CommitAwareWriter{next: next, afterCommit: afterCommit}
}

// WriteMessages writes msgs now or after commit.
func (w *CommitAwareWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	deferred := w.afterCommit(ctx, func() {
		if err := w.next.WriteMessages(context.WithoutCancel(ctx), msgs...); err != nil {
			logger.Log.Errorw("failed to publish event after commit", "count", len(msgs), "error", err)
		}
	})
	if deferred {
		return nil
	}
	return w.next.WriteMessages(ctx, msgs...)
}

// publishEvent sends a domain event. Publishing is best effort: failures are
// logged and never fail the operation that produced the event.
func publishEvent(ctx context.Context, w EventWriter, event models.Event) {
	if w == nil {
		logger.Log.Debugw("event writer not configured, skipping publishing", "type", event.Type, "key", event.Key)
		return
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "type", event.Type, "key", event.Key, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "type", event.Type, "key", event.Key, "error", err)
		return
	}
	logger.Log.Infow("event published", "type", event.Type, "key", event.Key)
}
