package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of broker.KafkaConsumer the listener needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// CategoryListener reacts to directory changes made by other back-office writers by
// marking the shared tree stale.
type CategoryListener struct {
	consumer   MessageReader
	uc         category.UseCase
	logger     logger.ZapLogger
	retryDelay time.Duration
}

func NewCategoryListener(consumer MessageReader, uc category.UseCase, logger logger.ZapLogger) *CategoryListener {
	return &CategoryListener{
		consumer:   consumer,
		uc:         uc,
		logger:     logger,
		retryDelay: time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (l *CategoryListener) Start(ctx context.Context) {
	l.logger.Info("Starting Category Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Category Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.retryDelay):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *CategoryListener) processMessage(ctx context.Context, value []byte) {
	var event category.ChangedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != category.EventCategoryChanged {
		return
	}
	// Our own writes already bumped the version.
	if event.Source == category.EventSource {
		return
	}

	l.logger.Info("Processing CategoryChanged event",
		zap.String("event_id", event.EventID),
		zap.String("source", event.Source),
		zap.Int64("category_id", event.Payload.CategoryID),
		zap.String("action", event.Payload.Action),
	)

	if err := l.uc.InvalidateTree(ctx); err != nil {
		l.logger.Error("Failed to invalidate category tree",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}
