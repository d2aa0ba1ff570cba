package listener

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
)

// MessageWriter is the part of broker.KafkaProducer the publisher needs.
type MessageWriter interface {
	Publish(ctx context.Context, key, value []byte) error
}

type KafkaPublisher struct {
	producer MessageWriter
}

func NewKafkaPublisher(producer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

// PublishCategoryChanged keys the message by category id so changes to one category
// stay ordered.
func (p *KafkaPublisher) PublishCategoryChanged(ctx context.Context, event *category.ChangedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := strconv.FormatInt(event.Payload.CategoryID, 10)
	return p.producer.Publish(ctx, []byte(key), value)
}
