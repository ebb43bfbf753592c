package storage

import (
	"context"
	"encoding/json"

	"foodtour/rate-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishReview keys messages by restaurant so one restaurant's events stay
// ordered within a partition.
func (p *KafkaPublisher) PublishReview(ctx context.Context, event domain.ReviewEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RestaurantID),
		Value: payload,
	})
}
