package service

import (
	"context"

	"foodtour/agg-svc/internal/domain"
	"foodtour/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	UpdateRestaurantStats(ctx context.Context, restaurantID string) error
	UpdateLeaderboards(ctx context.Context, event domain.ReviewEvent) error
}

var (
	_ StoreInterface = (*storage.Store)(nil)
	_ MessageReader  = (*kafka.Reader)(nil)
)
