package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodtour/agg-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

const (
	DefaultRetryBackoff = time.Second
	DefaultMaxBackoff   = 30 * time.Second
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface

	// RetryBackoff is the first pause after a failed read. It doubles on
	// every consecutive failure up to MaxBackoff and resets after a success.
	RetryBackoff time.Duration
	MaxBackoff   time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:       reader,
		Store:        store,
		RetryBackoff: DefaultRetryBackoff,
		MaxBackoff:   DefaultMaxBackoff,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Info().Msg("starting aggregation consumer")

	backoff := c.RetryBackoff
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info().Msg("aggregation consumer stopped")
				return
			}
			log.Error().Err(err).Dur("retry_in", backoff).Msg("error reading message")
			if !c.wait(ctx, backoff) {
				log.Info().Msg("aggregation consumer stopped")
				return
			}
			backoff = c.nextBackoff(backoff)
			continue
		}
		backoff = c.RetryBackoff

		var event domain.ReviewEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Error().Err(err).Int64("offset", message.Offset).Msg("error unmarshaling review event")
			continue
		}

		c.ProcessReview(ctx, event)
	}
}

// wait sleeps for d and reports false if ctx ends first.
func (c *Consumer) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		d = DefaultRetryBackoff
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *Consumer) nextBackoff(d time.Duration) time.Duration {
	if d <= 0 {
		d = DefaultRetryBackoff
	}
	limit := c.MaxBackoff
	if limit <= 0 {
		limit = DefaultMaxBackoff
	}
	return min(d*2, limit)
}

func (c *Consumer) ProcessReview(ctx context.Context, event domain.ReviewEvent) {
	if event.Type != domain.EventReviewCreated && event.Type != domain.EventReviewDeleted {
		log.Debug().Str("type", event.Type).Msg("ignoring review event")
		return
	}
	if event.RestaurantID == "" {
		log.Warn().Str("review_id", event.ReviewID).Msg("review event without restaurant id")
		return
	}

	logger := log.With().Str("type", event.Type).Str("restaurant_id", event.RestaurantID).Logger()

	if err := c.Store.UpdateRestaurantStats(ctx, event.RestaurantID); err != nil {
		logger.Error().Err(err).Msg("error updating restaurant stats")
		return
	}

	if err := c.Store.UpdateLeaderboards(ctx, event); err != nil {
		logger.Error().Err(err).Msg("error updating leaderboards")
		return
	}

	logger.Info().Str("review_id", event.ReviewID).Msg("processed review event")
}
