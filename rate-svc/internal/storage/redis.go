package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"foodtour/rate-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func RatingKey(restaurantID string) string {
	return "restaurants_rating:" + restaurantID
}

func (c *RedisCache) GetRating(ctx context.Context, restaurantID string) (*float64, error) {
	raw, err := c.Client.Get(ctx, RatingKey(restaurantID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *RedisCache) SetRating(ctx context.Context, restaurantID string, rating float64) error {
	return c.Client.Set(ctx, RatingKey(restaurantID), strconv.FormatFloat(rating, 'f', -1, 64), c.TTL).Err()
}

// Reviewer reads the user document written by user-svc. An unknown user
// yields an empty Reviewer.
func (c *RedisCache) Reviewer(ctx context.Context, userID string) (domain.Reviewer, error) {
	var reviewer domain.Reviewer
	raw, err := c.Client.Get(ctx, "users/"+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return reviewer, nil
	}
	if err != nil {
		return reviewer, err
	}
	err = json.Unmarshal(raw, &reviewer)
	return reviewer, err
}
