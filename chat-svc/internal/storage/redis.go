package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodtour/chat-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const conversationPrefix = "chat:conversation:"

func ConversationKey(conversationID string) string {
	return conversationPrefix + conversationID
}

// RedisStore keeps each conversation as a list of JSON exchanges. Appends
// trim the list to MaxExchanges and refresh its TTL.
type RedisStore struct {
	Client       *redis.Client
	TTL          time.Duration
	MaxExchanges int
}

func NewRedisStore(client *redis.Client, ttl time.Duration, maxExchanges int) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultConversationTTL
	}
	if maxExchanges <= 0 {
		maxExchanges = DefaultMaxExchanges
	}
	return &RedisStore{Client: client, TTL: ttl, MaxExchanges: maxExchanges}
}

func (s *RedisStore) Append(ctx context.Context, conversationID string, exchange domain.Exchange) error {
	encoded, err := json.Marshal(exchange)
	if err != nil {
		return err
	}
	key := ConversationKey(conversationID)
	_, err = s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, encoded)
		pipe.LTrim(ctx, key, int64(-s.MaxExchanges), -1)
		pipe.Expire(ctx, key, s.TTL)
		return nil
	})
	return err
}

func (s *RedisStore) History(ctx context.Context, conversationID string) ([]domain.Exchange, error) {
	items, err := s.Client.LRange(ctx, ConversationKey(conversationID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	history := make([]domain.Exchange, 0, len(items))
	for _, item := range items {
		var ex domain.Exchange
		if err := json.Unmarshal([]byte(item), &ex); err != nil {
			return nil, fmt.Errorf("decode exchange of %s: %w", conversationID, err)
		}
		history = append(history, ex)
	}
	return history, nil
}

func (s *RedisStore) Count(ctx context.Context) (int, error) {
	count := 0
	iter := s.Client.Scan(ctx, 0, conversationPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	return count, iter.Err()
}
