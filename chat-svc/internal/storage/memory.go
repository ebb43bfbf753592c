package storage

import (
	"context"
	"slices"
	"sync"
	"time"

	"foodtour/chat-svc/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxConversations = 10000
	DefaultConversationTTL  = 24 * time.Hour
	DefaultMaxExchanges     = 50
)

// MemoryStore keeps conversations in process. The least recently used
// conversation is evicted past MaxConversations, and any conversation idle
// for longer than the TTL expires.
type MemoryStore struct {
	mu           sync.Mutex
	cache        *expirable.LRU[string, []domain.Exchange]
	maxExchanges int
}

func NewMemoryStore(maxConversations int, ttl time.Duration, maxExchanges int) *MemoryStore {
	if maxConversations <= 0 {
		maxConversations = DefaultMaxConversations
	}
	if ttl <= 0 {
		ttl = DefaultConversationTTL
	}
	if maxExchanges <= 0 {
		maxExchanges = DefaultMaxExchanges
	}
	return &MemoryStore{
		cache:        expirable.NewLRU[string, []domain.Exchange](maxConversations, nil, ttl),
		maxExchanges: maxExchanges,
	}
}

func (s *MemoryStore) Append(_ context.Context, conversationID string, exchange domain.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, _ := s.cache.Get(conversationID)
	history = append(slices.Clone(history), exchange)
	if len(history) > s.maxExchanges {
		history = history[len(history)-s.maxExchanges:]
	}
	s.cache.Add(conversationID, history)
	return nil
}

func (s *MemoryStore) History(_ context.Context, conversationID string) ([]domain.Exchange, error) {
	history, ok := s.cache.Get(conversationID)
	if !ok {
		return []domain.Exchange{}, nil
	}
	return slices.Clone(history), nil
}

func (s *MemoryStore) Count(context.Context) (int, error) {
	return s.cache.Len(), nil
}
