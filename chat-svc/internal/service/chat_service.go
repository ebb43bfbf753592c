package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"foodtour/chat-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	ErrEmptyMessage          = errors.New("message is required")
	ErrCompletionUnavailable = errors.New("completion provider unavailable")
	ErrCompletionTimeout     = errors.New("completion provider timed out")
)

const (
	DefaultHistoryTurns = 10
	// namesPerExchange is how many restaurant names are kept with each
	// stored exchange.
	namesPerExchange = 5
)

type ChatService struct {
	finder    *Finder
	completer Completer
	store     ConversationStore
	catalog   CatalogReader

	HistoryTurns int
	Now          func() time.Time
	NewID        func() string
}

func NewChatService(c CatalogReader, completer Completer, store ConversationStore) *ChatService {
	return &ChatService{
		finder:       NewFinder(c),
		completer:    completer,
		store:        store,
		catalog:      c,
		HistoryTurns: DefaultHistoryTurns,
		Now:          time.Now,
		NewID:        uuid.NewString,
	}
}

func (s *ChatService) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = strings.TrimSpace(req.Query)
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if !s.completer.Configured() {
		return nil, fmt.Errorf("%w: api key not configured", ErrCompletionUnavailable)
	}

	conversationID := strings.TrimSpace(req.ConversationID)
	if conversationID == "" {
		conversationID = s.NewID()
	}

	outcome := s.finder.Find(message)
	log.Debug().
		Str("conversation_id", conversationID).
		Str("search_type", outcome.Type).
		Int("restaurants", len(outcome.Recommendations)).
		Msg("chat search")

	history, err := s.store.History(ctx, conversationID)
	if err != nil {
		log.Warn().Err(err).Str("conversation_id", conversationID).Msg("failed to load conversation history")
		history = nil
	}

	reply, err := s.completer.Complete(ctx, s.messages(outcome, history, message))
	if err != nil {
		return nil, completionError(err)
	}

	now := s.Now()
	exchange := domain.Exchange{
		UserMessage:      message,
		BotResponse:      reply,
		Timestamp:        now,
		SearchType:       outcome.Type,
		RestaurantsFound: len(outcome.Recommendations),
		RestaurantNames:  []string{},
	}
	for i, rec := range outcome.Recommendations {
		if i == namesPerExchange {
			break
		}
		exchange.RestaurantNames = append(exchange.RestaurantNames, rec.Restaurant.Name)
	}
	if err := s.store.Append(ctx, conversationID, exchange); err != nil {
		log.Warn().Err(err).Str("conversation_id", conversationID).Msg("failed to store exchange")
	}

	return &domain.ChatResponse{
		ConversationID: conversationID,
		UserMessage:    message,
		BotResponse:    reply,
		Timestamp:      now,
	}, nil
}

func (s *ChatService) messages(outcome domain.SearchOutcome, history []domain.Exchange, message string) []domain.Message {
	if len(history) > s.HistoryTurns {
		history = history[len(history)-s.HistoryTurns:]
	}

	messages := make([]domain.Message, 0, 2*len(history)+2)
	messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: BuildSystemPrompt(outcome)})
	for _, ex := range history {
		messages = append(messages,
			domain.Message{Role: domain.RoleUser, Content: ex.UserMessage},
			domain.Message{Role: domain.RoleAssistant, Content: ex.BotResponse},
		)
	}
	return append(messages, domain.Message{Role: domain.RoleUser, Content: message})
}

func completionError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrCompletionUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return ErrCompletionTimeout
	}
	log.Error().Err(err).Msg("completion failed")
	return fmt.Errorf("%w: %v", ErrCompletionUnavailable, err)
}

func (s *ChatService) History(ctx context.Context, conversationID string) ([]domain.Exchange, error) {
	return s.store.History(ctx, conversationID)
}

func (s *ChatService) Status(ctx context.Context) domain.Status {
	count, err := s.store.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to count conversations")
	}
	return domain.Status{
		Status:             "running",
		APIKeyConfigured:   s.completer.Configured(),
		TotalConversations: count,
		TotalRestaurants:   len(s.catalog.Restaurants()),
		Timestamp:          s.Now(),
	}
}
