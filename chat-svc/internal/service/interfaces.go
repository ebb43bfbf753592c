package service

import (
	"context"

	"foodtour/chat-svc/internal/domain"
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error)
	History(ctx context.Context, conversationID string) ([]domain.Exchange, error)
	Status(ctx context.Context) domain.Status
}

// Completer produces the assistant reply for a message list.
type Completer interface {
	Complete(ctx context.Context, messages []domain.Message) (string, error)
	Configured() bool
}

// ConversationStore owns chat history. Implementations decide eviction.
type ConversationStore interface {
	Append(ctx context.Context, conversationID string, exchange domain.Exchange) error
	// History returns an empty slice for unknown conversations.
	History(ctx context.Context, conversationID string) ([]domain.Exchange, error)
	Count(ctx context.Context) (int, error)
}

var _ ChatServiceInterface = (*ChatService)(nil)
