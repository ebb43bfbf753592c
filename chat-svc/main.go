package main

import (
	"context"
	"time"

	httpapi "foodtour/chat-svc/internal/api/http"
	"foodtour/chat-svc/internal/service"
	"foodtour/chat-svc/internal/storage"
	"foodtour/config"

	"github.com/rs/zerolog/log"
)

func conversationStore() service.ConversationStore {
	ttl := config.GetEnvDuration("CHAT_CONVERSATION_TTL", storage.DefaultConversationTTL)
	maxExchanges := config.GetEnvInt("CHAT_MAX_EXCHANGES", storage.DefaultMaxExchanges)

	switch config.GetEnv("CHAT_STORE", "memory") {
	case "redis":
		return storage.NewRedisStore(config.MustInitRedis(), ttl, maxExchanges)
	default:
		return storage.NewMemoryStore(config.GetEnvInt("CHAT_MAX_CONVERSATIONS", storage.DefaultMaxConversations), ttl, maxExchanges)
	}
}

func main() {
	config.LoadEnv()
	config.InitLogger("chat-svc")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	cat, err := config.LoadCatalog(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	completer := storage.NewOpenAIClient(
		config.GetEnv("OPENAI_URL", storage.DefaultOpenAIURL),
		config.GetEnv("OPENAI_API_KEY", ""),
		config.GetEnv("OPENAI_MODEL", storage.DefaultOpenAIModel),
		nil,
		config.NewBreaker[string]("openai"),
	)
	if !completer.Configured() {
		log.Warn().Msg("OPENAI_API_KEY not set, chat requests will fail")
	}

	chat := service.NewChatService(cat, completer, conversationStore())
	chat.HistoryTurns = config.GetEnvInt("CHAT_HISTORY_TURNS", service.DefaultHistoryTurns)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8085"), httpapi.NewRouter(httpapi.NewHandler(chat)))
}
