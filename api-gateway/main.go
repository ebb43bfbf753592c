package main

import (
	"net/http"
	"time"

	"foodtour/api-gateway/internal/gateway"
	"foodtour/config"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	config.InitLogger("api-gateway")

	cfg := gateway.Config{
		FoodSvcURL:      config.GetEnv("FOOD_SVC_URL", "http://localhost:8081"),
		RateSvcURL:      config.GetEnv("RATE_SVC_URL", "http://localhost:8082"),
		AnalyticsSvcURL: config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		UserSvcURL:      config.GetEnv("USER_SVC_URL", "http://localhost:8084"),
		ChatSvcURL:      config.GetEnv("CHAT_SVC_URL", "http://localhost:8085"),
	}

	client := &http.Client{Timeout: config.GetEnvDuration("GATEWAY_TIMEOUT", 60*time.Second)}
	gw := gateway.NewGateway(cfg, client)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := ":" + config.GetEnv("PORT", "8080")
	log.Info().Str("addr", addr).Msg("api gateway starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("api gateway stopped")
	}
}
