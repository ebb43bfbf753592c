package main

import (
	"context"
	"time"

	httpapi "foodtour/analytics-svc/internal/api/http"
	"foodtour/analytics-svc/internal/service"
	"foodtour/config"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	config.InitLogger("analytics-svc")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	cat, err := config.LoadCatalog(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	analytics := service.NewAnalyticsService(db, rdb, cat)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8083"), httpapi.NewRouter(httpapi.NewHandler(analytics)))
}
