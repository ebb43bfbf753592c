package main

import (
	"context"
	"time"

	"foodtour/config"
	httpapi "foodtour/rate-svc/internal/api/http"
	"foodtour/rate-svc/internal/service"
	"foodtour/rate-svc/internal/storage"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	config.InitLogger("rate-svc")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cat, err := config.LoadCatalog(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate reviews schema")
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, 0)

	writer := config.NewKafkaWriter(config.ReviewsTopic)
	defer writer.Close()

	reviews := service.NewReviewService(repository, cache, cache, storage.NewKafkaPublisher(writer), cat)
	reviews.PriorWeight = config.GetEnvFloat("RATING_PRIOR_WEIGHT", service.DefaultPriorWeight)
	reviews.PageSize = config.GetEnvInt("REVIEWS_PAGE_SIZE", service.DefaultPageSize)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8082"), httpapi.NewRouter(httpapi.NewHandler(reviews)))
}
