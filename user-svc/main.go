package main

import (
	"context"
	"time"

	"foodtour/config"
	httpapi "foodtour/user-svc/internal/api/http"
	"foodtour/user-svc/internal/service"
	"foodtour/user-svc/internal/storage"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	config.InitLogger("user-svc")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cat, err := config.LoadCatalog(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	users := service.NewUserService(storage.NewRedisDocumentStore(rdb), cat)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8084"), httpapi.NewRouter(httpapi.NewHandler(users)))
}
