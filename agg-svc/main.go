package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"foodtour/agg-svc/internal/service"
	"foodtour/agg-svc/internal/storage"
	"foodtour/config"
)

func main() {
	config.LoadEnv()
	config.InitLogger("agg-svc")

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.ReviewsTopic, config.GetEnv("KAFKA_GROUP_ID", "agg-svc"))
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, storage.NewStore(db, rdb)).Start(ctx)
}
