package config

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const ReviewsTopic = "reviews"

func PostgresDSN() string {
	if url := GetEnv("DATABASE_URL", ""); url != "" {
		return url
	}
	return "host=" + GetEnv("DB_HOST", "localhost") +
		" port=" + GetEnv("DB_PORT", "5432") +
		" user=" + GetEnv("DB_USER", "postgres") +
		" password=" + GetEnv("DB_PASSWORD", "") +
		" dbname=" + GetEnv("DB_NAME", "foodtour") +
		" sslmode=disable"
}

func MustInitPostgres() *sql.DB {
	db, err := sql.Open("postgres", PostgresDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{GetEnv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(GetEnv("KAFKA_BROKER", "localhost:9092")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
