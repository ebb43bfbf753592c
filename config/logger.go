package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger from LOG_LEVEL and
// LOG_FORMAT and returns a child logger tagged with the service name.
func InitLogger(service string) zerolog.Logger {
	return initLogger(service, os.Stderr)
}

func initLogger(service string, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(GetEnv("LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if strings.EqualFold(GetEnv("LOG_FORMAT", "json"), "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).With().Timestamp().Str("service", service).Logger()
	log.Logger = logger
	return logger
}
