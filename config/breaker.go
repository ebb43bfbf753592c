package config

import (
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
)

// NewBreaker returns a circuit breaker for an outbound dependency. It opens
// after BREAKER_FAILURES consecutive failures and probes again after
// BREAKER_TIMEOUT.
func NewBreaker[T any](name string) *gobreaker.CircuitBreaker[T] {
	failures := uint32(GetEnvInt("BREAKER_FAILURES", 5))
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     GetEnvDuration("BREAKER_TIMEOUT", 30*time.Second),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
}
