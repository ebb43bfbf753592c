package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"foodtour/geo"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	ErrSameEndpoints      = errors.New("start and end coordinates are the same")
	ErrNoRoute            = errors.New("could not calculate route")
	ErrRoutingUnavailable = errors.New("routing provider unavailable")
)

// minEndpointDelta is how far apart (degrees, per axis) start and end must
// be before a route is requested.
const minEndpointDelta = 0.0001

type RouteService struct {
	provider RouteProvider
	cache    *lru.Cache[string, []geo.Point]
}

func NewRouteService(provider RouteProvider, cacheSize int) *RouteService {
	if cacheSize <= 0 {
		cacheSize = 256
	}
	cache, _ := lru.New[string, []geo.Point](cacheSize)
	return &RouteService{provider: provider, cache: cache}
}

func (s *RouteService) GetRoute(ctx context.Context, start, end geo.Point) ([]geo.Point, error) {
	if math.Abs(start.Lat-end.Lat) < minEndpointDelta && math.Abs(start.Lon-end.Lon) < minEndpointDelta {
		return nil, ErrSameEndpoints
	}

	key := routeKey(start, end)
	if points, ok := s.cache.Get(key); ok {
		return points, nil
	}

	points, err := s.provider.Route(ctx, start, end)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrRoutingUnavailable
		}
		log.Error().Err(err).Msg("route provider failed")
		return nil, fmt.Errorf("%w: %v", ErrNoRoute, err)
	}
	if len(points) == 0 {
		return nil, ErrNoRoute
	}

	s.cache.Add(key, points)
	return points, nil
}

func routeKey(start, end geo.Point) string {
	return fmt.Sprintf("%.5f,%.5f:%.5f,%.5f", start.Lat, start.Lon, end.Lat, end.Lon)
}
