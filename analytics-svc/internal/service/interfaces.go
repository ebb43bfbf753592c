package service

import (
	"context"

	"foodtour/analytics-svc/internal/domain"
	"foodtour/catalog"
)

type AnalyticsInterface interface {
	TopRated(ctx context.Context, limit int) ([]domain.RestaurantScore, error)
	TrendingToday(ctx context.Context, limit int) ([]domain.RestaurantScore, error)
	RestaurantStats(ctx context.Context, restaurantID string) (*domain.RestaurantStats, error)
	RatingDistribution(ctx context.Context, restaurantID string) (domain.RatingDistribution, error)
	GlobalDistribution(ctx context.Context) (domain.RatingDistribution, error)
}

// RestaurantLookup is satisfied by *catalog.Catalog.
type RestaurantLookup interface {
	Restaurant(id string) (catalog.Restaurant, bool)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
