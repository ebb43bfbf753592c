package service

import (
	"context"

	"foodtour/catalog"
	"foodtour/rate-svc/internal/domain"
)

type ReviewServiceInterface interface {
	Create(ctx context.Context, userID string, req domain.CreateReviewRequest) (*domain.Review, error)
	ListRestaurantReviews(ctx context.Context, restaurantID string) (*domain.ReviewList, error)
	Rating(ctx context.Context, restaurantID string) (float64, error)
	Delete(ctx context.Context, userID, reviewID string) (*float64, error)
}

type ReviewRepository interface {
	InsertReview(ctx context.Context, review *domain.Review) error
	// GetReview returns nil without an error when the review does not exist.
	GetReview(ctx context.Context, reviewID string) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
	ListRestaurantReviews(ctx context.Context, restaurantID string, limit int) ([]domain.Review, error)
	RatingSummary(ctx context.Context, restaurantID string) (sum, count int, err error)
}

type RatingCache interface {
	// GetRating returns nil when no weighted rating has been stored yet.
	GetRating(ctx context.Context, restaurantID string) (*float64, error)
	SetRating(ctx context.Context, restaurantID string, rating float64) error
}

type ReviewerDirectory interface {
	Reviewer(ctx context.Context, userID string) (domain.Reviewer, error)
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, event domain.ReviewEvent) error
}

// RestaurantLookup is satisfied by *catalog.Catalog.
type RestaurantLookup interface {
	Restaurant(id string) (catalog.Restaurant, bool)
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
