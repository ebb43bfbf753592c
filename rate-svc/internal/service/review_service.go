package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"foodtour/rate-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidReviewID    = errors.New("invalid review id")
	ErrForbidden          = errors.New("review belongs to another user")
)

const (
	DefaultPriorWeight  = 10
	DefaultPageSize     = 20
	DefaultSourceRating = 4.0

	anonymousReviewer = "Người dùng"
)

type ReviewService struct {
	repository  ReviewRepository
	cache       RatingCache
	reviewers   ReviewerDirectory
	publisher   ReviewPublisher
	restaurants RestaurantLookup

	// PriorWeight is how many reviews the catalog rating counts for.
	PriorWeight float64
	PageSize    int
	Now         func() time.Time
}

func NewReviewService(
	repository ReviewRepository,
	cache RatingCache,
	reviewers ReviewerDirectory,
	publisher ReviewPublisher,
	restaurants RestaurantLookup,
) *ReviewService {
	return &ReviewService{
		repository:  repository,
		cache:       cache,
		reviewers:   reviewers,
		publisher:   publisher,
		restaurants: restaurants,
		PriorWeight: DefaultPriorWeight,
		PageSize:    DefaultPageSize,
		Now:         time.Now,
	}
}

func (s *ReviewService) Create(ctx context.Context, userID string, req domain.CreateReviewRequest) (*domain.Review, error) {
	targetID := strings.TrimSpace(req.TargetID)
	if _, ok := s.restaurants.Restaurant(targetID); !ok {
		return nil, ErrRestaurantNotFound
	}

	now := s.Now()
	millis := now.UnixMilli()
	review := &domain.Review{
		ID:        fmt.Sprintf("%s_%s_%d", targetID, userID, millis),
		UserID:    userID,
		Username:  anonymousReviewer,
		TargetID:  targetID,
		Type:      domain.ReviewTypeRestaurant,
		Rating:    req.Rating,
		Timestamp: millis,
		Date:      now.Format("02/01/2006"),
	}
	if c := strings.TrimSpace(req.Comment); c != "" {
		review.Comment = &c
	}

	if s.reviewers != nil {
		reviewer, err := s.reviewers.Reviewer(ctx, userID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("failed to load reviewer profile")
		} else {
			if reviewer.Name != "" {
				review.Username = reviewer.Name
			}
			review.AvatarURL = reviewer.AvatarURL
		}
	}

	if err := s.repository.InsertReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	rating, err := s.refreshRating(ctx, targetID)
	if err != nil {
		return nil, err
	}
	review.NewRestaurantRating = rating

	s.publish(ctx, domain.ReviewEvent{
		Type:           domain.EventReviewCreated,
		ReviewID:       review.ID,
		RestaurantID:   targetID,
		UserID:         userID,
		Rating:         review.Rating,
		WeightedRating: rating,
		Timestamp:      now,
	})

	log.Info().Str("restaurant_id", targetID).Str("review_id", review.ID).Msg("review created")
	return review, nil
}

func (s *ReviewService) ListRestaurantReviews(ctx context.Context, restaurantID string) (*domain.ReviewList, error) {
	reviews, err := s.repository.ListRestaurantReviews(ctx, restaurantID, s.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	current, err := s.cache.GetRating(ctx, restaurantID)
	if err != nil {
		log.Warn().Err(err).Str("restaurant_id", restaurantID).Msg("failed to read cached rating")
		current = nil
	}
	return &domain.ReviewList{Reviews: reviews, CurrentRating: current}, nil
}

// Rating prefers the cached weighted rating, then the catalog rating, then 0.
func (s *ReviewService) Rating(ctx context.Context, restaurantID string) (float64, error) {
	cached, err := s.cache.GetRating(ctx, restaurantID)
	if err != nil {
		return 0, fmt.Errorf("failed to read rating: %w", err)
	}
	if cached != nil {
		return *cached, nil
	}
	if r, ok := s.restaurants.Restaurant(restaurantID); ok {
		return r.Rating, nil
	}
	return 0, nil
}

// Delete removes a review owned by userID and returns the restaurant's new
// weighted rating, or nil when the restaurant is no longer in the catalog.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) (*float64, error) {
	if len(strings.Split(reviewID, "_")) < 3 {
		return nil, ErrInvalidReviewID
	}

	review, err := s.repository.GetReview(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.repository.DeleteReview(ctx, reviewID); err != nil {
		return nil, fmt.Errorf("failed to delete review: %w", err)
	}

	rating, err := s.refreshRating(ctx, review.TargetID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.ReviewEvent{
		Type:           domain.EventReviewDeleted,
		ReviewID:       reviewID,
		RestaurantID:   review.TargetID,
		UserID:         userID,
		Rating:         review.Rating,
		WeightedRating: rating,
		Timestamp:      s.Now(),
	})

	log.Info().Str("restaurant_id", review.TargetID).Str("review_id", reviewID).Msg("review deleted")
	return rating, nil
}

// refreshRating recomputes the weighted rating from stored reviews and
// caches it. A restaurant missing from the catalog has no weighted rating.
func (s *ReviewService) refreshRating(ctx context.Context, restaurantID string) (*float64, error) {
	restaurant, ok := s.restaurants.Restaurant(restaurantID)
	if !ok {
		return nil, nil
	}

	sum, count, err := s.repository.RatingSummary(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ratings: %w", err)
	}

	source := restaurant.Rating
	if source <= 0 {
		source = DefaultSourceRating
	}
	rating := WeightedRating(source, s.PriorWeight, sum, count)

	if err := s.cache.SetRating(ctx, restaurantID, rating); err != nil {
		log.Warn().Err(err).Str("restaurant_id", restaurantID).Msg("failed to cache rating")
	}
	return &rating, nil
}

func (s *ReviewService) publish(ctx context.Context, event domain.ReviewEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishReview(ctx, event); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Str("review_id", event.ReviewID).Msg("failed to publish review event")
	}
}

// WeightedRating blends the source rating, counted as priorWeight reviews,
// with count app reviews summing to sum. Rounded to one decimal.
func WeightedRating(source, priorWeight float64, sum, count int) float64 {
	denominator := priorWeight + float64(count)
	if denominator == 0 {
		return source
	}
	avg := (source*priorWeight + float64(sum)) / denominator
	return math.Round(avg*10) / 10
}
