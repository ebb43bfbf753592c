package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodtour/catalog"
	"foodtour/rate-svc/internal/domain"
	"foodtour/rate-svc/internal/mocks"
	"foodtour/rate-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.UnixMilli(1700000000000)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Restaurant{
		{ID: "r1", Name: "Phở Thìn", Rating: 4.5},
		{ID: "r2", Name: "Cơm Tấm Cali"},
	}, nil, nil)
}

type serviceDeps struct {
	repository *mocks.ReviewRepository
	cache      *mocks.RatingCache
	reviewers  *mocks.ReviewerDirectory
	publisher  *mocks.ReviewPublisher
	svc        *service.ReviewService
}

func newServiceDeps(t *testing.T) *serviceDeps {
	d := &serviceDeps{
		repository: mocks.NewReviewRepository(t),
		cache:      mocks.NewRatingCache(t),
		reviewers:  mocks.NewReviewerDirectory(t),
		publisher:  mocks.NewReviewPublisher(t),
	}
	d.svc = service.NewReviewService(d.repository, d.cache, d.reviewers, d.publisher, testCatalog())
	d.svc.Now = func() time.Time { return fixedNow }
	return d
}

func TestWeightedRating(t *testing.T) {
	tests := []struct {
		name   string
		source float64
		prior  float64
		sum    int
		count  int
		want   float64
	}{
		{name: "no_reviews", source: 4.5, prior: 10, want: 4.5},
		{name: "one_five_star", source: 4.5, prior: 10, sum: 5, count: 1, want: 4.5},
		{name: "many_low", source: 4.0, prior: 10, sum: 10, count: 10, want: 2.5},
		{name: "rounds_to_one_decimal", source: 4.0, prior: 10, sum: 1, count: 1, want: 3.7},
		{name: "zero_prior_zero_count", source: 3.3, prior: 0, want: 3.3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := service.WeightedRating(testCase.source, testCase.prior, testCase.sum, testCase.count)
			assert.InDelta(t, testCase.want, got, 1e-9)
		})
	}
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d := newServiceDeps(t)
		d.reviewers.On("Reviewer", ctx, "u1").Return(domain.Reviewer{Name: "Lan"}, nil).Once()
		d.repository.On("InsertReview", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.ID == "r1_u1_1700000000000" && r.Username == "Lan" &&
				r.Comment != nil && *r.Comment == "Ngon" && r.Rating == 5
		})).Return(nil).Once()
		d.repository.On("RatingSummary", ctx, "r1").Return(5, 1, nil).Once()
		d.cache.On("SetRating", ctx, "r1", 4.5).Return(nil).Once()
		d.publisher.On("PublishReview", ctx, mock.MatchedBy(func(e domain.ReviewEvent) bool {
			return e.Type == domain.EventReviewCreated && e.RestaurantID == "r1" &&
				e.WeightedRating != nil && *e.WeightedRating == 4.5
		})).Return(nil).Once()

		review, err := d.svc.Create(ctx, "u1", domain.CreateReviewRequest{TargetID: " r1 ", Rating: 5, Comment: " Ngon "})
		require.NoError(t, err)
		assert.Equal(t, "r1", review.TargetID)
		assert.Equal(t, domain.ReviewTypeRestaurant, review.Type)
		assert.Equal(t, int64(1700000000000), review.Timestamp)
		require.NotNil(t, review.NewRestaurantRating)
		assert.Equal(t, 4.5, *review.NewRestaurantRating)
	})

	t.Run("missing_source_rating_defaults", func(t *testing.T) {
		d := newServiceDeps(t)
		d.reviewers.On("Reviewer", ctx, "u2").Return(domain.Reviewer{}, nil).Once()
		d.repository.On("InsertReview", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.Comment == nil && r.Username != ""
		})).Return(nil).Once()
		d.repository.On("RatingSummary", ctx, "r2").Return(1, 1, nil).Once()
		d.cache.On("SetRating", ctx, "r2", 3.7).Return(nil).Once()
		d.publisher.On("PublishReview", ctx, mock.Anything).Return(nil).Once()

		review, err := d.svc.Create(ctx, "u2", domain.CreateReviewRequest{TargetID: "r2", Rating: 1})
		require.NoError(t, err)
		assert.Equal(t, 3.7, *review.NewRestaurantRating)
	})

	t.Run("unknown_restaurant", func(t *testing.T) {
		d := newServiceDeps(t)
		_, err := d.svc.Create(ctx, "u1", domain.CreateReviewRequest{TargetID: "nope", Rating: 4})
		assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
	})

	t.Run("side_effect_failures_are_not_fatal", func(t *testing.T) {
		d := newServiceDeps(t)
		d.reviewers.On("Reviewer", ctx, "u1").Return(domain.Reviewer{}, errors.New("redis down")).Once()
		d.repository.On("InsertReview", ctx, mock.Anything).Return(nil).Once()
		d.repository.On("RatingSummary", ctx, "r1").Return(0, 0, nil).Once()
		d.cache.On("SetRating", ctx, "r1", 4.5).Return(errors.New("redis down")).Once()
		d.publisher.On("PublishReview", ctx, mock.Anything).Return(errors.New("kafka down")).Once()

		review, err := d.svc.Create(ctx, "u1", domain.CreateReviewRequest{TargetID: "r1", Rating: 4})
		require.NoError(t, err)
		assert.Equal(t, 4.5, *review.NewRestaurantRating)
	})

	t.Run("insert_failure", func(t *testing.T) {
		d := newServiceDeps(t)
		d.reviewers.On("Reviewer", ctx, "u1").Return(domain.Reviewer{}, nil).Once()
		d.repository.On("InsertReview", ctx, mock.Anything).Return(errors.New("db down")).Once()

		_, err := d.svc.Create(ctx, "u1", domain.CreateReviewRequest{TargetID: "r1", Rating: 4})
		assert.EqualError(t, err, "failed to insert review: db down")
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Review{ID: "r1_u1_1700000000000", UserID: "u1", TargetID: "r1", Rating: 5}

	tests := []struct {
		name         string
		userID       string
		reviewID     string
		prepareMocks func(d *serviceDeps)
		wantErr      error
		wantRating   float64
	}{
		{
			name:         "malformed_id",
			userID:       "u1",
			reviewID:     "r1_u1",
			prepareMocks: func(d *serviceDeps) {},
			wantErr:      service.ErrInvalidReviewID,
		},
		{
			name:     "not_found",
			userID:   "u1",
			reviewID: "r1_u1_1",
			prepareMocks: func(d *serviceDeps) {
				d.repository.On("GetReview", ctx, "r1_u1_1").Return(nil, nil).Once()
			},
			wantErr: service.ErrReviewNotFound,
		},
		{
			name:     "other_users_review",
			userID:   "u9",
			reviewID: stored.ID,
			prepareMocks: func(d *serviceDeps) {
				d.repository.On("GetReview", ctx, stored.ID).Return(stored, nil).Once()
			},
			wantErr: service.ErrForbidden,
		},
		{
			name:     "success",
			userID:   "u1",
			reviewID: stored.ID,
			prepareMocks: func(d *serviceDeps) {
				d.repository.On("GetReview", ctx, stored.ID).Return(stored, nil).Once()
				d.repository.On("DeleteReview", ctx, stored.ID).Return(nil).Once()
				d.repository.On("RatingSummary", ctx, "r1").Return(0, 0, nil).Once()
				d.cache.On("SetRating", ctx, "r1", 4.5).Return(nil).Once()
				d.publisher.On("PublishReview", ctx, mock.MatchedBy(func(e domain.ReviewEvent) bool {
					return e.Type == domain.EventReviewDeleted && e.ReviewID == stored.ID
				})).Return(nil).Once()
			},
			wantRating: 4.5,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := newServiceDeps(t)
			testCase.prepareMocks(d)

			rating, err := d.svc.Delete(ctx, testCase.userID, testCase.reviewID)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rating)
			assert.Equal(t, testCase.wantRating, *rating)
		})
	}
}

func TestReviewService_Rating(t *testing.T) {
	ctx := context.Background()
	cached := 4.2

	tests := []struct {
		name         string
		restaurantID string
		prepareMocks func(d *serviceDeps)
		want         float64
	}{
		{
			name:         "cached",
			restaurantID: "r1",
			prepareMocks: func(d *serviceDeps) {
				d.cache.On("GetRating", ctx, "r1").Return(&cached, nil).Once()
			},
			want: 4.2,
		},
		{
			name:         "catalog_fallback",
			restaurantID: "r1",
			prepareMocks: func(d *serviceDeps) {
				d.cache.On("GetRating", ctx, "r1").Return(nil, nil).Once()
			},
			want: 4.5,
		},
		{
			name:         "unknown_restaurant",
			restaurantID: "zz",
			prepareMocks: func(d *serviceDeps) {
				d.cache.On("GetRating", ctx, "zz").Return(nil, nil).Once()
			},
			want: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := newServiceDeps(t)
			testCase.prepareMocks(d)

			got, err := d.svc.Rating(ctx, testCase.restaurantID)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestReviewService_ListRestaurantReviews(t *testing.T) {
	ctx := context.Background()

	d := newServiceDeps(t)
	d.repository.On("ListRestaurantReviews", ctx, "r1", service.DefaultPageSize).Return(nil, nil).Once()
	d.cache.On("GetRating", ctx, "r1").Return(nil, errors.New("redis down")).Once()

	list, err := d.svc.ListRestaurantReviews(ctx, "r1")
	require.NoError(t, err)
	assert.NotNil(t, list.Reviews)
	assert.Empty(t, list.Reviews)
	assert.Nil(t, list.CurrentRating)
}
