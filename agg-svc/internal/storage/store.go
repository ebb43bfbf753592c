package storage

import (
	"context"
	"database/sql"
	"time"

	"foodtour/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	TopRatedKey   = "analytics:top-rated"
	statsTTL      = 24 * time.Hour
	dailyTTL      = 7 * 24 * time.Hour
	dailyKeyDates = "2006-01-02"
)

func StatsKey(restaurantID string) string {
	return "restaurant:" + restaurantID + ":stats"
}

func DailyKey(day time.Time) string {
	return "analytics:daily:" + day.Format(dailyKeyDates)
}

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

// UpdateRestaurantStats recomputes the review count and plain average for a
// restaurant from Postgres and mirrors them into its stats hash.
func (s *Store) UpdateRestaurantStats(ctx context.Context, restaurantID string) error {
	var (
		avgRating   float64
		reviewCount int
	)
	if err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0), COUNT(*)
		FROM reviews
		WHERE restaurant_id = $1
	`, restaurantID).Scan(&avgRating, &reviewCount); err != nil {
		return err
	}

	key := StatsKey(restaurantID)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"avg_rating":   avgRating,
		"review_count": reviewCount,
		"last_updated": s.now().Unix(),
	})
	pipe.Expire(ctx, key, statsTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// UpdateLeaderboards keeps the all-time top-rated set on the weighted
// rating and counts new reviews per restaurant for the event's day.
func (s *Store) UpdateLeaderboards(ctx context.Context, event domain.ReviewEvent) error {
	pipe := s.rdb.TxPipeline()

	if event.WeightedRating != nil {
		pipe.ZAdd(ctx, TopRatedKey, redis.Z{
			Score:  *event.WeightedRating,
			Member: event.RestaurantID,
		})
	} else {
		pipe.ZRem(ctx, TopRatedKey, event.RestaurantID)
	}

	if event.Type == domain.EventReviewCreated {
		day := event.Timestamp
		if day.IsZero() {
			day = s.now()
		}
		dailyKey := DailyKey(day)
		pipe.ZIncrBy(ctx, dailyKey, 1, event.RestaurantID)
		pipe.Expire(ctx, dailyKey, dailyTTL)
	}

	_, err := pipe.Exec(ctx)
	return err
}
