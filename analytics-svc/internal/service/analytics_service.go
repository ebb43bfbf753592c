package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"foodtour/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

const (
	DefaultLimit = 10
	topRatedKey  = "analytics:top-rated"
)

func statsKey(restaurantID string) string {
	return "restaurant:" + restaurantID + ":stats"
}

func dailyKey(day time.Time) string {
	return "analytics:daily:" + day.Format("2006-01-02")
}

type AnalyticsService struct {
	db          *sql.DB
	rdb         *redis.Client
	restaurants RestaurantLookup
	now         func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client, restaurants RestaurantLookup) *AnalyticsService {
	return &AnalyticsService{
		db:          db,
		rdb:         rdb,
		restaurants: restaurants,
		now:         time.Now,
	}
}

func (s *AnalyticsService) name(restaurantID string) string {
	if r, ok := s.restaurants.Restaurant(restaurantID); ok {
		return r.Name
	}
	return ""
}

// TopRated reads the weighted-rating leaderboard, falling back to plain
// review averages from Postgres when the leaderboard is empty.
func (s *AnalyticsService) TopRated(ctx context.Context, limit int) ([]domain.RestaurantScore, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	result, err := s.rdb.ZRevRangeWithScores(ctx, topRatedKey, 0, int64(limit-1)).Result()
	if err != nil {
		log.Warn().Err(err).Msg("top-rated leaderboard unavailable, using database")
	}
	if err != nil || len(result) == 0 {
		return s.topRatedFromDB(ctx, limit)
	}

	scores := s.fromZ(result)
	s.fillReviewCounts(ctx, scores)
	return scores, nil
}

func (s *AnalyticsService) topRatedFromDB(ctx context.Context, limit int) ([]domain.RestaurantScore, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT restaurant_id, ROUND(AVG(rating)::numeric, 2) AS score, COUNT(*) AS review_count
		FROM reviews
		GROUP BY restaurant_id
		ORDER BY score DESC, review_count DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return s.scanScores(rows)
}

// TrendingToday ranks restaurants by reviews received today.
func (s *AnalyticsService) TrendingToday(ctx context.Context, limit int) ([]domain.RestaurantScore, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	today := s.now()

	result, err := s.rdb.ZRevRangeWithScores(ctx, dailyKey(today), 0, int64(limit-1)).Result()
	if err != nil {
		log.Warn().Err(err).Msg("daily leaderboard unavailable, using database")
	}
	if err == nil && len(result) > 0 {
		scores := s.fromZ(result)
		for i := range scores {
			scores[i].ReviewCount = int(scores[i].Score)
		}
		return scores, nil
	}

	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	rows, err := s.db.QueryContext(ctx, `
		SELECT restaurant_id, COUNT(*) AS score, COUNT(*) AS review_count
		FROM reviews
		WHERE created_at_ms >= $1
		GROUP BY restaurant_id
		ORDER BY score DESC
		LIMIT $2
	`, midnight.UnixMilli(), limit)
	if err != nil {
		return nil, err
	}
	return s.scanScores(rows)
}

func (s *AnalyticsService) fromZ(result []redis.Z) []domain.RestaurantScore {
	scores := make([]domain.RestaurantScore, 0, len(result))
	for _, z := range result {
		id, ok := z.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, domain.RestaurantScore{
			RestaurantID: id,
			Name:         s.name(id),
			Score:        z.Score,
		})
	}
	return scores
}

func (s *AnalyticsService) fillReviewCounts(ctx context.Context, scores []domain.RestaurantScore) {
	pipe := s.rdb.Pipeline()
	cmds := make([]*redis.StringCmd, len(scores))
	for i, sc := range scores {
		cmds[i] = pipe.HGet(ctx, statsKey(sc.RestaurantID), "review_count")
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Msg("failed to read review counts")
	}
	for i, cmd := range cmds {
		if n, err := cmd.Int(); err == nil {
			scores[i].ReviewCount = n
		}
	}
}

func (s *AnalyticsService) scanScores(rows *sql.Rows) ([]domain.RestaurantScore, error) {
	defer rows.Close()

	scores := []domain.RestaurantScore{}
	for rows.Next() {
		var sc domain.RestaurantScore
		if err := rows.Scan(&sc.RestaurantID, &sc.Score, &sc.ReviewCount); err != nil {
			return nil, err
		}
		sc.Name = s.name(sc.RestaurantID)
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

func (s *AnalyticsService) RestaurantStats(ctx context.Context, restaurantID string) (*domain.RestaurantStats, error) {
	restaurant, inCatalog := s.restaurants.Restaurant(restaurantID)
	stats := &domain.RestaurantStats{RestaurantID: restaurantID, Name: restaurant.Name}

	cached, err := s.rdb.HGetAll(ctx, statsKey(restaurantID)).Result()
	if err != nil {
		log.Warn().Err(err).Str("restaurant_id", restaurantID).Msg("stats hash unavailable, using database")
	}
	if err == nil && len(cached) > 0 {
		stats.AvgRating, _ = strconv.ParseFloat(cached["avg_rating"], 64)
		stats.ReviewCount, _ = strconv.Atoi(cached["review_count"])
		if ts, err := strconv.ParseInt(cached["last_updated"], 10, 64); err == nil {
			stats.LastUpdated = &ts
		}
	} else {
		if err := s.db.QueryRowContext(ctx, `
			SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0), COUNT(*)
			FROM reviews
			WHERE restaurant_id = $1
		`, restaurantID).Scan(&stats.AvgRating, &stats.ReviewCount); err != nil {
			return nil, err
		}
	}

	if !inCatalog && stats.ReviewCount == 0 {
		return nil, ErrRestaurantNotFound
	}

	if weighted, err := s.rdb.ZScore(ctx, topRatedKey, restaurantID).Result(); err == nil {
		stats.WeightedRating = &weighted
	}
	return stats, nil
}

func (s *AnalyticsService) RatingDistribution(ctx context.Context, restaurantID string) (domain.RatingDistribution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rating, COUNT(*) AS count
		FROM reviews
		WHERE restaurant_id = $1
		GROUP BY rating
		ORDER BY rating
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	return scanDistribution(rows)
}

func (s *AnalyticsService) GlobalDistribution(ctx context.Context) (domain.RatingDistribution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rating, COUNT(*) AS count
		FROM reviews
		GROUP BY rating
		ORDER BY rating
	`)
	if err != nil {
		return nil, err
	}
	return scanDistribution(rows)
}

func scanDistribution(rows *sql.Rows) (domain.RatingDistribution, error) {
	defer rows.Close()

	distribution := domain.NewRatingDistribution()
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, rows.Err()
}
