package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodtour/rate-svc/internal/domain"
)

// Schema is applied at startup; it is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS reviews (
	id            TEXT PRIMARY KEY,
	restaurant_id TEXT NOT NULL,
	user_id       TEXT NOT NULL,
	username      TEXT NOT NULL,
	avatar_url    TEXT,
	rating        INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment       TEXT,
	created_at_ms BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS reviews_restaurant_idx ON reviews (restaurant_id, created_at_ms DESC);
`

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, Schema)
	return err
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reviews (id, restaurant_id, user_id, username, avatar_url, rating, comment, created_at_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, review.ID, review.TargetID, review.UserID, review.Username, review.AvatarURL,
		review.Rating, review.Comment, review.Timestamp)
	return err
}

const reviewColumns = `id, restaurant_id, user_id, username, avatar_url, rating, comment, created_at_ms`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (domain.Review, error) {
	var (
		rev     domain.Review
		avatar  sql.NullString
		comment sql.NullString
	)
	if err := row.Scan(&rev.ID, &rev.TargetID, &rev.UserID, &rev.Username, &avatar, &rev.Rating, &comment, &rev.Timestamp); err != nil {
		return rev, err
	}
	if avatar.Valid {
		rev.AvatarURL = &avatar.String
	}
	if comment.Valid {
		rev.Comment = &comment.String
	}
	rev.Type = domain.ReviewTypeRestaurant
	rev.Date = time.UnixMilli(rev.Timestamp).Format("02/01/2006")
	return rev, nil
}

func (r *PostgresRepository) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, reviewID)
	rev, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *PostgresRepository) DeleteReview(ctx context.Context, reviewID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	return err
}

func (r *PostgresRepository) ListRestaurantReviews(ctx context.Context, restaurantID string, limit int) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at_ms DESC, id DESC
		LIMIT $2
	`, restaurantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) RatingSummary(ctx context.Context, restaurantID string) (int, int, error) {
	var sum, count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(rating), 0), COUNT(*)
		FROM reviews
		WHERE restaurant_id = $1
	`, restaurantID).Scan(&sum, &count)
	return sum, count, err
}
