package domain

import "time"

const (
	EventReviewCreated = "review_created"
	EventReviewDeleted = "review_deleted"
)

// ReviewEvent is the payload rate-svc writes to the reviews topic.
type ReviewEvent struct {
	Type           string    `json:"type"`
	ReviewID       string    `json:"review_id"`
	RestaurantID   string    `json:"restaurant_id"`
	UserID         string    `json:"user_id"`
	Rating         int       `json:"rating"`
	WeightedRating *float64  `json:"weighted_rating,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
