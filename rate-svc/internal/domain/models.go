package domain

import "time"

const (
	EventReviewCreated = "review_created"
	EventReviewDeleted = "review_deleted"

	ReviewTypeRestaurant = "restaurant"
)

type Review struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url"`
	TargetID  string  `json:"target_id"`
	Type      string  `json:"type"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
	// Timestamp is Unix milliseconds.
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`

	NewRestaurantRating *float64 `json:"new_restaurant_rating,omitempty"`
}

type CreateReviewRequest struct {
	TargetID string `json:"target_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=2000"`
	Type     string `json:"type" validate:"omitempty,oneof=restaurant"`
}

type Reviewer struct {
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

type ReviewList struct {
	Reviews       []Review `json:"reviews"`
	CurrentRating *float64 `json:"current_rating"`
}

type ReviewEvent struct {
	Type           string    `json:"type"`
	ReviewID       string    `json:"review_id"`
	RestaurantID   string    `json:"restaurant_id"`
	UserID         string    `json:"user_id"`
	Rating         int       `json:"rating"`
	WeightedRating *float64  `json:"weighted_rating,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
