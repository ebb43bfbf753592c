package domain

type RestaurantScore struct {
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	ReviewCount  int     `json:"review_count"`
}

type RestaurantStats struct {
	RestaurantID   string   `json:"restaurant_id"`
	Name           string   `json:"name"`
	AvgRating      float64  `json:"avg_rating"`
	ReviewCount    int      `json:"review_count"`
	WeightedRating *float64 `json:"weighted_rating"`
	LastUpdated    *int64   `json:"last_updated,omitempty"`
}

// RatingDistribution counts reviews per star, keyed "1".."5".
type RatingDistribution map[string]int

func NewRatingDistribution() RatingDistribution {
	return RatingDistribution{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
}
