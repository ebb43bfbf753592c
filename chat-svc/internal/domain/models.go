package domain

import (
	"time"

	"foodtour/catalog"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Search types recorded with every exchange. A "_price_sorted" or
// "_rating_sorted" suffix is appended when keyword sorting was applied.
const (
	SearchLocationAndDish = "location_and_dish"
	SearchLocationAndName = "location_and_name"
	SearchLocationOnly    = "location_only"
	SearchDishOnly        = "dish_only"
	SearchNameOnly        = "name_only"

	SuffixPriceSorted  = "_price_sorted"
	SuffixRatingSorted = "_rating_sorted"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Exchange is one user message and the assistant's reply, with what the
// catalog search found for it.
type Exchange struct {
	UserMessage      string    `json:"user_message"`
	BotResponse      string    `json:"bot_response"`
	Timestamp        time.Time `json:"timestamp"`
	SearchType       string    `json:"search_type"`
	RestaurantsFound int       `json:"restaurants_found"`
	RestaurantNames  []string  `json:"restaurant_names"`
}

// Recommendation is a restaurant the finders returned, with the menu items
// that matched when it came from the dish finder.
type Recommendation struct {
	Restaurant catalog.Restaurant
	Dishes     []catalog.MenuItem
}

type SearchOutcome struct {
	Type            string
	Recommendations []Recommendation
}

type ChatRequest struct {
	Message        string `json:"message"`
	Query          string `json:"query"`
	ConversationID string `json:"conversation_id"`
}

type ChatResponse struct {
	ConversationID string    `json:"conversation_id"`
	UserMessage    string    `json:"user_message"`
	BotResponse    string    `json:"bot_response"`
	Timestamp      time.Time `json:"timestamp"`
}

type Status struct {
	Status             string    `json:"status"`
	APIKeyConfigured   bool      `json:"api_key_configured"`
	TotalConversations int       `json:"total_conversations"`
	TotalRestaurants   int       `json:"total_restaurants"`
	Timestamp          time.Time `json:"timestamp"`
}
