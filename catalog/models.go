package catalog

import "foodtour/geo"

const DefaultCategoryID = 1

type Restaurant struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Location     *geo.Point `json:"location,omitempty"`
	CategoryID   int        `json:"category_id"`
	PriceRange   string     `json:"price_range"`
	Rating       float64    `json:"rating"`
	Tags         []string   `json:"tags"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	OpenHours    string     `json:"open_hours,omitempty"`
	MainImageURL string     `json:"main_image_url,omitempty"`
	Website      string     `json:"website,omitempty"`
}

type MenuItem struct {
	ID           string   `json:"id"`
	RestaurantID string   `json:"restaurant_id"`
	DishName     string   `json:"dish_name"`
	DishTags     []string `json:"dish_tags"`
	Price        string   `json:"price,omitempty"`
	Description  string   `json:"description,omitempty"`
	CategoryID   int      `json:"category_id,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Stats struct {
	Restaurants   int `json:"restaurants"`
	MenuItems     int `json:"menu_items"`
	Categories    int `json:"categories"`
	WithLocation  int `json:"with_location"`
	OrphanedItems int `json:"orphaned_menu_items"`
}
