package domain

import (
	"foodtour/catalog"
	"foodtour/geo"
	"foodtour/search"
)

type RestaurantDetail struct {
	catalog.Restaurant
	Menu []catalog.MenuItem `json:"menu"`
}

type NearbyRestaurant struct {
	catalog.Restaurant
	Distance float64 `json:"distance"`
}

type RouteRequest struct {
	StartLat *float64 `json:"start_lat" validate:"required,latitude"`
	StartLon *float64 `json:"start_lon" validate:"required,longitude"`
	EndLat   *float64 `json:"end_lat" validate:"required,latitude"`
	EndLon   *float64 `json:"end_lon" validate:"required,longitude"`
}

type RouteResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	Coordinates []geo.Point `json:"coordinates"`
	TotalPoints int         `json:"total_points"`
}

type SearchResponse struct {
	Success bool            `json:"success"`
	Total   int             `json:"total"`
	Places  []search.Marker `json:"places"`
}

type FiltersApplied struct {
	HasLocation bool     `json:"has_location"`
	RadiusKm    *float64 `json:"radius_km"`
	Categories  []int    `json:"categories"`
	MinPrice    *float64 `json:"min_price"`
	MaxPrice    *float64 `json:"max_price"`
	MinRating   *float64 `json:"min_rating"`
	MaxRating   *float64 `json:"max_rating"`
	Tags        []string `json:"tags"`
}

type MapFilterResponse struct {
	SearchResponse
	FiltersApplied FiltersApplied `json:"filters_applied"`
}

func NewFiltersApplied(f search.Filters) FiltersApplied {
	applied := FiltersApplied{
		HasLocation: f.User != nil,
		RadiusKm:    f.RadiusKm,
		Categories:  f.Categories,
		MinPrice:    f.MinPrice,
		MaxPrice:    f.MaxPrice,
		MinRating:   f.MinRating,
		MaxRating:   f.MaxRating,
		Tags:        f.Tags,
	}
	if applied.Tags == nil {
		applied.Tags = []string{}
	}
	return applied
}
