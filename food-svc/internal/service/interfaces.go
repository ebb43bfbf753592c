package service

import (
	"context"

	"foodtour/catalog"
	"foodtour/food-svc/internal/domain"
	"foodtour/geo"
	"foodtour/search"
)

// CatalogReader is the read side of *catalog.Catalog.
type CatalogReader interface {
	Restaurants() []catalog.Restaurant
	Restaurant(id string) (catalog.Restaurant, bool)
	RestaurantsByIDs(ids []string) []catalog.Restaurant
	MenuFor(restaurantID string) []catalog.MenuItem
	Menus() map[string][]catalog.MenuItem
	MenuItems() []catalog.MenuItem
	MenuItem(id string) (catalog.MenuItem, bool)
	Categories() []catalog.Category
	Category(id int) (catalog.Category, bool)
}

type RouteProvider interface {
	Route(ctx context.Context, start, end geo.Point) ([]geo.Point, error)
}

type QRGenerator interface {
	Generate(restaurantID string) ([]byte, error)
}

type RestaurantServiceInterface interface {
	List() []catalog.Restaurant
	Search(q string) []catalog.Restaurant
	Get(id string) (*domain.RestaurantDetail, error)
	ByIDs(ids []string) []catalog.Restaurant
	Nearby(center geo.Point, radiusMeters float64) []domain.NearbyRestaurant
	ByCategory(categoryID int) []catalog.Restaurant
	QRCode(id string) ([]byte, error)
}

type FoodServiceInterface interface {
	List(limit int) []catalog.MenuItem
	Search(q string) []catalog.MenuItem
	Get(id string) (*catalog.MenuItem, error)
	ByRestaurant(restaurantID string) []catalog.MenuItem
	ByCategory(categoryID int) []catalog.MenuItem
}

type CategoryServiceInterface interface {
	List() []catalog.Category
	Get(id int) (*catalog.Category, error)
}

type SearchServiceInterface interface {
	Search(query string, filters search.Filters) []search.Result
	FilterMarkers(filters search.Filters, limit int) ([]search.Marker, search.Filters)
}

type RouteServiceInterface interface {
	GetRoute(ctx context.Context, start, end geo.Point) ([]geo.Point, error)
}

var (
	_ CatalogReader              = (*catalog.Catalog)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ FoodServiceInterface       = (*FoodService)(nil)
	_ CategoryServiceInterface   = (*CategoryService)(nil)
	_ SearchServiceInterface     = (*SearchService)(nil)
	_ RouteServiceInterface      = (*RouteService)(nil)
)
