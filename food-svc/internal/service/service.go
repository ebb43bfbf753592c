package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"foodtour/catalog"
	"foodtour/food-svc/internal/domain"
	"foodtour/geo"
	"foodtour/search"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrFoodNotFound       = errors.New("food not found")
	ErrCategoryNotFound   = errors.New("category not found")
)

const DefaultNearbyRadiusMeters = 5000.0

type RestaurantService struct {
	catalog CatalogReader
	qr      QRGenerator
}

func NewRestaurantService(catalog CatalogReader, qr QRGenerator) *RestaurantService {
	return &RestaurantService{catalog: catalog, qr: qr}
}

func (s *RestaurantService) List() []catalog.Restaurant {
	return s.catalog.Restaurants()
}

// Search is the plain lookup box: case-insensitive substring over name or
// address. An empty query lists everything.
func (s *RestaurantService) Search(q string) []catalog.Restaurant {
	q = search.Normalize(q)
	if q == "" {
		return s.catalog.Restaurants()
	}
	out := []catalog.Restaurant{}
	for _, r := range s.catalog.Restaurants() {
		if strings.Contains(search.Normalize(r.Name), q) || strings.Contains(search.Normalize(r.Address), q) {
			out = append(out, r)
		}
	}
	return out
}

func (s *RestaurantService) Get(id string) (*domain.RestaurantDetail, error) {
	r, ok := s.catalog.Restaurant(id)
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	menu := s.catalog.MenuFor(id)
	if menu == nil {
		menu = []catalog.MenuItem{}
	}
	return &domain.RestaurantDetail{Restaurant: r, Menu: menu}, nil
}

func (s *RestaurantService) ByIDs(ids []string) []catalog.Restaurant {
	return s.catalog.RestaurantsByIDs(ids)
}

// Nearby lists located restaurants within radiusMeters of center, nearest
// first. Distances in the result are kilometers.
func (s *RestaurantService) Nearby(center geo.Point, radiusMeters float64) []domain.NearbyRestaurant {
	if radiusMeters <= 0 {
		radiusMeters = DefaultNearbyRadiusMeters
	}
	radiusKm := radiusMeters / 1000

	out := []domain.NearbyRestaurant{}
	for _, r := range s.catalog.Restaurants() {
		d, ok := geo.DistanceKm(&center, r.Location)
		if !ok || d > radiusKm {
			continue
		}
		out = append(out, domain.NearbyRestaurant{Restaurant: r, Distance: geo.Round2(d)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

func (s *RestaurantService) ByCategory(categoryID int) []catalog.Restaurant {
	out := []catalog.Restaurant{}
	for _, r := range s.catalog.Restaurants() {
		if r.CategoryID == categoryID {
			out = append(out, r)
		}
	}
	return out
}

func (s *RestaurantService) QRCode(id string) ([]byte, error) {
	if _, ok := s.catalog.Restaurant(id); !ok {
		return nil, ErrRestaurantNotFound
	}
	png, err := s.qr.Generate(id)
	if err != nil {
		return nil, fmt.Errorf("generate qr for restaurant %s: %w", id, err)
	}
	return png, nil
}

const DefaultFoodLimit = 50

type FoodService struct {
	catalog CatalogReader
}

func NewFoodService(catalog CatalogReader) *FoodService {
	return &FoodService{catalog: catalog}
}

func (s *FoodService) List(limit int) []catalog.MenuItem {
	items := s.catalog.MenuItems()
	if limit <= 0 {
		limit = DefaultFoodLimit
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (s *FoodService) Search(q string) []catalog.MenuItem {
	q = search.Normalize(q)
	if q == "" {
		return []catalog.MenuItem{}
	}
	out := []catalog.MenuItem{}
	for _, it := range s.catalog.MenuItems() {
		if strings.Contains(search.Normalize(it.DishName), q) {
			out = append(out, it)
		}
	}
	return out
}

func (s *FoodService) Get(id string) (*catalog.MenuItem, error) {
	it, ok := s.catalog.MenuItem(id)
	if !ok {
		return nil, ErrFoodNotFound
	}
	return &it, nil
}

func (s *FoodService) ByRestaurant(restaurantID string) []catalog.MenuItem {
	if items := s.catalog.MenuFor(restaurantID); items != nil {
		return items
	}
	return []catalog.MenuItem{}
}

func (s *FoodService) ByCategory(categoryID int) []catalog.MenuItem {
	out := []catalog.MenuItem{}
	for _, it := range s.catalog.MenuItems() {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out
}

type CategoryService struct {
	catalog CatalogReader
}

func NewCategoryService(catalog CatalogReader) *CategoryService {
	return &CategoryService{catalog: catalog}
}

func (s *CategoryService) List() []catalog.Category {
	return s.catalog.Categories()
}

func (s *CategoryService) Get(id int) (*catalog.Category, error) {
	c, ok := s.catalog.Category(id)
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return &c, nil
}
