package catalog

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type PostgresSource struct {
	DB *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

func (s *PostgresSource) Restaurants(ctx context.Context) ([]Restaurant, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, ''), lat, lon, category_id,
		       COALESCE(price_range, ''), rating, COALESCE(tags, '{}'),
		       COALESCE(phone_number, ''), COALESCE(open_hours, ''),
		       COALESCE(main_image_url, ''), COALESCE(website, '')
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var (
			r          Restaurant
			lat, lon   sql.NullFloat64
			categoryID sql.NullInt64
			rating     sql.NullFloat64
			tags       pq.StringArray
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Address, &lat, &lon, &categoryID,
			&r.PriceRange, &rating, &tags, &r.PhoneNumber, &r.OpenHours,
			&r.MainImageURL, &r.Website); err != nil {
			return nil, err
		}
		r.Location = LocationFrom(lat.Float64, lon.Float64, lat.Valid, lon.Valid)
		r.CategoryID = DefaultCategoryID
		if categoryID.Valid && categoryID.Int64 > 0 {
			r.CategoryID = int(categoryID.Int64)
		}
		r.Rating = rating.Float64
		r.Tags = cleanTags(tags)
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func (s *PostgresSource) MenuItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, dish_name, COALESCE(dish_tags, '{}'),
		       COALESCE(price, ''), COALESCE(description, ''),
		       COALESCE(category_id, 0), COALESCE(image_url, '')
		FROM menu_items
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem
	for rows.Next() {
		var (
			m    MenuItem
			tags pq.StringArray
		)
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.DishName, &tags,
			&m.Price, &m.Description, &m.CategoryID, &m.ImageURL); err != nil {
			return nil, err
		}
		m.DishTags = cleanTags(tags)
		items = append(items, m)
	}
	return items, rows.Err()
}

func (s *PostgresSource) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, '')
		FROM categories
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

var _ Source = (*PostgresSource)(nil)
