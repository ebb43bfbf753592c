package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"foodtour/geo"
)

// Source records come from scraped data where ids and numbers show up as
// either JSON numbers or strings. These types accept both and remember
// whether a usable value was present.

type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

type flexFloat struct {
	Value float64
	Set   bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	*f = flexFloat{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = flexFloat{Value: v, Set: true}
	return nil
}

// flexList accepts a list of strings or a single bare string. Non-string
// elements are dropped.
type flexList []string

func (l *flexList) UnmarshalJSON(b []byte) error {
	*l = nil
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*l = flexList{v}
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	out := make(flexList, 0, len(items))
	for _, item := range items {
		var v string
		if json.Unmarshal(item, &v) == nil {
			out = append(out, v)
		}
	}
	*l = out
	return nil
}

type rawRestaurant struct {
	ID           flexString `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Lat          flexFloat  `json:"lat"`
	Lon          flexFloat  `json:"lon"`
	CategoryID   flexFloat  `json:"category_id"`
	PriceRange   flexString `json:"price_range"`
	Rating       flexFloat  `json:"rating"`
	Tags         flexList   `json:"tags"`
	PhoneNumber  flexString `json:"phone_number"`
	OpenHours    string     `json:"open_hours"`
	MainImageURL string     `json:"main_image_url"`
	Website      string     `json:"website"`
}

type rawMenuItem struct {
	ID           flexString `json:"id"`
	RestaurantID flexString `json:"restaurant_id"`
	DishName     string     `json:"dish_name"`
	DishTags     flexList   `json:"dish_tags"`
	Price        flexString `json:"price"`
	Description  string     `json:"description"`
	CategoryID   flexFloat  `json:"category_id"`
	ImageURL     string     `json:"image_url"`
}

type rawCategory struct {
	ID          flexFloat `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// LocationFrom maps source coordinates to an optional point. The scraped
// data uses 0 as "unknown", so a zero on either axis means no location.
func LocationFrom(lat, lon float64, latSet, lonSet bool) *geo.Point {
	if !latSet || !lonSet || lat == 0 || lon == 0 {
		return nil
	}
	p := geo.NewPoint(lat, lon)
	if !p.Valid() {
		return nil
	}
	return p
}

func (r rawRestaurant) normalize() Restaurant {
	out := Restaurant{
		ID:           string(r.ID),
		Name:         strings.TrimSpace(r.Name),
		Address:      strings.TrimSpace(r.Address),
		Location:     LocationFrom(r.Lat.Value, r.Lon.Value, r.Lat.Set, r.Lon.Set),
		CategoryID:   DefaultCategoryID,
		PriceRange:   string(r.PriceRange),
		Tags:         cleanTags(r.Tags),
		PhoneNumber:  string(r.PhoneNumber),
		OpenHours:    r.OpenHours,
		MainImageURL: r.MainImageURL,
		Website:      r.Website,
	}
	if r.CategoryID.Set && r.CategoryID.Value > 0 {
		out.CategoryID = int(r.CategoryID.Value)
	}
	if r.Rating.Set {
		out.Rating = r.Rating.Value
	}
	return out
}

func (m rawMenuItem) normalize() MenuItem {
	out := MenuItem{
		ID:           string(m.ID),
		RestaurantID: string(m.RestaurantID),
		DishName:     strings.TrimSpace(m.DishName),
		DishTags:     cleanTags(m.DishTags),
		Price:        string(m.Price),
		Description:  m.Description,
		ImageURL:     m.ImageURL,
	}
	if m.CategoryID.Set {
		out.CategoryID = int(m.CategoryID.Value)
	}
	return out
}

func (c rawCategory) normalize() (Category, bool) {
	if !c.ID.Set {
		return Category{}, false
	}
	return Category{ID: int(c.ID.Value), Name: c.Name, Description: c.Description}, true
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// decodeRecords splits a JSON array into records and decodes each one on
// its own. Records that still fail are logged and skipped; only a
// top-level value that is not an array is an error.
func decodeRecords[T any](data []byte, kind string) ([]T, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for i, rec := range records {
		var v T
		if err := json.Unmarshal(rec, &v); err != nil {
			log.Warn().Err(err).Str("kind", kind).Int("index", i).Msg("skipping malformed record")
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeRestaurants parses a JSON array of restaurant records and applies
// ingestion defaults.
func DecodeRestaurants(data []byte) ([]Restaurant, error) {
	raw, err := decodeRecords[rawRestaurant](data, "restaurant")
	if err != nil {
		return nil, err
	}
	out := make([]Restaurant, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.normalize())
	}
	return out, nil
}

func DecodeMenuItems(data []byte) ([]MenuItem, error) {
	raw, err := decodeRecords[rawMenuItem](data, "menu_item")
	if err != nil {
		return nil, err
	}
	out := make([]MenuItem, 0, len(raw))
	for _, m := range raw {
		out = append(out, m.normalize())
	}
	return out, nil
}

func DecodeCategories(data []byte) ([]Category, error) {
	raw, err := decodeRecords[rawCategory](data, "category")
	if err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(raw))
	for _, c := range raw {
		if cat, ok := c.normalize(); ok {
			out = append(out, cat)
		}
	}
	return out, nil
}
