package search

import (
	"sort"

	"foodtour/catalog"
	"foodtour/geo"
)

type PinStyle struct {
	DishType string `json:"dishType"`
	PinColor string `json:"pinColor"`
}

var pinStyles = map[int]PinStyle{
	1: {DishType: "dry", PinColor: "red"},
	2: {DishType: "soup", PinColor: "blue"},
	3: {DishType: "vegetarian", PinColor: "green"},
	4: {DishType: "salty", PinColor: "orange"},
	5: {DishType: "seafood", PinColor: "purple"},
}

// StyleFor maps a category id to its pin; unknown ids get the dry/red pin.
func StyleFor(categoryID int) PinStyle {
	if s, ok := pinStyles[categoryID]; ok {
		return s
	}
	return pinStyles[catalog.DefaultCategoryID]
}

type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Marker struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Position *Position `json:"position"`
	PinStyle
	Rating       float64  `json:"rating"`
	PriceRange   string   `json:"price_range"`
	PhoneNumber  string   `json:"phone_number"`
	OpenHours    string   `json:"open_hours"`
	MainImageURL string   `json:"main_image_url"`
	Tags         []string `json:"tags"`
	Score        *float64 `json:"score,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
}

func NewMarker(r catalog.Restaurant) Marker {
	m := Marker{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		PinStyle:     StyleFor(r.CategoryID),
		Rating:       r.Rating,
		PriceRange:   r.PriceRange,
		PhoneNumber:  r.PhoneNumber,
		OpenHours:    r.OpenHours,
		MainImageURL: r.MainImageURL,
		Tags:         r.Tags,
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if r.Location != nil {
		m.Position = &Position{Lat: r.Location.Lat, Lon: r.Location.Lon}
	}
	return m
}

// Markers reshapes ranked results for the map client.
func Markers(results []Result) []Marker {
	out := make([]Marker, 0, len(results))
	for _, res := range results {
		m := NewMarker(res.Restaurant)
		score := res.Score
		m.Score = &score
		m.Distance = res.Distance
		out = append(out, m)
	}
	return out
}

const DefaultMapRadiusKm = 2.0

// MapAdapter serves map viewports: same predicates as Engine, no text
// scoring, a small default radius and located restaurants only.
type MapAdapter struct {
	DefaultRadiusKm float64
}

func NewMapAdapter(defaultRadiusKm float64) *MapAdapter {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = DefaultMapRadiusKm
	}
	return &MapAdapter{DefaultRadiusKm: defaultRadiusKm}
}

// EffectiveFilters fills in the default radius when the caller sent a
// location without one.
func (a *MapAdapter) EffectiveFilters(f Filters) Filters {
	if f.User != nil && f.RadiusKm == nil {
		radius := a.DefaultRadiusKm
		f.RadiusKm = &radius
	}
	return f
}

// FilterMarkers returns markers for located restaurants passing f, nearest
// first when f has a user location. limit <= 0 means no cap; the cap is
// applied after sorting.
func (a *MapAdapter) FilterMarkers(restaurants []catalog.Restaurant, f Filters, limit int) []Marker {
	f = a.EffectiveFilters(f)
	matcher := f.Matcher()

	type located struct {
		marker Marker
		dist   float64
		has    bool
	}
	var found []located
	for i := range restaurants {
		r := &restaurants[i]
		if r.ID == "" || r.Location == nil {
			continue
		}
		m, ok := matcher.Match(r)
		if !ok {
			continue
		}
		marker := NewMarker(*r)
		if m.HasDistance {
			d := geo.Round2(m.Distance)
			marker.Distance = &d
		}
		found = append(found, located{marker: marker, dist: m.Distance, has: m.HasDistance})
	}

	if f.User != nil {
		sort.SliceStable(found, func(i, j int) bool {
			return sortDistance(Match{Distance: found[i].dist, HasDistance: found[i].has}) <
				sortDistance(Match{Distance: found[j].dist, HasDistance: found[j].has})
		})
	}

	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	out := make([]Marker, 0, len(found))
	for _, l := range found {
		out = append(out, l.marker)
	}
	return out
}
