package search

import (
	"slices"
	"strings"

	"foodtour/catalog"
	"foodtour/geo"
)

// Filters is the structured part of a query. Every field is optional; a nil
// pointer or nil slice means "no constraint". Categories is the exception
// worth remembering: a non-nil empty slice matches nothing.
type Filters struct {
	Province   string
	User       *geo.Point
	RadiusKm   *float64
	Categories []int
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	MaxRating  *float64
	// Tags match exactly and case-sensitively against stored tags.
	Tags []string
}

// Match is the outcome of evaluating Filters against one restaurant.
type Match struct {
	Distance    float64
	HasDistance bool
}

// Matcher evaluates one Filters value against many restaurants.
type Matcher struct {
	f        Filters
	province string
	byRadius bool
}

func (f Filters) Matcher() *Matcher {
	return &Matcher{
		f:        f,
		province: Normalize(f.Province),
		byRadius: f.User != nil && f.RadiusKm != nil,
	}
}

// Match reports whether r passes every active predicate. When the filter
// carries a user location and r has one, the distance is filled in whether
// or not a radius was requested.
func (m *Matcher) Match(r *catalog.Restaurant) (Match, bool) {
	var res Match
	f := &m.f

	if m.province != "" && !strings.Contains(Normalize(r.Address), m.province) {
		return res, false
	}

	if f.User != nil {
		res.Distance, res.HasDistance = geo.DistanceKm(f.User, r.Location)
	}
	if m.byRadius && (!res.HasDistance || res.Distance > *f.RadiusKm) {
		return res, false
	}

	if f.Categories != nil && !slices.Contains(f.Categories, r.CategoryID) {
		return res, false
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		lo, hi := ParsePriceRange(r.PriceRange)
		if f.MinPrice != nil && hi < *f.MinPrice {
			return res, false
		}
		if f.MaxPrice != nil && lo > *f.MaxPrice {
			return res, false
		}
	}

	if f.MinRating != nil && r.Rating < *f.MinRating {
		return res, false
	}
	if f.MaxRating != nil && r.Rating > *f.MaxRating {
		return res, false
	}

	if len(f.Tags) > 0 && !hasAnyTag(r.Tags, f.Tags) {
		return res, false
	}

	return res, true
}

func hasAnyTag(have, want []string) bool {
	for _, t := range want {
		if slices.Contains(have, t) {
			return true
		}
	}
	return false
}
