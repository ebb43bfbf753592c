// Package search ranks catalog restaurants against a free-text query and
// structured filters, and projects them into map markers.
package search

import (
	"math"
	"slices"
	"sort"
	"strings"

	"foodtour/catalog"
	"foodtour/geo"
)

// Weights are the additive scoring constants.
type Weights struct {
	Name         float64
	Tag          float64
	Dish         float64
	RatingFactor float64
	// EmptyQuery is the score every match starts with when the query is blank.
	EmptyQuery float64
}

func DefaultWeights() Weights {
	return Weights{
		Name:         10,
		Tag:          5,
		Dish:         2,
		RatingFactor: 2,
		EmptyQuery:   1,
	}
}

// Result is a copy of a matched restaurant with its score and, when the
// caller supplied a location and the restaurant has one, its distance in km
// rounded to two decimals.
type Result struct {
	catalog.Restaurant
	Score    float64  `json:"score"`
	Distance *float64 `json:"distance,omitempty"`
}

type Engine struct {
	weights Weights
}

func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

type candidate struct {
	restaurant *catalog.Restaurant
	match      Match
	score      float64
}

// Search filters restaurants, scores the survivors and orders them by score
// descending. When any survivor has a distance, ties are broken by distance
// with unlocated restaurants last. menus groups menu items by restaurant id.
func (e *Engine) Search(query string, restaurants []catalog.Restaurant, menus map[string][]catalog.MenuItem, f Filters) []Result {
	matcher := f.Matcher()

	candidates := make([]candidate, 0, len(restaurants))
	for i := range restaurants {
		r := &restaurants[i]
		if r.ID == "" {
			continue
		}
		m, ok := matcher.Match(r)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{restaurant: r, match: m})
	}

	q := Normalize(query)
	anyDistance := false
	for i := range candidates {
		c := &candidates[i]
		if q == "" {
			c.score = e.weights.EmptyQuery
		} else {
			c.score = e.textScore(q, c.restaurant, menus[c.restaurant.ID])
		}
		if rating := c.restaurant.Rating; !math.IsNaN(rating) && !math.IsInf(rating, 0) {
			c.score += rating * e.weights.RatingFactor
		}
		anyDistance = anyDistance || c.match.HasDistance
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if !anyDistance {
			return false
		}
		return sortDistance(a.match) < sortDistance(b.match)
	})

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		res := Result{Restaurant: *c.restaurant, Score: c.score}
		if c.match.HasDistance {
			d := geo.Round2(c.match.Distance)
			res.Distance = &d
		}
		results = append(results, res)
	}
	return results
}

func (e *Engine) textScore(q string, r *catalog.Restaurant, menu []catalog.MenuItem) float64 {
	var score float64

	name := Normalize(r.Name)
	if slices.Contains(strings.Fields(name), q) || strings.Contains(name, q) {
		score += e.weights.Name
	}

	for _, tag := range r.Tags {
		if strings.Contains(Normalize(tag), q) {
			score += e.weights.Tag
			break
		}
	}

	for _, item := range menu {
		if strings.Contains(Normalize(item.DishName), q) {
			score += e.weights.Dish
			break
		}
	}

	return score
}

func sortDistance(m Match) float64 {
	if !m.HasDistance {
		return math.Inf(1)
	}
	return m.Distance
}
