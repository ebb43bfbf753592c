package service

import (
	"math"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"foodtour/catalog"
	"foodtour/chat-svc/internal/domain"
	"foodtour/search"
)

// MaxFinderResults caps what each finder returns.
const MaxFinderResults = 10

// Location variants are folded. The first entry of each group is the
// canonical city name.
var locationVariants = [][]string{
	{"ho chi minh", "sai gon", "tp ho chi minh", "thanh pho ho chi minh", "hcmc", "tphcm", "tp hcm", "hcm"},
	{"ha noi", "hanoi", "thu do"},
	{"da nang", "danang"},
	{"hai phong"},
	{"can tho"},
	{"hoi an"},
	{"nha trang"},
	{"da lat", "dalat"},
}

var (
	nearbyKeywords = []string{"gan toi", "gan day", "quanh day", "nearby", "near me", "o day"}
	priceKeywords  = []string{"gia re", "re nhat", "re", "binh dan", "tiet kiem", "cheap"}
	ratingKeywords = []string{"ngon nhat", "tot nhat", "diem cao", "danh gia cao", "best", "top rated", "ngon", "chat luong"}

	// nameStopWords never count as a restaurant name hit on their own.
	nameStopWords = map[string]bool{
		"quan": true, "nha": true, "hang": true, "mon": true, "ngon": true,
		"nhat": true, "tim": true, "cho": true, "toi": true, "gan": true,
		"day": true, "voi": true, "nhung": true, "cac": true, "gia": true,
		"best": true, "food": true, "restaurant": true, "the": true, "and": true,
	}
)

// CatalogReader is the read side of *catalog.Catalog the finders need.
type CatalogReader interface {
	Restaurants() []catalog.Restaurant
	MenuFor(restaurantID string) []catalog.MenuItem
}

// Finder picks catalog restaurants relevant to a chat message.
type Finder struct {
	catalog CatalogReader
}

func NewFinder(c CatalogReader) *Finder {
	return &Finder{catalog: c}
}

func (f *Finder) isNearby(folded string) bool {
	return hasAnyPhrase(folded, nearbyKeywords)
}

// ByLocation returns restaurants whose address or tags mention the city the
// message names. "Near me" style messages return the best rated restaurants
// instead.
func (f *Finder) ByLocation(message string) []catalog.Restaurant {
	folded := fold(message)
	restaurants := f.catalog.Restaurants()

	if f.isNearby(folded) {
		sorted := slices.Clone(restaurants)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
		return capped(sorted)
	}

	var variants []string
	for _, group := range locationVariants {
		if hasAnyPhrase(folded, group) {
			variants = group
			break
		}
	}
	if variants == nil {
		return nil
	}

	var results []catalog.Restaurant
	for _, r := range restaurants {
		if mentionsAny(r, variants) {
			results = append(results, r)
			if len(results) == MaxFinderResults {
				break
			}
		}
	}
	return results
}

func mentionsAny(r catalog.Restaurant, variants []string) bool {
	fields := append([]string{r.Address}, r.Tags...)
	for _, field := range fields {
		folded := fold(field)
		for _, v := range variants {
			if strings.Contains(folded, v) {
				return true
			}
		}
	}
	return false
}

// ByDish returns restaurants with a menu item whose name or tag appears in
// the message (or contains the whole message), together with those items.
func (f *Finder) ByDish(message string) []domain.Recommendation {
	q := newQueryText(message)
	if q.text == "" {
		return nil
	}

	var results []domain.Recommendation
	for _, r := range f.catalog.Restaurants() {
		var dishes []catalog.MenuItem
		for _, item := range f.catalog.MenuFor(r.ID) {
			if q.matchesDish(item) {
				dishes = append(dishes, item)
			}
		}
		if len(dishes) == 0 {
			continue
		}
		results = append(results, domain.Recommendation{Restaurant: r, Dishes: dishes})
		if len(results) == MaxFinderResults {
			break
		}
	}
	return results
}

func (q queryText) matchesDish(item catalog.MenuItem) bool {
	candidates := append([]string{item.DishName}, item.DishTags...)
	for _, c := range candidates {
		form := q.form(c)
		if form == "" {
			continue
		}
		if hasPhrase(q.text, form) || strings.Contains(form, q.text) {
			return true
		}
	}
	return false
}

// ByName returns restaurants whose name contains any meaningful word of the
// message longer than two letters.
func (f *Finder) ByName(message string) []catalog.Restaurant {
	q := newQueryText(message)

	var words []string
	for _, w := range strings.Fields(q.text) {
		if utf8.RuneCountInString(w) > 2 && !nameStopWords[fold(w)] {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil
	}

	var results []catalog.Restaurant
	for _, r := range f.catalog.Restaurants() {
		name := q.form(r.Name)
		for _, w := range words {
			if strings.Contains(name, w) {
				results = append(results, r)
				break
			}
		}
		if len(results) == MaxFinderResults {
			break
		}
	}
	return results
}

// Find runs all three finders and combines them. Location narrows dish or
// name hits when both are present; with no overlap the location hits win.
// Price or rating keywords then reorder the result.
func (f *Finder) Find(message string) domain.SearchOutcome {
	byLocation := f.ByLocation(message)
	byDish := f.ByDish(message)
	byName := f.ByName(message)

	var outcome domain.SearchOutcome
	switch {
	case len(byLocation) > 0 && len(byDish) > 0:
		outcome = intersect(byLocation, byDish, domain.SearchLocationAndDish)
	case len(byLocation) > 0 && len(byName) > 0:
		outcome = intersect(byLocation, recommend(byName), domain.SearchLocationAndName)
	case len(byLocation) > 0:
		outcome = domain.SearchOutcome{Type: domain.SearchLocationOnly, Recommendations: recommend(byLocation)}
	case len(byDish) > 0:
		outcome = domain.SearchOutcome{Type: domain.SearchDishOnly, Recommendations: byDish}
	case len(byName) > 0:
		outcome = domain.SearchOutcome{Type: domain.SearchNameOnly, Recommendations: recommend(byName)}
	default:
		return outcome
	}

	folded := fold(message)
	switch {
	case hasAnyPhrase(folded, priceKeywords):
		sort.SliceStable(outcome.Recommendations, func(i, j int) bool {
			return averagePrice(outcome.Recommendations[i].Restaurant) < averagePrice(outcome.Recommendations[j].Restaurant)
		})
		outcome.Type += domain.SuffixPriceSorted
	case hasAnyPhrase(folded, ratingKeywords):
		sort.SliceStable(outcome.Recommendations, func(i, j int) bool {
			return outcome.Recommendations[i].Restaurant.Rating > outcome.Recommendations[j].Restaurant.Rating
		})
		outcome.Type += domain.SuffixRatingSorted
	}
	return outcome
}

func intersect(byLocation []catalog.Restaurant, hits []domain.Recommendation, searchType string) domain.SearchOutcome {
	inLocation := make(map[string]bool, len(byLocation))
	for _, r := range byLocation {
		inLocation[r.ID] = true
	}

	var both []domain.Recommendation
	for _, rec := range hits {
		if inLocation[rec.Restaurant.ID] {
			both = append(both, rec)
		}
	}
	if len(both) == 0 {
		return domain.SearchOutcome{Type: domain.SearchLocationOnly, Recommendations: recommend(byLocation)}
	}
	return domain.SearchOutcome{Type: searchType, Recommendations: both}
}

func recommend(restaurants []catalog.Restaurant) []domain.Recommendation {
	recs := make([]domain.Recommendation, len(restaurants))
	for i, r := range restaurants {
		recs[i] = domain.Recommendation{Restaurant: r}
	}
	return recs
}

// averagePrice is the midpoint of the parsed price range. Open ranges use
// their lower bound and unparseable ranges sort last.
func averagePrice(r catalog.Restaurant) float64 {
	lo, hi := search.ParsePriceRange(r.PriceRange)
	if math.IsInf(hi, 1) {
		if lo == 0 {
			return math.Inf(1)
		}
		return lo
	}
	return (lo + hi) / 2
}

func capped(restaurants []catalog.Restaurant) []catalog.Restaurant {
	if len(restaurants) > MaxFinderResults {
		return restaurants[:MaxFinderResults]
	}
	return restaurants
}
