package search

import (
	"encoding/json"
	"testing"

	"foodtour/catalog"
	"foodtour/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markerIDs(markers []Marker) []string {
	out := make([]string, 0, len(markers))
	for _, m := range markers {
		out = append(out, m.ID)
	}
	return out
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, PinStyle{DishType: "soup", PinColor: "blue"}, StyleFor(2))
	assert.Equal(t, PinStyle{DishType: "seafood", PinColor: "purple"}, StyleFor(5))
	assert.Equal(t, PinStyle{DishType: "dry", PinColor: "red"}, StyleFor(42))
}

func TestNewMarker_JSONShape(t *testing.T) {
	m := NewMarker(phoHaNoi())
	d := 1.5
	m.Distance = &d

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "soup", decoded["dishType"])
	assert.Equal(t, "blue", decoded["pinColor"])
	assert.Equal(t, map[string]any{"lat": 21.03, "lon": 105.83}, decoded["position"])
	assert.Equal(t, 1.5, decoded["distance"])
	assert.NotContains(t, decoded, "score")
}

func TestMarkers_FromResults(t *testing.T) {
	results := NewEngine(DefaultWeights()).Search("", []catalog.Restaurant{{ID: "a", Rating: 2}}, nil, Filters{})
	markers := Markers(results)

	require.Len(t, markers, 1)
	assert.Nil(t, markers[0].Position)
	require.NotNil(t, markers[0].Score)
	assert.Equal(t, 5.0, *markers[0].Score)
	assert.Equal(t, []string{}, markers[0].Tags)
}

func TestMapAdapter_FilterMarkers(t *testing.T) {
	adapter := NewMapAdapter(0)
	user := geo.NewPoint(21.03, 105.83)

	restaurants := []catalog.Restaurant{
		{ID: "1km", Rating: 3, CategoryID: 1, Location: geo.NewPoint(21.039, 105.83)},
		{ID: "no-loc", Rating: 5, CategoryID: 1},
		{ID: "0.5km", Rating: 4, CategoryID: 2, Location: geo.NewPoint(21.0345, 105.83)},
		{ID: "10km", Rating: 5, CategoryID: 2, Location: geo.NewPoint(21.12, 105.83)},
		{ID: "1.5km", Rating: 4.8, CategoryID: 9, Location: geo.NewPoint(21.0435, 105.83)},
	}

	tests := []struct {
		name    string
		filters Filters
		limit   int
		want    []string
	}{
		{
			name:    "default_radius_sorted_by_distance",
			filters: Filters{User: user},
			want:    []string{"0.5km", "1km", "1.5km"},
		},
		{
			name:    "limit_after_sort",
			filters: Filters{User: user},
			limit:   2,
			want:    []string{"0.5km", "1km"},
		},
		{
			name:    "explicit_radius",
			filters: Filters{User: user, RadiusKm: ptr(20.0)},
			want:    []string{"0.5km", "1km", "1.5km", "10km"},
		},
		{
			name:    "no_location_keeps_catalog_order",
			filters: Filters{},
			want:    []string{"1km", "0.5km", "10km", "1.5km"},
		},
		{
			name:    "shares_category_semantics",
			filters: Filters{Categories: []int{}},
			want:    []string{},
		},
		{
			name:    "shares_rating_semantics",
			filters: Filters{User: user, MinRating: ptr(4.0), MaxRating: ptr(5.0)},
			want:    []string{"0.5km", "1.5km"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			markers := adapter.FilterMarkers(restaurants, testCase.filters, testCase.limit)
			assert.Equal(t, testCase.want, markerIDs(markers))
		})
	}
}

func TestMapAdapter_MarkerDetails(t *testing.T) {
	adapter := NewMapAdapter(5)
	markers := adapter.FilterMarkers([]catalog.Restaurant{
		{ID: "x", CategoryID: 77, Location: geo.NewPoint(21.039, 105.83)},
	}, Filters{User: geo.NewPoint(21.03, 105.83)}, 0)

	require.Len(t, markers, 1)
	assert.Equal(t, "red", markers[0].PinColor)
	require.NotNil(t, markers[0].Distance)
	assert.Equal(t, 1.0, *markers[0].Distance)
	assert.Nil(t, markers[0].Score)
}

func TestMapAdapter_EffectiveFilters(t *testing.T) {
	adapter := NewMapAdapter(3)

	f := adapter.EffectiveFilters(Filters{User: geo.NewPoint(1, 1)})
	require.NotNil(t, f.RadiusKm)
	assert.Equal(t, 3.0, *f.RadiusKm)

	f = adapter.EffectiveFilters(Filters{})
	assert.Nil(t, f.RadiusKm)
}
