package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "foodtour/food-svc/internal/api/http"
	"foodtour/food-svc/internal/mocks"
	"foodtour/food-svc/internal/service"
	"foodtour/geo"
	"foodtour/search"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *mux.Router
	routes *mocks.RouteProvider
	qr     *mocks.QRGenerator
}

func newTestServer(t *testing.T) *testServer {
	cat := testCatalog()
	routes := mocks.NewRouteProvider(t)
	qr := mocks.NewQRGenerator(t)

	h := httpapi.NewHandler(
		service.NewRestaurantService(cat, qr),
		service.NewFoodService(cat),
		service.NewCategoryService(cat),
		service.NewSearchService(cat, search.NewEngine(search.DefaultWeights()), search.NewMapAdapter(search.DefaultMapRadiusKm)),
		service.NewRouteService(routes, 16),
	)
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return &testServer{router: r, routes: routes, qr: qr}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func placeIDs(body map[string]any) []string {
	places, _ := body["places"].([]any)
	ids := make([]string, 0, len(places))
	for _, p := range places {
		ids = append(ids, p.(map[string]any)["id"].(string))
	}
	return ids
}

func TestSearchHandler(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantIDs    []string
	}{
		{
			name:       "empty_body_lists_everything",
			body:       "",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"1", "2", "3", "4"},
		},
		{
			name:       "query_ranks_name_match_first",
			body:       `{"query": "phở"}`,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"1", "3", "2", "4"},
		},
		{
			name:       "radius_in_meters",
			body:       `{"lat": 21.0285, "lon": 105.8542, "radius": 1500}`,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"1", "3"},
		},
		{
			name:       "malformed_categories_ignored",
			body:       `{"categories": "soup"}`,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"1", "2", "3", "4"},
		},
		{
			name:       "empty_categories_match_nothing",
			body:       `{"categories": []}`,
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name:       "fractional_category_ids_match_nothing",
			body:       `{"categories": [1.5]}`,
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name:       "price_overlap",
			body:       `{"min_price": 100000}`,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"4"},
		},
		{
			name:       "non_numeric_rating_ignored",
			body:       `{"min_rating": "high", "tags": ["Chay"]}`,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"4"},
		},
		{
			name:       "invalid_json",
			body:       `{"query":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rr := srv.do(http.MethodPost, "/api/food/search", testCase.body)
			assert.Equal(t, testCase.wantStatus, rr.Code)

			body := decode(t, rr)
			if testCase.wantStatus != http.StatusOK {
				assert.Equal(t, false, body["success"])
				return
			}
			assert.Equal(t, true, body["success"])
			assert.Equal(t, float64(len(testCase.wantIDs)), body["total"])
			assert.Equal(t, testCase.wantIDs, placeIDs(body))
		})
	}
}

func TestSearchHandler_MarkerShape(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.do(http.MethodPost, "/api/food/search", `{"query": "phở", "lat": 21.0285, "lon": 105.8542}`)
	require.Equal(t, http.StatusOK, rr.Code)

	places := decode(t, rr)["places"].([]any)
	require.NotEmpty(t, places)
	first := places[0].(map[string]any)

	assert.Equal(t, "soup", first["dishType"])
	assert.Equal(t, "blue", first["pinColor"])
	assert.Equal(t, 21.017, first["position"].(map[string]any)["lat"])
	assert.Contains(t, first, "score")
	assert.Contains(t, first, "distance")
}

func TestMapFilterHandler(t *testing.T) {
	srv := newTestServer(t)

	t.Run("no_location", func(t *testing.T) {
		rr := srv.do(http.MethodPost, "/api/map/filter", `{}`)
		require.Equal(t, http.StatusOK, rr.Code)

		body := decode(t, rr)
		assert.Equal(t, []string{"1", "2", "3"}, placeIDs(body))

		applied := body["filters_applied"].(map[string]any)
		assert.Equal(t, false, applied["has_location"])
		assert.Nil(t, applied["radius_km"])
		assert.Equal(t, 0.0, applied["min_rating"])
		assert.Equal(t, 5.0, applied["max_rating"])
	})

	t.Run("default_radius_and_limit", func(t *testing.T) {
		rr := srv.do(http.MethodPost, "/api/map/filter", `{"lat": 21.0285, "lon": 105.8542, "limit": 1}`)
		require.Equal(t, http.StatusOK, rr.Code)

		body := decode(t, rr)
		assert.Equal(t, []string{"3"}, placeIDs(body))

		applied := body["filters_applied"].(map[string]any)
		assert.Equal(t, true, applied["has_location"])
		assert.Equal(t, 2.0, applied["radius_km"])
	})

	t.Run("half_location_is_ignored", func(t *testing.T) {
		rr := srv.do(http.MethodPost, "/api/map/filter", `{"lat": 21.0285}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, placeIDs(decode(t, rr)), 3)
	})
}

func TestGetRouteHandler(t *testing.T) {
	start := geo.Point{Lat: 21.0285, Lon: 105.8542}
	end := geo.Point{Lat: 21.0170, Lon: 105.8550}

	tests := []struct {
		name         string
		body         string
		prepareMocks func(p *mocks.RouteProvider)
		wantStatus   int
		wantPoints   float64
	}{
		{
			name: "success",
			body: `{"start_lat": 21.0285, "start_lon": 105.8542, "end_lat": 21.0170, "end_lon": 105.8550}`,
			prepareMocks: func(p *mocks.RouteProvider) {
				p.On("Route", mock.Anything, start, end).
					Return([]geo.Point{start, {Lat: 21.02, Lon: 105.855}, end}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantPoints: 3,
		},
		{
			name:         "missing_field",
			body:         `{"start_lat": 21.0285, "start_lon": 105.8542, "end_lat": 21.0170}`,
			prepareMocks: func(p *mocks.RouteProvider) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "not_a_number",
			body:         `{"start_lat": "north", "start_lon": 105.8542, "end_lat": 21.0170, "end_lon": 105.8550}`,
			prepareMocks: func(p *mocks.RouteProvider) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "latitude_out_of_range",
			body:         `{"start_lat": 121.0, "start_lon": 105.8542, "end_lat": 21.0170, "end_lon": 105.8550}`,
			prepareMocks: func(p *mocks.RouteProvider) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "same_endpoints",
			body:         `{"start_lat": 21.0285, "start_lon": 105.8542, "end_lat": 21.0285, "end_lon": 105.8542}`,
			prepareMocks: func(p *mocks.RouteProvider) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			srv := newTestServer(t)
			testCase.prepareMocks(srv.routes)

			rr := srv.do(http.MethodPost, "/api/map/get-route", testCase.body)
			assert.Equal(t, testCase.wantStatus, rr.Code)

			body := decode(t, rr)
			assert.Equal(t, testCase.wantStatus == http.StatusOK, body["success"])
			assert.NotNil(t, body["coordinates"])
			if testCase.wantStatus == http.StatusOK {
				assert.Equal(t, testCase.wantPoints, body["total_points"])
				first := body["coordinates"].([]any)[0].(map[string]any)
				assert.Equal(t, start.Lat, first["latitude"])
			}
		})
	}
}

func TestRestaurantHandlers(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCount  float64
	}{
		{name: "list", method: http.MethodGet, path: "/api/food/restaurants", wantStatus: http.StatusOK, wantCount: 4},
		{name: "text_search", method: http.MethodGet, path: "/api/food/restaurants/search?q=b%C3%A1nh", wantStatus: http.StatusOK, wantCount: 1},
		{name: "nearby", method: http.MethodGet, path: "/api/food/restaurants/nearby?latitude=21.0285&longitude=105.8542", wantStatus: http.StatusOK, wantCount: 2},
		{name: "nearby_small_radius", method: http.MethodGet, path: "/api/food/restaurants/nearby?latitude=21.0285&longitude=105.8542&radius=1200", wantStatus: http.StatusOK, wantCount: 1},
		{name: "nearby_missing_longitude", method: http.MethodGet, path: "/api/food/restaurants/nearby?latitude=21.0285", wantStatus: http.StatusBadRequest},
		{name: "nearby_bad_radius", method: http.MethodGet, path: "/api/food/restaurants/nearby?latitude=21.0285&longitude=105.8542&radius=far", wantStatus: http.StatusBadRequest},
		{name: "by_ids", method: http.MethodPost, path: "/api/food/restaurants/details-by-ids", body: `{"ids": [3, "1", "missing"]}`, wantStatus: http.StatusOK, wantCount: 2},
		{name: "by_ids_not_list", method: http.MethodPost, path: "/api/food/restaurants/details-by-ids", body: `{"ids": "1"}`, wantStatus: http.StatusBadRequest},
		{name: "by_category", method: http.MethodGet, path: "/api/food/restaurants/category/1", wantStatus: http.StatusOK, wantCount: 2},
		{name: "by_category_bad_id", method: http.MethodGet, path: "/api/food/restaurants/category/dry", wantStatus: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rr := srv.do(testCase.method, testCase.path, testCase.body)
			assert.Equal(t, testCase.wantStatus, rr.Code)

			body := decode(t, rr)
			if testCase.wantStatus == http.StatusOK {
				assert.Equal(t, testCase.wantCount, body["count"])
				assert.Len(t, body["restaurants"], int(testCase.wantCount))
			} else {
				assert.Equal(t, false, body["success"])
			}
		})
	}
}

func TestRestaurantDetailHandler(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.do(http.MethodGet, "/api/food/restaurants/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, "Phở Thìn Lò Đúc", body["name"])
	assert.Len(t, body["menu"], 2)

	rr = srv.do(http.MethodGet, "/api/food/restaurants/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRestaurantQRCodeHandler(t *testing.T) {
	srv := newTestServer(t)
	srv.qr.On("Generate", "2").Return([]byte("\x89PNG fake"), nil).Once()

	rr := srv.do(http.MethodGet, "/api/food/restaurants/2/qrcode", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG fake", rr.Body.String())

	rr = srv.do(http.MethodGet, "/api/food/restaurants/nope/qrcode", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestFoodAndCategoryHandlers(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		key        string
		wantLen    int
	}{
		{name: "foods", path: "/api/food/foods?limit=2", wantStatus: http.StatusOK, key: "foods", wantLen: 2},
		{name: "foods_search", path: "/api/food/foods/search?q=ph%E1%BB%9F", wantStatus: http.StatusOK, key: "foods", wantLen: 3},
		{name: "foods_by_restaurant", path: "/api/food/foods/restaurant/1", wantStatus: http.StatusOK, key: "foods", wantLen: 2},
		{name: "foods_by_category", path: "/api/food/foods/category/2", wantStatus: http.StatusOK, key: "foods", wantLen: 2},
		{name: "food_missing", path: "/api/food/foods/404", wantStatus: http.StatusNotFound},
		{name: "categories", path: "/api/food/categories", wantStatus: http.StatusOK, key: "categories", wantLen: 3},
		{name: "category_missing", path: "/api/food/categories/9", wantStatus: http.StatusNotFound},
		{name: "category_bad_id", path: "/api/food/categories/x", wantStatus: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rr := srv.do(http.MethodGet, testCase.path, "")
			assert.Equal(t, testCase.wantStatus, rr.Code)
			if testCase.key != "" {
				assert.Len(t, decode(t, rr)[testCase.key], testCase.wantLen)
			}
		})
	}

	rr := srv.do(http.MethodGet, "/api/food/foods/12", "")
	require.Equal(t, http.StatusOK, rr.Code)
	food := decode(t, rr)["food"].(map[string]any)
	assert.Equal(t, "Bún chả", food["dish_name"])
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "food-svc", body["service"])
}
