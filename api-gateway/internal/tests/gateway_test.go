package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodtour/api-gateway/internal/gateway"
	"foodtour/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() gateway.Config {
	return gateway.Config{
		FoodSvcURL:      "http://food-svc",
		RateSvcURL:      "http://rate-svc",
		UserSvcURL:      "http://user-svc",
		ChatSvcURL:      "http://chat-svc",
		AnalyticsSvcURL: "http://analytics-svc",
	}
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Upstream(t *testing.T) {
	gw := gateway.NewGateway(testConfig(), nil)

	tests := []struct {
		path     string
		expected string
	}{
		{path: "/api/food/reviews", expected: "http://rate-svc"},
		{path: "/api/food/reviews/restaurant/1", expected: "http://rate-svc"},
		{path: "/api/food/rating/1", expected: "http://rate-svc"},
		{path: "/api/food/search", expected: "http://food-svc"},
		{path: "/api/food/reviewsx", expected: "http://food-svc"},
		{path: "/api/map/filter", expected: "http://food-svc"},
		{path: "/api/user/profile", expected: "http://user-svc"},
		{path: "/api/chat", expected: "http://chat-svc"},
		{path: "/api/chat/history/abc", expected: "http://chat-svc"},
		{path: "/api/chatter", expected: ""},
		{path: "/api/analytics/top-rated", expected: "http://analytics-svc"},
		{path: "/api/unknown", expected: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			assert.Equal(t, testCase.expected, gw.Upstream(testCase.path))
		})
	}
}

func TestGateway_RouteHandler_Proxies(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"success":true,"restaurants":[{"name":"Phở Thìn"}]}`)),
		Header:     make(http.Header),
	}
	mockResp.Header.Set("Content-Type", "application/json")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://food-svc/api/food/restaurants/search?q=pho" &&
			req.Header.Get("X-User-ID") == "u1"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/food/restaurants/search?q=pho", nil)
	req.Header.Set("X-User-ID", "u1")
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Phở Thìn")
}

func TestGateway_RouteHandler_ReviewsRoute(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(strings.NewReader(`{"message":"created"}`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.Method == http.MethodPost &&
			req.URL.Host == "rate-svc" &&
			string(body) == `{"target_id":"1","rating":5}`
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/food/reviews", strings.NewReader(`{"target_id":"1","rating":5}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-rated", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_EndToEnd(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("ok"))
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.ChatSvcURL = upstream.URL + "/"
	gw := gateway.NewGateway(cfg, upstream.Client())

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/chat/status", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "/api/chat/status", gotPath)
	assert.Equal(t, "ok", rr.Body.String())
}
