package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"foodtour/geo"

	gobreaker "github.com/sony/gobreaker/v2"
)

const DefaultTomTomURL = "https://api.tomtom.com"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TomTomClient asks the TomTom Routing API for the fastest route between
// two points and flattens the legs into one coordinate list.
type TomTomClient struct {
	BaseURL string
	APIKey  string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker[[]geo.Point]
}

func NewTomTomClient(baseURL, apiKey string, client HTTPClient, breaker *gobreaker.CircuitBreaker[[]geo.Point]) *TomTomClient {
	if baseURL == "" {
		baseURL = DefaultTomTomURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &TomTomClient{BaseURL: baseURL, APIKey: apiKey, client: client, breaker: breaker}
}

type tomtomResponse struct {
	Routes []struct {
		Legs []struct {
			Points []geo.Point `json:"points"`
		} `json:"legs"`
	} `json:"routes"`
}

func (c *TomTomClient) Route(ctx context.Context, start, end geo.Point) ([]geo.Point, error) {
	if c.breaker == nil {
		return c.fetch(ctx, start, end)
	}
	return c.breaker.Execute(func() ([]geo.Point, error) {
		return c.fetch(ctx, start, end)
	})
}

func (c *TomTomClient) fetch(ctx context.Context, start, end geo.Point) ([]geo.Point, error) {
	endpoint := fmt.Sprintf("%s/routing/1/calculateRoute/%f,%f:%f,%f/json",
		c.BaseURL, start.Lat, start.Lon, end.Lat, end.Lon)
	query := url.Values{}
	query.Set("key", c.APIKey)
	query.Set("routeType", "fastest")
	query.Set("traffic", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tomtom request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tomtom returned status %d", resp.StatusCode)
	}

	var body tomtomResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode tomtom response: %w", err)
	}

	var points []geo.Point
	if len(body.Routes) > 0 {
		for _, leg := range body.Routes[0].Legs {
			points = append(points, leg.Points...)
		}
	}
	return points, nil
}
