package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	FoodSvcURL      string
	RateSvcURL      string
	UserSvcURL      string
	ChatSvcURL      string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("target", targetURL).Msg("proxy")

	url := strings.TrimSuffix(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to create upstream request")
		writeError(w, http.StatusInternalServerError, "failed to create upstream request")
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("target", targetURL).Msg("upstream unavailable")
		writeError(w, http.StatusBadGateway, "upstream service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Warn().Err(err).Msg("failed to copy upstream response")
	}
}

// Upstream returns the base URL serving path, or "" when no service owns it.
// Review and rating paths live under /api/food but belong to rate-svc, so
// they are checked first.
func (g *Gateway) Upstream(path string) string {
	switch {
	case hasSegmentPrefix(path, "/api/food/reviews"), strings.HasPrefix(path, "/api/food/rating/"):
		return g.config.RateSvcURL
	case strings.HasPrefix(path, "/api/food/"), strings.HasPrefix(path, "/api/map/"):
		return g.config.FoodSvcURL
	case hasSegmentPrefix(path, "/api/user"):
		return g.config.UserSvcURL
	case hasSegmentPrefix(path, "/api/chat"):
		return g.config.ChatSvcURL
	case strings.HasPrefix(path, "/api/analytics/"):
		return g.config.AnalyticsSvcURL
	}
	return ""
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target := g.Upstream(r.URL.Path)
	if target == "" {
		log.Info().Str("method", r.Method).Str("path", r.URL.Path).Msg("unmatched API route")
		writeError(w, http.StatusNotFound, "API route not found")
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}

func hasSegmentPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
