package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodtour/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/analytics/top-rated", h.getTopRated).Methods("GET")
	r.HandleFunc("/api/analytics/trending-today", h.getTrendingToday).Methods("GET")
	r.HandleFunc("/api/analytics/restaurants/{restaurantId}/stats", h.getRestaurantStats).Methods("GET")
	r.HandleFunc("/api/analytics/restaurants/{restaurantId}/rating-distribution", h.getRatingDistribution).Methods("GET")
	r.HandleFunc("/api/analytics/rating-distribution", h.getGlobalRatingDistribution).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return service.DefaultLimit
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getTopRated(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopRated(r.Context(), limitParam(r))
	if err != nil {
		log.Error().Err(err).Msg("top-rated query failed")
		writeError(w, http.StatusInternalServerError, "failed to load top-rated restaurants")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": len(data), "restaurants": data})
}

func (h *Handler) getTrendingToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TrendingToday(r.Context(), limitParam(r))
	if err != nil {
		log.Error().Err(err).Msg("trending query failed")
		writeError(w, http.StatusInternalServerError, "failed to load trending restaurants")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": len(data), "restaurants": data})
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Analytics.RestaurantStats(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant stats not found")
			return
		}
		log.Error().Err(err).Msg("stats query failed")
		writeError(w, http.StatusInternalServerError, "failed to load restaurant stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.RatingDistribution(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		log.Error().Err(err).Msg("distribution query failed")
		writeError(w, http.StatusInternalServerError, "failed to load rating distribution")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getGlobalRatingDistribution(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.GlobalDistribution(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("distribution query failed")
		writeError(w, http.StatusInternalServerError, "failed to load rating distribution")
		return
	}
	writeJSON(w, http.StatusOK, data)
}
