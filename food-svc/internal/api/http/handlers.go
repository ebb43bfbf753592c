package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodtour/food-svc/internal/domain"
	"foodtour/food-svc/internal/service"
	"foodtour/geo"
	"foodtour/search"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Foods       service.FoodServiceInterface
	Categories  service.CategoryServiceInterface
	Search      service.SearchServiceInterface
	Routes      service.RouteServiceInterface
}

func NewHandler(
	restaurants service.RestaurantServiceInterface,
	foods service.FoodServiceInterface,
	categories service.CategoryServiceInterface,
	searchSvc service.SearchServiceInterface,
	routes service.RouteServiceInterface,
) *Handler {
	return &Handler{
		Restaurants: restaurants,
		Foods:       foods,
		Categories:  categories,
		Search:      searchSvc,
		Routes:      routes,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/food/search", h.searchRestaurants).Methods("POST")
	r.HandleFunc("/api/map/filter", h.filterMap).Methods("POST")
	r.HandleFunc("/api/map/get-route", h.getRoute).Methods("POST")

	r.HandleFunc("/api/food/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/food/restaurants/search", h.searchRestaurantsByText).Methods("GET")
	r.HandleFunc("/api/food/restaurants/nearby", h.getNearbyRestaurants).Methods("GET")
	r.HandleFunc("/api/food/restaurants/details-by-ids", h.getRestaurantsByIDs).Methods("POST")
	r.HandleFunc("/api/food/restaurants/category/{categoryId}", h.getRestaurantsByCategory).Methods("GET")
	r.HandleFunc("/api/food/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/food/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")

	r.HandleFunc("/api/food/foods", h.getFoods).Methods("GET")
	r.HandleFunc("/api/food/foods/search", h.searchFoods).Methods("GET")
	r.HandleFunc("/api/food/foods/restaurant/{restaurantId}", h.getFoodsByRestaurant).Methods("GET")
	r.HandleFunc("/api/food/foods/category/{categoryId}", h.getFoodsByCategory).Methods("GET")
	r.HandleFunc("/api/food/foods/{id}", h.getFood).Methods("GET")

	r.HandleFunc("/api/food/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/food/categories/{id}", h.getCategory).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "food-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	results := h.Search.Search(optString(payload, "query"), filtersFromPayload(payload))
	places := search.Markers(results)
	writeJSON(w, http.StatusOK, domain.SearchResponse{
		Success: true,
		Total:   len(places),
		Places:  places,
	})
}

func (h *Handler) filterMap(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	filters := filtersFromPayload(payload)
	if filters.MinRating == nil {
		filters.MinRating = ptr(0.0)
	}
	if filters.MaxRating == nil {
		filters.MaxRating = ptr(5.0)
	}

	markers, applied := h.Search.FilterMarkers(filters, optLimit(payload))
	writeJSON(w, http.StatusOK, domain.MapFilterResponse{
		SearchResponse: domain.SearchResponse{
			Success: true,
			Total:   len(markers),
			Places:  markers,
		},
		FiltersApplied: domain.NewFiltersApplied(applied),
	})
}

func (h *Handler) getRoute(w http.ResponseWriter, r *http.Request) {
	var req domain.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.RouteResponse{Message: "Invalid coordinate format. Must be floats.", Coordinates: []geo.Point{}})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.RouteResponse{Message: err.Error(), Coordinates: []geo.Point{}})
		return
	}

	start := geo.Point{Lat: *req.StartLat, Lon: *req.StartLon}
	end := geo.Point{Lat: *req.EndLat, Lon: *req.EndLon}

	points, err := h.Routes.GetRoute(r.Context(), start, end)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrSameEndpoints), errors.Is(err, service.ErrNoRoute):
			status = http.StatusBadRequest
		case errors.Is(err, service.ErrRoutingUnavailable):
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, domain.RouteResponse{Message: err.Error(), Coordinates: []geo.Point{}})
		return
	}

	writeJSON(w, http.StatusOK, domain.RouteResponse{
		Success:     true,
		Message:     "Route calculated with " + strconv.Itoa(len(points)) + " points",
		Coordinates: points,
		TotalPoints: len(points),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants := h.Restaurants.List()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

func (h *Handler) searchRestaurantsByText(w http.ResponseWriter, r *http.Request) {
	restaurants := h.Restaurants.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

func (h *Handler) getNearbyRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("latitude") == "" || q.Get("longitude") == "" {
		writeError(w, http.StatusBadRequest, "Missing latitude or longitude")
		return
	}
	lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("longitude"), 64)
	center := geo.Point{Lat: lat, Lon: lon}
	if errLat != nil || errLon != nil || !center.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid parameters")
		return
	}

	// radius is in meters on this endpoint
	radius := service.DefaultNearbyRadiusMeters
	if raw := q.Get("radius"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid parameters")
			return
		}
		radius = v
	}

	restaurants := h.Restaurants.Nearby(center, radius)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

func (h *Handler) getRestaurantsByIDs(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	raw, ok := payload["ids"].([]any)
	if !ok {
		writeError(w, http.StatusBadRequest, "ids must be a list")
		return
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		switch t := v.(type) {
		case string:
			ids = append(ids, t)
		case json.Number:
			ids = append(ids, t.String())
		}
	}

	restaurants := h.Restaurants.ByIDs(ids)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

func (h *Handler) getRestaurantsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(mux.Vars(r)["categoryId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	restaurants := h.Restaurants.ByCategory(categoryID)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Restaurants.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Restaurants.QRCode(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getFoods(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultFoodLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	foods := h.Foods.List(limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(foods),
		"foods":   foods,
	})
}

func (h *Handler) searchFoods(w http.ResponseWriter, r *http.Request) {
	foods := h.Foods.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(foods),
		"foods":   foods,
	})
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	food, err := h.Foods.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Food not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "food": food})
}

func (h *Handler) getFoodsByRestaurant(w http.ResponseWriter, r *http.Request) {
	foods := h.Foods.ByRestaurant(mux.Vars(r)["restaurantId"])
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(foods),
		"foods":   foods,
	})
}

func (h *Handler) getFoodsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(mux.Vars(r)["categoryId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	foods := h.Foods.ByCategory(categoryID)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(foods),
		"foods":   foods,
	})
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.Categories.List()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"count":      len(categories),
		"categories": categories,
	})
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := h.Categories.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func ptr[T any](v T) *T { return &v }
