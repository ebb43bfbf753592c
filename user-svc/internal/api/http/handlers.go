package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"foodtour/user-svc/internal/domain"
	"foodtour/user-svc/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// UserHeader carries the caller's uid, set by the auth layer in front of
// the gateway.
const UserHeader = "X-User-ID"

var validate = validator.New()

type Handler struct {
	Users service.UserServiceInterface
}

func NewHandler(users service.UserServiceInterface) *Handler {
	return &Handler{Users: users}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api/user").Subrouter()
	api.Use(requireUser)
	api.HandleFunc("/profile", h.getProfile).Methods("GET")
	api.HandleFunc("/profile", h.updateProfile).Methods("PUT")
	api.HandleFunc("/favorite/toggle-restaurant", h.toggleFavorite).Methods("POST")
	api.HandleFunc("/favorite/view", h.viewFavorites).Methods("GET")
	api.HandleFunc("/favorite/restaurants", h.favoriteRestaurants).Methods("GET")
}

// requireUser rejects requests without a usable uid. The uid becomes a
// document path segment, so it may not contain a separator.
func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := userID(r)
		if uid == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if strings.Contains(uid, "/") {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func userID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(UserHeader))
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMissingRestaurantID):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("user request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "user-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Profile(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "OK", "user": user})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Users.UpdateProfile(r.Context(), userID(r), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Profile updated", "user": user})
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req domain.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.Users.ToggleFavorite(r.Context(), userID(r), string(req.RestaurantID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) viewFavorites(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	favorites, err := h.Users.Favorites(r.Context(), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user_id": uid, "favorites": favorites})
}

func (h *Handler) favoriteRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Users.FavoriteRestaurants(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"total":       len(restaurants),
		"restaurants": restaurants,
	})
}
