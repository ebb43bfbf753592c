package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"foodtour/rate-svc/internal/domain"
	"foodtour/rate-svc/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// UserHeader carries the caller's uid, set by the auth layer in front of
// the gateway.
const UserHeader = "X-User-ID"

var validate = validator.New()

type Handler struct {
	Reviews service.ReviewServiceInterface
}

func NewHandler(reviews service.ReviewServiceInterface) *Handler {
	return &Handler{Reviews: reviews}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/food/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/food/reviews/restaurant/{restaurantId}", h.getRestaurantReviews).Methods("GET")
	r.HandleFunc("/api/food/reviews/{reviewId}", h.deleteReview).Methods("DELETE")
	r.HandleFunc("/api/food/rating/{restaurantId}", h.getRating).Methods("GET")
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

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "rate-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req domain.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "target_id and a rating from 1 to 5 are required")
		return
	}

	review, err := h.Reviews.Create(r.Context(), uid, req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save review")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Review submitted",
		"review":  review,
	})
}

func (h *Handler) getRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	list, err := h.Reviews.ListRestaurantReviews(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load reviews")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"count":          len(list.Reviews),
		"reviews":        list.Reviews,
		"current_rating": list.CurrentRating,
	})
}

func (h *Handler) getRating(w http.ResponseWriter, r *http.Request) {
	rating, err := h.Reviews.Rating(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load rating")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "rating": rating})
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rating, err := h.Reviews.Delete(r.Context(), uid, mux.Vars(r)["reviewId"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReviewID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrReviewNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete review")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":               "Review deleted",
		"new_restaurant_rating": rating,
	})
}
