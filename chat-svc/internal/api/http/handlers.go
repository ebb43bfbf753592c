package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodtour/chat-svc/internal/domain"
	"foodtour/chat-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	Chat service.ChatServiceInterface
}

func NewHandler(chat service.ChatServiceInterface) *Handler {
	return &Handler{Chat: chat}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/chat", h.chat).Methods("POST")
	r.HandleFunc("/api/chat/history/{conversationId}", h.history).Methods("GET")
	r.HandleFunc("/api/chat/status", h.status).Methods("GET")
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
		"service":   "chat-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.Chat.Chat(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCompletionTimeout):
			writeError(w, http.StatusGatewayTimeout, err.Error())
		case errors.Is(err, service.ErrCompletionUnavailable):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			log.Error().Err(err).Msg("chat failed")
			writeError(w, http.StatusInternalServerError, "chat failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["conversationId"]
	history, err := h.Chat.History(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("conversation_id", id).Msg("failed to load history")
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"conversation_id": id,
		"history":         history,
		"total_messages":  len(history),
	})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Chat.Status(r.Context()))
}
