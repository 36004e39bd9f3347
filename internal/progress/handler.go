package progress

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/learnmate/backend/internal/models"
)

const defaultSessionLimit = 10

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// GetProgress handles GET /progress.
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	records, err := h.store.GetProgress(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load progress"})
		return
	}
	if records == nil {
		records = []models.ProgressRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

// RecentSessions handles GET /sessions?limit=.
func (h *Handler) RecentSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	limit := defaultSessionLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	sessions, err := h.store.RecentSessions(userID, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load sessions"})
		return
	}
	if sessions == nil {
		sessions = []models.LearningSession{}
	}

	writeJSON(w, http.StatusOK, sessions)
}

// SaveExplanation handles POST /explanations.
func (h *Handler) SaveExplanation(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SaveExplanationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" || strings.TrimSpace(req.Explanation) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic and explanation are required"})
		return
	}

	if err := h.store.SaveExplanation(userID, req.Topic, req.Explanation, req.Tags); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save explanation"})
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// SavedExplanations handles GET /explanations.
func (h *Handler) SavedExplanations(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	explanations, err := h.store.SavedExplanations(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load explanations"})
		return
	}
	if explanations == nil {
		explanations = []models.SavedExplanation{}
	}

	writeJSON(w, http.StatusOK, explanations)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
