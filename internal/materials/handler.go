package materials

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/learnmate/backend/internal/models"
)

type Handler struct {
	service  *Service
	defaultK int
}

func NewHandler(service *Service, defaultK int) *Handler {
	if defaultK <= 0 {
		defaultK = 5
	}
	return &Handler{service: service, defaultK: defaultK}
}

// Search handles GET /materials/search?q=&k=&topic=&difficulty=&content_type=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "q is required"})
		return
	}

	k := h.defaultK
	if v := r.URL.Query().Get("k"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			k = n
		}
	}

	filters := map[string]string{}
	for _, key := range []string{"topic", "difficulty", "content_type"} {
		if v := r.URL.Query().Get(key); v != "" {
			filters[key] = v
		}
	}

	results, err := h.service.Search(query, filters, k)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Search failed"})
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	writeJSON(w, http.StatusOK, results)
}

// Add handles POST /materials.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	material, err := h.service.Add(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, material)
}

// Topics handles GET /materials/topics.
func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.Topics()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load topics"})
		return
	}
	if topics == nil {
		topics = []string{}
	}

	writeJSON(w, http.StatusOK, topics)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
