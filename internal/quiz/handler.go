package quiz

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/learnmate/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// SubmitAnswer handles POST /quiz/answer.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.UserAnswer) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Please enter an answer before checking"})
		return
	}
	if req.Topic == "" || req.Question == "" || req.CorrectAnswer == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic, question, and correct_answer are required"})
		return
	}

	resp, err := h.service.SubmitAnswer(userID, req)
	if err != nil {
		log.Printf("Error saving quiz result for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save quiz result"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Results handles GET /quiz/results?topic=.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	results, err := h.service.Results(userID, r.URL.Query().Get("topic"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load quiz results"})
		return
	}
	if results == nil {
		results = []models.QuizResult{}
	}

	writeJSON(w, http.StatusOK, results)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
