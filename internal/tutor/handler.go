package tutor

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/learnmate/backend/internal/generator"
	"github.com/learnmate/backend/internal/models"
)

// ProfileLoader supplies the caller's learning profile for a session.
type ProfileLoader interface {
	Get(userID int64) (models.UserProfile, error)
}

type Handler struct {
	orchestrator *Orchestrator
	profiles     ProfileLoader
}

func NewHandler(orchestrator *Orchestrator, profiles ProfileLoader) *Handler {
	return &Handler{orchestrator: orchestrator, profiles: profiles}
}

type learnResponse struct {
	Explanation     string                     `json:"explanation"`
	Questions       string                     `json:"questions"`
	ParsedQuestions []generator.ParsedQuestion `json:"parsed_questions"`
	LearningPath    string                     `json:"learning_path"`
	Summary         models.SessionSummary      `json:"summary"`
}

// RunSession handles POST /learn/session.
func (h *Handler) RunSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.LearnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "query is required"})
		return
	}

	profile, err := h.profiles.Get(userID)
	if err != nil {
		// A missing profile never blocks a session; fall back to defaults.
		log.Printf("Error loading profile for user %d: %v", userID, err)
		profile = models.UserProfile{
			UserID:         userID,
			LearningStyle:  models.StyleVisual,
			KnowledgeLevel: models.LevelBeginner,
		}
	}

	result := h.orchestrator.Run(r.Context(), req.Query, userID, profile)

	writeJSON(w, http.StatusOK, learnResponse{
		Explanation:     result.Explanation,
		Questions:       result.Questions,
		ParsedQuestions: generator.ParseQuestions(result.Questions),
		LearningPath:    result.LearningPath,
		Summary:         result.Summary,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
