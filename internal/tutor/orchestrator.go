package tutor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/learnmate/backend/internal/models"
)

const (
	defaultProficiency   = 50
	defaultQuestionCount = 3
	searchResultCount    = 3
)

// ContentGenerator is the text-generation port the pipeline drives.
type ContentGenerator interface {
	ExplainConcept(ctx context.Context, query string, profile models.UserProfile) (string, error)
	GenerateQuestions(ctx context.Context, topic, explanation string, proficiencyLevel, numQuestions int) (string, error)
	RecommendPath(ctx context.Context, currentTopic string, profile models.UserProfile, progressSummary string, availableResources []string) (string, error)
}

// MaterialSearcher finds relevant learning materials for a query.
type MaterialSearcher interface {
	Search(query string, filters map[string]string, k int) ([]models.SearchResult, error)
}

// SessionStore persists session summaries and supplies proficiency history.
type SessionStore interface {
	GetProgress(userID int64) ([]models.ProgressRecord, error)
	SaveSession(userID int64, topic, subtopic string, summary models.SessionSummary) error
}

// Orchestrator runs one learning session as a fixed four-stage pipeline:
// explain, generate questions, recommend a path, summarize. Every stage
// failure is masked with a deterministic fallback, so Run never fails.
type Orchestrator struct {
	gen   ContentGenerator
	index MaterialSearcher
	store SessionStore
}

func NewOrchestrator(gen ContentGenerator, index MaterialSearcher, store SessionStore) *Orchestrator {
	return &Orchestrator{gen: gen, index: index, store: store}
}

// sessionState threads the pipeline left to right. Each stage receives the
// state by value and returns a copy with one more field populated.
type sessionState struct {
	query        string
	userID       int64
	profile      models.UserProfile
	explanation  string
	questions    string
	learningPath string
	summary      models.SessionSummary
}

// SessionResult is what the caller gets back: always fully populated,
// possibly with fallback text in place of generated content.
type SessionResult struct {
	Explanation  string                `json:"explanation"`
	Questions    string                `json:"questions"`
	LearningPath string                `json:"learning_path"`
	Summary      models.SessionSummary `json:"summary"`
}

// Run executes a complete learning session for one query. It never returns
// an error: stage failures degrade to fallback content, and a persistence
// failure degrades the whole result.
func (o *Orchestrator) Run(ctx context.Context, query string, userID int64, profile models.UserProfile) *SessionResult {
	state := sessionState{query: query, userID: userID, profile: profile}

	state = o.explainStage(ctx, state)
	state = o.questionStage(ctx, state)
	state = o.pathStage(ctx, state)
	state = summaryStage(state)

	if err := o.store.SaveSession(userID, query, "General", state.summary); err != nil {
		log.Printf("Error in orchestration: %v", err)
		return o.degradedResult(ctx, query, profile, err)
	}

	return &SessionResult{
		Explanation:  state.explanation,
		Questions:    state.questions,
		LearningPath: state.learningPath,
		Summary:      state.summary,
	}
}

// Stage 1: concept explanation.
func (o *Orchestrator) explainStage(ctx context.Context, state sessionState) sessionState {
	log.Printf("Stage 1: generating explanation for %s", state.query)

	explanation, err := o.gen.ExplainConcept(ctx, state.query, state.profile)
	if err != nil {
		log.Printf("Error generating explanation: %v", err)
		explanation = fallbackExplanation(state.query, err)
	}

	state.explanation = explanation
	return state
}

// Stage 2: practice questions, calibrated to historical proficiency.
func (o *Orchestrator) questionStage(ctx context.Context, state sessionState) sessionState {
	log.Printf("Stage 2: generating questions for %s", state.query)

	proficiency := defaultProficiency
	progress, err := o.store.GetProgress(state.userID)
	if err != nil {
		log.Printf("Error loading progress for user %d: %v", state.userID, err)
	} else {
		queryLower := strings.ToLower(state.query)
		for _, record := range progress {
			if strings.Contains(queryLower, strings.ToLower(record.Topic)) {
				proficiency = record.ProficiencyScore
				break
			}
		}
	}

	questions, err := o.gen.GenerateQuestions(ctx, state.query, state.explanation, proficiency, defaultQuestionCount)
	if err != nil {
		log.Printf("Error generating questions: %v", err)
		questions = fallbackQuestions(state.query, err)
	}

	state.questions = questions
	return state
}

// Stage 3: learning path from the material index.
func (o *Orchestrator) pathStage(ctx context.Context, state sessionState) sessionState {
	log.Printf("Stage 3: generating learning path for %s", state.query)

	resources := o.findResources(state.query)

	path, err := o.gen.RecommendPath(ctx, state.query, state.profile, "Starting new learning topic", resources)
	if err != nil {
		log.Printf("Error generating learning path: %v", err)
		path = fallbackLearningPath(state.query, err)
	}

	state.learningPath = path
	return state
}

func (o *Orchestrator) findResources(query string) []string {
	results, err := o.index.Search(query, nil, searchResultCount)
	if err != nil {
		log.Printf("Error searching materials: %v", err)
	}
	if err != nil || len(results) == 0 {
		return []string{"Basic learning materials", "Online tutorials", "Practice exercises"}
	}

	resources := make([]string, 0, len(results))
	for _, r := range results {
		topic := r.Metadata["topic"]
		if topic == "" {
			topic = "Resource"
		}
		resources = append(resources, fmt.Sprintf("%s: %s...", topic, truncate(r.Content, 100)))
	}
	return resources
}

// Stage 4: session summary. QuestionsGenerated deliberately counts raw "Q"
// characters in the questions text; it is a marker, not a parsed count.
func summaryStage(state sessionState) sessionState {
	log.Print("Stage 4: creating session summary")

	state.summary = models.SessionSummary{
		Query:              state.query,
		ExplanationLength:  utf8.RuneCountInString(state.explanation),
		QuestionsGenerated: strings.Count(state.questions, "Q"),
		HasLearningPath:    state.learningPath != "",
		Timestamp:          time.Now(),
		LearningStyle:      state.profile.LearningStyle,
		KnowledgeLevel:     state.profile.KnowledgeLevel,
	}
	return state
}

// degradedResult is the orchestration-level failure path: re-attempt the
// explanation alone and return literal error text for the other fields.
func (o *Orchestrator) degradedResult(ctx context.Context, query string, profile models.UserProfile, cause error) *SessionResult {
	explanation, err := o.gen.ExplainConcept(ctx, query, profile)
	if err != nil {
		explanation = fallbackExplanation(query, err)
	}

	return &SessionResult{
		Explanation:  explanation,
		Questions:    "Error generating questions. Please try again.",
		LearningPath: "Error generating learning path.",
		Summary: models.SessionSummary{
			Query: query,
			Error: cause.Error(),
		},
	}
}
