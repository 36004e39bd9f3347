package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/learnmate/backend/internal/models"
)

// ── Stubs ───────────────────────────────────────────────

type stubGenerator struct {
	explainErr   error
	questionsErr error
	pathErr      error

	explainCalls    int
	lastProficiency int
	lastResources   []string
}

func (s *stubGenerator) ExplainConcept(ctx context.Context, query string, profile models.UserProfile) (string, error) {
	s.explainCalls++
	if s.explainErr != nil {
		return "", s.explainErr
	}
	return "## Explanation of " + query, nil
}

func (s *stubGenerator) GenerateQuestions(ctx context.Context, topic, explanation string, proficiencyLevel, numQuestions int) (string, error) {
	s.lastProficiency = proficiencyLevel
	if s.questionsErr != nil {
		return "", s.questionsErr
	}
	return "Q1: about " + topic + "?\nAnswer: yes\nQ2: more?\nAnswer: sure\nQ3: done?\nAnswer: almost", nil
}

func (s *stubGenerator) RecommendPath(ctx context.Context, currentTopic string, profile models.UserProfile, progressSummary string, availableResources []string) (string, error) {
	s.lastResources = availableResources
	if s.pathErr != nil {
		return "", s.pathErr
	}
	return "## Learning Path: " + currentTopic, nil
}

type stubIndex struct {
	results []models.SearchResult
	err     error
}

func (s *stubIndex) Search(query string, filters map[string]string, k int) ([]models.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

type stubStore struct {
	progress    []models.ProgressRecord
	progressErr error
	saveErr     error

	savedTopic    string
	savedSubtopic string
	savedSummary  models.SessionSummary
	saveCalls     int
}

func (s *stubStore) GetProgress(userID int64) ([]models.ProgressRecord, error) {
	return s.progress, s.progressErr
}

func (s *stubStore) SaveSession(userID int64, topic, subtopic string, summary models.SessionSummary) error {
	s.saveCalls++
	s.savedTopic = topic
	s.savedSubtopic = subtopic
	s.savedSummary = summary
	return s.saveErr
}

func newTestOrchestrator(gen *stubGenerator, index *stubIndex, store *stubStore) *Orchestrator {
	if gen == nil {
		gen = &stubGenerator{}
	}
	if index == nil {
		index = &stubIndex{}
	}
	if store == nil {
		store = &stubStore{}
	}
	return NewOrchestrator(gen, index, store)
}

func visualBeginner() models.UserProfile {
	return models.UserProfile{
		UserID:         7,
		LearningStyle:  models.StyleVisual,
		KnowledgeLevel: models.LevelBeginner,
		Interests:      []string{"math"},
	}
}

// ── Tests ───────────────────────────────────────────────

func TestRun_HappyPath(t *testing.T) {
	gen := &stubGenerator{}
	store := &stubStore{}
	o := newTestOrchestrator(gen, nil, store)

	result := o.Run(context.Background(), "recursion", 7, visualBeginner())

	if result.Explanation == "" || result.Questions == "" || result.LearningPath == "" {
		t.Fatal("all content fields must be populated")
	}
	if store.saveCalls != 1 {
		t.Errorf("session saved %d times, want exactly 1", store.saveCalls)
	}
	if store.savedTopic != "recursion" || store.savedSubtopic != "General" {
		t.Errorf("saved topic/subtopic = %q/%q", store.savedTopic, store.savedSubtopic)
	}

	sum := result.Summary
	if sum.Query != "recursion" {
		t.Errorf("summary query = %q", sum.Query)
	}
	if sum.ExplanationLength != utf8.RuneCountInString(result.Explanation) {
		t.Errorf("summary explanation length = %d, want %d", sum.ExplanationLength, utf8.RuneCountInString(result.Explanation))
	}
	if !sum.HasLearningPath {
		t.Error("summary should report a learning path")
	}
	if sum.Timestamp.IsZero() {
		t.Error("summary timestamp not set")
	}
	if sum.LearningStyle != models.StyleVisual || sum.KnowledgeLevel != models.LevelBeginner {
		t.Error("summary should carry the profile fields")
	}
}

func TestRun_ExplanationLengthCountsRunes(t *testing.T) {
	gen := &stubGenerator{}
	store := &stubStore{}
	o := newTestOrchestrator(gen, nil, store)

	result := o.Run(context.Background(), "récursion détaillée", 7, visualBeginner())

	want := utf8.RuneCountInString(result.Explanation)
	if result.Summary.ExplanationLength != want {
		t.Errorf("summary explanation length = %d, want %d runes", result.Summary.ExplanationLength, want)
	}
	// Character count, not byte count.
	if result.Summary.ExplanationLength == len(result.Explanation) {
		t.Error("explanation length should differ from byte length for non-ASCII text")
	}
}

func TestRun_QuestionMarkerIsRawCharCount(t *testing.T) {
	gen := &stubGenerator{}
	store := &stubStore{}
	o := newTestOrchestrator(gen, nil, store)

	result := o.Run(context.Background(), "FAQ handling", 7, visualBeginner())

	// The marker counts every "Q" character in the questions text, including
	// ones inside the topic itself. That is the contract, not a bug.
	want := strings.Count(result.Questions, "Q")
	if result.Summary.QuestionsGenerated != want {
		t.Errorf("questions marker = %d, want raw Q count %d", result.Summary.QuestionsGenerated, want)
	}
	if want <= 3 {
		t.Fatalf("test input should contain more Q characters than questions, got %d", want)
	}
}

func TestRun_AllPortsFailing(t *testing.T) {
	gen := &stubGenerator{
		explainErr:   errors.New("model down"),
		questionsErr: errors.New("model down"),
		pathErr:      errors.New("model down"),
	}
	index := &stubIndex{err: errors.New("index down")}
	store := &stubStore{progressErr: errors.New("db down")}
	o := newTestOrchestrator(gen, index, store)

	result := o.Run(context.Background(), "resilience", 7, visualBeginner())

	if result.Explanation == "" || result.Questions == "" || result.LearningPath == "" {
		t.Fatal("fallback content must populate every field")
	}
	if !strings.Contains(result.Explanation, "resilience") {
		t.Error("fallback explanation should embed the query")
	}
	if !strings.Contains(result.Questions, "Q1:") {
		t.Error("fallback questions should be parseable")
	}
	if !result.Summary.HasLearningPath {
		t.Error("fallback path still counts as a learning path")
	}
}

func TestRun_ExplanationFallbackOnly(t *testing.T) {
	rootCause := errors.New("rate limited by provider")
	gen := &stubGenerator{explainErr: rootCause}
	o := newTestOrchestrator(gen, nil, &stubStore{})

	result := o.Run(context.Background(), "neural networks", 7, visualBeginner())

	if !strings.Contains(result.Explanation, "neural networks") {
		t.Error("fallback explanation should contain the query")
	}
	if !strings.Contains(result.Explanation, "rate limited") {
		t.Error("fallback explanation should contain the error detail")
	}
	// The other stages are unaffected.
	if strings.Contains(result.Questions, "Error") {
		t.Errorf("questions stage should succeed independently: %q", result.Questions)
	}
	if strings.Contains(result.LearningPath, "Error") {
		t.Errorf("path stage should succeed independently: %q", result.LearningPath)
	}
}

func TestRun_ErrorDetailTruncated(t *testing.T) {
	gen := &stubGenerator{explainErr: errors.New(strings.Repeat("e", 500))}
	o := newTestOrchestrator(gen, nil, &stubStore{})

	result := o.Run(context.Background(), "topic", 7, visualBeginner())

	if strings.Contains(result.Explanation, strings.Repeat("e", 101)) {
		t.Error("error detail should be clipped to 100 characters")
	}
	if !strings.Contains(result.Explanation, strings.Repeat("e", 100)) {
		t.Error("clipped error detail missing from fallback")
	}
}

func TestRun_ProficiencyFromMatchingTopic(t *testing.T) {
	gen := &stubGenerator{}
	store := &stubStore{
		progress: []models.ProgressRecord{
			{Topic: "Algebra", ProficiencyScore: 20},
			{Topic: "Python", ProficiencyScore: 85},
		},
	}
	o := newTestOrchestrator(gen, nil, store)

	// Topic match is case-insensitive substring of the query; first match wins.
	o.Run(context.Background(), "advanced PYTHON generators", 7, visualBeginner())
	if gen.lastProficiency != 85 {
		t.Errorf("proficiency = %d, want 85 from matching topic", gen.lastProficiency)
	}

	o.Run(context.Background(), "organic chemistry", 7, visualBeginner())
	if gen.lastProficiency != defaultProficiency {
		t.Errorf("proficiency = %d, want default %d when no topic matches", gen.lastProficiency, defaultProficiency)
	}
}

func TestRun_ResourcesFromIndex(t *testing.T) {
	gen := &stubGenerator{}
	index := &stubIndex{
		results: []models.SearchResult{
			{Content: strings.Repeat("a", 150), Metadata: map[string]string{"topic": "Python Programming"}},
			{Content: "short content", Metadata: map[string]string{}},
		},
	}
	o := newTestOrchestrator(gen, index, &stubStore{})

	o.Run(context.Background(), "python", 7, visualBeginner())

	if len(gen.lastResources) != 2 {
		t.Fatalf("resources = %d, want 2", len(gen.lastResources))
	}
	if gen.lastResources[0] != "Python Programming: "+strings.Repeat("a", 100)+"..." {
		t.Errorf("resource 0 = %q, want topic prefix and 100-char content clip", gen.lastResources[0])
	}
	if !strings.HasPrefix(gen.lastResources[1], "Resource: ") {
		t.Errorf("resource without topic metadata should use the generic label, got %q", gen.lastResources[1])
	}
}

func TestRun_PlaceholderResourcesWhenIndexEmpty(t *testing.T) {
	for name, index := range map[string]*stubIndex{
		"empty":  {results: nil},
		"failed": {err: errors.New("search unavailable")},
	} {
		t.Run(name, func(t *testing.T) {
			gen := &stubGenerator{}
			o := newTestOrchestrator(gen, index, &stubStore{})

			o.Run(context.Background(), "anything", 7, visualBeginner())

			if len(gen.lastResources) != 3 {
				t.Fatalf("placeholder resources = %d, want 3", len(gen.lastResources))
			}
			if gen.lastResources[0] != "Basic learning materials" {
				t.Errorf("unexpected placeholder: %q", gen.lastResources[0])
			}
		})
	}
}

func TestRun_DegradedResultOnSaveFailure(t *testing.T) {
	gen := &stubGenerator{}
	store := &stubStore{saveErr: errors.New("disk full")}
	o := newTestOrchestrator(gen, nil, store)

	result := o.Run(context.Background(), "persistence", 7, visualBeginner())

	if result.Summary.Error == "" || !strings.Contains(result.Summary.Error, "disk full") {
		t.Errorf("degraded summary should carry the cause, got %q", result.Summary.Error)
	}
	if result.Summary.Query != "persistence" {
		t.Errorf("degraded summary query = %q", result.Summary.Query)
	}
	if result.Questions != "Error generating questions. Please try again." {
		t.Errorf("degraded questions = %q", result.Questions)
	}
	if result.LearningPath != "Error generating learning path." {
		t.Errorf("degraded path = %q", result.LearningPath)
	}
	// Explanation is re-attempted for the degraded result.
	if gen.explainCalls != 2 {
		t.Errorf("explain called %d times, want 2 (pipeline + degraded retry)", gen.explainCalls)
	}
	if !strings.Contains(result.Explanation, "persistence") {
		t.Error("degraded explanation should still cover the query")
	}
}
