package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/learnmate/backend/internal/models"
)

func testProfile() models.UserProfile {
	return models.UserProfile{
		UserID:         1,
		LearningStyle:  models.StyleVisual,
		KnowledgeLevel: models.LevelBeginner,
		Interests:      []string{"music", "games"},
	}
}

func TestBuildExplainerUserPrompt(t *testing.T) {
	prompt := BuildExplainerUserPrompt("What is recursion?", testProfile())

	for _, want := range []string{"What is recursion?", "visual", "beginner", "music, games"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildQuestionUserPrompt(t *testing.T) {
	prompt := BuildQuestionUserPrompt("recursion", "Recursion is when a function calls itself.", 72, 3)

	for _, want := range []string{"recursion", "72", "Generate 3 questions"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPathUserPrompt(t *testing.T) {
	resources := []string{"Python Programming: Variables are containers...", "Web Development: HTML structures pages..."}
	prompt := BuildPathUserPrompt("recursion", testProfile(), "Starting new learning topic", resources)

	for _, want := range []string{"recursion", "Starting new learning topic", resources[0], resources[1]} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateQuestions_TruncatesExplanation(t *testing.T) {
	spy := &spyClient{}
	g := New(spy, "mock")

	long := strings.Repeat("x", 5000)
	if _, err := g.GenerateQuestions(context.Background(), "topic", long, 50, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(spy.lastUserPrompt, strings.Repeat("x", maxExplanationContext+1)) {
		t.Error("explanation context was not truncated")
	}
	if !strings.Contains(spy.lastUserPrompt, strings.Repeat("x", maxExplanationContext)) {
		t.Error("truncated explanation missing from prompt")
	}
}

func TestRecommendPath_CapsResources(t *testing.T) {
	spy := &spyClient{}
	g := New(spy, "mock")

	resources := []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"}
	if _, err := g.RecommendPath(context.Background(), "topic", testProfile(), "summary", resources); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(spy.lastUserPrompt, "r6") {
		t.Error("resource list was not capped at five entries")
	}
	if !strings.Contains(spy.lastUserPrompt, "r5") {
		t.Error("fifth resource missing from prompt")
	}
}

type spyClient struct {
	lastSystemPrompt string
	lastUserPrompt   string
}

func (s *spyClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*TextResponse, error) {
	s.lastSystemPrompt = systemPrompt
	s.lastUserPrompt = userPrompt
	return &TextResponse{Content: "ok"}, nil
}
