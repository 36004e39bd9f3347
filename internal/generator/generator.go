package generator

import (
	"context"
	"log"

	"github.com/learnmate/backend/internal/models"
)

// Bounds applied before prompts are sent, to keep prompt size predictable.
const (
	maxExplanationContext = 1000
	maxResources          = 5
)

// Generator wraps a TextClient and exposes the three generation operations
// the session pipeline needs.
type Generator struct {
	llm   TextClient
	model string
}

func New(llm TextClient, model string) *Generator {
	return &Generator{llm: llm, model: model}
}

func (g *Generator) ModelName() string {
	return g.model
}

// ExplainConcept generates a tailored explanation for a topic query.
func (g *Generator) ExplainConcept(ctx context.Context, query string, profile models.UserProfile) (string, error) {
	log.Printf("Generating explanation for: %s", query)

	resp, err := g.llm.Generate(ctx, ExplainerSystemPrompt(), BuildExplainerUserPrompt(query, profile))
	if err != nil {
		return "", &GenerationError{Template: "explanation", Err: err}
	}
	return resp.Content, nil
}

// GenerateQuestions generates practice questions calibrated to the user's
// proficiency on the topic. The explanation context is truncated so the
// prompt stays bounded.
func (g *Generator) GenerateQuestions(ctx context.Context, topic, explanation string, proficiencyLevel, numQuestions int) (string, error) {
	log.Printf("Generating %d questions for: %s", numQuestions, topic)

	prompt := BuildQuestionUserPrompt(topic, truncate(explanation, maxExplanationContext), proficiencyLevel, numQuestions)
	resp, err := g.llm.Generate(ctx, QuestionSystemPrompt(), prompt)
	if err != nil {
		return "", &GenerationError{Template: "questions", Err: err}
	}
	return resp.Content, nil
}

// RecommendPath generates a personalized learning path from the available
// resources. At most five resources are included in the prompt.
func (g *Generator) RecommendPath(ctx context.Context, currentTopic string, profile models.UserProfile, progressSummary string, availableResources []string) (string, error) {
	log.Printf("Generating learning path for: %s", currentTopic)

	if len(availableResources) > maxResources {
		availableResources = availableResources[:maxResources]
	}
	prompt := BuildPathUserPrompt(currentTopic, profile, progressSummary, availableResources)
	resp, err := g.llm.Generate(ctx, PathSystemPrompt(), prompt)
	if err != nil {
		return "", &GenerationError{Template: "path", Err: err}
	}
	return resp.Content, nil
}

// truncate limits s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
