package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// TextClient is the interface every generation backend satisfies.
type TextClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*TextResponse, error)
}

// TextResponse holds the raw response content and token usage.
type TextResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// GenerationError wraps a model/provider fault with the template that failed.
type GenerationError struct {
	Template string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Template, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ── AnthropicClient — Claude API ───────────────────────────

type AnthropicClient struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicClient(model string) *AnthropicClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &AnthropicClient{client: &client, model: model}
}

func (c *AnthropicClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*TextResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   4096,
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &TextResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *AnthropicClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*TextResponse, error) {
	var content string
	switch {
	case strings.Contains(systemPrompt, "Question Generator"):
		content = mockQuestions()
	case strings.Contains(systemPrompt, "Learning Path"):
		content = mockLearningPath()
	default:
		content = mockExplanation()
	}
	return &TextResponse{
		Content:      content,
		PromptTokens: 400,
		OutputTokens: 800,
	}, nil
}

func mockExplanation() string {
	return `## Understanding the Topic

[Mock] Think of this concept like a set of building blocks: each piece is simple on its own, and the interesting behavior comes from how the pieces fit together.

**Key Points:**
- The core idea can be broken into a few manageable parts
- Each part builds on the previous one
- Concrete examples make the abstract parts easier to hold onto

**Next Steps:**
Work through the practice questions below, then explore a related topic.`
}

func mockQuestions() string {
	return `Q1: [Mock] Which statement best describes the core concept?

A) It is a fixed rule with no exceptions
B) It is a general principle that adapts to context
C) It only applies in theoretical settings
D) It cannot be broken into smaller parts

Answer: B) It is a general principle that adapts to context

Explanation: The concept is best understood as a flexible principle rather than a rigid rule.

Q2: [Mock] Describe one real-world situation where this concept applies.

Answer: Any scenario where the core principle shapes an outcome, described in your own words.

Explanation: Applying ideas to concrete situations is the fastest way to consolidate them.

Q3: [Mock] What would you investigate next to deepen your understanding?

Answer: A neighboring topic that builds on these fundamentals.

Explanation: Identifying the next step keeps the learning path moving forward.`
}

func mockLearningPath() string {
	return `## Learning Path

### Current Level Assessment
[Mock] You are at the start of this topic with a solid general foundation.

### Recommended Resources (in order):
1. Article: Core concepts primer - start here for the fundamentals
2. Tutorial: Guided practice - hands-on reinforcement
3. Exercise set: Applied problems - test retention

### Practice Schedule:
- Week 1: Fundamentals and terminology
- Week 2: Guided exercises
- Week 3: Independent practice
- Week 4: Review and extension

### Estimated Completion: 4 weeks`
}
