package generator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/learnmate/backend/internal/config"
)

// NewFromConfig picks a generation backend once at startup: Gemini when a
// Google API key is configured, then Anthropic, then a local Ollama server.
// MOCK_GENERATOR=true short-circuits to canned output for development.
func NewFromConfig(ctx context.Context, cfg config.Config) (*Generator, error) {
	if cfg.MockGenerator {
		log.Println("Generator using mock data")
		return New(NewMockClient(), "mock"), nil
	}

	if cfg.GoogleAPIKey != "" {
		client, err := NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Failed to load Gemini: %v", err)
		} else {
			log.Printf("Generator using Google Gemini: %s", cfg.GeminiModel)
			return New(client, cfg.GeminiModel), nil
		}
	}

	if cfg.AnthropicAPIKey != "" {
		log.Printf("Generator using Anthropic API: %s", cfg.AnthropicModel)
		return New(NewAnthropicClient(cfg.AnthropicModel), cfg.AnthropicModel), nil
	}

	ollama := NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := ollama.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("no text generation backend available: %w", err)
	}
	log.Printf("Generator using Ollama: %s at %s", cfg.OllamaModel, cfg.OllamaURL)
	return New(ollama, cfg.OllamaModel), nil
}
