package models

import "time"

// Material is a unit of indexed learning content.
type Material struct {
	ID          int64     `json:"id"`
	Topic       string    `json:"topic"`
	Subtopic    *string   `json:"subtopic,omitempty"`
	Difficulty  string    `json:"difficulty"`
	ContentType string    `json:"content_type"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// SearchResult pairs matched material content with its metadata and a
// relevance score in [0, 1].
type SearchResult struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
	Score    float64           `json:"score"`
}

type AddMaterialRequest struct {
	Topic       string   `json:"topic"`
	Subtopic    string   `json:"subtopic,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	ContentType string   `json:"content_type,omitempty"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags,omitempty"`
}
