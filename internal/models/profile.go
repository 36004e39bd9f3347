package models

import "time"

type LearningStyle string

const (
	StyleVisual         LearningStyle = "visual"
	StyleAuditory       LearningStyle = "auditory"
	StyleReadingWriting LearningStyle = "reading_writing"
	StyleKinesthetic    LearningStyle = "kinesthetic"
)

var ValidLearningStyles = map[LearningStyle]bool{
	StyleVisual:         true,
	StyleAuditory:       true,
	StyleReadingWriting: true,
	StyleKinesthetic:    true,
}

type KnowledgeLevel string

const (
	LevelBeginner     KnowledgeLevel = "beginner"
	LevelIntermediate KnowledgeLevel = "intermediate"
	LevelAdvanced     KnowledgeLevel = "advanced"
)

var ValidKnowledgeLevels = map[KnowledgeLevel]bool{
	LevelBeginner:     true,
	LevelIntermediate: true,
	LevelAdvanced:     true,
}

// UserProfile is immutable for the duration of a learning session.
// It is owned and mutated only by the profile package.
type UserProfile struct {
	UserID         int64          `json:"user_id"`
	LearningStyle  LearningStyle  `json:"learning_style"`
	KnowledgeLevel KnowledgeLevel `json:"knowledge_level"`
	Interests      []string       `json:"interests"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type UpdateProfileRequest struct {
	LearningStyle  *string   `json:"learning_style,omitempty"`
	KnowledgeLevel *string   `json:"knowledge_level,omitempty"`
	Interests      *[]string `json:"interests,omitempty"`
}
