package models

import "time"

// SessionSummary is the durable record of one learning session. It is built
// once by the pipeline's final stage and persisted verbatim.
//
// QuestionsGenerated is a raw count of "Q" characters in the generated
// questions text, not a parsed question count. Existing dashboards read it,
// so the heuristic stays.
type SessionSummary struct {
	Query              string         `json:"query"`
	ExplanationLength  int            `json:"explanation_length"`
	QuestionsGenerated int            `json:"questions_generated"`
	HasLearningPath    bool           `json:"has_learning_path"`
	Timestamp          time.Time      `json:"timestamp"`
	LearningStyle      LearningStyle  `json:"learning_style,omitempty"`
	KnowledgeLevel     KnowledgeLevel `json:"knowledge_level,omitempty"`

	// Error is set only on the degraded-result path.
	Error string `json:"error,omitempty"`
}

// LearningSession is a persisted session row, summary included.
type LearningSession struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Topic     string         `json:"topic"`
	Subtopic  *string        `json:"subtopic,omitempty"`
	Summary   SessionSummary `json:"summary"`
	CreatedAt time.Time      `json:"created_at"`
}

type LearnRequest struct {
	Query string `json:"query"`
}
