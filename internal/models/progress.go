package models

import "time"

// ProgressRecord tracks per-user, per-topic proficiency. ProficiencyScore is
// always round(100 * QuestionsCorrect / QuestionsAttempted) when attempted > 0.
type ProgressRecord struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	Topic              string     `json:"topic"`
	Subtopic           *string    `json:"subtopic,omitempty"`
	ProficiencyScore   int        `json:"proficiency_score"`
	QuestionsAttempted int        `json:"questions_attempted"`
	QuestionsCorrect   int        `json:"questions_correct"`
	LastPracticed      *time.Time `json:"last_practiced,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type QuizResult struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Topic         string    `json:"topic"`
	Question      string    `json:"question"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	CreatedAt     time.Time `json:"created_at"`
}

type SavedExplanation struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Topic       string    `json:"topic"`
	Explanation string    `json:"explanation"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

type SaveExplanationRequest struct {
	Topic       string   `json:"topic"`
	Explanation string   `json:"explanation"`
	Tags        []string `json:"tags,omitempty"`
}
