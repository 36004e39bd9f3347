package progress

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"

	"github.com/learnmate/backend/internal/models"
)

// Stored answer fields are clipped so one oversized payload cannot bloat
// the history tables.
const maxStoredFieldLen = 500

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Proficiency derives the score from correct/attempted counts:
// round(100 * correct / attempted), or 0 when nothing was attempted.
func Proficiency(correct, attempted int) int {
	if attempted <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(attempted)))
}

// GetProgress returns all progress records for a user, most recently
// practiced first.
func (s *Store) GetProgress(userID int64) ([]models.ProgressRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, topic, subtopic, proficiency_score,
		        questions_attempted, questions_correct, last_practiced, created_at
		 FROM learning_progress
		 WHERE user_id = $1
		 ORDER BY last_practiced DESC NULLS LAST`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		var rec models.ProgressRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Topic, &rec.Subtopic,
			&rec.ProficiencyScore, &rec.QuestionsAttempted, &rec.QuestionsCorrect,
			&rec.LastPracticed, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// UpdateProgress applies an incremental result to a user's topic counters.
// The conflict branch does its arithmetic in SQL, so concurrent updates to
// the same row serialize at the database. Returns the new proficiency.
func (s *Store) UpdateProgress(userID int64, topic string, correct, total int) (int, error) {
	var proficiency int
	err := s.db.QueryRow(
		`INSERT INTO learning_progress
		   (user_id, topic, proficiency_score, questions_attempted, questions_correct, last_practiced)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (user_id, topic) DO UPDATE SET
		   questions_attempted = learning_progress.questions_attempted + EXCLUDED.questions_attempted,
		   questions_correct   = learning_progress.questions_correct + EXCLUDED.questions_correct,
		   proficiency_score   = ROUND(100.0 * (learning_progress.questions_correct + EXCLUDED.questions_correct)
		                         / GREATEST(learning_progress.questions_attempted + EXCLUDED.questions_attempted, 1)),
		   last_practiced      = NOW()
		 RETURNING proficiency_score`,
		userID, topic, Proficiency(correct, total), total, correct,
	).Scan(&proficiency)
	if err != nil {
		return 0, fmt.Errorf("update progress: %w", err)
	}
	return proficiency, nil
}

// RecordQuizResult persists one graded answer and rolls it into the topic's
// proficiency counters. Returns the topic's new proficiency score.
func (s *Store) RecordQuizResult(userID int64, topic, question, userAnswer, correctAnswer string, isCorrect bool) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO quiz_results (user_id, topic, question, user_answer, correct_answer, is_correct)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, topic, clip(question), clip(userAnswer), clip(correctAnswer), isCorrect,
	)
	if err != nil {
		return 0, fmt.Errorf("save quiz result: %w", err)
	}

	correct := 0
	if isCorrect {
		correct = 1
	}
	return s.UpdateProgress(userID, topic, correct, 1)
}

// QuizResults returns a user's quiz history, optionally filtered by topic.
func (s *Store) QuizResults(userID int64, topic string) ([]models.QuizResult, error) {
	query := `SELECT id, user_id, topic, question, user_answer, correct_answer, is_correct, created_at
	          FROM quiz_results WHERE user_id = $1`
	args := []interface{}{userID}
	if topic != "" {
		query += ` AND topic = $2`
		args = append(args, topic)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("get quiz results: %w", err)
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var qr models.QuizResult
		if err := rows.Scan(&qr.ID, &qr.UserID, &qr.Topic, &qr.Question,
			&qr.UserAnswer, &qr.CorrectAnswer, &qr.IsCorrect, &qr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		results = append(results, qr)
	}
	return results, rows.Err()
}

// SaveSession persists a completed session's summary as JSONB.
func (s *Store) SaveSession(userID int64, topic, subtopic string, summary models.SessionSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal session summary: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO learning_sessions (user_id, topic, subtopic, session_data)
		 VALUES ($1, $2, $3, $4)`,
		userID, topic, subtopic, data,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// RecentSessions returns a user's latest sessions, newest first.
func (s *Store) RecentSessions(userID int64, limit int) ([]models.LearningSession, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, topic, subtopic, session_data, created_at
		 FROM learning_sessions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get recent sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.LearningSession
	for rows.Next() {
		var sess models.LearningSession
		var data []byte
		if err := rows.Scan(&sess.ID, &sess.UserID, &sess.Topic, &sess.Subtopic, &data, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &sess.Summary); err != nil {
				return nil, fmt.Errorf("unmarshal session summary: %w", err)
			}
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// SaveExplanation stores a generated explanation the user chose to keep.
func (s *Store) SaveExplanation(userID int64, topic, explanation string, tags []string) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_explanations (user_id, topic, explanation, tags)
		 VALUES ($1, $2, $3, $4)`,
		userID, topic, explanation, string(data),
	)
	if err != nil {
		return fmt.Errorf("save explanation: %w", err)
	}
	return nil
}

// SavedExplanations returns a user's saved explanations, newest first.
func (s *Store) SavedExplanations(userID int64) ([]models.SavedExplanation, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, topic, explanation, tags, created_at
		 FROM saved_explanations
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get saved explanations: %w", err)
	}
	defer rows.Close()

	var explanations []models.SavedExplanation
	for rows.Next() {
		var exp models.SavedExplanation
		var tags sql.NullString
		if err := rows.Scan(&exp.ID, &exp.UserID, &exp.Topic, &exp.Explanation, &tags, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan saved explanation: %w", err)
		}
		if tags.Valid && tags.String != "" {
			if err := json.Unmarshal([]byte(tags.String), &exp.Tags); err != nil {
				return nil, fmt.Errorf("unmarshal tags: %w", err)
			}
		}
		explanations = append(explanations, exp)
	}
	return explanations, rows.Err()
}

// clip limits s to at most maxStoredFieldLen runes. Clipping by byte index
// could split a multi-byte rune and produce a string Postgres rejects.
func clip(s string) string {
	runes := []rune(s)
	if len(runes) > maxStoredFieldLen {
		return string(runes[:maxStoredFieldLen])
	}
	return s
}
