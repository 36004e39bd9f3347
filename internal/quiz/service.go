package quiz

import (
	"fmt"

	"github.com/learnmate/backend/internal/models"
)

// Question text is clipped before persistence, matching the quiz surface.
const maxStoredQuestionLen = 200

// ResultStore records graded answers and serves quiz history.
type ResultStore interface {
	// RecordQuizResult persists one graded answer and applies the
	// incremental proficiency update for (userID, topic). It returns the
	// topic's new proficiency score.
	RecordQuizResult(userID int64, topic, question, userAnswer, correctAnswer string, isCorrect bool) (int, error)
	QuizResults(userID int64, topic string) ([]models.QuizResult, error)
}

type Service struct {
	store ResultStore
}

func NewService(store ResultStore) *Service {
	return &Service{store: store}
}

// SubmitAnswer grades one answer and writes the result through the store.
func (s *Service) SubmitAnswer(userID int64, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	correct := IsCorrect(req.UserAnswer, req.CorrectAnswer)

	question := truncate(req.Question, maxStoredQuestionLen)

	proficiency, err := s.store.RecordQuizResult(userID, req.Topic, question, req.UserAnswer, req.CorrectAnswer, correct)
	if err != nil {
		return nil, fmt.Errorf("record quiz result: %w", err)
	}

	return &models.SubmitAnswerResponse{
		Correct:        correct,
		CorrectAnswer:  req.CorrectAnswer,
		NewProficiency: proficiency,
	}, nil
}

func (s *Service) Results(userID int64, topic string) ([]models.QuizResult, error) {
	return s.store.QuizResults(userID, topic)
}

// truncate limits s to at most n runes. Truncating by byte index could
// split a multi-byte rune and produce a string Postgres rejects.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
