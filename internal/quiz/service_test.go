package quiz

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/learnmate/backend/internal/models"
)

type fakeResultStore struct {
	lastTopic    string
	lastQuestion string
	lastCorrect  bool
	proficiency  int
}

func (f *fakeResultStore) RecordQuizResult(userID int64, topic, question, userAnswer, correctAnswer string, isCorrect bool) (int, error) {
	f.lastTopic = topic
	f.lastQuestion = question
	f.lastCorrect = isCorrect
	return f.proficiency, nil
}

func (f *fakeResultStore) QuizResults(userID int64, topic string) ([]models.QuizResult, error) {
	return nil, nil
}

func TestSubmitAnswer_GradesAndRecords(t *testing.T) {
	store := &fakeResultStore{proficiency: 100}
	svc := NewService(store)

	resp, err := svc.SubmitAnswer(1, models.SubmitAnswerRequest{
		Topic:         "geography",
		Question:      "Q1: What is the capital of France?",
		UserAnswer:    "paris",
		CorrectAnswer: "The capital of France is Paris",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Correct {
		t.Error("substring answer should grade correct")
	}
	if !store.lastCorrect {
		t.Error("verdict should be written through to the store")
	}
	if resp.NewProficiency != 100 {
		t.Errorf("new proficiency = %d, want store value 100", resp.NewProficiency)
	}
}

func TestSubmitAnswer_TruncatesStoredQuestion(t *testing.T) {
	store := &fakeResultStore{}
	svc := NewService(store)

	long := "Q1: " + strings.Repeat("q", 400)
	_, err := svc.SubmitAnswer(1, models.SubmitAnswerRequest{
		Topic:         "t",
		Question:      long,
		UserAnswer:    "a",
		CorrectAnswer: "b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if utf8.RuneCountInString(store.lastQuestion) != maxStoredQuestionLen {
		t.Errorf("stored question length = %d runes, want %d", utf8.RuneCountInString(store.lastQuestion), maxStoredQuestionLen)
	}
}

func TestSubmitAnswer_TruncationKeepsValidUTF8(t *testing.T) {
	store := &fakeResultStore{}
	svc := NewService(store)

	// A multi-byte rune straddling the truncation boundary must not be
	// split; Postgres rejects invalid UTF-8 outright.
	question := strings.Repeat("q", maxStoredQuestionLen-1) + "ééé"
	_, err := svc.SubmitAnswer(1, models.SubmitAnswerRequest{
		Topic:         "t",
		Question:      question,
		UserAnswer:    "a",
		CorrectAnswer: "b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !utf8.ValidString(store.lastQuestion) {
		t.Errorf("stored question is not valid UTF-8: %q", store.lastQuestion)
	}
	if utf8.RuneCountInString(store.lastQuestion) != maxStoredQuestionLen {
		t.Errorf("stored question length = %d runes, want %d", utf8.RuneCountInString(store.lastQuestion), maxStoredQuestionLen)
	}
	if !strings.HasSuffix(store.lastQuestion, "é") {
		t.Errorf("stored question should end on a whole rune, got %q", store.lastQuestion[len(store.lastQuestion)-4:])
	}
}
