package generator

import (
	"regexp"
	"strings"
)

// ParsedQuestion is one structured question extracted from generated text.
// Questions have no identity beyond their position in the returned slice.
type ParsedQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Question-start patterns, checked in priority order.
var (
	reQPrefix      = regexp.MustCompile(`^Q\d+:`)
	reQuestionWord = regexp.MustCompile(`^Question \d+:`)
	reNumbered     = regexp.MustCompile(`^\d+\.`)
	reOption       = regexp.MustCompile(`^[A-D]\)`)
)

func isQuestionStart(line string) bool {
	return reQPrefix.MatchString(line) ||
		reQuestionWord.MatchString(line) ||
		reNumbered.MatchString(line)
}

// ParseQuestions converts raw generated question text into structured
// records. It is a single-pass line scanner: a question accumulates options,
// an answer, and explanation lines until the next question-start line or end
// of input. It never fails; if nothing structured is recognized it returns a
// single synthetic reflection question.
func ParseQuestions(raw string) []ParsedQuestion {
	var questions []ParsedQuestion
	var current *ParsedQuestion
	var explanationLines []string
	collectingExplanation := false

	for _, rawLine := range strings.Split(raw, "\n") {
		line := strings.TrimSpace(rawLine)

		// Skip empty lines before any question has started.
		if line == "" && current == nil {
			continue
		}

		switch {
		case isQuestionStart(line):
			// Flush the previous question.
			if current != nil {
				if len(explanationLines) > 0 {
					current.Explanation = strings.Join(explanationLines, " ")
					explanationLines = nil
				}
				questions = append(questions, *current)
				collectingExplanation = false
			}
			current = &ParsedQuestion{Question: line, Options: []string{}}

		case line != "" && current != nil && reOption.MatchString(line):
			current.Options = append(current.Options, line)

		case strings.HasPrefix(line, "Answer:"):
			if current != nil {
				current.Answer = strings.TrimSpace(strings.TrimPrefix(line, "Answer:"))
			}

		case strings.HasPrefix(line, "Explanation:"):
			collectingExplanation = true
			explanationLines = []string{strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))}

		case collectingExplanation && current != nil:
			// Explanation collection runs until the next question or EOF.
			if line != "" {
				explanationLines = append(explanationLines, line)
			}
		}
	}

	// Flush the last question.
	if current != nil {
		if len(explanationLines) > 0 {
			current.Explanation = strings.Join(explanationLines, " ")
		}
		questions = append(questions, *current)
	}

	// Nothing structured found — fall back to a reflection prompt so the
	// quiz surface always has something to render.
	if len(questions) == 0 {
		questions = append(questions, ParsedQuestion{
			Question:    "What did you learn about this topic?",
			Options:     []string{},
			Answer:      "Reflect on the key concepts explained above.",
			Explanation: "This question helps reinforce your learning through reflection.",
		})
	}

	return questions
}
