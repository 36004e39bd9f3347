package quiz

import "testing"

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		reference string
		want      bool
	}{
		{"user answer inside reference", "paris", "The capital of France is Paris", true},
		{"reference inside user answer", "I believe the answer is recursion here", "recursion", true},
		{"case insensitive", "PARIS", "the capital is paris", true},
		{"exact match", "42", "42", true},
		{"shared long token", "it relates to photosynthesis somehow", "Plants use photosynthesis to make food", true},
		{"no overlap", "xyz", "completely unrelated answer", false},
		{"only short tokens shared", "it is the one", "that is one of them", false},
		{"short token not matched as substring", "cat", "the cat sat", true}, // containment, not token rule
		{"token rule needs length above three", "bird", "a bird flew by", true},
		{"three letter token ignored", "the cat", "the dog", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCorrect(tt.user, tt.reference); got != tt.want {
				t.Errorf("IsCorrect(%q, %q) = %v, want %v", tt.user, tt.reference, got, tt.want)
			}
		})
	}
}

func TestIsCorrect_SubstringNotWholeWord(t *testing.T) {
	// The token rule uses substring containment, not word boundaries. A
	// reference token appearing inside a longer user word still matches.
	if !IsCorrect("discussing classification today", "class inheritance") {
		t.Error("token 'class' should match inside 'classification'")
	}
}

func TestIsCorrect_KnownFalsePositive(t *testing.T) {
	// Documents the accepted leniency: short partial overlaps grade as
	// correct. This behavior is load-bearing for existing stored results.
	if !IsCorrect("tree", "a binary tree structure") {
		t.Error("lenient heuristic should accept partial answer")
	}
	if !IsCorrect("completely wrong but mentions structure", "a binary tree structure") {
		t.Error("lenient heuristic accepts any shared long token")
	}
}
