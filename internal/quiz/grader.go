package quiz

import "strings"

// IsCorrect compares a free-text user answer against the reference answer.
// The verdict is deliberately lenient: either string containing the other
// counts, as does any reference token longer than three characters appearing
// anywhere inside the user answer. Short partial overlaps can and do produce
// false positives; stricter grading would be a new, versioned policy, not a
// change to this one.
func IsCorrect(userAnswer, referenceAnswer string) bool {
	user := strings.ToLower(userAnswer)
	ref := strings.ToLower(referenceAnswer)

	if strings.Contains(ref, user) || strings.Contains(user, ref) {
		return true
	}

	for _, word := range strings.Fields(ref) {
		if len(word) > 3 && strings.Contains(user, word) {
			return true
		}
	}

	return false
}
