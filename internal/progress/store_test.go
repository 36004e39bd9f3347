package progress

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestProficiency(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		attempted int
		want      int
	}{
		{"nothing attempted", 0, 0, 0},
		{"first answer correct", 1, 1, 100},
		{"first answer wrong", 0, 1, 0},
		{"two of three", 2, 3, 67},
		{"one of three", 1, 3, 33},
		{"half", 5, 10, 50},
		{"rounds up at half", 1, 8, 13},
		{"all correct", 20, 20, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Proficiency(tt.correct, tt.attempted); got != tt.want {
				t.Errorf("Proficiency(%d, %d) = %d, want %d", tt.correct, tt.attempted, got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantRunes int
	}{
		{"short stays whole", "what is a variable?", 19},
		{"ascii at limit", strings.Repeat("a", maxStoredFieldLen), maxStoredFieldLen},
		{"ascii over limit", strings.Repeat("a", maxStoredFieldLen+50), maxStoredFieldLen},
		{"multi-byte rune at boundary", strings.Repeat("a", maxStoredFieldLen-1) + "ééé", maxStoredFieldLen},
		{"all multi-byte", strings.Repeat("é", maxStoredFieldLen+10), maxStoredFieldLen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clip(tt.in)
			if utf8.RuneCountInString(got) != tt.wantRunes {
				t.Errorf("clip length = %d runes, want %d", utf8.RuneCountInString(got), tt.wantRunes)
			}
			// A byte-index clip would split the rune at the boundary here;
			// the result must always be storable.
			if !utf8.ValidString(got) {
				t.Errorf("clip produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestProficiency_StaysInRange(t *testing.T) {
	for attempted := 0; attempted <= 25; attempted++ {
		for correct := 0; correct <= attempted; correct++ {
			got := Proficiency(correct, attempted)
			if got < 0 || got > 100 {
				t.Fatalf("Proficiency(%d, %d) = %d, out of [0, 100]", correct, attempted, got)
			}
		}
	}
}
