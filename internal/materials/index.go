package materials

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/learnmate/backend/internal/models"
)

// SearchError is a material lookup fault. Empty results are not an error.
type SearchError struct {
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %q: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// Index ranks learning materials against a query by keyword overlap
// (Jaccard similarity over tokens longer than three characters). It is safe
// for concurrent use; Reload swaps the whole entry set atomically.
type Index struct {
	mu      sync.RWMutex
	entries []indexEntry
}

type indexEntry struct {
	material models.Material
	tokens   map[string]bool
}

func NewIndex() *Index {
	return &Index{}
}

// Reload replaces the index contents.
func (ix *Index) Reload(mats []models.Material) {
	entries := make([]indexEntry, 0, len(mats))
	for _, m := range mats {
		entries = append(entries, newEntry(m))
	}

	ix.mu.Lock()
	ix.entries = entries
	ix.mu.Unlock()
}

// Add indexes one material.
func (ix *Index) Add(m models.Material) {
	entry := newEntry(m)

	ix.mu.Lock()
	ix.entries = append(ix.entries, entry)
	ix.mu.Unlock()
}

func newEntry(m models.Material) indexEntry {
	// Topic, subtopic, and tags weigh into the match alongside the content.
	text := m.Topic + " " + m.Content + " " + strings.Join(m.Tags, " ")
	if m.Subtopic != nil {
		text += " " + *m.Subtopic
	}
	return indexEntry{material: m, tokens: tokenize(text)}
}

// Len reports how many materials are indexed.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Search returns the k best-matching materials for the query, best first.
// Optional filters (topic, difficulty, content_type) must match exactly.
// Materials with no keyword overlap are excluded.
func (ix *Index) Search(query string, filters map[string]string, k int) ([]models.SearchResult, error) {
	if k <= 0 {
		return nil, &SearchError{Query: query, Err: fmt.Errorf("k must be positive, got %d", k)}
	}

	queryTokens := tokenize(query)

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var results []models.SearchResult
	for _, entry := range ix.entries {
		if !matchesFilters(entry.material, filters) {
			continue
		}
		score := jaccardSimilarity(queryTokens, entry.tokens)
		if score == 0 {
			continue
		}
		results = append(results, models.SearchResult{
			Content:  entry.material.Content,
			Metadata: metadataFor(entry.material),
			Score:    score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func matchesFilters(m models.Material, filters map[string]string) bool {
	for key, want := range filters {
		if want == "" {
			continue
		}
		var got string
		switch key {
		case "topic":
			got = m.Topic
		case "difficulty":
			got = m.Difficulty
		case "content_type":
			got = m.ContentType
		default:
			return false
		}
		if !strings.EqualFold(got, want) {
			return false
		}
	}
	return true
}

func metadataFor(m models.Material) map[string]string {
	meta := map[string]string{
		"topic":        m.Topic,
		"difficulty":   m.Difficulty,
		"content_type": m.ContentType,
		"tags":         strings.Join(m.Tags, ","),
	}
	if m.Subtopic != nil {
		meta["subtopic"] = *m.Subtopic
	}
	return meta
}

// tokenize lowercases and splits text, keeping words longer than three
// characters so articles and prepositions don't dominate the match.
func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if len(word) > 3 {
			tokens[word] = true
		}
	}
	return tokens
}

func jaccardSimilarity(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}
