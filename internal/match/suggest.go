package match

import (
	"sort"
	"strings"

	"stv-ingest/internal/common"
)

const (
	// DefaultMinScore is the lowest similarity still worth suggesting.
	DefaultMinScore = 0.5
	// DefaultMaxSuggestions caps the suggestion list.
	DefaultMaxSuggestions = 3
)

// Candidate is a header name scored against a requested column name.
type Candidate struct {
	Header string
	Score  float64
}

// Rank scores every header against name, best first. Ties keep header order.
// A header whose normalized form contains the normalized name (or the other
// way round) scores at least DefaultMinScore, so "UC Username" is offered
// for "username".
func Rank(name string, headers []string) []Candidate {
	want := NormalizeHeader(name)
	candidates := make([]Candidate, 0, len(headers))

	for _, h := range headers {
		got := NormalizeHeader(h)
		score := Similarity(want, got)

		if want != "" && got != "" && (strings.Contains(got, want) || strings.Contains(want, got)) {
			score = max(score, DefaultMinScore)
		}

		candidates = append(candidates, Candidate{Header: h, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Suggest returns up to limit header names similar to name.
func Suggest(name string, headers []string, limit int) []string {
	var out []string

	for _, c := range Rank(name, headers) {
		if c.Score < DefaultMinScore {
			break
		}

		out = append(out, c.Header)
	}

	return common.Take(out, limit)
}
