package match

import (
	"strings"
	"unicode"
)

// NormalizeHeader folds a column name for comparison:
//   - "UC Username" -> "ucusername"
//   - "uc_username" -> "ucusername"
//   - "What is your UC usercode (abc123)" -> "whatisyourucusercodeabc123"
func NormalizeHeader(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
