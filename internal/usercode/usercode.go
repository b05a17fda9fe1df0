package usercode

import (
	"regexp"
	"strings"
)

// Pattern is the usercode format, matched as a prefix.
const Pattern = "[a-zA-Z]{3,4}[0-9]{2,3}"

var prefixRe = regexp.MustCompile("^" + Pattern)

// Check reports whether value is a string that starts with a valid usercode.
// Values of any other type, including numbers, are never valid.
func Check(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	return Valid(s)
}

// Valid reports whether s starts with a valid usercode.
func Valid(s string) bool {
	return prefixRe.MatchString(s)
}

// Normalize returns the canonical (lowercase) form of a usercode.
// It does not trim or validate.
func Normalize(s string) string {
	return strings.ToLower(s)
}
