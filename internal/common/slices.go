package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Take returns at most n leading elements of s.
func Take[S ~[]E, E any](s S, n int) S {
	if n < 0 {
		n = 0
	}

	if len(s) <= n {
		return s
	}

	return s[:n]
}
