// Package match ranks CSV header names against a requested column name so
// that a misconfigured column can be reported with useful suggestions.
//
// The scoring pipeline:
//  1. Normalize both names (case-fold, drop spaces and punctuation).
//  2. Compute rune-level Levenshtein similarity on the normalized forms.
//  3. Keep headers above a minimum score, best first.
//
// Matching never selects a column on its own; resolution of the column
// itself is exact.
package match
