// Package usercode decides whether a value is a syntactically valid voter
// usercode and puts usercodes into their canonical form.
//
// A usercode is three or four letters followed by two or three digits,
// for example "abc123" or "abcd12". Letters are case-insensitive and the
// canonical form is lowercase.
//
// Matching is anchored at the start of the string only:
//   - "abc123 " is valid (trailing content after a valid prefix is ignored)
//   - " abc123" is not (leading whitespace breaks the prefix)
//   - "abc 123" is not
package usercode
