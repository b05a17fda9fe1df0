// Package table gives named-column access to a headed CSV file.
//
// The dialect is fixed: comma delimiter, double-quote quoting, UTF-8 with an
// optional byte order mark, and a mandatory header row. Rows may be ragged;
// a missing trailing field reads as the empty string.
package table
