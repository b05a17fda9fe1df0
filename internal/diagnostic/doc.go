// Package diagnostic provides structured, non-fatal findings collected
// while ingesting election inputs.
//
// Fatal conditions are returned as errors by the loaders. Everything the
// loaders tolerate is recorded here instead:
//   - Roster rows skipped for a malformed usercode
//   - Duplicate roster entries collapsed by set semantics
//   - Ballots overwritten by a later row for the same voter
//   - First-row values accepted without a format check
package diagnostic
