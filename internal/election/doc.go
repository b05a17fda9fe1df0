// Package election defines the in-memory election dataset produced by
// ingestion and handed to the tally engine.
//
// A Dataset holds:
//   - Members: the set of normalized usercodes eligible to vote
//   - Votes: one ballot per normalized usercode
//   - Roles: the positions being elected, in file order
//
// The dataset is insert-only while ingestion runs and read-only once it has
// been handed downstream.
package election
