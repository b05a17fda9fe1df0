// Package ingest loads and validates the inputs of an STV count into an
// election.Dataset.
//
// Three loaders run in a fixed order against one dataset:
//  1. LoadMembers: roster CSV -> Dataset.Members
//  2. LoadVotes: ballot CSV -> Dataset.Votes
//  3. LoadRoles: roles JSON -> Dataset.Roles
//
// Run drives them, resolving each input's location through a
// config.Resolver just before the stage that needs it. The first failure
// aborts the run; the dataset is then partially filled and must be
// discarded. Ingest wraps Run and only returns a dataset on success.
//
// # Usercode rules
//
// The first data row of each CSV is a trust anchor: an empty value in the
// usercode column fails with ErrWrongColumn, any other value is accepted
// without a format check. Later roster rows that fail usercode.Valid are
// skipped. Later ballot rows are accepted as they are, unless
// Config.ValidateVoteIdentifiers asks for the roster policy.
package ingest
