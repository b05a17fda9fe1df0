// Package config resolves where the election inputs live and which CSV
// columns hold usercodes.
//
// Values come from three layers, lowest priority first:
//  1. Built-in defaults (members.csv, votes.csv, roles.json and the
//     column labels of the standard membership and ballot exports)
//  2. An optional YAML config file
//  3. Command-line flags
//
// The merged values are then offered as defaults to a Resolver, which either
// accepts them as they are (Defaults) or asks a person (Prompter).
//
// # Config file
//
//	version: "1"
//	members:
//	  path: members.csv
//	  column: UC Username
//	votes: votes.csv          # scalar shorthand for {path: votes.csv}
//	roles: roles.json
//	validate_vote_identifiers: false
package config
