package ingest

//go:generate go tool stringer -type=Stage -linecomment -output=stage_string.go

// Stage identifies one loader in a run.
type Stage int

const (
	_ Stage = iota // zero value is not a stage

	StageMembers // members
	StageVotes   // votes
	StageRoles   // roles
)
