package election

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultSeats is the number of seats a role fills when the roles file
// does not say.
const DefaultSeats = 1

// Dataset is the aggregate filled by the loaders.
type Dataset struct {
	// Members is the set of normalized usercodes on the roster.
	Members map[string]struct{}
	// Votes maps a normalized usercode to that voter's ballot.
	Votes map[string]*Vote
	// Roles lists the positions being elected, in file order.
	Roles []Role
}

// NewDataset creates an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{
		Members: make(map[string]struct{}),
		Votes:   make(map[string]*Vote),
	}
}

// AddMember inserts a normalized usercode and reports whether it was new.
func (d *Dataset) AddMember(id string) bool {
	if _, ok := d.Members[id]; ok {
		return false
	}

	d.Members[id] = struct{}{}

	return true
}

// HasMember reports whether id is on the roster.
func (d *Dataset) HasMember(id string) bool {
	_, ok := d.Members[id]
	return ok
}

// MemberList returns the members in sorted order.
func (d *Dataset) MemberList() []string {
	return slices.Sorted(maps.Keys(d.Members))
}

// PutVote stores v under its voter, returning the ballot it replaced (if any).
func (d *Dataset) PutVote(v *Vote) *Vote {
	prev := d.Votes[v.Voter]
	d.Votes[v.Voter] = v

	return prev
}

// Voters returns the usercodes that have a ballot, in sorted order.
func (d *Dataset) Voters() []string {
	return slices.Sorted(maps.Keys(d.Votes))
}

// Vote is a single ballot.
type Vote struct {
	// Voter is the normalized usercode that cast the ballot.
	Voter string
	// Row is the 1-based data row the ballot was read from.
	Row int
	// Fields holds the raw ballot row keyed by header name. Preferences are
	// parsed by the tally engine, not here.
	Fields map[string]string
}

// NewVote creates a Vote for an already-normalized usercode.
func NewVote(voter string, row int, fields map[string]string) *Vote {
	return &Vote{
		Voter:  voter,
		Row:    row,
		Fields: fields,
	}
}

// Role is a position being elected.
type Role struct {
	Name        string `json:"name"`
	Seats       int    `json:"seats,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrRoleName is returned by Validate when a role has no name.
var ErrRoleName = errors.New("role name is required")

// Validate checks the fields a role must carry.
func (r Role) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrRoleName
	}

	if r.Seats < 1 {
		return fmt.Errorf("role %q: seats must be at least 1, got %d", r.Name, r.Seats)
	}

	return nil
}
