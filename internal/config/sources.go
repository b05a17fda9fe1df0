package config

const (
	DefaultMembersPath   = "members.csv"
	DefaultMembersColumn = "UC Username"
	DefaultVotesPath     = "votes.csv"
	DefaultVotesColumn   = "What is your UC usercode (abc123)"
	DefaultRolesPath     = "roles.json"
)

// CSVSource locates a headed CSV file and its usercode column.
type CSVSource struct {
	Path   string `yaml:"path"`
	Column string `yaml:"column"`
}

// Sources locates all three election inputs.
type Sources struct {
	Members CSVSource `yaml:"members"`
	Votes   CSVSource `yaml:"votes"`
	Roles   string    `yaml:"roles"`
}

// DefaultSources returns the built-in input locations.
func DefaultSources() Sources {
	return Sources{
		Members: CSVSource{Path: DefaultMembersPath, Column: DefaultMembersColumn},
		Votes:   CSVSource{Path: DefaultVotesPath, Column: DefaultVotesColumn},
		Roles:   DefaultRolesPath,
	}
}

// Overlay returns s with every non-empty value of o taking precedence.
func (s Sources) Overlay(o Sources) Sources {
	s.Members = s.Members.overlay(o.Members)
	s.Votes = s.Votes.overlay(o.Votes)

	if o.Roles != "" {
		s.Roles = o.Roles
	}

	return s
}

func (c CSVSource) overlay(o CSVSource) CSVSource {
	if o.Path != "" {
		c.Path = o.Path
	}

	if o.Column != "" {
		c.Column = o.Column
	}

	return c
}
