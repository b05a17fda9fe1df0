package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stv-ingest/internal/config"
)

const (
	membersColumn = config.DefaultMembersColumn
	votesColumn   = config.DefaultVotesColumn
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// fixture writes a complete, valid set of inputs and returns their sources.
func fixture(t *testing.T) config.Sources {
	t.Helper()

	dir := t.TempDir()

	return config.Sources{
		Members: config.CSVSource{
			Path: writeFile(t, dir, "members.csv",
				"Name,UC Username\nAda,ABC123\nGrace,xyz99\nAlan,abc123\nNobody,not-a-code\n"),
			Column: membersColumn,
		},
		Votes: config.CSVSource{
			Path: writeFile(t, dir, "votes.csv",
				"Timestamp,What is your UC usercode (abc123),Chair\n"+
					"t1,abc123,Ada\n"+
					"t2,XYZ99,Grace\n"),
			Column: votesColumn,
		},
		Roles: writeFile(t, dir, "roles.json", `[{"name":"chair"},{"name":"secretary"}]`),
	}
}
