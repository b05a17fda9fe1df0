package ingest

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stv-ingest/internal/config"
	"stv-ingest/internal/diagnostic"
	"stv-ingest/internal/election"
	"stv-ingest/internal/logging"
)

func loadMembers(t *testing.T, content string) (*election.Dataset, *Loader, error) {
	t.Helper()

	path := writeFile(t, t.TempDir(), "members.csv", content)
	l := NewLoader(Config{})
	ds := election.NewDataset()

	return ds, l, l.LoadMembers(ds, config.CSVSource{Path: path, Column: membersColumn})
}

func TestLoadMembersDeduplicatesAndSkips(t *testing.T) {
	ds, l, err := loadMembers(t, "UC Username\nabc123\nabc123\nxyz\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"abc123"}, ds.MemberList())
	assert.Equal(t, 1, l.Diagnostics().Count(diagnostic.CodeMemberDuplicate))
	assert.Equal(t, 1, l.Diagnostics().Count(diagnostic.CodeMemberSkipped))
	assert.False(t, l.Diagnostics().HasErrors())
}

func TestLoadMembersLowercases(t *testing.T) {
	ds, _, err := loadMembers(t, "Name,UC Username\nAda,ABC123\nGrace,XyZw99\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"abc123", "xyzw99"}, ds.MemberList())
}

func TestLoadMembersFirstRowIsTrusted(t *testing.T) {
	ds, l, err := loadMembers(t, "UC Username\nAdministrator\nadministrator2\nabc123\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"abc123", "administrator"}, ds.MemberList())

	warnings := l.Diagnostics().Warnings
	require.Len(t, warnings, 1)
	assert.Equal(t, diagnostic.CodeFirstRowUnchecked, warnings[0].Code)
	assert.Contains(t, warnings[0].Location, "members.csv:2")
}

func TestLoadMembersKeepsTrailingContent(t *testing.T) {
	ds, _, err := loadMembers(t, "UC Username\nabc123\n\"def456 \"\n\" ghi789\"\n")
	require.NoError(t, err)

	assert.True(t, ds.HasMember("def456 "))
	assert.False(t, ds.HasMember(" ghi789"))
	assert.Len(t, ds.Members, 2)
}

func TestLoadMembersWrongColumn(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty first value", "Name,UC Username\nAda,\nGrace,abc123\n"},
		{"short first row", "Name,UC Username\nAda\nGrace,abc123\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, _, err := loadMembers(t, tt.content)
			require.ErrorIs(t, err, ErrWrongColumn)
			assert.Contains(t, err.Error(), "[a-zA-Z]{3,4}[0-9]{2,3}")
			assert.Empty(t, ds.Members)
		})
	}
}

func TestLoadMembersShortLaterRowIsSkipped(t *testing.T) {
	ds, l, err := loadMembers(t, "Name,UC Username\nAda,abc123\nGrace\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"abc123"}, ds.MemberList())
	assert.Equal(t, 1, l.Diagnostics().Count(diagnostic.CodeMemberSkipped))
}

func TestLoadMembersFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"column missing", "Name,Email\nAda,ada@example.com\n", ErrColumnNotFound},
		{"header only", "UC Username\n", ErrNoRows},
		{"empty file", "", ErrMissingHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadMembers(t, tt.content)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadMembersMissingFile(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(Config{})
	ds := election.NewDataset()

	err := l.LoadMembers(ds, config.CSVSource{Path: dir + "/nope.csv", Column: membersColumn})
	require.ErrorIs(t, err, ErrFileNotFound)
	assert.Contains(t, err.Error(), "nope.csv")

	err = l.LoadMembers(ds, config.CSVSource{Path: dir, Column: membersColumn})
	assert.ErrorIs(t, err, ErrFileNotFound, "a directory is not a regular file")
}

func TestLoadMembersLogsHeader(t *testing.T) {
	var buf bytes.Buffer

	path := writeFile(t, t.TempDir(), "members.csv", "Name,UC Username\nAda,abc123\n")
	l := NewLoader(Config{Logger: logging.New(&buf, slog.LevelDebug)})

	require.NoError(t, l.LoadMembers(election.NewDataset(), config.CSVSource{Path: path, Column: membersColumn}))

	assert.Contains(t, buf.String(), `"msg":"read header"`)
	assert.Contains(t, buf.String(), `"columns":["Name","UC Username"]`)
}

func TestLoadMembersInvalidUTF8(t *testing.T) {
	ds, _, err := loadMembers(t, "UC Username\nabc123\nabd12\xff\n")
	require.ErrorIs(t, err, ErrInvalidEncoding)

	assert.NotContains(t, ds.MemberList(), "abd12\ufffd")
}
