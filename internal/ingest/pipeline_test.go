package ingest

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stv-ingest/internal/config"
	"stv-ingest/internal/diagnostic"
	"stv-ingest/internal/election"
)

// recorder resolves every value to its default and remembers the prompts.
type recorder struct {
	prompts []string
}

func (r *recorder) Resolve(prompt, def string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	return def, nil
}

func TestRunLoadsEverything(t *testing.T) {
	sources := fixture(t)
	l := NewLoader(Config{})
	ds := election.NewDataset()
	rec := &recorder{}

	used, err := l.Run(context.Background(), ds, sources, rec)
	require.NoError(t, err)

	assert.Equal(t, sources, used)
	assert.Equal(t, []string{"abc123", "xyz99"}, ds.MemberList())
	assert.Equal(t, []string{"abc123", "xyz99"}, ds.Voters())
	require.Len(t, ds.Roles, 2)
	assert.Equal(t, "chair", ds.Roles[0].Name)

	require.Len(t, rec.prompts, 5)
	assert.True(t, strings.HasPrefix(rec.prompts[0], "Path to members csv file, ["))
	assert.Contains(t, rec.prompts[1], "What is the name of the user code column in the "+sources.Members.Path+" file, [UC Username]")
	assert.True(t, strings.HasPrefix(rec.prompts[2], "Path to votes csv file, ["))
	assert.Contains(t, rec.prompts[3], "[What is your UC usercode (abc123)]")
	assert.True(t, strings.HasPrefix(rec.prompts[4], "Path to roles json file, ["))
}

func TestRunStopsAtMissingMembers(t *testing.T) {
	sources := fixture(t)
	sources.Members.Path = filepath.Join(t.TempDir(), "members.csv")

	rec := &recorder{}
	ds := election.NewDataset()

	_, err := NewLoader(Config{}).Run(context.Background(), ds, sources, rec)
	require.ErrorIs(t, err, ErrFileNotFound)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageMembers, stageErr.Stage)
	assert.Equal(t, sources.Members.Path, stageErr.Path)
	assert.True(t, strings.HasPrefix(err.Error(), "members: "))

	// the column is never asked for, nor anything after it
	assert.Len(t, rec.prompts, 1)
	assert.Empty(t, ds.Members)
}

func TestRunLeavesPartialDatasetOnFailure(t *testing.T) {
	sources := fixture(t)
	sources.Votes.Column = "Usercode"

	ds := election.NewDataset()

	used, err := NewLoader(Config{}).Run(context.Background(), ds, sources, config.Defaults{})
	require.ErrorIs(t, err, ErrColumnNotFound)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageVotes, stageErr.Stage)

	assert.NotEmpty(t, ds.Members)
	assert.Empty(t, ds.Votes)
	assert.Nil(t, ds.Roles)
	assert.Equal(t, "Usercode", used.Votes.Column)
	assert.Empty(t, used.Roles)
}

func TestRunRolesFailure(t *testing.T) {
	sources := fixture(t)
	sources.Roles = writeFile(t, t.TempDir(), "roles.json", `[{"title":"chair"}]`)

	_, err := NewLoader(Config{}).Run(context.Background(), election.NewDataset(), sources, config.Defaults{})
	require.ErrorIs(t, err, ErrMalformedRole)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageRoles, stageErr.Stage)
	assert.Equal(t, sources.Roles, stageErr.Path)
}

func TestRunRecordsFailureDiagnostic(t *testing.T) {
	sources := fixture(t)
	sources.Votes.Column = "Usercode"

	l := NewLoader(Config{})

	_, err := l.Run(context.Background(), election.NewDataset(), sources, config.Defaults{})
	require.Error(t, err)

	diags := l.Diagnostics()
	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeStageFailed, diags.Errors[0].Code)
	assert.Equal(t, sources.Votes.Path, diags.Errors[0].Location)
	assert.Equal(t, err.Error(), diags.Errors[0].Message)
}

func TestRunResolverError(t *testing.T) {
	boom := errors.New("stdin closed")
	r := config.ResolverFunc(func(string, string) (string, error) {
		return "", boom
	})

	_, err := NewLoader(Config{}).Run(context.Background(), election.NewDataset(), fixture(t), r)
	require.ErrorIs(t, err, boom)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageMembers, stageErr.Stage)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}

	_, err := NewLoader(Config{}).Run(ctx, election.NewDataset(), fixture(t), rec)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.prompts)
}

func TestRunWithPrompter(t *testing.T) {
	sources := fixture(t)
	defaults := config.DefaultSources()

	answers := strings.Join([]string{
		sources.Members.Path,
		"", // default column
		sources.Votes.Path,
		"",
		sources.Roles,
	}, "\n") + "\n"

	var out bytes.Buffer

	ds := election.NewDataset()

	used, err := NewLoader(Config{}).Run(context.Background(), ds, defaults, config.NewPrompter(strings.NewReader(answers), &out))
	require.NoError(t, err)

	assert.Equal(t, sources, used)
	assert.Len(t, ds.Members, 2)
	assert.Contains(t, out.String(), "Path to members csv file, [members.csv]: ")
}

func TestIngest(t *testing.T) {
	ds, diags, err := Ingest(context.Background(), fixture(t), DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, ds)

	assert.Len(t, ds.Members, 2)
	assert.Len(t, ds.Votes, 2)
	assert.Len(t, ds.Roles, 2)
	assert.False(t, diags.HasErrors())
	assert.NotEmpty(t, diags.Infos)
}

func TestIngestIsAllOrNothing(t *testing.T) {
	sources := fixture(t)
	sources.Roles = filepath.Join(t.TempDir(), "roles.json")

	ds, diags, err := Ingest(context.Background(), sources, DefaultConfig())
	require.ErrorIs(t, err, ErrFileNotFound)
	assert.Nil(t, ds)
	assert.NotNil(t, diags)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "members", StageMembers.String())
	assert.Equal(t, "votes", StageVotes.String())
	assert.Equal(t, "roles", StageRoles.String())
	assert.Equal(t, "Stage(9)", Stage(9).String())
}
