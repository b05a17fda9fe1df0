package ingest

import (
	"context"
	"fmt"

	"stv-ingest/internal/config"
	"stv-ingest/internal/diagnostic"
	"stv-ingest/internal/election"
)

// Prompts offered to the Resolver. Each takes the default value; the column
// prompt also takes the resolved file path first.
const (
	PromptMembersPath = "Path to members csv file, [%s]: "
	PromptVotesPath   = "Path to votes csv file, [%s]: "
	PromptRolesPath   = "Path to roles json file, [%s]: "
	PromptColumn      = "What is the name of the user code column in the %s file, [%s]: "
)

// Run loads members, then votes, then roles into ds. Each input location is
// resolved through r, with defaults as the offered values, immediately
// before its stage runs; a CSV file must exist before its column is asked
// for. The first failure is returned as a *StageError and nothing after it
// runs; it is also recorded as an error diagnostic. Run returns the locations it resolved, including those of a failed
// stage as far as they got.
func (l *Loader) Run(ctx context.Context, ds *election.Dataset, defaults config.Sources, r config.Resolver) (config.Sources, error) {
	var used config.Sources

	if err := ctx.Err(); err != nil {
		return used, err
	}

	members, err := resolveCSV(r, PromptMembersPath, defaults.Members, &used.Members)
	if err != nil {
		return used, l.fail(StageMembers, used.Members.Path, err)
	}

	if err := l.LoadMembers(ds, members); err != nil {
		return used, l.fail(StageMembers, members.Path, err)
	}

	if err := ctx.Err(); err != nil {
		return used, err
	}

	votes, err := resolveCSV(r, PromptVotesPath, defaults.Votes, &used.Votes)
	if err != nil {
		return used, l.fail(StageVotes, used.Votes.Path, err)
	}

	if err := l.LoadVotes(ds, votes); err != nil {
		return used, l.fail(StageVotes, votes.Path, err)
	}

	if err := ctx.Err(); err != nil {
		return used, err
	}

	roles, err := r.Resolve(fmt.Sprintf(PromptRolesPath, defaults.Roles), defaults.Roles)
	if err != nil {
		return used, l.fail(StageRoles, "", fmt.Errorf("resolving roles path: %w", err))
	}

	used.Roles = roles

	if err := l.LoadRoles(ds, roles); err != nil {
		return used, l.fail(StageRoles, roles, err)
	}

	return used, nil
}

// fail records a stage failure as an error diagnostic and returns it as a
// *StageError.
func (l *Loader) fail(stage Stage, path string, err error) error {
	stageErr := &StageError{Stage: stage, Path: path, Err: err}
	l.diags.AddError(diagnostic.CodeStageFailed, stageErr.Error(), path)
	l.logger.Error("stage failed", "stage", stage.String(), "path", path, "error", err)

	return stageErr
}

// resolveCSV resolves a CSV location, checking the file exists before
// asking for its column. used is filled in as values are resolved.
func resolveCSV(r config.Resolver, pathPrompt string, def config.CSVSource, used *config.CSVSource) (config.CSVSource, error) {
	path, err := r.Resolve(fmt.Sprintf(pathPrompt, def.Path), def.Path)
	if err != nil {
		return config.CSVSource{}, fmt.Errorf("resolving path: %w", err)
	}

	used.Path = path

	if err := requireFile(path); err != nil {
		return config.CSVSource{}, err
	}

	column, err := r.Resolve(fmt.Sprintf(PromptColumn, path, def.Column), def.Column)
	if err != nil {
		return config.CSVSource{}, fmt.Errorf("resolving column: %w", err)
	}

	used.Column = column

	return *used, nil
}

// Ingest loads sources without prompting and returns the dataset only if
// every stage succeeded. The diagnostics are returned either way.
func Ingest(ctx context.Context, sources config.Sources, cfg Config) (*election.Dataset, *diagnostic.Diagnostics, error) {
	l := NewLoader(cfg)
	ds := election.NewDataset()

	if _, err := l.Run(ctx, ds, sources, config.Defaults{}); err != nil {
		return nil, l.Diagnostics(), err
	}

	return ds, l.Diagnostics(), nil
}
