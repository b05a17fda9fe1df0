// Package main provides the CLI entrypoint for stv-ingest.
//
// stv-ingest loads the inputs of a single-transferable-vote count:
//   - a membership roster (CSV) giving the eligible usercodes
//   - the cast ballots (CSV), one per usercode
//   - the roles being elected (JSON)
//
// It validates them, reports what it had to tolerate and prints a summary
// of the resulting dataset. Input locations come from defaults, an optional
// YAML config file, flags and, on a terminal, interactive prompts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"stv-ingest/internal/config"
	"stv-ingest/internal/election"
	"stv-ingest/internal/ingest"
	"stv-ingest/internal/logging"
)

type options struct {
	configPath    string
	membersPath   string
	membersColumn string
	votesPath     string
	votesColumn   string
	rolesPath     string
	interactive   bool
	validateVotes bool
	validateSet   bool
	dump          bool
	writeConfig   string
	logLevel      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("stv-ingest", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "YAML config file with input locations")
	flagSet.StringVar(&opts.membersPath, "members", "", "members CSV file (default: "+config.DefaultMembersPath+")")
	flagSet.StringVar(&opts.membersColumn, "members-column", "", "usercode column in the members file (default: \""+config.DefaultMembersColumn+"\")")
	flagSet.StringVar(&opts.votesPath, "votes", "", "votes CSV file (default: "+config.DefaultVotesPath+")")
	flagSet.StringVar(&opts.votesColumn, "votes-column", "", "usercode column in the votes file (default: \""+config.DefaultVotesColumn+"\")")
	flagSet.StringVar(&opts.rolesPath, "roles", "", "roles JSON file (default: "+config.DefaultRolesPath+")")
	flagSet.BoolVarP(&opts.interactive, "interactive", "i", isTerminal(stdin), "prompt for each input location (default: when stdin is a terminal)")
	flagSet.BoolVar(&opts.validateVotes, "validate-votes", false, "skip ballots whose usercode is malformed, as for members")
	flagSet.BoolVar(&opts.dump, "dump", false, "print the full dataset after loading")
	flagSet.StringVar(&opts.writeConfig, "write-config", "", "save the resolved input locations to this YAML file")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default: $"+logging.EnvLogLevel+" or info)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	opts.validateSet = flagSet.Changed("validate-votes")

	sources, validate, err := resolveDefaults(opts)
	if err != nil {
		return err
	}

	logger := logging.NewCommandLogger(stderr, opts.logLevel)

	var resolver config.Resolver = config.Defaults{}
	if opts.interactive {
		resolver = config.NewPrompter(stdin, stdout)
	}

	loader := ingest.NewLoader(ingest.Config{
		Logger:                  logger,
		ValidateVoteIdentifiers: validate,
	})
	ds := election.NewDataset()

	used, err := loader.Run(ctx, ds, sources, resolver)

	diags := loader.Diagnostics()
	printDiagnostics(stderr, diags)

	if err != nil {
		if diags.HasErrors() {
			return &reportedError{err: err}
		}

		return err
	}

	if opts.writeConfig != "" {
		f := &config.File{
			Version:                 config.CurrentVersion,
			Sources:                 used,
			ValidateVoteIdentifiers: validate,
		}
		if err := config.WriteFile(f, opts.writeConfig); err != nil {
			return err
		}

		logger.Info("wrote config", "path", opts.writeConfig)
	}

	printSummary(stdout, ds, loader.Diagnostics())

	if opts.dump {
		dumpDataset(stdout, ds)
	}

	return nil
}

// reportedError wraps a failure that printDiagnostics has already shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// resolveDefaults layers the config file and flags over the built-in
// defaults. A flag given on the command line wins over the config file.
func resolveDefaults(opts options) (config.Sources, bool, error) {
	sources := config.DefaultSources()
	validate := false

	if opts.configPath != "" {
		f, err := config.LoadFile(opts.configPath)
		if err != nil {
			return config.Sources{}, false, err
		}

		sources = sources.Overlay(f.Sources)
		validate = f.ValidateVoteIdentifiers
	}

	if opts.validateSet {
		validate = opts.validateVotes
	}

	sources = sources.Overlay(config.Sources{
		Members: config.CSVSource{Path: opts.membersPath, Column: opts.membersColumn},
		Votes:   config.CSVSource{Path: opts.votesPath, Column: opts.votesColumn},
		Roles:   opts.rolesPath,
	})

	return sources, validate, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
