package ingest

import (
	"fmt"
	"log/slog"
	"os"

	"stv-ingest/internal/diagnostic"
	"stv-ingest/internal/logging"
)

// Config configures a Loader.
type Config struct {
	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
	// ValidateVoteIdentifiers skips ballot rows after the first whose
	// usercode fails the format check, as the roster loader does.
	ValidateVoteIdentifiers bool
}

// DefaultConfig returns the default loader configuration.
func DefaultConfig() Config {
	return Config{
		Logger:                  slog.Default(),
		ValidateVoteIdentifiers: false,
	}
}

// Loader reads election inputs into a dataset and collects the diagnostics
// of everything it tolerated along the way.
type Loader struct {
	config Config
	logger *slog.Logger
	diags  diagnostic.Diagnostics
}

// NewLoader creates a Loader.
func NewLoader(config Config) *Loader {
	logger := config.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Loader{
		config: config,
		logger: logger,
	}
}

// Diagnostics returns the findings collected so far.
func (l *Loader) Diagnostics() *diagnostic.Diagnostics {
	return &l.diags
}

// requireFile fails with ErrFileNotFound unless path is an existing regular file.
func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrFileNotFound)
	}

	return nil
}
