package ingest

import (
	"errors"
	"fmt"

	"stv-ingest/internal/table"
)

var (
	// ErrFileNotFound is returned when an input path is not an existing regular file.
	ErrFileNotFound = errors.New("file does not exist, or path is incorrect")
	// ErrColumnNotFound is returned when the usercode column is not in the CSV header.
	ErrColumnNotFound = table.ErrColumnNotFound
	// ErrMissingHeader is returned for a CSV file without a header row.
	ErrMissingHeader = table.ErrMissingHeader
	// ErrInvalidEncoding is returned for a CSV file that is not valid UTF-8.
	ErrInvalidEncoding = table.ErrInvalidEncoding
	// ErrNoRows is returned for a CSV file with a header and no data rows.
	ErrNoRows = errors.New("no data rows")
	// ErrWrongColumn is returned when the first data row has no value in the
	// usercode column.
	ErrWrongColumn = errors.New("the column selected does not appear to hold usercodes")
	// ErrMalformedRole is returned when a roles document does not decode into roles.
	ErrMalformedRole = errors.New("malformed role")
)

// StageError reports which stage of a run failed and on which input.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
