package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"stv-ingest/internal/common"
	"stv-ingest/internal/match"
)

var (
	// ErrMissingHeader is returned when the input has no header row.
	ErrMissingHeader = errors.New("missing header row")
	// ErrColumnNotFound is returned when a requested column is not in the header.
	ErrColumnNotFound = errors.New("column not found")
	// ErrInvalidEncoding is returned when the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// Table reads data rows from a headed CSV stream.
type Table struct {
	name   string
	reader *csv.Reader
	header []string
	index  map[string]int
	row    int
}

// Row is one data row.
type Row struct {
	// Number is the 1-based data row number (the header is not counted).
	Number int
	// Line is the line in the file where the row starts.
	Line   int
	Fields []string
}

// New reads the header row from r. name is used in error messages only.
// The input must be UTF-8; a leading byte order mark is dropped.
func New(r io.Reader, name string) (*Table, error) {
	decoded := transform.NewReader(r, transform.Chain(encoding.UTF8Validator, unicode.BOMOverride(transform.Nop)))

	reader := csv.NewReader(decoded)
	reader.Comma = ','
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", name, ErrMissingHeader)
		}

		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, fmt.Errorf("%s: %w", name, ErrInvalidEncoding)
		}

		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	// Duplicate names resolve to the last occurrence.
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	return &Table{
		name:   name,
		reader: reader,
		header: header,
		index:  index,
	}, nil
}

// Header returns the header row.
func (t *Table) Header() []string {
	return t.header
}

// Column returns the index of the named column. The match is exact; on a
// miss the error names the closest headers.
func (t *Table) Column(name string) (int, error) {
	if i, ok := t.index[name]; ok {
		return i, nil
	}

	msg := fmt.Sprintf("%s: %q", t.name, name)
	if suggestions := match.Suggest(name, t.header, match.DefaultMaxSuggestions); !common.IsEmpty(suggestions) {
		msg += " (did you mean " + quoteJoin(suggestions) + "?)"
	}

	return -1, fmt.Errorf("%w: %s", ErrColumnNotFound, msg)
}

// Next returns the next data row, or io.EOF after the last one.
func (t *Table) Next() (Row, error) {
	fields, err := t.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}

		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return Row{}, fmt.Errorf("%s after data row %d: %w", t.name, t.row, ErrInvalidEncoding)
		}

		return Row{}, fmt.Errorf("failed to read %s: %w", t.name, err)
	}

	t.row++
	line, _ := t.reader.FieldPos(0)

	return Row{Number: t.row, Line: line, Fields: fields}, nil
}

// Get returns the field at col, or "" when the row is too short.
func (r Row) Get(col int) string {
	if col < 0 || col >= len(r.Fields) {
		return ""
	}

	return r.Fields[col]
}

// Map returns the row keyed by header name. Fields past the end of the
// header are dropped and missing trailing fields map to "".
func (t *Table) Map(r Row) map[string]string {
	m := make(map[string]string, len(t.header))
	for i, h := range t.header {
		m[h] = r.Get(i)
	}

	return m
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}

	return strings.Join(quoted, ", ")
}
