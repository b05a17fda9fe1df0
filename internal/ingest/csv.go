package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"stv-ingest/internal/config"
	"stv-ingest/internal/table"
	"stv-ingest/internal/usercode"
)

// csvRow is one data row handed to a scan visitor.
type csvRow struct {
	table *table.Table
	row   table.Row
	// id is the normalized usercode column value.
	id string
	// first is set for the trust-anchor row.
	first bool
}

// scanCSV opens src, resolves its usercode column and visits every data row
// in order. The first row must have a non-empty usercode value. The file is
// closed before scanCSV returns.
func (l *Loader) scanCSV(src config.CSVSource, visit func(csvRow)) error {
	if err := requireFile(src.Path); err != nil {
		return err
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src.Path, err)
	}
	defer f.Close()

	tbl, err := table.New(f, src.Path)
	if err != nil {
		return err
	}

	l.logger.Debug("read header", "path", src.Path, "columns", tbl.Header())

	col, err := tbl.Column(src.Column)
	if err != nil {
		return err
	}

	row, err := tbl.Next()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", src.Path, ErrNoRows)
	}

	if err != nil {
		return err
	}

	value := row.Get(col)
	if value == "" {
		return fmt.Errorf("%w: column %q of %s is empty on the first row, usercodes should match the regex %s",
			ErrWrongColumn, src.Column, src.Path, usercode.Pattern)
	}

	visit(csvRow{table: tbl, row: row, id: usercode.Normalize(value), first: true})

	for {
		row, err := tbl.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		visit(csvRow{table: tbl, row: row, id: usercode.Normalize(row.Get(col))})
	}
}
