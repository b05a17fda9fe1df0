package ingest

import (
	"fmt"

	"stv-ingest/internal/common"
	"stv-ingest/internal/config"
	"stv-ingest/internal/diagnostic"
	"stv-ingest/internal/election"
	"stv-ingest/internal/usercode"
)

// LoadVotes reads the ballots at src into ds.Votes, one per usercode. A
// later row for the same usercode replaces the earlier ballot.
//
// Only the first row's usercode column is checked (it must be non-empty).
// Later rows are stored whatever their usercode looks like, with a warning
// diagnostic, unless ValidateVoteIdentifiers is set.
func (l *Loader) LoadVotes(ds *election.Dataset, src config.CSVSource) error {
	l.logger.Info("loading votes", "path", src.Path, "column", src.Column)

	var stored, replaced, skipped int

	err := l.scanCSV(src, func(r csvRow) {
		loc := common.Location(src.Path, r.row.Line)

		if !usercode.Valid(r.id) {
			switch {
			case r.first:
				l.diags.AddWarning(diagnostic.CodeFirstRowUnchecked,
					fmt.Sprintf("first row usercode %q accepted without matching %s", r.id, usercode.Pattern), loc)
			case l.config.ValidateVoteIdentifiers:
				skipped++
				l.diags.AddInfo(diagnostic.CodeVoteSkipped,
					fmt.Sprintf("usercode %q does not match %s", r.id, usercode.Pattern), loc)

				return
			default:
				l.diags.AddWarning(diagnostic.CodeVoteUnchecked,
					fmt.Sprintf("ballot stored for usercode %q which does not match %s", r.id, usercode.Pattern), loc)
			}
		}

		vote := election.NewVote(r.id, r.row.Number, r.table.Map(r.row))
		if prev := ds.PutVote(vote); prev != nil {
			replaced++
			l.diags.AddWarning(diagnostic.CodeVoteOverwritten,
				fmt.Sprintf("ballot for %q from data row %d replaces data row %d", r.id, vote.Row, prev.Row), loc)
			l.logger.Debug("replaced ballot", "usercode", r.id, "location", loc)

			return
		}

		stored++
	})
	if err != nil {
		return err
	}

	l.logger.Info("loaded votes", "path", src.Path, "stored", stored, "replaced", replaced,
		"skipped", skipped, "total", len(ds.Votes))

	return nil
}
