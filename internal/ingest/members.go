package ingest

import (
	"fmt"

	"stv-ingest/internal/common"
	"stv-ingest/internal/config"
	"stv-ingest/internal/diagnostic"
	"stv-ingest/internal/election"
	"stv-ingest/internal/usercode"
)

// LoadMembers reads the roster at src into ds.Members.
//
// The first data row is accepted as long as it is non-empty. Later rows are
// added only when their usercode is valid; the rest are skipped and noted as
// info diagnostics.
func (l *Loader) LoadMembers(ds *election.Dataset, src config.CSVSource) error {
	l.logger.Info("loading members", "path", src.Path, "column", src.Column)

	var added, skipped int

	err := l.scanCSV(src, func(r csvRow) {
		loc := common.Location(src.Path, r.row.Line)

		if !usercode.Valid(r.id) {
			if !r.first {
				skipped++
				l.diags.AddInfo(diagnostic.CodeMemberSkipped,
					fmt.Sprintf("usercode %q does not match %s", r.id, usercode.Pattern), loc)
				l.logger.Debug("skipped member", "usercode", r.id, "location", loc)

				return
			}

			l.diags.AddWarning(diagnostic.CodeFirstRowUnchecked,
				fmt.Sprintf("first row usercode %q accepted without matching %s", r.id, usercode.Pattern), loc)
		}

		if !ds.AddMember(r.id) {
			l.diags.AddInfo(diagnostic.CodeMemberDuplicate,
				fmt.Sprintf("usercode %q already on the roster", r.id), loc)

			return
		}

		added++
	})
	if err != nil {
		return err
	}

	l.logger.Info("loaded members", "path", src.Path, "added", added, "skipped", skipped, "total", len(ds.Members))

	return nil
}
