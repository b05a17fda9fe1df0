package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"stv-ingest/internal/diagnostic"
	"stv-ingest/internal/election"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Width(9)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// printDiagnostics writes warnings and errors one per line. Info
// diagnostics are only counted in the summary.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprintln(w, errorStyle.Render("error:"), d.String())
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(w, warnStyle.Render("warning:"), d.String())
	}
}

func printSummary(w io.Writer, ds *election.Dataset, diags *diagnostic.Diagnostics) {
	roleNames := make([]string, len(ds.Roles))
	for i, r := range ds.Roles {
		roleNames[i] = r.Name
	}

	fmt.Fprintln(w, titleStyle.Render("Election inputs loaded"))
	fmt.Fprintln(w, labelStyle.Render("members"), len(ds.Members))
	fmt.Fprintln(w, labelStyle.Render("votes"), len(ds.Votes))
	fmt.Fprintln(w, labelStyle.Render("roles"), len(ds.Roles), formatList(roleNames))

	skipped := diags.Count(diagnostic.CodeMemberSkipped) + diags.Count(diagnostic.CodeVoteSkipped)
	fmt.Fprintln(w, labelStyle.Render("skipped"), skipped)
	fmt.Fprintln(w, labelStyle.Render("warnings"), len(diags.Warnings))
}

func formatList(names []string) string {
	if len(names) == 0 {
		return ""
	}

	return "(" + strings.Join(names, ", ") + ")"
}

func dumpDataset(w io.Writer, ds *election.Dataset) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	cfg.Fdump(w, ds)
}
