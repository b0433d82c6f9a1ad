package checks

import (
	"github.com/roach88/qpusanity/internal/dataset"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Check is a single validation rule over the daily lease dataset.
//
// Run returns a Result describing pass/fail with diagnostic detail. The
// error return is reserved for fatal conditions (an unparseable date) that
// abort the whole run; every other problem is recovered locally into a
// failed Result so sibling checks still execute.
type Check interface {
	Name() string
	Run(ds *dataset.Dataset) (*Result, error)
}

// Result holds the outcome of a single check.
type Result struct {
	// Name is a stable check identifier used in output.
	Name string `json:"name"`

	// Passed indicates whether the check met its acceptance criteria.
	Passed bool `json:"passed"`

	// Summary is a human-readable one-line result.
	Summary string `json:"summary"`

	// Details provides optional supporting lines identifying affected records.
	Details []string `json:"details,omitempty"`
}

// maxDetailRows caps the per-record diagnostic lines a check emits,
// so a pathological dataset doesn't flood the report.
const maxDetailRows = 10

// diag formats diagnostic numbers with English grouping, so bounds like
// 1,000,000 stay readable in check output.
var diag = message.NewPrinter(language.English)

func pass(name, summary string) *Result {
	return &Result{Name: name, Passed: true, Summary: summary}
}

func fail(name, summary string, details ...string) *Result {
	return &Result{Name: name, Passed: false, Summary: summary, Details: details}
}

// capDetails truncates a detail list to maxDetailRows, appending a
// "... and N more" marker when lines were dropped.
func capDetails(details []string) []string {
	if len(details) <= maxDetailRows {
		return details
	}
	capped := make([]string, maxDetailRows, maxDetailRows+1)
	copy(capped, details[:maxDetailRows])
	return append(capped, diag.Sprintf("... and %d more", len(details)-maxDetailRows))
}

// recordLabels returns a human label per record for diagnostics: the raw
// date cell when the date column exists, otherwise the 1-indexed row number.
func recordLabels(ds *dataset.Dataset) []string {
	if cells, err := ds.Strings(ColumnDate); err == nil {
		return cells
	}
	labels := make([]string, ds.Len())
	for i := range labels {
		labels[i] = diag.Sprintf("row %d", i+1)
	}
	return labels
}
