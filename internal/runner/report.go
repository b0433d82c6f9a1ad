package runner

import (
	"fmt"
	"io"

	"github.com/roach88/qpusanity/internal/checks"
)

// Report aggregates the results of one validation run.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// Passed is the logical AND of all check results.
	Passed bool `json:"passed"`

	// Results holds one entry per executed check, in run order.
	Results []checks.Result `json:"results"`
}

// Failed returns the number of failed checks.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// WriteText renders the human-readable report: one line per check with its
// diagnostic detail indented beneath, then the overall verdict. The run ID
// is deliberately omitted so identical datasets render identically.
func (r *Report) WriteText(w io.Writer) {
	for _, res := range r.Results {
		mark := "✓"
		if !res.Passed {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s: %s\n", mark, res.Name, res.Summary)
		for _, d := range res.Details {
			fmt.Fprintf(w, "    %s\n", d)
		}
	}

	fmt.Fprintln(w)
	if r.Passed {
		fmt.Fprintf(w, "✓ all %d checks passed\n", len(r.Results))
	} else {
		fmt.Fprintf(w, "✗ %d of %d checks failed\n", r.Failed(), len(r.Results))
	}
}
