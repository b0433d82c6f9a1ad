// Package runner orchestrates the validation rule set: it runs every check
// in a fixed order against one dataset and aggregates the results into a
// single report.
package runner

import (
	"github.com/google/uuid"

	"github.com/roach88/qpusanity/internal/checks"
	"github.com/roach88/qpusanity/internal/config"
	"github.com/roach88/qpusanity/internal/dataset"
)

// Runner executes an ordered list of checks against a dataset.
type Runner struct {
	// Checks is the ordered rule sequence. Callers may supply their own
	// list to run a subset or reorder; New builds the default sequence.
	Checks []checks.Check
}

// New builds a Runner with the default sequence: schema, date range, block
// volume, workload volume, distribution, assignment. The assignment check
// is part of the default run; all thresholds come from cfg.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	cc := cfg.Checks
	return &Runner{
		Checks: []checks.Check{
			checks.NewSchemaCheck(),
			&checks.DateRangeCheck{MinDays: cc.MinSpanDays, MaxDays: cc.MaxSpanDays},
			&checks.BlockVolumeCheck{Min: cc.MinBlocksPerDay, Max: cc.MaxBlocksPerDay},
			&checks.WorkloadVolumeCheck{Min: cc.MinWorkloadsPerDay, Max: cc.MaxWorkloadsPerDay},
			&checks.DistributionCheck{Tolerance: cc.Tolerance},
			&checks.AssignmentCheck{
				NewShareMin:   cc.NewShareMin,
				NewShareMax:   cc.NewShareMax,
				OlderShareMin: cc.OlderShareMin,
				OlderShareMax: cc.OlderShareMax,
			},
		},
	}
}

// Run executes every check in order. A failed check never short-circuits
// the sequence - diagnostics are cumulative and the report's Passed field
// is the AND of all results. Only a fatal check error (an unparseable
// date) aborts the run and propagates.
func (r *Runner) Run(ds *dataset.Dataset) (*Report, error) {
	report := &Report{
		RunID:  uuid.NewString(),
		Passed: true,
	}
	for _, check := range r.Checks {
		result, err := check.Run(ds)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, *result)
		if !result.Passed {
			report.Passed = false
		}
	}
	return report, nil
}
