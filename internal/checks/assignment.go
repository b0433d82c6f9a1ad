package checks

import (
	"strings"

	"github.com/roach88/qpusanity/internal/dataset"
)

// Expected daily workload partition windows.
const (
	DefaultNewShareMin   = 0.50
	DefaultNewShareMax   = 0.60
	DefaultOlderShareMin = 0.40
	DefaultOlderShareMax = 0.50
)

// assignmentColumns are the columns this check validates before reading.
var assignmentColumns = []string{
	ColumnTotalWorkload,
	ColumnWorkloadsNew,
	ColumnWorkloadsOld,
}

// AssignmentCheck verifies the daily workload partition rule: per record,
// workloads on newly leased blocks and workloads on the older pool must sum
// exactly to total_workloads, with the new-block share in
// [NewShareMin, NewShareMax] and the older-pool share in
// [OlderShareMin, OlderShareMax].
type AssignmentCheck struct {
	NewShareMin   float64
	NewShareMax   float64
	OlderShareMin float64
	OlderShareMax float64
}

// NewAssignmentCheck returns an AssignmentCheck with the standard windows.
func NewAssignmentCheck() *AssignmentCheck {
	return &AssignmentCheck{
		NewShareMin:   DefaultNewShareMin,
		NewShareMax:   DefaultNewShareMax,
		OlderShareMin: DefaultOlderShareMin,
		OlderShareMax: DefaultOlderShareMax,
	}
}

// Name implements Check.
func (c *AssignmentCheck) Name() string { return "assignment" }

// Run validates the partition rule on every record. Column presence is
// checked up front; a record with total_workloads of zero is rejected as a
// violation of that record, never an arithmetic fault.
func (c *AssignmentCheck) Run(ds *dataset.Dataset) (*Result, error) {
	var missing []string
	for _, col := range assignmentColumns {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fail(c.Name(),
			diag.Sprintf("missing %d column(s) required for the assignment check", len(missing)),
			"missing: "+strings.Join(missing, ", "),
		), nil
	}

	totals, res := intColumn(ds, ColumnTotalWorkload, c.Name())
	if res != nil {
		return res, nil
	}
	newBlocks, res := intColumn(ds, ColumnWorkloadsNew, c.Name())
	if res != nil {
		return res, nil
	}
	older, res := intColumn(ds, ColumnWorkloadsOld, c.Name())
	if res != nil {
		return res, nil
	}

	labels := recordLabels(ds)
	var violations []string
	for i, total := range totals {
		switch {
		case total == 0:
			violations = append(violations, labels[i]+": total_workloads is zero, shares undefined")
		case newBlocks[i]+older[i] != total:
			violations = append(violations,
				diag.Sprintf("%s: partition sums to %d, total_workloads is %d", labels[i], newBlocks[i]+older[i], total))
		default:
			newShare := float64(newBlocks[i]) / float64(total)
			olderShare := float64(older[i]) / float64(total)
			if newShare < c.NewShareMin || newShare > c.NewShareMax {
				violations = append(violations,
					diag.Sprintf("%s: new-block share %.2f outside [%.2f, %.2f]", labels[i], newShare, c.NewShareMin, c.NewShareMax))
			} else if olderShare < c.OlderShareMin || olderShare > c.OlderShareMax {
				violations = append(violations,
					diag.Sprintf("%s: older-pool share %.2f outside [%.2f, %.2f]", labels[i], olderShare, c.OlderShareMin, c.OlderShareMax))
			}
		}
	}

	if len(violations) > 0 {
		return fail(c.Name(),
			diag.Sprintf("%d day(s) violate the workload assignment constraints", len(violations)),
			capDetails(violations)...,
		), nil
	}
	return pass(c.Name(),
		diag.Sprintf("all %d days partition workloads within %.0f-%.0f%% new and %.0f-%.0f%% older pool",
			ds.Len(), c.NewShareMin*100, c.NewShareMax*100, c.OlderShareMin*100, c.OlderShareMax*100)), nil
}
