package checks

import (
	"errors"

	"github.com/roach88/qpusanity/internal/dataset"
)

// Expected per-day volume bounds.
const (
	DefaultMinBlocksPerDay = 1_000
	DefaultMaxBlocksPerDay = 10_000

	DefaultMinWorkloadsPerDay = 1_000_000
	DefaultMaxWorkloadsPerDay = 50_000_000
)

// intColumn loads an integer column for a check, converting the dataset's
// missing-column and cell-conversion errors into a failed Result.
// Only one of the two returns is non-nil.
func intColumn(ds *dataset.Dataset, col, checkName string) ([]int64, *Result) {
	values, err := ds.Ints(col)
	if err == nil {
		return values, nil
	}
	var missing *dataset.MissingColumnError
	if errors.As(err, &missing) {
		return nil, fail(checkName, "missing column "+col)
	}
	return nil, fail(checkName, "unreadable column "+col, err.Error())
}

// BlockVolumeCheck verifies that the total blocks leased per day - the sum
// of the Atom, Photon and Spin category columns per record - lies inside
// [Min, Max]. The per-record sum is computed here, not stored back.
type BlockVolumeCheck struct {
	Min int64
	Max int64
}

// NewBlockVolumeCheck returns a BlockVolumeCheck with the standard bounds.
func NewBlockVolumeCheck() *BlockVolumeCheck {
	return &BlockVolumeCheck{Min: DefaultMinBlocksPerDay, Max: DefaultMaxBlocksPerDay}
}

// Name implements Check.
func (c *BlockVolumeCheck) Name() string { return "block_volume" }

// Run range-checks every record's summed lease volume and reports the
// violating dates.
func (c *BlockVolumeCheck) Run(ds *dataset.Dataset) (*Result, error) {
	atom, res := intColumn(ds, ColumnBlocksAtom, c.Name())
	if res != nil {
		return res, nil
	}
	photon, res := intColumn(ds, ColumnBlocksPhoton, c.Name())
	if res != nil {
		return res, nil
	}
	spin, res := intColumn(ds, ColumnBlocksSpin, c.Name())
	if res != nil {
		return res, nil
	}

	labels := recordLabels(ds)
	var violations []string
	for i := range atom {
		total := atom[i] + photon[i] + spin[i]
		if total < c.Min || total > c.Max {
			violations = append(violations, diag.Sprintf("%s: %d blocks leased", labels[i], total))
		}
	}

	if len(violations) > 0 {
		return fail(c.Name(),
			diag.Sprintf("%d day(s) have total blocks leased outside [%d, %d]", len(violations), c.Min, c.Max),
			capDetails(violations)...,
		), nil
	}
	return pass(c.Name(), diag.Sprintf("all %d days have total blocks leased within [%d, %d]", ds.Len(), c.Min, c.Max)), nil
}

// WorkloadVolumeCheck verifies that total_workloads per record lies inside
// [Min, Max]. total_workloads is not part of the schema check's required
// list, so this check validates the column's presence itself and fails with
// a missing-column diagnostic rather than crashing.
type WorkloadVolumeCheck struct {
	Min int64
	Max int64
}

// NewWorkloadVolumeCheck returns a WorkloadVolumeCheck with the standard bounds.
func NewWorkloadVolumeCheck() *WorkloadVolumeCheck {
	return &WorkloadVolumeCheck{Min: DefaultMinWorkloadsPerDay, Max: DefaultMaxWorkloadsPerDay}
}

// Name implements Check.
func (c *WorkloadVolumeCheck) Name() string { return "workload_volume" }

// Run range-checks every record's total workload count.
func (c *WorkloadVolumeCheck) Run(ds *dataset.Dataset) (*Result, error) {
	totals, res := intColumn(ds, ColumnTotalWorkload, c.Name())
	if res != nil {
		return res, nil
	}

	labels := recordLabels(ds)
	var violations []string
	for i, total := range totals {
		if total < c.Min || total > c.Max {
			violations = append(violations, diag.Sprintf("%s: %d workloads", labels[i], total))
		}
	}

	if len(violations) > 0 {
		return fail(c.Name(),
			diag.Sprintf("%d day(s) have workloads executed outside [%d, %d]", len(violations), c.Min, c.Max),
			capDetails(violations)...,
		), nil
	}
	return pass(c.Name(), diag.Sprintf("all %d days have workloads executed within [%d, %d]", ds.Len(), c.Min, c.Max)), nil
}
