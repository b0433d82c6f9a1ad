package checks

import (
	"math"

	"github.com/roach88/qpusanity/internal/dataset"
)

// DefaultTolerance is the allowed fractional deviation of each category's
// cumulative total from the three-way average.
const DefaultTolerance = 0.05

// DistributionCheck verifies that, over the whole period, leased blocks are
// equally distributed among the Atom, Photon and Spin categories: each
// category's cumulative total must deviate from the three-way average by at
// most Tolerance * average.
type DistributionCheck struct {
	// Tolerance is the allowed fractional deviation. Zero means DefaultTolerance;
	// an exact-equality requirement is expressed with a tiny positive value.
	Tolerance float64
}

// NewDistributionCheck returns a DistributionCheck with the default tolerance.
func NewDistributionCheck() *DistributionCheck {
	return &DistributionCheck{Tolerance: DefaultTolerance}
}

// Name implements Check.
func (c *DistributionCheck) Name() string { return "distribution" }

// Run sums the three category columns independently and compares each total
// against the average. A zero average with zero deviation passes trivially;
// no ratio is ever computed, so a zero average cannot divide by zero.
func (c *DistributionCheck) Run(ds *dataset.Dataset) (*Result, error) {
	tolerance := c.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

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

	var totalAtom, totalPhoton, totalSpin int64
	for i := range atom {
		totalAtom += atom[i]
		totalPhoton += photon[i]
		totalSpin += spin[i]
	}

	avg := float64(totalAtom+totalPhoton+totalSpin) / 3
	allowed := tolerance * avg
	balanced := math.Abs(float64(totalAtom)-avg) <= allowed &&
		math.Abs(float64(totalPhoton)-avg) <= allowed &&
		math.Abs(float64(totalSpin)-avg) <= allowed

	totalsLine := diag.Sprintf("atom: %d, photon: %d, spin: %d, average: %.2f", totalAtom, totalPhoton, totalSpin, avg)
	if !balanced {
		return fail(c.Name(),
			diag.Sprintf("cumulative distribution deviates from the average by more than %.0f%%", tolerance*100),
			totalsLine,
		), nil
	}
	return pass(c.Name(), diag.Sprintf("cumulative distribution is balanced within %.0f%% of the average", tolerance*100)), nil
}
