package checks

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/qpusanity/internal/dataset"
)

func categoriesDataset(t *testing.T, rows ...[3]int64) *dataset.Dataset {
	t.Helper()
	columns := []string{ColumnBlocksAtom, ColumnBlocksPhoton, ColumnBlocksSpin}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.FormatInt(r[0], 10),
			strconv.FormatInt(r[1], 10),
			strconv.FormatInt(r[2], 10),
		}
	}
	return mustDataset(t, columns, cells)
}

func TestDistributionCheck_EqualTotals(t *testing.T) {
	ds := categoriesDataset(t, [3]int64{600, 400, 700}, [3]int64{400, 600, 300})

	result, err := NewDistributionCheck().Run(ds)
	require.NoError(t, err)
	assert.True(t, result.Passed, result.Summary) // 1000/1000/1000
}

func TestDistributionCheck_DeviationBeyondTolerance(t *testing.T) {
	// Totals 1200/900/900: average 1000, allowed deviation 50, atom is off by 200.
	ds := categoriesDataset(t, [3]int64{1200, 900, 900})

	result, err := NewDistributionCheck().Run(ds)
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Details, 1)
	assert.Equal(t, "atom: 1,200, photon: 900, spin: 900, average: 1,000.00", result.Details[0])
}

func TestDistributionCheck_WithinCustomTolerance(t *testing.T) {
	// 1040/980/980: average 1000, atom deviation 40 is inside a 5% band.
	ds := categoriesDataset(t, [3]int64{1040, 980, 980})

	result, err := NewDistributionCheck().Run(ds)
	require.NoError(t, err)
	assert.True(t, result.Passed)

	// Tighten the tolerance below the observed deviation.
	result, err = (&DistributionCheck{Tolerance: 0.01}).Run(ds)
	require.NoError(t, err)
	assert.False(t, result.Passed)
}

func TestDistributionCheck_AllZeroTotalsPass(t *testing.T) {
	// Zero average with zero deviation passes; no ratio is computed.
	ds := categoriesDataset(t, [3]int64{0, 0, 0}, [3]int64{0, 0, 0})

	result, err := NewDistributionCheck().Run(ds)
	require.NoError(t, err)
	assert.True(t, result.Passed)
}

func TestDistributionCheck_MissingColumn(t *testing.T) {
	ds := mustDataset(t, []string{ColumnBlocksAtom, ColumnBlocksPhoton},
		[][]string{{"400", "400"}})

	result, err := NewDistributionCheck().Run(ds)
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Summary, "missing column new_blocks_spin")
}
