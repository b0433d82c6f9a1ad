package checks

import (
	"strings"

	"github.com/roach88/qpusanity/internal/dataset"
)

// Column names of the daily lease dataset.
const (
	ColumnDate          = "date"
	ColumnBlocksAtom    = "new_blocks_atom"
	ColumnBlocksPhoton  = "new_blocks_photon"
	ColumnBlocksSpin    = "new_blocks_spin"
	ColumnWorkloadsOld  = "workloads_older_blocks"
	ColumnWorkloadsNew  = "workloads_new_blocks"
	ColumnDailyCost     = "total_daily_cost"
	ColumnTotalWorkload = "total_workloads"
)

// RequiredColumns is the fixed required-column list the schema check
// verifies. total_workloads is not part of it; the workload checks validate
// that column's presence themselves.
var RequiredColumns = []string{
	ColumnDate,
	ColumnBlocksAtom,
	ColumnBlocksPhoton,
	ColumnBlocksSpin,
	ColumnWorkloadsOld,
	ColumnWorkloadsNew,
	ColumnDailyCost,
}

// SchemaCheck verifies that every required column is present.
type SchemaCheck struct {
	// Required is the column list to verify. Empty means RequiredColumns.
	Required []string
}

// NewSchemaCheck returns a SchemaCheck over the standard required columns.
func NewSchemaCheck() *SchemaCheck {
	return &SchemaCheck{Required: RequiredColumns}
}

// Name implements Check.
func (c *SchemaCheck) Name() string { return "schema" }

// Run reports the missing column names, if any. No dataset access beyond
// column presence, so it can never fail fatally.
func (c *SchemaCheck) Run(ds *dataset.Dataset) (*Result, error) {
	required := c.Required
	if len(required) == 0 {
		required = RequiredColumns
	}

	var missing []string
	for _, col := range required {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return fail(c.Name(),
			diag.Sprintf("missing %d required column(s)", len(missing)),
			"missing: "+strings.Join(missing, ", "),
		), nil
	}
	return pass(c.Name(), diag.Sprintf("all %d required columns present", len(required))), nil
}
