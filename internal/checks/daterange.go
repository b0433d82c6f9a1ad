package checks

import (
	"errors"
	"time"

	"github.com/roach88/qpusanity/internal/dataset"
)

// Six months of daily records, with slack for leap years and partial months.
const (
	DefaultMinSpanDays = 170
	DefaultMaxSpanDays = 190
)

// DateRangeCheck verifies the records cover approximately six months:
// the span in days between the earliest and latest date must fall inside
// [MinDays, MaxDays].
type DateRangeCheck struct {
	MinDays int
	MaxDays int
}

// NewDateRangeCheck returns a DateRangeCheck with the standard bounds.
func NewDateRangeCheck() *DateRangeCheck {
	return &DateRangeCheck{MinDays: DefaultMinSpanDays, MaxDays: DefaultMaxSpanDays}
}

// Name implements Check.
func (c *DateRangeCheck) Name() string { return "date_range" }

// Run parses the date column and range-checks the min-to-max span.
// An unparseable date is fatal: it propagates as an error and aborts the
// run, since no date-dependent diagnostic downstream could be trusted.
// A missing date column is recovered locally as a failed Result.
func (c *DateRangeCheck) Run(ds *dataset.Dataset) (*Result, error) {
	dates, err := ds.Dates(ColumnDate)
	if err != nil {
		var missing *dataset.MissingColumnError
		if errors.As(err, &missing) {
			return fail(c.Name(), "missing column "+ColumnDate), nil
		}
		return nil, err
	}

	minDate, maxDate := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	spanDays := int(maxDate.Sub(minDate) / (24 * time.Hour))
	if spanDays < c.MinDays || spanDays > c.MaxDays {
		return fail(c.Name(),
			diag.Sprintf("date range is %d days, outside the expected %d-%d day window", spanDays, c.MinDays, c.MaxDays),
			"earliest: "+minDate.Format(dataset.DateLayout),
			"latest: "+maxDate.Format(dataset.DateLayout),
		), nil
	}
	return pass(c.Name(), diag.Sprintf("date range is %d days, approximately six months", spanDays)), nil
}
