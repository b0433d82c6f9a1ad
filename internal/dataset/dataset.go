// Package dataset provides the in-memory tabular structure the validation
// checks consume: one record per simulated day, raw string cells keyed by
// column name, with typed accessors that convert whole columns on demand.
//
// A Dataset is immutable after construction. Accessors compute converted
// views (integers, floats, calendar dates) without storing them back, so
// callers can read columns in any order, any number of times, and always
// observe the same values.
package dataset

import (
	"strconv"
	"time"
)

// DateLayout is the calendar-date format expected in the date column.
const DateLayout = "2006-01-02"

// Dataset is an ordered sequence of daily records.
// Column order matches the source file; cell values are kept as raw strings.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New constructs a Dataset from a column list and row cells.
// Every row must have exactly one cell per column.
func New(columns []string, rows [][]string) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, dup := index[col]; dup {
			return nil, &FormatError{Message: "duplicate column " + strconv.Quote(col)}
		}
		index[col] = i
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, &FormatError{
				Row:     i + 1,
				Message: "record has " + strconv.Itoa(len(row)) + " cells, want " + strconv.Itoa(len(columns)),
			}
		}
	}
	return &Dataset{columns: columns, index: index, rows: rows}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Columns returns the column names in file order.
// The returned slice is a copy; mutating it does not affect the dataset.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Strings returns the raw cells of the named column, one per record.
func (d *Dataset) Strings(name string) ([]string, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, &MissingColumnError{Column: name}
	}
	out := make([]string, len(d.rows))
	for r, row := range d.rows {
		out[r] = row[i]
	}
	return out, nil
}

// Ints converts the named column to int64 values.
// Returns a ParseError identifying the first cell that is not an integer.
func (d *Dataset) Ints(name string) ([]int64, error) {
	cells, err := d.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(cells))
	for r, cell := range cells {
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return nil, &ParseError{Column: name, Row: r + 1, Value: cell, Err: err}
		}
		out[r] = v
	}
	return out, nil
}

// Floats converts the named column to float64 values.
// Returns a ParseError identifying the first cell that is not numeric.
func (d *Dataset) Floats(name string) ([]float64, error) {
	cells, err := d.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for r, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, &ParseError{Column: name, Row: r + 1, Value: cell, Err: err}
		}
		out[r] = v
	}
	return out, nil
}

// Dates converts the named column to calendar dates using DateLayout.
// Returns a ParseError identifying the first unparseable cell.
func (d *Dataset) Dates(name string) ([]time.Time, error) {
	cells, err := d.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(cells))
	for r, cell := range cells {
		t, err := time.Parse(DateLayout, cell)
		if err != nil {
			return nil, &ParseError{Column: name, Row: r + 1, Value: cell, Err: err}
		}
		out[r] = t
	}
	return out, nil
}
