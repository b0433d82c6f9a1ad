package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RaggedRow(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})

	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Row)
}

func TestNew_DuplicateColumn(t *testing.T) {
	_, err := New([]string{"a", "a"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column")
}

func TestColumns_ReturnsCopy(t *testing.T) {
	ds, err := New([]string{"a", "b"}, [][]string{{"1", "2"}})
	require.NoError(t, err)

	cols := ds.Columns()
	cols[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, ds.Columns())
}

func TestStrings_MissingColumn(t *testing.T) {
	ds, err := New([]string{"a"}, [][]string{{"1"}})
	require.NoError(t, err)

	_, err = ds.Strings("nope")

	require.Error(t, err)
	assert.True(t, IsMissingColumn(err))
	var mc *MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "nope", mc.Column)
}

func TestInts(t *testing.T) {
	ds, err := New([]string{"n"}, [][]string{{"42"}, {"-7"}})
	require.NoError(t, err)

	values, err := ds.Ints("n")
	require.NoError(t, err)
	assert.Equal(t, []int64{42, -7}, values)
}

func TestInts_ParseError(t *testing.T) {
	ds, err := New([]string{"n"}, [][]string{{"42"}, {"many"}})
	require.NoError(t, err)

	_, err = ds.Ints("n")

	require.Error(t, err)
	assert.True(t, IsParseError(err))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "n", pe.Column)
	assert.Equal(t, 2, pe.Row)
	assert.Equal(t, "many", pe.Value)
}

func TestFloats(t *testing.T) {
	ds, err := New([]string{"cost"}, [][]string{{"12.5"}, {"0"}})
	require.NoError(t, err)

	values, err := ds.Floats("cost")
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5, 0}, values)
}

func TestDates(t *testing.T) {
	ds, err := New([]string{"date"}, [][]string{{"2025-01-31"}})
	require.NoError(t, err)

	values, err := ds.Dates("date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), values[0])
}

func TestDates_ParseError(t *testing.T) {
	ds, err := New([]string{"date"}, [][]string{{"2025-01-01"}, {"yesterday"}})
	require.NoError(t, err)

	_, err = ds.Dates("date")

	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "date", pe.Column)
	assert.Equal(t, 2, pe.Row)
}

func TestAccessors_DoNotMutate(t *testing.T) {
	ds, err := New([]string{"n"}, [][]string{{"1"}, {"2"}})
	require.NoError(t, err)

	first, err := ds.Ints("n")
	require.NoError(t, err)
	first[0] = 99

	second, err := ds.Ints("n")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, second)
}
