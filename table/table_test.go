package table_test

import (
	"errors"
	"testing"

	"github.com/axisdata/annmat/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies shape and field-name validation at construction.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
		rows   int
		err    error
	}{
		{"NegativeRows", []string{"id"}, -1, table.ErrBadShape},
		{"DuplicateField", []string{"id", "id"}, 2, table.ErrDuplicateField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := table.New(tc.fields, tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v,%d) error = %v; want %v", tc.fields, tc.rows, err, tc.err)
			}
		})
	}
}

// TestNew_FillsNA verifies that fresh cells carry the explicit NA marker.
func TestNew_FillsNA(t *testing.T) {
	tbl, err := table.New([]string{"id", "symbol"}, 2)
	require.NoError(t, err)

	col, err := tbl.Column("symbol")
	require.NoError(t, err)
	assert.Equal(t, []string{table.NA, table.NA}, col, "fresh cells must be NA")
}

// TestFromColumns checks construction from named columns and its validation.
func TestFromColumns(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"id", "score"},
		map[string][]string{"id": {"a", "b"}, "score": {"1", "2"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "score"}, tbl.Fields())
	assert.Equal(t, 2, tbl.Len())

	_, err = table.FromColumns([]string{"id"}, map[string][]string{})
	assert.ErrorIs(t, err, table.ErrUnknownField, "missing column must error")

	_, err = table.FromColumns(
		[]string{"id", "score"},
		map[string][]string{"id": {"a", "b"}, "score": {"1"}},
	)
	assert.ErrorIs(t, err, table.ErrBadShape, "ragged columns must error")
}

// TestWithColumn covers replace, append, and length validation — and that the
// receiver is left untouched.
func TestWithColumn(t *testing.T) {
	base, err := table.FromColumns([]string{"id"}, map[string][]string{"id": {"a", "b"}})
	require.NoError(t, err)

	out, err := base.WithColumn("score", []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "score"}, out.Fields(), "new field appends last")
	assert.False(t, base.HasField("score"), "receiver must not be mutated")

	out2, err := out.WithColumn("score", []string{"9", "8"})
	require.NoError(t, err)
	got, err := out2.Column("score")
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "8"}, got, "existing field is replaced in place")
	old, err := out.Column("score")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, old, "original column survives replacement")

	_, err = base.WithColumn("x", []string{"only-one"})
	assert.ErrorIs(t, err, table.ErrBadShape)
}

// TestRename verifies position-preserving renames and their error cases.
func TestRename(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"id", "score"},
		map[string][]string{"id": {"a"}, "score": {"1"}},
	)
	require.NoError(t, err)

	out, err := tbl.Rename("score", "rank")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "rank"}, out.Fields(), "rename keeps position")
	assert.True(t, tbl.HasField("score"), "receiver must not be mutated")

	_, err = tbl.Rename("nope", "x")
	assert.ErrorIs(t, err, table.ErrUnknownField)
	_, err = tbl.Rename("score", "id")
	assert.ErrorIs(t, err, table.ErrDuplicateField)
}

// TestProjectDrop verifies field selection and removal.
func TestProjectDrop(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"id", "a", "b"},
		map[string][]string{"id": {"x"}, "a": {"1"}, "b": {"2"}},
	)
	require.NoError(t, err)

	proj, err := tbl.Project("b", "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "id"}, proj.Fields(), "projection fixes order")

	_, err = tbl.Project("id", "id")
	assert.ErrorIs(t, err, table.ErrDuplicateField)
	_, err = tbl.Project("missing")
	assert.ErrorIs(t, err, table.ErrUnknownField)

	dropped := tbl.Drop("a", "not-there")
	assert.Equal(t, []string{"id", "b"}, dropped.Fields(), "unknown drop is a no-op")
}

// TestSelectRows covers replication, NoMatch NA rows, and bounds.
func TestSelectRows(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"id", "v"},
		map[string][]string{"id": {"a", "b"}, "v": {"1", "2"}},
	)
	require.NoError(t, err)

	out, err := tbl.SelectRows([]int{1, 1, table.NoMatch, 0})
	require.NoError(t, err)
	require.Equal(t, 4, out.Len())
	ids, err := out.Column("id")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "b", table.NA, "a"}, ids)

	_, err = tbl.SelectRows([]int{2})
	assert.ErrorIs(t, err, table.ErrIndexRange)
	_, err = tbl.SelectRows([]int{-2})
	assert.ErrorIs(t, err, table.ErrIndexRange)
}

// TestAppendRows verifies schema-union concatenation with NA fill.
func TestAppendRows(t *testing.T) {
	a, err := table.FromColumns(
		[]string{"id", "x"},
		map[string][]string{"id": {"a"}, "x": {"1"}},
	)
	require.NoError(t, err)
	b, err := table.FromColumns(
		[]string{"id", "y"},
		map[string][]string{"id": {"b"}, "y": {"2"}},
	)
	require.NoError(t, err)

	out, err := a.AppendRows(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "x", "y"}, out.Fields(), "left fields first, then novel right fields")

	x, err := out.Column("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", table.NA}, x, "right rows lack x")
	y, err := out.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []string{table.NA, "2"}, y, "left rows lack y")

	_, err = a.AppendRows(nil)
	assert.ErrorIs(t, err, table.ErrNilTable)
}

// TestEqualClone verifies value equality and deep-copy independence.
func TestEqualClone(t *testing.T) {
	a, err := table.FromColumns([]string{"id"}, map[string][]string{"id": {"a", "b"}})
	require.NoError(t, err)

	cp := a.Clone()
	assert.True(t, table.Equal(a, cp))

	other, err := cp.WithColumn("id", []string{"a", "z"})
	require.NoError(t, err)
	assert.False(t, table.Equal(a, other))
	assert.True(t, table.Equal(a, cp), "clone is independent of derived tables")

	assert.True(t, table.Equal(nil, nil))
	assert.False(t, table.Equal(a, nil))
}

// TestCell checks point access and its bounds.
func TestCell(t *testing.T) {
	tbl, err := table.FromColumns([]string{"id"}, map[string][]string{"id": {"a", "b"}})
	require.NoError(t, err)

	v, err := tbl.Cell(1, "id")
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = tbl.Cell(2, "id")
	assert.ErrorIs(t, err, table.ErrIndexRange)
	_, err = tbl.Cell(0, "nope")
	assert.ErrorIs(t, err, table.ErrUnknownField)
}
