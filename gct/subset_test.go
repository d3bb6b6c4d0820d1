package gct_test

import (
	"testing"

	"github.com/axisdata/annmat/gct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubset_Idempotence verifies that selecting all ids in original order
// returns a value equal to the input.
func TestSubset_Idempotence(t *testing.T) {
	d := newFixture(t)

	byAll, diags, err := gct.Subset(d, gct.All(), gct.All(), nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.True(t, gct.Equal(d, byAll))

	explicit, diags, err := gct.Subset(d, gct.ByID(d.RowIDs()...), gct.ByID(d.ColIDs()...), nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.True(t, gct.Equal(d, explicit), "explicit full id lists must be a no-op")
}

// TestSubset_IndexIDEquivalence verifies that positional indices 0..k-1 and
// the corresponding id strings select the same result.
func TestSubset_IndexIDEquivalence(t *testing.T) {
	d := newFixture(t)

	byIdx, _, err := gct.Subset(d, gct.ByIndex(0, 1), gct.ByIndex(0), nil)
	require.NoError(t, err)
	byID, _, err := gct.Subset(d, gct.ByID("r1", "r2"), gct.ByID("c1"), nil)
	require.NoError(t, err)
	assert.True(t, gct.Equal(byIdx, byID))

	byNum, _, err := gct.Subset(d, gct.ByNumeric(0, 1), gct.ByNumeric(0), nil)
	require.NoError(t, err)
	assert.True(t, gct.Equal(byIdx, byNum), "whole-number numerics behave as indices")
}

// TestSubset_IDOrderIsAxisOrder verifies that the caller's id order never
// leaks into the result: the axis order wins.
func TestSubset_IDOrderIsAxisOrder(t *testing.T) {
	d := newFixture(t)

	out, _, err := gct.Subset(d, gct.ByID("r3", "r1"), gct.All(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r3"}, out.RowIDs())
	assert.Equal(t, []float64{1, 2, 5, 6}, matValues(t, out))
}

// TestSubset_ReplicatesByIndex verifies that duplicated positional indices
// legally replicate rows, descriptors included.
func TestSubset_ReplicatesByIndex(t *testing.T) {
	d := newFixture(t)

	out, _, err := gct.Subset(d, gct.ByIndex(1, 1), gct.All(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2", "r2"}, out.RowIDs())
	assert.Equal(t, []float64{3, 4, 3, 4}, matValues(t, out))

	sym, err := out.RowDesc().Column("symbol")
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "s2"}, sym, "descriptor rows replicate with the matrix")
}

// TestSubset_UnmatchedIDs verifies the drop-and-report contract for unknown
// ids.
func TestSubset_UnmatchedIDs(t *testing.T) {
	d := newFixture(t)

	out, diags, err := gct.Subset(d, gct.ByID("r2", "ghost"), gct.All(), nil)
	require.NoError(t, err, "unknown ids are not fatal")
	assert.Equal(t, []string{"r2"}, out.RowIDs())

	require.Len(t, diags, 1)
	assert.Equal(t, gct.DiagUnmatchedKeys, diags[0].Code)
	assert.Equal(t, "row", diags[0].Axis)
	assert.Equal(t, []string{"ghost"}, diags[0].Keys)
}

// TestSubset_EmptyResult verifies the empty-axis diagnostic and that the
// empty dataset is still well-formed.
func TestSubset_EmptyResult(t *testing.T) {
	d := newFixture(t)

	out, diags, err := gct.Subset(d, gct.ByID("ghost"), gct.All(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rows())
	assert.Equal(t, 2, out.Cols())

	var codes []gct.DiagCode
	for _, dg := range diags {
		codes = append(codes, dg.Code)
	}
	assert.Contains(t, codes, gct.DiagEmptyResult)
	assert.Contains(t, codes, gct.DiagUnmatchedKeys)
}

// TestSubset_Fatal verifies the fatal selector conditions.
func TestSubset_Fatal(t *testing.T) {
	d := newFixture(t)

	_, _, err := gct.Subset(nil, gct.All(), gct.All(), nil)
	assert.ErrorIs(t, err, gct.ErrNilDataset)

	_, _, err = gct.Subset(d, gct.ByIndex(99), gct.All(), nil)
	assert.ErrorIs(t, err, gct.ErrIndexRange)

	_, _, err = gct.Subset(d, gct.ByNumeric(1.5), gct.All(), nil)
	assert.ErrorIs(t, err, gct.ErrSelectorKind)

	_, _, err = gct.Subset(d, gct.All(), gct.ByNumeric(0.5), nil)
	assert.ErrorIs(t, err, gct.ErrSelectorKind)
}

// TestSubset_NumericTolerance verifies the whole-number tolerance window.
func TestSubset_NumericTolerance(t *testing.T) {
	d := newFixture(t)

	out, _, err := gct.Subset(d, gct.ByNumeric(1+1e-9), gct.All(), nil)
	require.NoError(t, err, "1e-9 from an integer is within tolerance")
	assert.Equal(t, []string{"r2"}, out.RowIDs())

	_, _, err = gct.Subset(d, gct.ByNumeric(1+1e-6), gct.All(), nil)
	assert.ErrorIs(t, err, gct.ErrSelectorKind, "1e-6 from an integer is out of tolerance")
}

// TestSubset_DescriptorRealignment verifies the id-based descriptor lookup
// under reordering selection.
func TestSubset_DescriptorRealignment(t *testing.T) {
	d := newFixture(t)

	out, _, err := gct.Subset(d, gct.ByIndex(2, 0), gct.All(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r1"}, out.RowIDs())

	rd := out.RowDesc()
	ids, err := rd.Column("id")
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r1"}, ids)
	sym, err := rd.Column("symbol")
	require.NoError(t, err)
	assert.Equal(t, []string{"s3", "s1"}, sym)
}

// TestSubset_InputUntouched verifies the purity contract.
func TestSubset_InputUntouched(t *testing.T) {
	d := newFixture(t)
	snapshot := d.Clone()

	_, _, err := gct.Subset(d, gct.ByIndex(0), gct.ByIndex(1), nil)
	require.NoError(t, err)
	assert.True(t, gct.Equal(d, snapshot))
}

// TestSubset_EmptyIDSelector verifies that an explicit empty id list selects
// nothing rather than everything.
func TestSubset_EmptyIDSelector(t *testing.T) {
	d := newFixture(t)

	out, diags, err := gct.Subset(d, gct.ByID(), gct.All(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rows())
	require.NotEmpty(t, diags)
	assert.Equal(t, gct.DiagEmptyResult, diags[0].Code)

	rd := out.RowDesc()
	assert.Equal(t, 0, rd.Len())
	assert.Equal(t, []string{"id", "symbol"}, rd.Fields(), "schema survives an empty subset")
}
