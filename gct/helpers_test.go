package gct_test

import (
	"testing"

	"github.com/axisdata/annmat/gct"
	"github.com/axisdata/annmat/table"
	"github.com/stretchr/testify/require"
)

// newFixture builds the canonical 3×2 test dataset:
//
//	        c1  c2
//	  r1 [   1   2 ]
//	  r2 [   3   4 ]
//	  r3 [   5   6 ]
//
// with a "symbol" row-descriptor field and a "group" column-descriptor field.
func newFixture(t *testing.T) *gct.Dataset {
	t.Helper()

	mat, err := gct.MatFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	rowDesc, err := table.FromColumns(
		[]string{"id", "symbol"},
		map[string][]string{"id": {"r1", "r2", "r3"}, "symbol": {"s1", "s2", "s3"}},
	)
	require.NoError(t, err)
	colDesc, err := table.FromColumns(
		[]string{"id", "group"},
		map[string][]string{"id": {"c1", "c2"}, "group": {"g1", "g2"}},
	)
	require.NoError(t, err)

	d, err := gct.New(mat, []string{"r1", "r2", "r3"}, []string{"c1", "c2"}, rowDesc, colDesc)
	require.NoError(t, err)

	return d
}

// mustMat builds a matrix from row slices or fails the test.
func mustMat(t *testing.T, rows [][]float64) *gct.Mat {
	t.Helper()
	m, err := gct.MatFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustDataset builds a dataset with id-only descriptors or fails the test.
func mustDataset(t *testing.T, rows [][]float64, rowIDs, colIDs []string) *gct.Dataset {
	t.Helper()
	d, err := gct.New(mustMat(t, rows), rowIDs, colIDs, nil, nil)
	require.NoError(t, err)

	return d
}

// matValues flattens a dataset's matrix row-major for assertions.
func matValues(t *testing.T, d *gct.Dataset) []float64 {
	t.Helper()
	out := make([]float64, 0, d.Rows()*d.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			out = append(out, v)
		}
	}

	return out
}
