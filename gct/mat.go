package gct

import (
	"fmt"
	"math"
)

// NoMatch marks an axis index with no counterpart during realignment.
// Mat.Gather turns a NoMatch entry into a NaN-filled row or column.
const NoMatch = -1

// Mat is a dense row-major float64 matrix: r rows, c columns, and a flat
// backing slice of r*c elements (offset = i*c + j). NaN is the missing-value
// marker and is freely storable; zero-sized shapes (0×N, N×0) are legal
// because subsetting may legitimately produce an empty axis.
type Mat struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage, len == r*c
}

// NewMat creates an r×c matrix initialized to zeros.
// Returns ErrBadShape on negative dimensions; zero dimensions are legal.
// Complexity: O(r*c).
func NewMat(rows, cols int) (*Mat, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewMat(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Mat{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// MatFromRows creates a matrix from row slices, which must be rectangular
// (ErrRagged otherwise). The input is copied.
func MatFromRows(rows [][]float64) (*Mat, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewMat(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("MatFromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Mat) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Mat) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrIndexRange.
func (m *Mat) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexRange. Complexity: O(1).
func (m *Mat) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, fmt.Errorf("Mat.At(%d,%d): %w", row, col, err)
	}

	return m.data[off], nil
}

// Set stores v (NaN included) at (row, col) or returns ErrIndexRange.
// Complexity: O(1).
func (m *Mat) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Mat.Set(%d,%d): %w", row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(r*c).
func (m *Mat) Clone() *Mat {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Mat{r: m.r, c: m.c, data: cp}
}

// T returns the transpose as an independent copy. Complexity: O(r*c).
func (m *Mat) T() *Mat {
	out := &Mat{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Gather materializes the submatrix addressed by explicit index lists.
// Duplicate indices are legal and replicate rows/columns. A NoMatch index
// yields a NaN-filled row or column; any other out-of-range index is
// ErrIndexRange. Complexity: O(len(rowIdx)*len(colIdx)).
func (m *Mat) Gather(rowIdx, colIdx []int) (*Mat, error) {
	for _, i := range rowIdx {
		if i != NoMatch && (i < 0 || i >= m.r) {
			return nil, fmt.Errorf("Mat.Gather: row index %d: %w", i, ErrIndexRange)
		}
	}
	for _, j := range colIdx {
		if j != NoMatch && (j < 0 || j >= m.c) {
			return nil, fmt.Errorf("Mat.Gather: col index %d: %w", j, ErrIndexRange)
		}
	}

	out := &Mat{r: len(rowIdx), c: len(colIdx), data: make([]float64, len(rowIdx)*len(colIdx))}
	nan := math.NaN()
	var i, j int
	for i = 0; i < out.r; i++ {
		ri := rowIdx[i]
		dst := i * out.c
		for j = 0; j < out.c; j++ {
			cj := colIdx[j]
			if ri == NoMatch || cj == NoMatch {
				out.data[dst+j] = nan
			} else {
				out.data[dst+j] = m.data[ri*m.c+cj]
			}
		}
	}

	return out, nil
}

// IsSymmetric reports whether m is square and equal to its own transpose
// within eps. NaN cells must mirror NaN cells; a NaN paired with a finite
// value breaks symmetry. Complexity: O(r*c).
func (m *Mat) IsSymmetric(eps float64) bool {
	if m.r != m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			a, b := m.data[i*m.c+j], m.data[j*m.c+i]
			an, bn := math.IsNaN(a), math.IsNaN(b)
			if an != bn {
				return false
			}
			if !an && math.Abs(a-b) > eps {
				return false
			}
		}
	}

	return true
}

// matEqual compares shape and cells, treating NaN as equal to NaN.
func matEqual(a, b *Mat) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i, v := range a.data {
		w := b.data[i]
		if math.IsNaN(v) && math.IsNaN(w) {
			continue
		}
		if v != w {
			return false
		}
	}

	return true
}
