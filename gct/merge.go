package gct

import (
	"fmt"

	"github.com/axisdata/annmat/table"
)

// MergeOptions configures Merge.
//
// Fields:
//   - MatrixOnly — when true, the orthogonal descriptor table of the result
//     is reduced to its id field: only the matrices and merge-dimension
//     metadata are combined.
//   - Obs — telemetry receiver; nil is silent.
type MergeOptions struct {
	MatrixOnly bool
	Obs        *Observer
}

// DefaultMergeOptions returns the default configuration: full descriptor
// merging, no observer.
func DefaultMergeOptions() MergeOptions { return MergeOptions{} }

// Merge concatenates g2 onto g1 along dim.
//
// On the merge dimension, ids are concatenated as g1's then g2's; duplicates
// across the two inputs are permitted and preserved. On the orthogonal
// dimension, g2 is first realigned to g1's id order: an orthogonal id of g1
// absent from g2 contributes a NaN-filled row/column (reported as
// DiagUnmatchedKeys) and orthogonal ids private to g2 are dropped.
//
// The merge-dimension descriptor table is the row-wise concatenation of both
// inputs' tables under their schema union (absent fields NA-filled). The
// orthogonal descriptor table is g1's, augmented with g2's novel fields
// realigned by id — unless MatrixOnly is set, which reduces it to ids only.
//
// Errors: ErrNilDataset, ErrDim.
// Complexity: O(cells(g1) + cells(g2) + descriptor cells).
func Merge(g1, g2 *Dataset, dim Dim, opts *MergeOptions) (*Dataset, []Diagnostic, error) {
	o := DefaultMergeOptions()
	if opts != nil {
		o = *opts
	}
	var diags []Diagnostic
	defer o.Obs.begin(SpanMerge, MetricMergeTotal, &diags)()

	if g1 == nil || g2 == nil {
		return nil, nil, fmt.Errorf("Merge: %w", ErrNilDataset)
	}
	if !dim.valid() {
		return nil, nil, fmt.Errorf("Merge: dim %d: %w", uint8(dim), ErrDim)
	}

	var (
		out *Dataset
		err error
	)
	if dim == DimRow {
		out, diags, err = mergeRows(g1, g2, o.MatrixOnly)
	} else {
		// Column merge is the row merge of the transposes; the transpose
		// involution makes this exact. Diagnostic axis labels are swapped
		// back afterwards.
		out, diags, err = mergeRows(Transpose(g1), Transpose(g2), o.MatrixOnly)
		if out != nil {
			out = Transpose(out)
		}
		for i := range diags {
			diags[i].Axis = flipAxis(diags[i].Axis)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("Merge: %w", err)
	}

	o.Obs.report(diags)

	return out, diags, nil
}

// mergeRows implements Merge for dim=row.
func mergeRows(g1, g2 *Dataset, matrixOnly bool) (*Dataset, []Diagnostic, error) {
	var diags []Diagnostic

	// Orthogonal alignment: position of each g1 column id in g2.
	at := make(map[string]int, len(g2.colIDs))
	for j, id := range g2.colIDs {
		if _, ok := at[id]; !ok {
			at[id] = j
		}
	}
	idx := make([]int, len(g1.colIDs))
	var unmatched []string
	for j, id := range g1.colIDs {
		if p, ok := at[id]; ok {
			idx[j] = p
		} else {
			idx[j] = NoMatch
			unmatched = append(unmatched, id)
		}
	}
	diags = appendUnmatched(diags, "merge", "col", unmatched)

	// Realign g2's matrix to g1's column order, NaN where absent.
	allRows := make([]int, g2.Rows())
	for i := range allRows {
		allRows[i] = i
	}
	aligned, err := g2.mat.Gather(allRows, idx)
	if err != nil {
		return nil, nil, err
	}
	stacked := vstack(g1.mat, aligned)

	rowIDs := make([]string, 0, len(g1.rowIDs)+len(g2.rowIDs))
	rowIDs = append(rowIDs, g1.rowIDs...)
	rowIDs = append(rowIDs, g2.rowIDs...)

	// Merge-dimension descriptors: concatenation under the schema union.
	rowDesc, err := g1.rowDesc.AppendRows(g2.rowDesc)
	if err != nil {
		return nil, nil, err
	}

	colDesc, err := mergeOrthogonalDesc(g1, g2, idx, matrixOnly)
	if err != nil {
		return nil, nil, err
	}

	return newUnchecked(stacked, rowIDs, copyIDs(g1.colIDs), rowDesc, colDesc), diags, nil
}

// mergeOrthogonalDesc builds the orthogonal (column) descriptor table of a
// row merge: g1's table, augmented with g2's novel fields realigned through
// idx — or ids only when matrixOnly is set.
func mergeOrthogonalDesc(g1, g2 *Dataset, idx []int, matrixOnly bool) (*table.Table, error) {
	if matrixOnly {
		return idOnlyTable(g1.colIDs)
	}
	out := g1.colDesc
	realigned, err := g2.colDesc.SelectRows(idx)
	if err != nil {
		return nil, err
	}
	for _, f := range realigned.Fields() {
		if out.HasField(f) {
			continue
		}
		col, err := realigned.Column(f)
		if err != nil {
			return nil, err
		}
		out, err = out.WithColumn(f, col)
		if err != nil {
			return nil, err
		}
	}
	if out == g1.colDesc {
		out = out.Clone()
	}

	return out, nil
}

// vstack concatenates two matrices with equal column counts, a's rows first.
func vstack(a, b *Mat) *Mat {
	out := &Mat{r: a.r + b.r, c: a.c, data: make([]float64, (a.r+b.r)*a.c)}
	copy(out.data[:len(a.data)], a.data)
	copy(out.data[len(a.data):], b.data)

	return out
}

// flipAxis swaps the row/col axis label of a diagnostic produced under
// transposition.
func flipAxis(axis string) string {
	switch axis {
	case "row":
		return "col"
	case "col":
		return "row"
	default:
		return axis
	}
}
