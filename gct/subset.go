package gct

import (
	"fmt"

	"github.com/axisdata/annmat/table"
)

// SubsetOptions configures Subset.
type SubsetOptions struct {
	// Obs receives telemetry for the call; nil is silent.
	Obs *Observer
}

// DefaultSubsetOptions returns the default (unobserved) configuration.
func DefaultSubsetOptions() SubsetOptions { return SubsetOptions{} }

// Subset selects rows and columns of d by the given selectors and returns a
// new dataset with both descriptor tables realigned to the selected ids.
//
// Selection semantics follow the selectors: id selectors match by membership
// and keep the axis order (unknown ids are dropped and reported as a
// DiagUnmatchedKeys diagnostic); positional selectors keep the caller's order
// and may replicate rows or columns. An empty resolved axis is legal and
// reported as DiagEmptyResult.
//
// Implementation:
//   - Stage 1 (Validate): resolve both selectors against the axis ids.
//   - Stage 2 (Execute): gather the matrix submatrix at the resolved indices.
//   - Stage 3 (Realign): rebuild each descriptor table by id re-lookup so its
//     rows match the final id order exactly.
//
// Errors: ErrNilDataset, ErrSelectorKind, ErrIndexRange.
// Complexity: O(rows'·cols' + descriptor cells).
func Subset(d *Dataset, rows, cols Selector, opts *SubsetOptions) (*Dataset, []Diagnostic, error) {
	o := DefaultSubsetOptions()
	if opts != nil {
		o = *opts
	}
	var diags []Diagnostic
	defer o.Obs.begin(SpanSubset, MetricSubsetTotal, &diags)()

	if d == nil {
		return nil, nil, fmt.Errorf("Subset: %w", ErrNilDataset)
	}

	rowIDs, rowIdx, rowMiss, err := resolve(rows, d.rowIDs, "row")
	if err != nil {
		return nil, nil, fmt.Errorf("Subset: %w", err)
	}
	colIDs, colIdx, colMiss, err := resolve(cols, d.colIDs, "col")
	if err != nil {
		return nil, nil, fmt.Errorf("Subset: %w", err)
	}
	diags = appendUnmatched(diags, "subset", "row", rowMiss)
	diags = appendUnmatched(diags, "subset", "col", colMiss)
	diags = appendEmpty(diags, "subset", "row", len(rowIdx))
	diags = appendEmpty(diags, "subset", "col", len(colIdx))

	sub, err := d.mat.Gather(rowIdx, colIdx)
	if err != nil {
		return nil, nil, fmt.Errorf("Subset: %w", err)
	}

	rd, err := subsetDescriptor(d.rowDesc, rowIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("Subset: row descriptor: %w", err)
	}
	cd, err := subsetDescriptor(d.colDesc, colIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("Subset: col descriptor: %w", err)
	}

	o.Obs.report(diags)

	return newUnchecked(sub, rowIDs, colIDs, rd, cd), diags, nil
}

// subsetDescriptor realigns a descriptor table to a final id sequence by
// exact-id lookup: for each final id, its first row in the original table is
// taken; an id absent from the table yields an all-NA row with the id column
// restored. A table lacking the "id" field is ErrNoDescriptorID.
func subsetDescriptor(desc *table.Table, ids []string) (*table.Table, error) {
	if !desc.HasField("id") {
		return nil, ErrNoDescriptorID
	}
	col, err := desc.Column("id")
	if err != nil {
		return nil, err
	}
	at := make(map[string]int, len(col))
	for i, id := range col {
		if _, ok := at[id]; !ok {
			at[id] = i
		}
	}
	idx := make([]int, len(ids))
	for i, id := range ids {
		if j, ok := at[id]; ok {
			idx[i] = j
		} else {
			idx[i] = table.NoMatch
		}
	}
	out, err := desc.SelectRows(idx)
	if err != nil {
		return nil, err
	}

	// NoMatch rows carry NA in every field; the id column is authoritative.
	return out.WithColumn("id", ids)
}

// appendUnmatched adds a DiagUnmatchedKeys diagnostic when keys is non-empty.
func appendUnmatched(diags []Diagnostic, op, axis string, keys []string) []Diagnostic {
	if len(keys) == 0 {
		return diags
	}

	return append(diags, Diagnostic{
		Op:     op,
		Axis:   axis,
		Code:   DiagUnmatchedKeys,
		Keys:   keys,
		Detail: fmt.Sprintf("%d requested %s id(s) not found", len(keys), axis),
	})
}

// appendEmpty adds a DiagEmptyResult diagnostic when an axis came out empty.
func appendEmpty(diags []Diagnostic, op, axis string, n int) []Diagnostic {
	if n > 0 {
		return diags
	}

	return append(diags, Diagnostic{
		Op:     op,
		Axis:   axis,
		Code:   DiagEmptyResult,
		Detail: fmt.Sprintf("resulting %s axis has zero elements", axis),
	})
}
