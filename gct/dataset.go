package gct

import (
	"fmt"

	"github.com/axisdata/annmat/table"
)

// Dataset is the annotated matrix: a dense numeric matrix plus per-axis id
// sequences and descriptor tables. A Dataset is immutable from the caller's
// perspective — every operation returns a new instance and the constructor
// copies its inputs.
//
// Invariants, validated by New and preserved by every operation:
//
//  1. len(rowIDs) == mat.Rows() and len(colIDs) == mat.Cols().
//  2. rowDesc.id == rowIDs element-wise, in order; likewise colDesc.
//  3. Ids are unique within each axis (row and column namespaces are
//     independent and may overlap each other).
type Dataset struct {
	mat     *Mat
	rowIDs  []string
	colIDs  []string
	rowDesc *table.Table
	colDesc *table.Table
}

// New constructs a Dataset, validating every invariant eagerly before any
// state is retained. A nil descriptor table is replaced by a minimal id-only
// table for its axis. All inputs are copied.
//
// Errors: ErrNilMat, ErrShape, ErrDuplicateID, ErrNoDescriptorID,
// ErrDescriptorAlign.
func New(mat *Mat, rowIDs, colIDs []string, rowDesc, colDesc *table.Table) (*Dataset, error) {
	if mat == nil {
		return nil, fmt.Errorf("New: %w", ErrNilMat)
	}
	if len(rowIDs) != mat.Rows() {
		return nil, fmt.Errorf("New: %d row ids for %d matrix rows: %w", len(rowIDs), mat.Rows(), ErrShape)
	}
	if len(colIDs) != mat.Cols() {
		return nil, fmt.Errorf("New: %d col ids for %d matrix cols: %w", len(colIDs), mat.Cols(), ErrShape)
	}
	if err := checkUnique(rowIDs, "row"); err != nil {
		return nil, err
	}
	if err := checkUnique(colIDs, "col"); err != nil {
		return nil, err
	}

	rd, err := normalizeDesc(rowDesc, rowIDs, "row")
	if err != nil {
		return nil, err
	}
	cd, err := normalizeDesc(colDesc, colIDs, "col")
	if err != nil {
		return nil, err
	}

	return &Dataset{
		mat:     mat.Clone(),
		rowIDs:  copyIDs(rowIDs),
		colIDs:  copyIDs(colIDs),
		rowDesc: rd,
		colDesc: cd,
	}, nil
}

// newUnchecked assembles a Dataset from components the operation already
// guarantees consistent, without copying and without the axis-uniqueness
// check — Subset and Merge legally produce replicated ids.
func newUnchecked(mat *Mat, rowIDs, colIDs []string, rowDesc, colDesc *table.Table) *Dataset {
	return &Dataset{mat: mat, rowIDs: rowIDs, colIDs: colIDs, rowDesc: rowDesc, colDesc: colDesc}
}

// checkUnique rejects a repeated id within one axis.
func checkUnique(ids []string, axis string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("New: %s id %q repeated: %w", axis, id, ErrDuplicateID)
		}
		seen[id] = true
	}

	return nil
}

// normalizeDesc validates a descriptor table against its axis ids, or
// synthesizes an id-only table when desc is nil. The returned table is an
// independent copy.
func normalizeDesc(desc *table.Table, ids []string, axis string) (*table.Table, error) {
	if desc == nil {
		return idOnlyTable(ids)
	}
	if !desc.HasField("id") {
		return nil, fmt.Errorf("New: %s descriptor: %w", axis, ErrNoDescriptorID)
	}
	if desc.Len() != len(ids) {
		return nil, fmt.Errorf("New: %s descriptor has %d rows for %d ids: %w", axis, desc.Len(), len(ids), ErrDescriptorAlign)
	}
	col, err := desc.Column("id")
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		if col[i] != id {
			return nil, fmt.Errorf("New: %s descriptor row %d has id %q, want %q: %w", axis, i, col[i], id, ErrDescriptorAlign)
		}
	}

	return desc.Clone(), nil
}

// idOnlyTable builds a single-field descriptor table whose id column equals
// the given ids.
func idOnlyTable(ids []string) (*table.Table, error) {
	t, err := table.New([]string{"id"}, len(ids))
	if err != nil {
		return nil, err
	}

	return t.WithColumn("id", ids)
}

// copyIDs returns an independent copy of an id sequence.
func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}

// Rows returns the row count. Complexity: O(1).
func (d *Dataset) Rows() int { return d.mat.Rows() }

// Cols returns the column count. Complexity: O(1).
func (d *Dataset) Cols() int { return d.mat.Cols() }

// At returns the matrix value at (row, col) or ErrIndexRange.
func (d *Dataset) At(row, col int) (float64, error) { return d.mat.At(row, col) }

// Mat returns a deep copy of the matrix.
func (d *Dataset) Mat() *Mat { return d.mat.Clone() }

// RowIDs returns a copy of the row identifier sequence.
func (d *Dataset) RowIDs() []string { return copyIDs(d.rowIDs) }

// ColIDs returns a copy of the column identifier sequence.
func (d *Dataset) ColIDs() []string { return copyIDs(d.colIDs) }

// RowDesc returns a copy of the row descriptor table.
func (d *Dataset) RowDesc() *table.Table { return d.rowDesc.Clone() }

// ColDesc returns a copy of the column descriptor table.
func (d *Dataset) ColDesc() *table.Table { return d.colDesc.Clone() }

// Clone returns an independent deep copy.
func (d *Dataset) Clone() *Dataset {
	return &Dataset{
		mat:     d.mat.Clone(),
		rowIDs:  copyIDs(d.rowIDs),
		colIDs:  copyIDs(d.colIDs),
		rowDesc: d.rowDesc.Clone(),
		colDesc: d.colDesc.Clone(),
	}
}

// Equal reports whether a and b carry identical matrices (NaN cells compare
// equal), id sequences, and descriptor tables. Two nil datasets are equal.
func Equal(a, b *Dataset) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !matEqual(a.mat, b.mat) {
		return false
	}
	if !idsEqual(a.rowIDs, b.rowIDs) || !idsEqual(a.colIDs, b.colIDs) {
		return false
	}

	return table.Equal(a.rowDesc, b.rowDesc) && table.Equal(a.colDesc, b.colDesc)
}

func idsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Validate re-checks every construction invariant on an existing Dataset.
// Useful after hand-assembling test fixtures; operations in this package
// always return valid datasets (modulo the replicated ids that Subset and
// Merge permit by contract).
func (d *Dataset) Validate() error {
	if d == nil {
		return ErrNilDataset
	}
	_, err := New(d.mat, d.rowIDs, d.colIDs, d.rowDesc, d.colDesc)

	return err
}
