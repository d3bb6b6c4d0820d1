package gct

import (
	"fmt"
	"math"
	"strconv"

	"github.com/axisdata/annmat/table"
)

// Long-form field names produced by Melt.
const (
	FieldRowID = "row.id"
	FieldColID = "col.id"
	FieldValue = "value"
)

// Default suffixes appended to metadata fields carried by both axes.
const (
	DefaultRowSuffix = "_row"
	DefaultColSuffix = "_col"
)

// MeltOptions configures Melt.
//
// Fields:
//   - KeepRowDesc / KeepColDesc — join the corresponding descriptor fields
//     into the long-form table.
//   - RemoveSymmetries — when the matrix is numerically symmetric, keep each
//     unordered pair once (lower triangle plus diagonal).
//   - RowSuffix / ColSuffix — appended to metadata field names present in
//     both descriptor tables; empty values mean the defaults.
//   - Obs — telemetry receiver; nil is silent.
type MeltOptions struct {
	KeepRowDesc      bool
	KeepColDesc      bool
	RemoveSymmetries bool
	RowSuffix        string
	ColSuffix        string
	Obs              *Observer
}

// DefaultMeltOptions keeps both descriptor sides with the default suffixes.
func DefaultMeltOptions() MeltOptions {
	return MeltOptions{
		KeepRowDesc: true,
		KeepColDesc: true,
		RowSuffix:   DefaultRowSuffix,
		ColSuffix:   DefaultColSuffix,
	}
}

// Melt reshapes the dataset to long form: one table row per non-missing
// matrix cell, with fields "row.id", "col.id" and "value", in row-major cell
// order. NaN cells are dropped.
//
// When RemoveSymmetries is set and the matrix is symmetric within tolerance,
// the strict upper triangle is masked to missing before reshaping so each
// unordered pair appears exactly once.
//
// Descriptor joins follow precedence-merge semantics with the long-form
// table as the left side, keyed on the axis ids. Metadata fields present in
// both descriptor tables are disambiguated by provenance: the copy arriving
// from the row join gets RowSuffix, the copy from the column join ColSuffix.
// User fields that merely look suffixed are never touched.
//
// Errors: ErrNilDataset.
// Complexity: O(rows·cols + result cells).
func Melt(d *Dataset, opts *MeltOptions) (*table.Table, []Diagnostic, error) {
	o := DefaultMeltOptions()
	if opts != nil {
		o = *opts
	}
	if o.RowSuffix == "" {
		o.RowSuffix = DefaultRowSuffix
	}
	if o.ColSuffix == "" {
		o.ColSuffix = DefaultColSuffix
	}
	var diags []Diagnostic
	defer o.Obs.begin(SpanMelt, MetricMeltTotal, &diags)()

	if d == nil {
		return nil, nil, fmt.Errorf("Melt: %w", ErrNilDataset)
	}

	o.Obs.debug("melt: reshaping", "rows", d.Rows(), "cols", d.Cols())

	m := d.mat
	if o.RemoveSymmetries && m.IsSymmetric(symmetryEps) {
		m = maskUpperTriangle(m)
	}

	// Long-form core: one row per non-missing cell, row-major order.
	var rowID, colID, value []string
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if math.IsNaN(v) {
				continue
			}
			rowID = append(rowID, d.rowIDs[i])
			colID = append(colID, d.colIDs[j])
			value = append(value, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	flat, err := table.FromColumns(
		[]string{FieldRowID, FieldColID, FieldValue},
		map[string][]string{FieldRowID: rowID, FieldColID: colID, FieldValue: value},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("Melt: %w", err)
	}

	if !o.KeepRowDesc && !o.KeepColDesc {
		o.Obs.debug("melt: done", "cells", flat.Len())
		o.Obs.report(diags)

		return flat, diags, nil
	}

	// Metadata fields carried by both sides collide once joined; rename them
	// in working copies of the descriptors before joining, by provenance.
	rowDesc, colDesc := d.rowDesc, d.colDesc
	if o.KeepRowDesc && o.KeepColDesc {
		rowDesc, colDesc, err = suffixCollisions(rowDesc, colDesc, o.RowSuffix, o.ColSuffix)
		if err != nil {
			return nil, nil, fmt.Errorf("Melt: %w", err)
		}
	}

	if o.KeepRowDesc {
		flat, diags, err = meltJoin(flat, rowDesc, FieldRowID, diags)
		if err != nil {
			return nil, nil, fmt.Errorf("Melt: row descriptors: %w", err)
		}
	}
	if o.KeepColDesc {
		flat, diags, err = meltJoin(flat, colDesc, FieldColID, diags)
		if err != nil {
			return nil, nil, fmt.Errorf("Melt: col descriptors: %w", err)
		}
	}

	o.Obs.debug("melt: done", "cells", flat.Len())
	o.Obs.report(diags)

	return flat, diags, nil
}

// meltJoin joins one descriptor table into the long-form table: the key
// field is temporarily renamed to "id" so the precedence merge keys on the
// descriptor's id column, then renamed back.
func meltJoin(flat, desc *table.Table, keyField string, diags []Diagnostic) (*table.Table, []Diagnostic, error) {
	keyed, err := flat.Rename(keyField, "id")
	if err != nil {
		return nil, nil, err
	}
	mopts := table.MergeOptions{AllowFanout: true}
	merged, warns, err := table.Merge(keyed, desc, "id", &mopts)
	if err != nil {
		return nil, nil, err
	}
	diags = appendTableWarnings(diags, "melt", axisOfMeltKey(keyField), warns)
	out, err := merged.Rename("id", keyField)
	if err != nil {
		return nil, nil, err
	}

	return out, diags, nil
}

// suffixCollisions renames the metadata fields present in both descriptor
// tables, appending suf1 to the row table's copy and suf2 to the column
// table's. The id field is the join key and is never renamed.
func suffixCollisions(rowDesc, colDesc *table.Table, suf1, suf2 string) (*table.Table, *table.Table, error) {
	var err error
	for _, f := range rowDesc.Fields() {
		if f == "id" || !colDesc.HasField(f) {
			continue
		}
		rowDesc, err = rowDesc.Rename(f, f+suf1)
		if err != nil {
			return nil, nil, err
		}
		colDesc, err = colDesc.Rename(f, f+suf2)
		if err != nil {
			return nil, nil, err
		}
	}

	return rowDesc, colDesc, nil
}

// maskUpperTriangle copies m with the strict upper triangle set to NaN; the
// lower triangle and the diagonal survive.
func maskUpperTriangle(m *Mat) *Mat {
	out := m.Clone()
	nan := math.NaN()
	for i := 0; i < out.r; i++ {
		for j := i + 1; j < out.c; j++ {
			out.data[i*out.c+j] = nan
		}
	}

	return out
}

// axisOfMeltKey maps a long-form key field to its axis label.
func axisOfMeltKey(keyField string) string {
	if keyField == FieldRowID {
		return "row"
	}

	return "col"
}

// appendTableWarnings maps table-level join warnings to gct diagnostics.
func appendTableWarnings(diags []Diagnostic, op, axis string, warns []table.Warning) []Diagnostic {
	for _, w := range warns {
		code := DiagCardinality
		if w.Code == table.WarnUnmatchedKeys {
			code = DiagUnmatchedKeys
		}
		diags = append(diags, Diagnostic{
			Op:     op,
			Axis:   axis,
			Code:   code,
			Keys:   w.Keys,
			Detail: w.Detail,
		})
	}

	return diags
}
