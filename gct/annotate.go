package gct

import (
	"fmt"

	"github.com/axisdata/annmat/table"
)

// AnnotateOptions configures Annotate.
type AnnotateOptions struct {
	// Obs receives telemetry for the call; nil is silent.
	Obs *Observer
}

// DefaultAnnotateOptions returns the default (unobserved) configuration.
func DefaultAnnotateOptions() AnnotateOptions { return AnnotateOptions{} }

// Annotate joins an external annotation table into the descriptor table of
// the chosen axis. The annotation's keyField is copied (not renamed) into a
// working "id" column, and the join follows precedence-merge semantics with
// the descriptor table as the left side: existing descriptor fields always
// win on name collision, annotation rows are matched by id with fan-out
// allowed (first match taken, reported as DiagCardinality), and ids without
// an annotation row keep NA fields (reported as DiagUnmatchedKeys).
//
// The resulting descriptor table has exactly the original row count and id
// order, whatever the annotation table's row order.
//
// Errors: ErrNilDataset, ErrNilTable, ErrDim, ErrMissingKey.
// Complexity: O(descriptor cells + annotation cells).
func Annotate(d *Dataset, ann *table.Table, dim Dim, keyField string, opts *AnnotateOptions) (*Dataset, []Diagnostic, error) {
	o := DefaultAnnotateOptions()
	if opts != nil {
		o = *opts
	}
	var diags []Diagnostic
	defer o.Obs.begin(SpanAnnotate, MetricAnnotateTotal, &diags)()

	if d == nil {
		return nil, nil, fmt.Errorf("Annotate: %w", ErrNilDataset)
	}
	if ann == nil {
		return nil, nil, fmt.Errorf("Annotate: %w", ErrNilTable)
	}
	if !dim.valid() {
		return nil, nil, fmt.Errorf("Annotate: dim %d: %w", uint8(dim), ErrDim)
	}
	if !ann.HasField(keyField) {
		return nil, nil, fmt.Errorf("Annotate: annotation table lacks %q: %w", keyField, ErrMissingKey)
	}

	// Derive the working id column from keyField; keyField itself stays in
	// the table. Any pre-existing id field is superseded in the working copy
	// only — the caller's table is untouched.
	work := ann
	if keyField != "id" {
		keys, err := ann.Column(keyField)
		if err != nil {
			return nil, nil, err
		}
		work, err = ann.Drop("id").WithColumn("id", keys)
		if err != nil {
			return nil, nil, err
		}
	}

	desc := d.rowDesc
	ids := d.rowIDs
	if dim == DimCol {
		desc = d.colDesc
		ids = d.colIDs
	}

	mopts := table.MergeOptions{AllowFanout: true}
	merged, warns, err := table.Merge(desc, work, "id", &mopts)
	if err != nil {
		return nil, nil, fmt.Errorf("Annotate: %w", err)
	}
	diags = appendTableWarnings(diags, "annotate", dim.String(), warns)

	// Re-project strictly back to the original id order and multiplicity:
	// first matching row per original id, exactly len(ids) rows.
	realigned, err := subsetDescriptor(merged, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("Annotate: %w", err)
	}

	rowDesc, colDesc := realigned, d.colDesc
	if dim == DimCol {
		rowDesc, colDesc = d.rowDesc, realigned
	}

	o.Obs.report(diags)

	return newUnchecked(d.mat, d.rowIDs, d.colIDs, rowDesc, colDesc), diags, nil
}
