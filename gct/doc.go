// Package gct implements the annotated-matrix dataset and its structural
// transformations.
//
// A Dataset is a dense float64 matrix whose rows and columns carry unique
// string identifiers, each axis described by a metadata table (see the table
// package) keyed by the same identifiers. The package maintains three
// invariants after every operation:
//
//  1. len(rowIDs) == matrix rows and len(colIDs) == matrix columns.
//  2. Each descriptor table's "id" field equals the axis ids element-wise,
//     in order.
//  3. Ids are unique within each axis.
//
// The transformations — Subset, Merge, Melt, Annotate, Transpose, Rank — are
// pure: inputs are never mutated and every call returns a new value. Fatal
// conditions surface as sentinel errors (errors.Is); non-fatal conditions are
// returned as Diagnostic values alongside the result and may additionally be
// fanned out through an Observer (logging, metrics, tracing, event hooks).
//
// Missing matrix cells are IEEE NaN; missing metadata cells are table.NA.
//
// Reading and writing the on-disk GCT format is out of scope: construct the
// Dataset with New from your own reader.
package gct
