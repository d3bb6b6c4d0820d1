// Package table provides the ordered-field metadata tables that annotate the
// axes of a GCT-style dataset, plus the left-precedence outer join used to
// combine them.
//
// The table package provides:
//
//   - Table: a column-oriented table of string cells with a fixed field order,
//     a uniform row count, and the explicit missing marker NA.
//   - Pure, copy-producing column operations (WithColumn, Rename, Project,
//     Drop, SelectRows, AppendRows) — a Table value is never mutated.
//   - Merge: a left outer equi-join where the left table's columns always win
//     on field-name collision and the left row order is preserved exactly.
//
// Tables are deliberately small and string-typed: they carry per-axis
// descriptors (ids plus heterogeneous metadata fields), not bulk numeric
// data. The numeric matrix lives in the gct package.
package table
