// Package annmat is an in-memory toolkit for annotated numeric matrices —
// GCT-style datasets whose rows and columns carry unique string identifiers
// plus per-axis metadata tables.
//
// 🚀 What is annmat?
//
//	A small, deterministic library for the structural transformations that
//	scientific data pipelines apply to expression-matrix-like objects:
//		• Subsetting: select rows/columns by id or position, metadata realigned
//		• Merging: concatenate two datasets along either axis with orthogonal
//		  id alignment and missing-value fill
//		• Melting: reshape to a long-form (row.id, col.id, value) table, with
//		  optional metadata joins and symmetric-pair deduplication
//		• Annotation: inject external metadata tables into either axis
//		• Transposition and per-axis fractional ranking
//
// ✨ Why choose annmat?
//
//   - Alignment guarantees – every operation preserves the id↔matrix↔metadata
//     invariants, checked eagerly before any result is built
//   - Pure values – inputs are never mutated; every call returns a new dataset
//   - Typed failures – sentinel errors matched with errors.Is, plus a
//     structured diagnostics channel for non-fatal conditions
//   - Observable – optional logging, metrics, tracing and event hooks per call
//
// Everything is organized under two subpackages:
//
//	table/ — ordered-field metadata tables with an explicit NA marker and a
//	         left-precedence outer join
//	gct/   — the Dataset entity, selectors, and the six transformations
//
// File-format parsing, plotting and command-line surfaces are intentionally
// out of scope: construct a gct.Dataset from your own reader and hand it in.
//
//	go get github.com/axisdata/annmat
package annmat
