// Package gct: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the gct
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package gct

import "errors"

var (
	// ErrNilDataset indicates a nil *Dataset argument.
	ErrNilDataset = errors.New("gct: nil dataset")

	// ErrNilMat indicates a nil *Mat where a matrix is required.
	ErrNilMat = errors.New("gct: nil matrix")

	// ErrNilTable indicates a nil *table.Table where one is required.
	ErrNilTable = errors.New("gct: nil table")

	// ErrBadShape is returned when a requested matrix shape is invalid
	// (negative dimensions).
	ErrBadShape = errors.New("gct: invalid shape")

	// ErrRagged indicates row slices of differing lengths at ingestion.
	ErrRagged = errors.New("gct: rows have differing lengths")

	// ErrIndexRange indicates a row or column index outside valid bounds.
	ErrIndexRange = errors.New("gct: index out of range")

	// ErrShape indicates that id sequences and matrix dimensions disagree.
	ErrShape = errors.New("gct: ids and matrix dimensions disagree")

	// ErrDuplicateID indicates a repeated identifier within one axis.
	ErrDuplicateID = errors.New("gct: duplicate id within axis")

	// ErrNoDescriptorID indicates a descriptor table lacking the required
	// "id" field.
	ErrNoDescriptorID = errors.New("gct: descriptor table lacks id field")

	// ErrDescriptorAlign indicates a descriptor table whose id column does
	// not match the axis ids element-wise.
	ErrDescriptorAlign = errors.New("gct: descriptor ids misaligned with axis ids")

	// ErrSelectorKind indicates a selector that is neither ids nor
	// whole-number positions.
	ErrSelectorKind = errors.New("gct: selector is neither ids nor whole-number indices")

	// ErrDim indicates an unrecognized merge/annotate dimension value.
	ErrDim = errors.New("gct: unrecognized dimension")

	// ErrAxis indicates an unrecognized rank axis value.
	ErrAxis = errors.New("gct: unrecognized axis")

	// ErrMissingKey indicates an annotation table lacking the requested key
	// field.
	ErrMissingKey = errors.New("gct: annotation key field missing")
)
