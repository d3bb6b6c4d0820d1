// Package table: sentinel error set.
// All operations return these sentinels (optionally wrapped with call-site
// context via %w) and tests match them with errors.Is. No operation panics on
// user input.

package table

import "errors"

var (
	// ErrNilTable indicates a nil *Table argument or receiver.
	ErrNilTable = errors.New("table: nil table")

	// ErrBadShape indicates an invalid row count or a column whose length
	// does not match the table's row count.
	ErrBadShape = errors.New("table: invalid shape")

	// ErrDuplicateField indicates a field name that would occur twice.
	ErrDuplicateField = errors.New("table: duplicate field name")

	// ErrUnknownField indicates a referenced field that the table lacks.
	ErrUnknownField = errors.New("table: unknown field")

	// ErrMissingKey indicates a join key absent from one of the join sides.
	ErrMissingKey = errors.New("table: join key missing")

	// ErrCardinality indicates that a join key matched more than one right
	// row while fan-out was disallowed.
	ErrCardinality = errors.New("table: join key fans out")

	// ErrIndexRange indicates a row index outside [0, Len) that is not the
	// NoMatch marker.
	ErrIndexRange = errors.New("table: row index out of range")
)
