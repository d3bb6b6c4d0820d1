// Package gct core types: dimension/axis enumeration and shared numeric
// tolerances.
package gct

import (
	"fmt"
	"strings"
)

// Dim selects the axis an operation acts on: rows or columns.
type Dim uint8

const (
	// DimRow selects the row axis.
	DimRow Dim = iota
	// DimCol selects the column axis.
	DimCol
)

// String implements fmt.Stringer.
func (d Dim) String() string {
	switch d {
	case DimRow:
		return "row"
	case DimCol:
		return "col"
	default:
		return fmt.Sprintf("Dim(%d)", uint8(d))
	}
}

// valid reports whether d is one of the two declared constants.
func (d Dim) valid() bool { return d == DimRow || d == DimCol }

// ParseDim normalizes a textual dimension value, case-insensitively.
// "row" selects rows; "col" and "column" are synonyms selecting columns.
// Any other value is ErrDim.
func ParseDim(s string) (Dim, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row":
		return DimRow, nil
	case "col", "column":
		return DimCol, nil
	default:
		return 0, fmt.Errorf("ParseDim(%q): %w", s, ErrDim)
	}
}

// ParseAxis normalizes a textual rank axis value with the same synonyms as
// ParseDim but the rank-specific sentinel ErrAxis.
func ParseAxis(s string) (Dim, error) {
	d, err := ParseDim(s)
	if err != nil {
		return 0, fmt.Errorf("ParseAxis(%q): %w", s, ErrAxis)
	}

	return d, nil
}

// Numeric tolerances shared across the package.
const (
	// wholeEps bounds how far a numeric selector value may sit from the
	// nearest integer and still count as a positional index.
	wholeEps = 1e-8

	// symmetryEps bounds |m[i,j]-m[j,i]| for the symmetric-matrix test used
	// by Melt's pair deduplication.
	symmetryEps = 1e-8
)
