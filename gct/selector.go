package gct

import (
	"fmt"
	"math"
)

// Selector addresses rows or columns of a Dataset. It is a tagged union
// resolved once at the operation boundary: either explicit ids, explicit
// positional indices, raw numeric positions (validated as whole numbers), or
// the whole axis. The zero Selector selects the whole axis.
type Selector struct {
	kind selectorKind
	ids  []string
	idx  []int
	nums []float64
}

type selectorKind uint8

const (
	selAll selectorKind = iota
	selID
	selIndex
	selNumeric
)

// All returns the selector for the entire axis in original order.
func All() Selector { return Selector{kind: selAll} }

// ByID selects by explicit identifiers. Matching is a membership test
// against the reference axis: ids absent from the axis are dropped and
// reported as a diagnostic, and the result order is always the axis order —
// never the order given here.
func ByID(ids ...string) Selector {
	return Selector{kind: selID, ids: ids}
}

// ByIndex selects by zero-based positional indices, in the given order.
// Duplicates are legal and replicate rows/columns; an out-of-range index is
// fatal.
func ByIndex(idx ...int) Selector {
	return Selector{kind: selIndex, idx: idx}
}

// ByNumeric selects by raw numeric positions, accommodating callers whose
// index lists arrive as floating point. Every value must be a whole number
// within 1e-8; otherwise resolution fails with ErrSelectorKind.
func ByNumeric(vals ...float64) Selector {
	return Selector{kind: selNumeric, nums: vals}
}

// resolve maps a selector to concrete (ids, indices) against a reference
// axis. For id selectors the unmatched ids are returned for diagnostic
// reporting; resolution itself never fails on them. The returned ids are
// always re-derived from ref[idx[i]], so they agree with the indices by
// construction.
//
// Errors: ErrSelectorKind (non-whole numeric), ErrIndexRange (positional
// index outside the axis).
func resolve(sel Selector, ref []string, axis string) (ids []string, idx []int, unmatched []string, err error) {
	switch sel.kind {
	case selAll:
		idx = make([]int, len(ref))
		for i := range ref {
			idx[i] = i
		}

	case selID:
		want := make(map[string]bool, len(sel.ids))
		for _, id := range sel.ids {
			want[id] = true
		}
		// Axis order wins: walk the reference, not the caller's list.
		matched := make(map[string]bool, len(sel.ids))
		for i, id := range ref {
			if want[id] {
				idx = append(idx, i)
				matched[id] = true
			}
		}
		seen := make(map[string]bool, len(sel.ids))
		for _, id := range sel.ids {
			if !matched[id] && !seen[id] {
				seen[id] = true
				unmatched = append(unmatched, id)
			}
		}

	case selIndex:
		idx = make([]int, len(sel.idx))
		copy(idx, sel.idx)
		for _, i := range idx {
			if i < 0 || i >= len(ref) {
				return nil, nil, nil, fmt.Errorf("%s selector: index %d of %d: %w", axis, i, len(ref), ErrIndexRange)
			}
		}

	case selNumeric:
		idx = make([]int, len(sel.nums))
		for k, v := range sel.nums {
			n := math.Round(v)
			if math.IsNaN(v) || math.Abs(v-n) > wholeEps {
				return nil, nil, nil, fmt.Errorf("%s selector: value %v is not a whole number: %w", axis, v, ErrSelectorKind)
			}
			i := int(n)
			if i < 0 || i >= len(ref) {
				return nil, nil, nil, fmt.Errorf("%s selector: index %d of %d: %w", axis, i, len(ref), ErrIndexRange)
			}
			idx[k] = i
		}

	default:
		return nil, nil, nil, fmt.Errorf("%s selector: %w", axis, ErrSelectorKind)
	}

	ids = make([]string, len(idx))
	for k, i := range idx {
		ids[k] = ref[i]
	}

	return ids, idx, unmatched, nil
}
