package table

import "fmt"

// WarnCode classifies a non-fatal join condition.
type WarnCode string

const (
	// WarnUnmatchedKeys reports left keys with no counterpart in the right
	// table; the affected rows were filled with NA.
	WarnUnmatchedKeys WarnCode = "unmatched_keys"

	// WarnCardinality reports right keys that matched more than one row while
	// fan-out was allowed; the first match was taken.
	WarnCardinality WarnCode = "cardinality"
)

// Warning is a non-fatal join diagnostic. The operation that produced it
// still completed with best-effort semantics.
type Warning struct {
	Code   WarnCode // condition class
	Keys   []string // offending key values, first-occurrence order
	Detail string   // human-readable summary
}

// MergeOptions configures Merge.
//
// Fields:
//   - AllowFanout — when false, a left key matching more than one right row
//     aborts with ErrCardinality; when true, the first matching right row is
//     taken and the condition is reported as a Warning.
type MergeOptions struct {
	AllowFanout bool
}

// DefaultMergeOptions returns the strict configuration: fan-out is fatal.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{AllowFanout: false}
}

// Merge performs a left outer equi-join of right into left on byKey, with
// strict left precedence:
//
//   - byKey must exist in both tables (ErrMissingKey names the offending side).
//   - right is projected down to byKey plus its fields not already present in
//     left before joining — on field-name collision left's columns always win
//     and right's colliding columns are discarded, never renamed or suffixed.
//   - Every left row appears exactly once in the output, in left's original
//     row order; matched right rows contribute their retained fields and
//     unmatched left rows are filled with NA (reported via WarnUnmatchedKeys).
//
// opts may be nil, which means DefaultMergeOptions.
//
// Complexity: O(rows(left) + rows(right) + cells(result)).
func Merge(left, right *Table, byKey string, opts *MergeOptions) (*Table, []Warning, error) {
	if left == nil || right == nil {
		return nil, nil, fmt.Errorf("Merge: %w", ErrNilTable)
	}
	o := DefaultMergeOptions()
	if opts != nil {
		o = *opts
	}

	// Validate the key on both sides before touching any data.
	if !left.HasField(byKey) {
		return nil, nil, fmt.Errorf("Merge: left table lacks key %q: %w", byKey, ErrMissingKey)
	}
	if !right.HasField(byKey) {
		return nil, nil, fmt.Errorf("Merge: right table lacks key %q: %w", byKey, ErrMissingKey)
	}

	// Retained right fields: everything right-only. byKey itself is in both
	// tables, so the output key column is left's.
	retained := make([]string, 0, len(right.fields))
	for _, f := range right.fields {
		if f != byKey && !left.HasField(f) {
			retained = append(retained, f)
		}
	}

	// Index right rows by key, keeping every match in scan order so fan-out
	// can be detected per left key.
	rightKey := right.cols[right.pos[byKey]]
	matches := make(map[string][]int, len(rightKey))
	for i, k := range rightKey {
		matches[k] = append(matches[k], i)
	}

	// Resolve each left row to its right row (or NoMatch), collecting the
	// non-fatal conditions as we go.
	leftKey := left.cols[left.pos[byKey]]
	rowIdx := make([]int, left.rows)
	var unmatched, fanned []string
	seenUnmatched := make(map[string]bool)
	seenFanned := make(map[string]bool)
	for i, k := range leftKey {
		hits := matches[k]
		switch {
		case len(hits) == 0:
			rowIdx[i] = NoMatch
			if !seenUnmatched[k] {
				seenUnmatched[k] = true
				unmatched = append(unmatched, k)
			}
		case len(hits) > 1:
			if !o.AllowFanout {
				return nil, nil, fmt.Errorf("Merge: key %q matches %d right rows: %w", k, len(hits), ErrCardinality)
			}
			rowIdx[i] = hits[0]
			if !seenFanned[k] {
				seenFanned[k] = true
				fanned = append(fanned, k)
			}
		default:
			rowIdx[i] = hits[0]
		}
	}

	// Assemble: left's columns verbatim, then retained right columns gathered
	// through rowIdx (NoMatch rows become NA via SelectRows).
	out := left.shallow()
	if len(retained) > 0 {
		proj, err := right.Project(retained...)
		if err != nil {
			return nil, nil, err
		}
		gathered, err := proj.SelectRows(rowIdx)
		if err != nil {
			return nil, nil, err
		}
		for i, f := range gathered.fields {
			out.pos[f] = len(out.fields)
			out.fields = append(out.fields, f)
			out.cols = append(out.cols, gathered.cols[i])
		}
	}

	var warns []Warning
	if len(unmatched) > 0 {
		warns = append(warns, Warning{
			Code:   WarnUnmatchedKeys,
			Keys:   unmatched,
			Detail: fmt.Sprintf("%d left key(s) without a right match", len(unmatched)),
		})
	}
	if len(fanned) > 0 {
		warns = append(warns, Warning{
			Code:   WarnCardinality,
			Keys:   fanned,
			Detail: fmt.Sprintf("%d key(s) matched multiple right rows; first match taken", len(fanned)),
		})
	}

	return out, warns, nil
}
