package table

import "fmt"

// NA is the explicit missing-cell marker, following the GCT file convention.
// Absent values are always represented by this marker, never by omitting a
// row or column.
const NA = "NA"

// NoMatch marks a row index with no counterpart during realignment.
// SelectRows turns a NoMatch entry into an all-NA row.
const NoMatch = -1

// Table is a column-oriented table of string cells with an ordered field list
// and a uniform row count. Columns are immutable after construction: every
// operation returns a new Table and never writes into an existing one, so
// column slices may be shared between values safely.
type Table struct {
	fields []string            // field names in declaration order
	pos    map[string]int      // field name -> index into fields/cols
	cols   [][]string          // parallel to fields; each len == rows
	rows   int                 // row count shared by every column
}

// New creates a table with the given fields and row count, all cells NA.
// Returns ErrDuplicateField on a repeated field name and ErrBadShape on a
// negative row count. Zero rows and zero fields are both legal.
func New(fields []string, rows int) (*Table, error) {
	if rows < 0 {
		return nil, fmt.Errorf("New(rows=%d): %w", rows, ErrBadShape)
	}
	t := &Table{
		fields: make([]string, 0, len(fields)),
		pos:    make(map[string]int, len(fields)),
		cols:   make([][]string, 0, len(fields)),
		rows:   rows,
	}
	for _, f := range fields {
		if _, dup := t.pos[f]; dup {
			return nil, fmt.Errorf("New(%q): %w", f, ErrDuplicateField)
		}
		col := make([]string, rows)
		for i := range col {
			col[i] = NA
		}
		t.pos[f] = len(t.fields)
		t.fields = append(t.fields, f)
		t.cols = append(t.cols, col)
	}

	return t, nil
}

// FromColumns creates a table from named columns. The fields slice fixes the
// field order; every listed field must be present in cols and all columns
// must share one length. Input slices are copied.
func FromColumns(fields []string, cols map[string][]string) (*Table, error) {
	rows := -1
	for _, f := range fields {
		c, ok := cols[f]
		if !ok {
			return nil, fmt.Errorf("FromColumns(%q): %w", f, ErrUnknownField)
		}
		if rows == -1 {
			rows = len(c)
		} else if len(c) != rows {
			return nil, fmt.Errorf("FromColumns(%q): len %d != %d: %w", f, len(c), rows, ErrBadShape)
		}
	}
	if rows == -1 {
		rows = 0
	}
	t, err := New(fields, rows)
	if err != nil {
		return nil, err
	}
	for i, f := range fields {
		copy(t.cols[i], cols[f])
	}

	return t, nil
}

// Fields returns the field names in order. The slice is a copy.
func (t *Table) Fields() []string {
	out := make([]string, len(t.fields))
	copy(out, t.fields)

	return out
}

// Len returns the row count.
func (t *Table) Len() int { return t.rows }

// HasField reports whether the table carries the named field.
func (t *Table) HasField(field string) bool {
	_, ok := t.pos[field]

	return ok
}

// Column returns a copy of the named column or ErrUnknownField.
func (t *Table) Column(field string) ([]string, error) {
	i, ok := t.pos[field]
	if !ok {
		return nil, fmt.Errorf("Column(%q): %w", field, ErrUnknownField)
	}
	out := make([]string, t.rows)
	copy(out, t.cols[i])

	return out, nil
}

// Cell returns the value at (row, field).
func (t *Table) Cell(row int, field string) (string, error) {
	i, ok := t.pos[field]
	if !ok {
		return "", fmt.Errorf("Cell(%q): %w", field, ErrUnknownField)
	}
	if row < 0 || row >= t.rows {
		return "", fmt.Errorf("Cell(%d,%q): %w", row, field, ErrIndexRange)
	}

	return t.cols[i][row], nil
}

// Clone returns an independent deep copy.
func (t *Table) Clone() *Table {
	cp := &Table{
		fields: make([]string, len(t.fields)),
		pos:    make(map[string]int, len(t.fields)),
		cols:   make([][]string, len(t.cols)),
		rows:   t.rows,
	}
	copy(cp.fields, t.fields)
	for f, i := range t.pos {
		cp.pos[f] = i
	}
	for i, c := range t.cols {
		col := make([]string, len(c))
		copy(col, c)
		cp.cols[i] = col
	}

	return cp
}

// WithColumn returns a new table with the named column replaced, or appended
// as the last field when absent. The values length must equal Len.
func (t *Table) WithColumn(field string, values []string) (*Table, error) {
	if len(values) != t.rows {
		return nil, fmt.Errorf("WithColumn(%q): len %d != %d: %w", field, len(values), t.rows, ErrBadShape)
	}
	col := make([]string, t.rows)
	copy(col, values)

	out := t.shallow()
	if i, ok := t.pos[field]; ok {
		out.cols[i] = col

		return out, nil
	}
	out.pos[field] = len(out.fields)
	out.fields = append(out.fields, field)
	out.cols = append(out.cols, col)

	return out, nil
}

// Rename returns a new table with field old renamed to new, keeping its
// position. Returns ErrUnknownField when old is absent and ErrDuplicateField
// when new already exists.
func (t *Table) Rename(old, new string) (*Table, error) {
	i, ok := t.pos[old]
	if !ok {
		return nil, fmt.Errorf("Rename(%q): %w", old, ErrUnknownField)
	}
	if old == new {
		return t.shallow(), nil
	}
	if _, dup := t.pos[new]; dup {
		return nil, fmt.Errorf("Rename(%q->%q): %w", old, new, ErrDuplicateField)
	}
	out := t.shallow()
	out.fields[i] = new
	delete(out.pos, old)
	out.pos[new] = i

	return out, nil
}

// Project returns a new table containing exactly the requested fields, in the
// requested order. Returns ErrUnknownField for any absent field and
// ErrDuplicateField for a repeated one.
func (t *Table) Project(fields ...string) (*Table, error) {
	out := &Table{
		fields: make([]string, 0, len(fields)),
		pos:    make(map[string]int, len(fields)),
		cols:   make([][]string, 0, len(fields)),
		rows:   t.rows,
	}
	for _, f := range fields {
		i, ok := t.pos[f]
		if !ok {
			return nil, fmt.Errorf("Project(%q): %w", f, ErrUnknownField)
		}
		if _, dup := out.pos[f]; dup {
			return nil, fmt.Errorf("Project(%q): %w", f, ErrDuplicateField)
		}
		out.pos[f] = len(out.fields)
		out.fields = append(out.fields, f)
		out.cols = append(out.cols, t.cols[i]) // shared: columns are immutable
	}

	return out, nil
}

// Drop returns a new table without the listed fields. Unknown names are
// ignored: dropping an absent field is a no-op.
func (t *Table) Drop(fields ...string) *Table {
	skip := make(map[string]bool, len(fields))
	for _, f := range fields {
		skip[f] = true
	}
	keep := make([]string, 0, len(t.fields))
	for _, f := range t.fields {
		if !skip[f] {
			keep = append(keep, f)
		}
	}
	out, _ := t.Project(keep...) // keep is a subset of existing unique fields

	return out
}

// SelectRows returns a new table whose row i is the receiver's row idx[i].
// Duplicate indices are legal and replicate rows. A NoMatch index yields an
// all-NA row; any other out-of-range index is ErrIndexRange.
func (t *Table) SelectRows(idx []int) (*Table, error) {
	for _, i := range idx {
		if i != NoMatch && (i < 0 || i >= t.rows) {
			return nil, fmt.Errorf("SelectRows(%d): %w", i, ErrIndexRange)
		}
	}
	out := &Table{
		fields: make([]string, len(t.fields)),
		pos:    make(map[string]int, len(t.fields)),
		cols:   make([][]string, len(t.cols)),
		rows:   len(idx),
	}
	copy(out.fields, t.fields)
	for f, i := range t.pos {
		out.pos[f] = i
	}
	for c := range t.cols {
		col := make([]string, len(idx))
		for r, i := range idx {
			if i == NoMatch {
				col[r] = NA
			} else {
				col[r] = t.cols[c][i]
			}
		}
		out.cols[c] = col
	}

	return out, nil
}

// AppendRows returns the row-wise concatenation of t and other under the
// union of their schemas: t's fields first, then other's novel fields in
// other's order. Cells absent from either side are filled with NA.
func (t *Table) AppendRows(other *Table) (*Table, error) {
	if other == nil {
		return nil, fmt.Errorf("AppendRows: %w", ErrNilTable)
	}
	fields := make([]string, 0, len(t.fields)+len(other.fields))
	fields = append(fields, t.fields...)
	for _, f := range other.fields {
		if !t.HasField(f) {
			fields = append(fields, f)
		}
	}
	out, err := New(fields, t.rows+other.rows)
	if err != nil {
		return nil, err
	}
	for i, f := range out.fields {
		if j, ok := t.pos[f]; ok {
			copy(out.cols[i][:t.rows], t.cols[j])
		}
		if j, ok := other.pos[f]; ok {
			copy(out.cols[i][t.rows:], other.cols[j])
		}
	}

	return out, nil
}

// Equal reports whether a and b have identical fields (order-sensitive), row
// counts, and cells. Two nil tables are equal.
func Equal(a, b *Table) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || len(a.fields) != len(b.fields) {
		return false
	}
	for i, f := range a.fields {
		if b.fields[i] != f {
			return false
		}
		for r := 0; r < a.rows; r++ {
			if a.cols[i][r] != b.cols[i][r] {
				return false
			}
		}
	}

	return true
}

// shallow copies the table header (fields, positions, column headers) while
// sharing column storage. Callers must replace, never mutate, shared columns.
func (t *Table) shallow() *Table {
	cp := &Table{
		fields: make([]string, len(t.fields)),
		pos:    make(map[string]int, len(t.fields)),
		cols:   make([][]string, len(t.cols)),
		rows:   t.rows,
	}
	copy(cp.fields, t.fields)
	for f, i := range t.pos {
		cp.pos[f] = i
	}
	copy(cp.cols, t.cols)

	return cp
}
