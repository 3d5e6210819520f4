// Package table provides an ordered, column-keyed record table for
// catalog exports.
//
// A Table is a header (ordered column names) plus rows of string cells.
// Absent and empty cells are both represented as "". Every derivation
// returns a new Table; source columns are never mutated in place, and row
// order is preserved through every transform.
package table

import (
	"fmt"
	"sort"
)

// Row maps a column name to its cell value for one record.
type Row map[string]string

// Table is an ordered collection of rows sharing one column set.
type Table struct {
	columns []string
	rows    []Row
}

// New creates an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Column returns the named column's values in row order. Rows lacking the
// column yield "".
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[name]
	}
	return values
}

// Append adds a row. Cells for unknown columns are ignored by later
// serialization but kept on the row.
func (t *Table) Append(row Row) {
	t.rows = append(t.rows, row)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.columns)
	out.rows = make([]Row, len(t.rows))
	for i, row := range t.rows {
		cp := make(Row, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out.rows[i] = cp
	}
	return out
}

// WithColumn returns a copy of the table widened by one derived column.
// values must have one entry per row. If the column already exists its
// values are replaced but its position is kept.
func (t *Table) WithColumn(name string, values []string) (*Table, error) {
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("column %q: %d values for %d rows", name, len(values), len(t.rows))
	}
	out := t.Clone()
	if !out.HasColumn(name) {
		out.columns = append(out.columns, name)
	}
	for i := range out.rows {
		out.rows[i][name] = values[i]
	}
	return out, nil
}

// Drop removes the named columns. A missing column is a shape error: the
// pipeline assumes a fixed export schema.
func (t *Table) Drop(cols ...string) (*Table, error) {
	for _, c := range cols {
		if !t.HasColumn(c) {
			return nil, fmt.Errorf("column %q not present in table", c)
		}
	}
	dropped := make(map[string]bool, len(cols))
	for _, c := range cols {
		dropped[c] = true
	}
	out := &Table{}
	for _, c := range t.columns {
		if !dropped[c] {
			out.columns = append(out.columns, c)
		}
	}
	out.rows = make([]Row, len(t.rows))
	for i, row := range t.rows {
		cp := make(Row, len(row))
		for k, v := range row {
			if !dropped[k] {
				cp[k] = v
			}
		}
		out.rows[i] = cp
	}
	return out, nil
}

// Select returns a table containing, in order, the named columns that
// exist. Unknown names are skipped so callers can pass a superset schema.
func (t *Table) Select(cols []string) *Table {
	var keep []string
	for _, c := range cols {
		if t.HasColumn(c) {
			keep = append(keep, c)
		}
	}
	out := New(keep)
	out.rows = make([]Row, len(t.rows))
	for i, row := range t.rows {
		cp := make(Row, len(keep))
		for _, c := range keep {
			cp[c] = row[c]
		}
		out.rows[i] = cp
	}
	return out
}

// Filter partitions the rows by pred, preserving relative order in both
// halves. The partition is total: every row lands in exactly one output.
func (t *Table) Filter(pred func(Row) bool) (in, out *Table) {
	in = New(t.columns)
	out = New(t.columns)
	for _, row := range t.rows {
		if pred(row) {
			in.rows = append(in.rows, row)
		} else {
			out.rows = append(out.rows, row)
		}
	}
	return in, out
}

// Concat appends other's rows to a copy of t. Columns present only in
// other are appended to the column list in order.
func (t *Table) Concat(other *Table) *Table {
	out := t.Clone()
	for _, c := range other.columns {
		if !out.HasColumn(c) {
			out.columns = append(out.columns, c)
		}
	}
	out.rows = append(out.rows, other.rows...)
	return out
}

// SortedExtraColumns returns, sorted, the columns of t that are not in
// the given set. Used to retain unprocessed export columns.
func (t *Table) SortedExtraColumns(exclude []string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, c := range exclude {
		skip[c] = true
	}
	var extra []string
	for _, c := range t.columns {
		if !skip[c] {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return extra
}
