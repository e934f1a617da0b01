// Package table holds the in-memory tabular data model shared by sources,
// formatters, and sinks. Cell values are a tagged union over the shapes a
// raw dataset can carry (missing, native time, number, text); tables are
// immutable — every transforming operation returns a new Table.
package table

import (
	"fmt"
	"strconv"
	"time"
)

type Kind uint8

const (
	KindMissing Kind = iota
	KindTime
	KindNumber
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindTime:
		return "time"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Value is one cell. The zero value is the missing marker.
type Value struct {
	kind Kind
	tm   time.Time
	num  float64
	str  string
}

func Missing() Value              { return Value{} }
func TimeValue(t time.Time) Value { return Value{kind: KindTime, tm: t} }
func Number(f float64) Value      { return Value{kind: KindNumber, num: f} }
func Text(s string) Value         { return Value{kind: KindText, str: s} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsMissing() bool { return v.kind == KindMissing }
func (v Value) Time() time.Time { return v.tm }
func (v Value) Number() float64 { return v.num }
func (v Value) Text() string    { return v.str }

// Render returns the cell as a string for sink output. Missing renders as
// the empty string, mirroring how sources read empty cells back in.
func (v Value) Render() string {
	switch v.kind {
	case KindMissing:
		return ""
	case KindTime:
		return v.tm.Format(time.RFC3339)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return v.str
	}
}

// Table is an ordered collection of named columns of equal length.
type Table struct {
	names []string
	cols  map[string][]Value
}

func New() *Table {
	return &Table{cols: make(map[string][]Value)}
}

// AddColumn appends a named column. The first column fixes the row count.
func (t *Table) AddColumn(name string, vals []Value) error {
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("table: duplicate column %q", name)
	}
	if len(t.names) > 0 && len(vals) != t.Rows() {
		return fmt.Errorf("table: column %q has %d rows, want %d", name, len(vals), t.Rows())
	}
	t.names = append(t.names, name)
	t.cols[name] = vals
	return nil
}

func (t *Table) Rows() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.cols[t.names[0]])
}

// Columns returns the column names in order. The caller owns the slice.
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the cells of a named column. Callers must treat the
// returned slice as read-only; transformations go through WithColumn.
func (t *Table) Column(name string) ([]Value, bool) {
	vals, ok := t.cols[name]
	return vals, ok
}

// Clone returns an independent copy.
func (t *Table) Clone() *Table {
	out := New()
	for _, name := range t.names {
		_ = out.AddColumn(name, append([]Value(nil), t.cols[name]...))
	}
	return out
}

// DropColumns returns a new table without the named columns. Names absent
// from the table are ignored.
func (t *Table) DropColumns(names ...string) *Table {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := New()
	for _, name := range t.names {
		if drop[name] {
			continue
		}
		_ = out.AddColumn(name, append([]Value(nil), t.cols[name]...))
	}
	return out
}

// WithColumn returns a new table with the named column replaced (or
// appended when absent). The input table is left untouched.
func (t *Table) WithColumn(name string, vals []Value) (*Table, error) {
	if len(t.names) > 0 && len(vals) != t.Rows() {
		return nil, fmt.Errorf("table: column %q has %d rows, want %d", name, len(vals), t.Rows())
	}
	out := New()
	replaced := false
	for _, n := range t.names {
		if n == name {
			_ = out.AddColumn(n, append([]Value(nil), vals...))
			replaced = true
			continue
		}
		_ = out.AddColumn(n, append([]Value(nil), t.cols[n]...))
	}
	if !replaced {
		_ = out.AddColumn(name, append([]Value(nil), vals...))
	}
	return out, nil
}
