package frame

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

var (
	// ErrRaggedFrame is returned when columns hold differing numbers of values.
	ErrRaggedFrame = errors.New("columns have differing lengths")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")
)

type (
	// Column is a named sequence of values. Values may be of any Go type; nil marks a
	// missing value.
	Column struct {
		Name   string
		Values []any
	}

	// Frame is an ordered set of equally sized columns.
	//
	// A Frame is treated as read-only by every package in this module: operations
	// such as Without return new frames that share value slices with the receiver
	// rather than modifying it.
	Frame struct {
		columns []Column
		index   map[string]int
		rows    int
	}
)

// New creates a Frame from the given columns, validating that every column has the
// same length and a unique name.
//
// Example:
//
//	f, err := frame.New(
//		frame.Column{Name: "name", Values: []any{"a", "b", "c"}},
//		frame.Column{Name: "score", Values: []any{1, 2.5, 3}},
//	)
func New(cols ...Column) (*Frame, error) {
	f := &Frame{
		columns: make([]Column, len(cols)),
		index:   make(map[string]int, len(cols)),
	}

	for i, col := range cols {
		if _, ok := f.index[col.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicateColumn, "column %q", col.Name)
		}

		if i == 0 {
			f.rows = len(col.Values)
		} else if len(col.Values) != f.rows {
			return nil, errors.Wrapf(
				ErrRaggedFrame,
				"column %q has %d values, expected %d",
				col.Name,
				len(col.Values),
				f.rows,
			)
		}

		f.columns[i] = col
		f.index[col.Name] = i
	}

	return f, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(cols ...Column) *Frame {
	f, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.rows
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.columns)
}

// Columns returns the frame's columns in order. The returned slice is a copy, but the
// value slices are shared with the frame and must not be modified.
func (f *Frame) Columns() []Column {
	return slices.Clone(f.columns)
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}
	return names
}

// Has reports whether the frame has a column with the given name.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, false
	}
	return f.columns[i], true
}

// Row returns the values of row i in column order. It panics if i is out of range.
func (f *Frame) Row(i int) []any {
	if i < 0 || i >= f.rows {
		panic(fmt.Sprintf("frame: row index %d out of range [0,%d)", i, f.rows))
	}

	row := make([]any, len(f.columns))
	for c, col := range f.columns {
		row[c] = col.Values[i]
	}
	return row
}

// Without returns a frame without the named columns. Unknown names are ignored and the
// receiver is left untouched.
func (f *Frame) Without(names ...string) *Frame {
	out := &Frame{
		columns: make([]Column, 0, len(f.columns)),
		index:   make(map[string]int, len(f.columns)),
		rows:    f.rows,
	}

	for _, col := range f.columns {
		if slices.Contains(names, col.Name) {
			continue
		}
		out.index[col.Name] = len(out.columns)
		out.columns = append(out.columns, col)
	}

	return out
}
