package tablesync

import (
	"io"

	"github.com/pseudomuto/chsync/pkg/consts"
	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/pseudomuto/chsync/pkg/schema"
)

// RowSource yields the rows to insert. Next returns io.EOF once the rows are exhausted.
// Every row has one value per name returned by Columns, in the same order.
type RowSource interface {
	Columns() []string
	Next() ([]any, error)
}

// frameSource streams the rows of a frame in insert order: a freshly allocated id,
// the coerced value of every inferred column and, when requested, the update_time
// stamp.
type frameSource struct {
	cols   []schema.Column
	values [][]any
	rows   int
	pos    int
	keys   *KeyAllocator
	stamp  *string
}

// newFrameSource builds a source over the columns of f described by cols. A nil stamp
// means update_time is already part of the frame.
func newFrameSource(f *frame.Frame, cols []schema.Column, offset uint64, stamp *string) *frameSource {
	values := make([][]any, len(cols))
	for i, c := range cols {
		col, _ := f.Column(c.Name)
		values[i] = col.Values
	}

	return &frameSource{
		cols:   cols,
		values: values,
		rows:   f.Len(),
		keys:   NewKeyAllocator(offset),
		stamp:  stamp,
	}
}

func (s *frameSource) Columns() []string {
	names := make([]string, 0, len(s.cols)+2)
	names = append(names, consts.IDColumn)
	names = append(names, schema.Names(s.cols)...)
	if s.stamp != nil {
		names = append(names, consts.UpdateTimeColumn)
	}
	return names
}

func (s *frameSource) Next() ([]any, error) {
	if s.pos >= s.rows {
		return nil, io.EOF
	}

	row := make([]any, 0, len(s.cols)+2)
	row = append(row, s.keys.Next())

	for i, c := range s.cols {
		v, err := c.Coerce(s.values[i][s.pos])
		if err != nil {
			return nil, err
		}
		row = append(row, v)
	}

	if s.stamp != nil {
		row = append(row, *s.stamp)
	}

	s.pos++
	return row, nil
}
