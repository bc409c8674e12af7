package clickhouse

import (
	"context"
	"reflect"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type (
	fakeConn struct {
		driver.Conn

		rows     *fakeRows
		row      *fakeRow
		queryErr error
		execErr  error
		pingErr  error

		queries []string
		args    [][]any
		closed  bool
	}

	fakeRows struct {
		driver.Rows

		types []driver.ColumnType
		data  [][]any
		pos   int
		err   error
	}

	fakeRow struct {
		driver.Row

		values []any
		err    error
	}

	fakeColumnType struct {
		driver.ColumnType

		name     string
		scanType reflect.Type
	}
)

func (c *fakeConn) record(query string, args []any) {
	c.queries = append(c.queries, query)
	c.args = append(c.args, args)
}

func (c *fakeConn) Query(_ context.Context, query string, args ...any) (driver.Rows, error) {
	c.record(query, args)
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	return c.rows, nil
}

func (c *fakeConn) QueryRow(_ context.Context, query string, args ...any) driver.Row {
	c.record(query, args)
	return c.row
}

func (c *fakeConn) Exec(_ context.Context, query string, args ...any) error {
	c.record(query, args)
	return c.execErr
}

func (c *fakeConn) Ping(context.Context) error { return c.pingErr }

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

// stringRows returns rows with a single String column.
func stringRows(values ...string) *fakeRows {
	data := make([][]any, len(values))
	for i, v := range values {
		data[i] = []any{v}
	}

	return &fakeRows{
		types: []driver.ColumnType{column("name", "")},
		data:  data,
	}
}

func column(name string, sample any) driver.ColumnType {
	return &fakeColumnType{name: name, scanType: reflect.TypeOf(sample)}
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(dest, r.data[r.pos-1])
}

func (r *fakeRows) ColumnTypes() []driver.ColumnType { return r.types }

func (r *fakeRows) Columns() []string {
	names := make([]string, len(r.types))
	for i, t := range r.types {
		names[i] = t.Name()
	}
	return names
}

func (r *fakeRows) Err() error   { return r.err }
func (r *fakeRows) Close() error { return nil }

func (r *fakeRow) Err() error { return r.err }

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

func (c *fakeColumnType) Name() string           { return c.name }
func (c *fakeColumnType) ScanType() reflect.Type { return c.scanType }

func assign(dest, values []any) error {
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(values[i]))
	}
	return nil
}
