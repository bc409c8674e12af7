package tablesync

import (
	"context"

	"github.com/pseudomuto/chsync/pkg/schema"
	"github.com/pseudomuto/chsync/pkg/utils"
)

type (
	// Store executes statements against the target server. *clickhouse.Client
	// implements it.
	Store interface {
		Exec(ctx context.Context, query string, args ...any) error

		// RowCount returns the number of rows in the table, 0 when it doesn't exist.
		RowCount(ctx context.Context, database, table string) (uint64, error)
	}

	// Describer is implemented by stores that can report the columns of an existing
	// table. Appends into such stores are checked for compatibility before inserting.
	Describer interface {
		DescribeTable(ctx context.Context, database, table string) ([]schema.Column, error)
	}

	// TableRef identifies a target table.
	TableRef struct {
		Database string
		Table    string
	}
)

// String returns the backticked, database-qualified table name.
func (r TableRef) String() string {
	return utils.QualifiedName(r.Database, r.Table)
}
