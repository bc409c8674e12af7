package clickhouse

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/parser"
	"github.com/pseudomuto/chsync/pkg/schema"
	"github.com/pseudomuto/chsync/pkg/utils"
)

// ShowTables lists the tables of a database ordered by name.
func (c *Client) ShowTables(ctx context.Context, database string) ([]string, error) {
	return c.queryStrings(ctx, "SELECT name FROM system.tables WHERE database = ? ORDER BY name", database)
}

// DropTable drops the table if it exists.
func (c *Client) DropTable(ctx context.Context, database, table string) error {
	return errors.Wrapf(
		c.conn.Exec(ctx, schema.DropTable(database, table)),
		"failed to drop table %s",
		utils.QualifiedName(database, table),
	)
}

// TruncateTable removes all rows from the table if it exists.
func (c *Client) TruncateTable(ctx context.Context, database, table string) error {
	return errors.Wrapf(
		c.conn.Exec(ctx, schema.TruncateTable(database, table)),
		"failed to truncate table %s",
		utils.QualifiedName(database, table),
	)
}

// ShowCreateTable returns the CREATE TABLE statement the server holds for the table.
func (c *Client) ShowCreateTable(ctx context.Context, database, table string) (string, error) {
	var ddl string
	if err := c.conn.QueryRow(ctx, "SHOW CREATE TABLE "+utils.QualifiedName(database, table)).Scan(&ddl); err != nil {
		return "", errors.Wrapf(err, "failed to show table %s", utils.QualifiedName(database, table))
	}

	return ddl, nil
}

// RowCount returns the number of rows in the table. A table (or database) that doesn't
// exist has no rows.
func (c *Client) RowCount(ctx context.Context, database, table string) (uint64, error) {
	query := "SELECT count() FROM " + utils.QualifiedName(database, table)

	var n uint64
	if err := c.conn.QueryRow(ctx, query).Scan(&n); err != nil {
		if isMissingObject(err) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "failed to count rows of %s", utils.QualifiedName(database, table))
	}

	return n, nil
}

// DescribeTable returns the columns of an existing table in position order. Types are
// mapped back onto schema kinds through their base type, so Nullable(Float32) is
// Float64 and LowCardinality(String) is Text. Types without a counterpart (arrays,
// maps...) are reported as schema.KindUnknown. A missing table has no columns.
func (c *Client) DescribeTable(ctx context.Context, database, table string) ([]schema.Column, error) {
	query := `
		SELECT name, type, comment
		FROM system.columns
		WHERE database = ? AND table = ?
		ORDER BY position
	`

	rows, err := c.conn.Query(ctx, query, database, table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to describe table %s", utils.QualifiedName(database, table))
	}
	defer rows.Close()

	var cols []schema.Column
	for rows.Next() {
		var name, typ, comment string
		if err := rows.Scan(&name, &typ, &comment); err != nil {
			return nil, errors.Wrap(err, "failed to scan column row")
		}

		cols = append(cols, schema.Column{
			Name:    name,
			Kind:    kindOf(typ),
			Comment: comment,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating column rows")
	}

	return cols, nil
}

func kindOf(typ string) schema.Kind {
	dt, err := parser.ParseDataType(typ)
	if err != nil {
		return schema.KindUnknown
	}

	return schema.KindForType(dt.BaseName())
}
