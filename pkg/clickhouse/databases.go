package clickhouse

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/utils"
)

// ShowDatabases lists the databases on the server ordered by name. System databases
// are only included when all is true.
func (c *Client) ShowDatabases(ctx context.Context, all bool) ([]string, error) {
	query := "SELECT name FROM system.databases"
	var params []any
	if !all {
		var condition string
		condition, params = buildSystemDatabaseExclusion("name")
		query += " WHERE " + condition
	}
	query += " ORDER BY name"

	return c.queryStrings(ctx, query, params...)
}

// CreateDatabase creates the database if it doesn't exist. An empty engine leaves the
// choice to the server (Atomic); an empty comment adds no COMMENT clause.
//
// Example:
//
//	err := client.CreateDatabase(ctx, "analytics", "", "")
//	// CREATE DATABASE IF NOT EXISTS `analytics`
func (c *Client) CreateDatabase(ctx context.Context, database, engine, comment string) error {
	if database == "" {
		return errors.New("database name is required")
	}

	query := utils.NewSQLBuilder().
		Create("DATABASE").
		IfNotExists().
		Name(database).
		Engine(engine).
		Comment(comment).
		String()

	return errors.Wrapf(c.conn.Exec(ctx, query), "failed to create database %s", database)
}

func (c *Client) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return out, nil
}
