package clickhouse

import (
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/pkg/errors"
)

// systemDatabases are managed by ClickHouse itself and hidden unless explicitly asked for.
var systemDatabases = []string{
	"system",
	"information_schema",
	"INFORMATION_SCHEMA",
}

// Server error codes that mean the target of a query doesn't exist.
const (
	codeUnknownTable    = 60
	codeUnknownDatabase = 81
)

// buildSystemDatabaseExclusion creates a parameterized "NOT IN" clause excluding the
// system databases. The columnName parameter names the column to check (e.g. "name").
func buildSystemDatabaseExclusion(columnName string) (string, []any) {
	placeholders := make([]string, len(systemDatabases))
	params := make([]any, len(systemDatabases))

	for i, db := range systemDatabases {
		placeholders[i] = "?"
		params[i] = db
	}

	return columnName + " NOT IN (" + strings.Join(placeholders, ", ") + ")", params
}

// isMissingObject reports whether err is a server exception for an unknown table or
// database.
func isMissingObject(err error) bool {
	var exception *clickhouse.Exception
	if !errors.As(err, &exception) {
		return false
	}

	return exception.Code == codeUnknownTable || exception.Code == codeUnknownDatabase
}
