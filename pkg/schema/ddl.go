package schema

import (
	"strings"

	"github.com/pseudomuto/chsync/pkg/consts"
	"github.com/pseudomuto/chsync/pkg/utils"
)

// IDColumnDefinition is the surrogate key column every synced table starts with.
var IDColumnDefinition = utils.QuoteIdentifier(consts.IDColumn) + " UInt64"

// ColumnClause renders the column definitions joined by ", ". A column only gets a
// COMMENT clause when it has a comment.
//
// Example:
//
//	schema.ColumnClause([]schema.Column{
//		{Name: "name", Kind: schema.Text},
//		{Name: "score", Kind: schema.Float64, Comment: "final score"},
//	})
//	// `name` String, `score` Float64 COMMENT 'final score'
func ColumnClause(cols []Column) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = c.Definition()
	}
	return strings.Join(defs, ", ")
}

// CreateTable renders the CREATE TABLE statement for a synced table: the id column
// followed by cols, stored in a MergeTree ordered by id.
//
// Example:
//
//	schema.CreateTable("analytics", "scores", cols, true)
//	// CREATE TABLE IF NOT EXISTS `analytics`.`scores` (`id` UInt64, `name` String, `score` Float64)
//	// ENGINE = MergeTree() ORDER BY (id)
func CreateTable(database, table string, cols []Column, ifNotExists bool) string {
	b := utils.NewSQLBuilder().Create("TABLE")
	if ifNotExists {
		b.IfNotExists()
	}

	defs := []string{IDColumnDefinition}
	if len(cols) > 0 {
		defs = append(defs, ColumnClause(cols))
	}

	return b.
		QualifiedName(database, table).
		Columns(defs...).
		Engine("MergeTree()").
		OrderBy(consts.IDColumn).
		String()
}

// DropTable renders DROP TABLE IF EXISTS for the given table.
func DropTable(database, table string) string {
	return utils.NewSQLBuilder().Drop("TABLE").IfExists().QualifiedName(database, table).String()
}

// TruncateTable renders TRUNCATE TABLE IF EXISTS for the given table.
func TruncateTable(database, table string) string {
	return utils.NewSQLBuilder().Truncate("TABLE").IfExists().QualifiedName(database, table).String()
}
