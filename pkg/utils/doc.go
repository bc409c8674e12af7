// Package utils provides the SQL text helpers shared by the schema, clickhouse and
// tablesync packages.
//
// # Identifiers (identifier.go)
//
// Generated statements always backtick identifiers. Column names coming from a frame
// can contain spaces, dots or reserved words, so each name is quoted as a single
// identifier:
//
//	utils.QuoteIdentifier("price.usd")
//	// Result: `price.usd`
//
//	utils.QualifiedName("analytics", "events")
//	// Result: `analytics`.`events`
//
// # Literals (escape.go)
//
// String values are written into INSERT statements as single-quoted literals:
//
//	utils.QuoteString("it's")
//	// Result: 'it\'s'
//
// # Statements (sqlbuilder.go)
//
// SQLBuilder composes DDL from optional clauses, skipping the ones whose input is
// empty:
//
//	utils.NewSQLBuilder().Drop("TABLE").IfExists().QualifiedName("db", "t").String()
//	// Result: DROP TABLE IF EXISTS `db`.`t`
package utils
