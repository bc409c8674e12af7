package utils

import "strings"

// SQLBuilder provides a fluent interface for building ClickHouse statements.
// It handles identifier backticking, literal escaping and conditional clauses so
// statement construction reads the same way across packages.
//
// Example usage:
//
//	sql := NewSQLBuilder().
//		Create("TABLE").
//		IfNotExists().
//		QualifiedName("analytics", "events").
//		Columns("`id` UInt64", "`name` String").
//		Engine("MergeTree()").
//		OrderBy("id").
//		String()
//	// Output: CREATE TABLE IF NOT EXISTS `analytics`.`events` (`id` UInt64, `name` String) ENGINE = MergeTree() ORDER BY (id)
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 10),
	}
}

// Create adds a CREATE clause with the specified object type.
//
// Example:
//
//	builder.Create("DATABASE")  // CREATE DATABASE
//	builder.Create("TABLE")     // CREATE TABLE
func (b *SQLBuilder) Create(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", objectType)
	return b
}

// Drop adds a DROP clause with the specified object type.
func (b *SQLBuilder) Drop(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "DROP", objectType)
	return b
}

// Truncate adds a TRUNCATE clause with the specified object type.
func (b *SQLBuilder) Truncate(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "TRUNCATE", objectType)
	return b
}

// IfExists adds an IF EXISTS clause. This should be called after DROP and TRUNCATE.
func (b *SQLBuilder) IfExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "EXISTS")
	return b
}

// IfNotExists adds an IF NOT EXISTS clause. This should be called after CREATE.
func (b *SQLBuilder) IfNotExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "NOT", "EXISTS")
	return b
}

// Name adds a backticked object name.
//
// Example:
//
//	builder.Name("analytics")  // `analytics`
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, QuoteIdentifier(name))
	}
	return b
}

// QualifiedName adds a qualified name with optional database prefix.
//
// Example:
//
//	builder.QualifiedName("", "events")           // `events`
//	builder.QualifiedName("analytics", "events")  // `analytics`.`events`
func (b *SQLBuilder) QualifiedName(database, name string) *SQLBuilder {
	if qualified := QualifiedName(database, name); qualified != "" {
		b.parts = append(b.parts, qualified)
	}
	return b
}

// Columns adds a parenthesized, comma separated list of column definitions.
func (b *SQLBuilder) Columns(defs ...string) *SQLBuilder {
	if len(defs) > 0 {
		b.parts = append(b.parts, "("+strings.Join(defs, ", ")+")")
	}
	return b
}

// Engine adds an ENGINE clause with the specified engine name.
//
// Example:
//
//	builder.Engine("Atomic")         // ENGINE = Atomic
//	builder.Engine("MergeTree()")    // ENGINE = MergeTree()
func (b *SQLBuilder) Engine(engine string) *SQLBuilder {
	if engine != "" {
		b.parts = append(b.parts, "ENGINE", "=", engine)
	}
	return b
}

// OrderBy adds an ORDER BY clause for table engines.
//
// Example:
//
//	builder.OrderBy("id")  // ORDER BY (id)
func (b *SQLBuilder) OrderBy(expr string) *SQLBuilder {
	if expr != "" {
		b.parts = append(b.parts, "ORDER", "BY", "("+expr+")")
	}
	return b
}

// Comment adds a COMMENT clause with the specified comment text.
// The comment is automatically quoted and SQL-escaped.
//
// Example:
//
//	builder.Comment("Analytics database")  // COMMENT 'Analytics database'
//	builder.Comment("")                     // (nothing added)
func (b *SQLBuilder) Comment(comment string) *SQLBuilder {
	if comment != "" {
		b.parts = append(b.parts, "COMMENT", QuoteString(comment))
	}
	return b
}

// String builds and returns the final statement. No trailing semicolon is added
// since the native protocol executes one statement at a time.
//
// Example:
//
//	sql := NewSQLBuilder().Drop("TABLE").IfExists().QualifiedName("db", "t").String()
//	// Returns: "DROP TABLE IF EXISTS `db`.`t`"
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
