package schema

import "github.com/pseudomuto/chsync/pkg/utils"

// Column describes one column of a synced table.
type Column struct {
	// Name is the column name, unquoted.
	Name string

	// Kind is the inferred (or, for existing tables, declared) storage class.
	Kind Kind

	// Comment is an optional column comment. Empty means no COMMENT clause.
	Comment string
}

// Definition renders the column as it appears in a CREATE TABLE column list.
//
// Example:
//
//	schema.Column{Name: "score", Kind: schema.Float64, Comment: "final score"}.Definition()
//	// `score` Float64 COMMENT 'final score'
func (c Column) Definition() string {
	def := utils.QuoteIdentifier(c.Name) + " " + c.Kind.String()
	if c.Comment != "" {
		def += " COMMENT " + utils.QuoteString(c.Comment)
	}
	return def
}

// Names returns the names of the given columns in order.
func Names(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
