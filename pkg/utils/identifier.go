package utils

import "strings"

var identifierEscaper = strings.NewReplacer("\\", "\\\\", "`", "\\`")

// QuoteIdentifier wraps a single identifier in backticks. Unlike a dotted path, the
// name is treated as one identifier, so "price.usd" stays a single column name.
// Backslashes and backticks inside the name are escaped.
//
// Examples:
//   - "table" -> "`table`"
//   - "my table" -> "`my table`"
//   - "price.usd" -> "`price.usd`"
//   - "we`ird" -> "`we\\`ird`"
//   - "" -> ""
func QuoteIdentifier(name string) string {
	if name == "" {
		return ""
	}

	return "`" + identifierEscaper.Replace(name) + "`"
}

// QuoteIdentifiers quotes every name and joins them with ", ".
func QuoteIdentifiers(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = QuoteIdentifier(name)
	}

	return strings.Join(quoted, ", ")
}

// QualifiedName formats a database-qualified object name with proper backticks.
// If database is empty, only the name is backticked.
//
// Examples:
//   - ("analytics", "events") -> "`analytics`.`events`"
//   - ("", "events") -> "`events`"
func QualifiedName(database, name string) string {
	if database != "" {
		return QuoteIdentifier(database) + "." + QuoteIdentifier(name)
	}
	return QuoteIdentifier(name)
}
