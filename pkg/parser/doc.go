// Package parser parses ClickHouse column types using github.com/alecthomas/participle/v2.
//
// The types reported by system.columns (and DESCRIBE TABLE) are parsed into a small
// AST so callers can look through Nullable and LowCardinality wrappers to the base
// type:
//
//	dt, err := parser.ParseDataType("LowCardinality(Nullable(String))")
//	if err != nil {
//		return err
//	}
//
//	dt.BaseName()   // String
//	dt.IsNullable() // true
package parser
