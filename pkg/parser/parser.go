package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// typeLexer tokenizes ClickHouse type expressions as reported by system.columns
	typeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
		{Name: "BacktickIdent", Pattern: "`([^`\\\\]|\\\\.)*`"},
		{Name: "Number", Pattern: `-?\d+(\.\d*)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[(),=]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for data types
	parser = participle.MustBuild[DataType](
		participle.Lexer(typeLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(4),
	)
)

// ParseDataType parses a ClickHouse column type such as "Nullable(Decimal(18, 4))"
// or "LowCardinality(String)".
//
// Example usage:
//
//	dt, err := parser.ParseDataType("Nullable(Float64)")
//	if err != nil {
//		return err
//	}
//
//	dt.BaseName() // Float64
func ParseDataType(s string) (*DataType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty data type")
	}

	dt, err := parser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse data type %q", s)
	}

	return dt, nil
}
