package schema

import "strings"

// Kind is the storage class inferred for a column.
type Kind int

const (
	// KindUnknown is reported for server types that don't map onto a Kind.
	KindUnknown Kind = iota

	// Text columns hold strings.
	Text

	// Float64 columns hold IEEE-754 doubles.
	Float64

	// Int64 columns hold signed 64-bit integers.
	Int64
)

// String returns the ClickHouse type name used in DDL. Text is written as String,
// ClickHouse's canonical name for the type (TEXT is an alias).
func (k Kind) String() string {
	switch k {
	case Text:
		return "String"
	case Float64:
		return "Float64"
	case Int64:
		return "Int64"
	default:
		return "Unknown"
	}
}

// Numeric reports whether values of this kind are numbers.
func (k Kind) Numeric() bool {
	return k == Float64 || k == Int64
}

// Zero returns the value used to fill missing entries in a column of this kind.
func (k Kind) Zero() any {
	switch k {
	case Float64:
		return float64(0)
	case Int64:
		return int64(0)
	default:
		return ""
	}
}

// KindForType maps a ClickHouse base type name (without Nullable or LowCardinality
// wrappers) onto a Kind. It returns KindUnknown for types with no obvious counterpart
// such as arrays, maps or tuples.
func KindForType(typeName string) Kind {
	switch {
	case typeName == "String",
		strings.HasPrefix(typeName, "FixedString"),
		strings.HasPrefix(typeName, "Enum"),
		strings.HasPrefix(typeName, "Date"),
		typeName == "UUID",
		typeName == "IPv4",
		typeName == "IPv6":
		return Text
	case strings.HasPrefix(typeName, "Float"),
		strings.HasPrefix(typeName, "Decimal"),
		strings.HasPrefix(typeName, "BFloat"):
		return Float64
	case strings.HasPrefix(typeName, "Int"),
		strings.HasPrefix(typeName, "UInt"),
		typeName == "Bool":
		return Int64
	default:
		return KindUnknown
	}
}
