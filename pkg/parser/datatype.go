package parser

import "strings"

type (
	// DataType is any ClickHouse column type: a primitive, a parametric type or one of
	// the composite types (Array, Tuple, Nested, Map) possibly wrapped in Nullable or
	// LowCardinality.
	DataType struct {
		Nullable       *NullableType       `parser:"@@"`
		Array          *ArrayType          `parser:"| @@"`
		Tuple          *TupleType          `parser:"| @@"`
		Nested         *NestedType         `parser:"| @@"`
		Map            *MapType            `parser:"| @@"`
		LowCardinality *LowCardinalityType `parser:"| @@"`
		Simple         *SimpleType         `parser:"| @@"`
	}

	// NullableType is Nullable(T)
	NullableType struct {
		Type *DataType `parser:"'Nullable' '(' @@ ')'"`
	}

	// ArrayType is Array(T)
	ArrayType struct {
		Type *DataType `parser:"'Array' '(' @@ ')'"`
	}

	// TupleType is Tuple(T1, T2) or Tuple(a T1, b T2)
	TupleType struct {
		Elements []TupleElement `parser:"'Tuple' '(' @@ (',' @@)* ')'"`
	}

	// TupleElement is a single, optionally named, tuple element.
	TupleElement struct {
		Name        *string   `parser:"@(Ident | BacktickIdent)"`
		Type        *DataType `parser:"@@"`
		UnnamedType *DataType `parser:"| @@"`
	}

	// NestedType is Nested(a T1, b T2)
	NestedType struct {
		Columns []NestedColumn `parser:"'Nested' '(' @@ (',' @@)* ')'"`
	}

	// NestedColumn is a named column of a Nested type.
	NestedColumn struct {
		Name string    `parser:"@(Ident | BacktickIdent)"`
		Type *DataType `parser:"@@"`
	}

	// MapType is Map(K, V)
	MapType struct {
		KeyType   *DataType `parser:"'Map' '(' @@ ','"`
		ValueType *DataType `parser:"@@ ')'"`
	}

	// LowCardinalityType is LowCardinality(T)
	LowCardinalityType struct {
		Type *DataType `parser:"'LowCardinality' '(' @@ ')'"`
	}

	// SimpleType is a primitive or parametric type such as String, FixedString(16) or
	// DateTime64(3, 'UTC').
	SimpleType struct {
		Name       string          `parser:"@(Ident | BacktickIdent)"`
		Parameters []TypeParameter `parser:"('(' (@@ (',' @@)*)? ')')?"`
	}

	// TypeParameter is a single argument of a parametric type.
	TypeParameter struct {
		Function  *ParametricFunction `parser:"@@"`
		EnumValue *EnumValue          `parser:"| @@"`
		Number    *string             `parser:"| @Number"`
		String    *string             `parser:"| @String"`
		Ident     *string             `parser:"| @(Ident | BacktickIdent)"`
	}

	// EnumValue is an Enum8/Enum16 member: 'name' = number
	EnumValue struct {
		Name  string `parser:"@String '='"`
		Value string `parser:"@Number"`
	}

	// ParametricFunction is a function call used as a type argument, as in
	// AggregateFunction(quantiles(0.5), Float64).
	ParametricFunction struct {
		Name       string          `parser:"@(Ident | BacktickIdent)"`
		Parameters []TypeParameter `parser:"'(' (@@ (',' @@)*)? ')'"`
	}
)

// IsNullable reports whether the outermost wrapper (ignoring LowCardinality) is
// Nullable.
func (d *DataType) IsNullable() bool {
	switch {
	case d == nil:
		return false
	case d.Nullable != nil:
		return true
	case d.LowCardinality != nil:
		return d.LowCardinality.Type.IsNullable()
	default:
		return false
	}
}

// BaseName returns the name of the type once Nullable and LowCardinality wrappers are
// removed. Parameters are dropped, so DateTime64(3) yields "DateTime64", and composite
// types yield their constructor ("Array", "Map", ...).
func (d *DataType) BaseName() string {
	switch {
	case d == nil:
		return ""
	case d.Nullable != nil:
		return d.Nullable.Type.BaseName()
	case d.LowCardinality != nil:
		return d.LowCardinality.Type.BaseName()
	case d.Array != nil:
		return "Array"
	case d.Tuple != nil:
		return "Tuple"
	case d.Nested != nil:
		return "Nested"
	case d.Map != nil:
		return "Map"
	case d.Simple != nil:
		return d.Simple.Name
	default:
		return ""
	}
}

// String returns the SQL representation of the data type.
func (d *DataType) String() string {
	switch {
	case d == nil:
		return ""
	case d.Nullable != nil:
		return "Nullable(" + d.Nullable.Type.String() + ")"
	case d.Array != nil:
		return "Array(" + d.Array.Type.String() + ")"
	case d.Tuple != nil:
		elems := make([]string, len(d.Tuple.Elements))
		for i, e := range d.Tuple.Elements {
			if e.Name != nil {
				elems[i] = *e.Name + " " + e.Type.String()
			} else {
				elems[i] = e.UnnamedType.String()
			}
		}
		return "Tuple(" + strings.Join(elems, ", ") + ")"
	case d.Nested != nil:
		cols := make([]string, len(d.Nested.Columns))
		for i, c := range d.Nested.Columns {
			cols[i] = c.Name + " " + c.Type.String()
		}
		return "Nested(" + strings.Join(cols, ", ") + ")"
	case d.Map != nil:
		return "Map(" + d.Map.KeyType.String() + ", " + d.Map.ValueType.String() + ")"
	case d.LowCardinality != nil:
		return "LowCardinality(" + d.LowCardinality.Type.String() + ")"
	case d.Simple != nil:
		if len(d.Simple.Parameters) == 0 {
			return d.Simple.Name
		}
		return d.Simple.Name + "(" + formatParameters(d.Simple.Parameters) + ")"
	default:
		return ""
	}
}

// formatParameters is a function rather than a TypeParameter method because the
// String field would clash with a String() method.
func formatParameters(params []TypeParameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		switch {
		case p.Function != nil:
			out[i] = p.Function.Name + "(" + formatParameters(p.Function.Parameters) + ")"
		case p.EnumValue != nil:
			out[i] = p.EnumValue.Name + " = " + p.EnumValue.Value
		case p.Number != nil:
			out[i] = *p.Number
		case p.String != nil:
			out[i] = *p.String
		case p.Ident != nil:
			out[i] = *p.Ident
		}
	}
	return strings.Join(out, ", ")
}
