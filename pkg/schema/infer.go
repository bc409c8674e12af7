package schema

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pseudomuto/chsync/pkg/consts"
	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/shopspring/decimal"
)

// TypeInferenceError is returned when a column holds a value that is neither text,
// a float, an integer nor missing.
type TypeInferenceError struct {
	Column string
	Value  any
}

func (e *TypeInferenceError) Error() string {
	return fmt.Sprintf("cannot infer type of column %q: unsupported value %v (%T)", e.Column, e.Value, e.Value)
}

// class is the classification of a single value.
type class int

const (
	classMissing class = iota
	classInt
	classFloat
	classText
	classUnsupported
)

// Comments maps column names to column comments.
type Comments map[string]string

// Infer derives a column descriptor for every column of f, in order. Comments are
// attached by column name. The frame is not modified.
//
// Inference never coerces anything itself. Use Column.Coerce on each value to obtain
// the representation the descriptor promises.
func Infer(f *frame.Frame, comments Comments) ([]Column, error) {
	cols := make([]Column, 0, f.Width())
	for _, col := range f.Columns() {
		kind, err := InferColumn(col.Name, col.Values)
		if err != nil {
			return nil, err
		}

		cols = append(cols, Column{
			Name:    col.Name,
			Kind:    kind,
			Comment: comments[col.Name],
		})
	}

	return cols, nil
}

// InferColumn classifies a column using the following precedence: any text-like value
// (strings, byte slices, times, UUIDs) makes the column Text; otherwise any floating
// point value (floats, decimals) makes it Float64; otherwise it's Int64. A column with
// only missing values is Text.
//
// Missing values are nil, nil pointers, NaN floats and driver.Valuer values whose
// Value is nil. Any other type (bools, maps, slices, structs...) is rejected with a
// *TypeInferenceError, as are unsigned integers too large for an Int64 column.
func InferColumn(name string, values []any) (Kind, error) {
	var (
		highest  = classMissing
		overflow any
	)

	for _, v := range values {
		c, val := classify(v)
		if c == classUnsupported {
			return KindUnknown, &TypeInferenceError{Column: name, Value: v}
		}

		if c == classInt && overflow == nil && !fitsInt64(val) {
			overflow = v
		}

		if c > highest {
			highest = c
		}
	}

	switch highest {
	case classText, classMissing:
		return Text, nil
	case classFloat:
		return Float64, nil
	default:
		if overflow != nil {
			return KindUnknown, &TypeInferenceError{Column: name, Value: overflow}
		}
		return Int64, nil
	}
}

// Coerce converts v to the representation used for the column's kind: string for
// Text, float64 for Float64 and int64 for Int64. Missing values become the kind's
// zero value ("", 0.0 or 0).
func (c Column) Coerce(v any) (any, error) {
	cls, val := classify(v)
	switch cls {
	case classMissing:
		return c.Kind.Zero(), nil
	case classUnsupported:
		return nil, &TypeInferenceError{Column: c.Name, Value: v}
	}

	var (
		out any
		ok  bool
	)

	switch c.Kind {
	case Text:
		out, ok = toText(val), true
	case Float64:
		out, ok = toFloat(val)
	case Int64:
		out, ok = toInt(val)
	}

	if !ok {
		return nil, &TypeInferenceError{Column: c.Name, Value: v}
	}
	return out, nil
}

// classify returns the class of v together with v unwrapped from pointers and
// driver.Valuer implementations. Named types fall back to their underlying kind.
func classify(v any) (class, any) {
	for {
		switch x := v.(type) {
		case nil:
			return classMissing, nil
		case string, []byte, time.Time, uuid.UUID:
			return classText, x
		case decimal.Decimal:
			return classFloat, x
		case float64:
			if math.IsNaN(x) {
				return classMissing, nil
			}
			return classFloat, x
		case float32:
			if math.IsNaN(float64(x)) {
				return classMissing, nil
			}
			return classFloat, x
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return classInt, x
		}

		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return classMissing, nil
			}
			v = rv.Elem().Interface()
			continue
		}

		// sql.NullString, sql.NullInt64 and friends
		valuer, ok := v.(driver.Valuer)
		if !ok {
			return classifyKind(v)
		}

		val, err := valuer.Value()
		if err != nil {
			return classUnsupported, v
		}
		if val == nil {
			return classMissing, nil
		}
		v = val
	}
}

// classifyKind handles named types such as `type Status string` or time.Duration by
// their underlying kind. The value is converted to the matching builtin type.
func classifyKind(v any) (class, any) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return classText, rv.String()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return classMissing, nil
		}
		return classFloat, f
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt, rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classInt, rv.Uint()
	default:
		return classUnsupported, v
	}
}

func fitsInt64(v any) bool {
	switch x := v.(type) {
	case uint:
		return uint64(x) <= math.MaxInt64
	case uint64:
		return x <= math.MaxInt64
	default:
		return true
	}
}

func toText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(consts.TimestampLayout)
	case uuid.UUID:
		return x.String()
	case decimal.Decimal:
		return x.String()
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return fmt.Sprint(x)
	}
}

// formatFloat writes floats the way a dataframe stringifies them: integral values
// keep a trailing ".0" so 1.0 reads back as a float.
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if math.IsInf(f, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case decimal.Decimal:
		return x.InexactFloat64(), true
	}

	if i, ok := toInt(v); ok {
		return float64(i), true
	}

	// unsigned values beyond the int64 range are still representable as a float
	if u, ok := v.(uint64); ok {
		return float64(u), true
	}
	if u, ok := v.(uint); ok {
		return float64(u), true
	}

	return 0, false
}

func toInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	default:
		return 0, false
	}
}
