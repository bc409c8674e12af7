package tablesync

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/utils"
)

// appendTuple writes row as a parenthesized tuple of SQL literals.
func appendTuple(sb *strings.Builder, row []any) error {
	sb.WriteByte('(')
	for i, v := range row {
		if i > 0 {
			sb.WriteString(", ")
		}
		if err := appendLiteral(sb, v); err != nil {
			return err
		}
	}
	sb.WriteByte(')')
	return nil
}

// appendLiteral writes a coerced value. Only the representations produced by
// schema.Column.Coerce (plus uint64 ids) are accepted.
func appendLiteral(sb *strings.Builder, v any) error {
	switch x := v.(type) {
	case nil:
		sb.WriteString("NULL")
	case string:
		sb.WriteString(utils.QuoteString(x))
	case int64:
		sb.WriteString(strconv.FormatInt(x, 10))
	case uint64:
		sb.WriteString(strconv.FormatUint(x, 10))
	case float64:
		switch {
		case math.IsNaN(x):
			sb.WriteString("nan")
		case math.IsInf(x, 1):
			sb.WriteString("inf")
		case math.IsInf(x, -1):
			sb.WriteString("-inf")
		default:
			sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
	default:
		return errors.Errorf("unsupported literal value %v (%T)", v, v)
	}
	return nil
}
