package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
)

// Format selects how Write renders a frame.
type Format string

const (
	// FormatTable renders an aligned, human readable table.
	FormatTable Format = "table"

	// FormatCSV renders RFC 4180 CSV with a header row.
	FormatCSV Format = "csv"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", errors.Errorf("unknown output format %q (expected table or csv)", s)
	}
}

// Write renders f to w in the given format.
func Write(w io.Writer, f *Frame, format Format) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, f)
	case FormatTable, "":
		return writeTable(w, f)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func writeCSV(w io.Writer, f *Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Names()); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	rec := make([]string, f.Width())
	for i := 0; i < f.Len(); i++ {
		for c, v := range f.Row(i) {
			rec[c] = FormatValue(v)
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "failed to write CSV row %d", i+1)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush CSV output")
}

func writeTable(w io.Writer, f *Frame) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(f.Names(), "\t"))
	for i := 0; i < f.Len(); i++ {
		row := f.Row(i)
		cells := make([]string, len(row))
		for c, v := range row {
			if v == nil {
				cells[c] = "NULL"
				continue
			}
			cells[c] = FormatValue(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return errors.Wrap(tw.Flush(), "failed to write table")
}

// FormatValue renders a single value as text. Missing values render as "".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(time.DateTime)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
