package frame

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CSVOptions controls how ReadCSV interprets its input.
type CSVOptions struct {
	// Comma is the field delimiter (default ',').
	Comma rune

	// TrimSpace trims leading and trailing whitespace from every cell.
	TrimSpace bool

	// RawStrings disables numeric detection so every non-empty cell stays a string.
	RawStrings bool
}

// ReadCSV reads a CSV document with a header row into a Frame.
//
// Cells are typed the way a dataframe reader would type them: a cell that parses as a
// base-10 integer becomes an int64, one that parses as a float becomes a float64 and
// anything else stays a string. Empty cells become nil (missing). Numeric detection is
// per cell, so a column mixing numbers and words is inferred as text downstream.
//
// Rows shorter than the header are padded with missing values; longer rows are an error.
//
// Example:
//
//	f, err := frame.ReadCSV(strings.NewReader("name,score\na,1\nb,2.5\n"), frame.CSVOptions{})
func ReadCSV(r io.Reader, opts CSVOptions) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	header, err := cr.Read()
	if err == io.EOF {
		return New()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i].Name = strings.TrimSpace(name)
	}

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CSV line %d", line)
		}

		if len(rec) > len(cols) {
			return nil, errors.Errorf("CSV line %d has %d fields, header has %d", line, len(rec), len(cols))
		}

		for i := range cols {
			var v any
			if i < len(rec) {
				v = parseCell(rec[i], opts)
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	return New(cols...)
}

func parseCell(cell string, opts CSVOptions) any {
	if opts.TrimSpace {
		cell = strings.TrimSpace(cell)
	}

	if cell == "" {
		return nil
	}

	if opts.RawStrings {
		return cell
	}

	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}

	return cell
}
