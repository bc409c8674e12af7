package frame

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ReadJSON reads a JSON array of objects into a Frame.
//
// Columns appear in the order their keys are first seen. Records missing a key get a
// missing value for that column. Integral numbers become int64, other numbers float64,
// and null becomes nil. Nested objects and arrays are kept as-is and will be rejected
// by type inference.
//
// Example:
//
//	f, err := frame.ReadJSON(strings.NewReader(`[{"name":"a","score":1},{"name":"b","score":2.5}]`))
func ReadJSON(r io.Reader) (*Frame, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	var (
		cols  []Column
		index = make(map[string]int)
		rows  int
	)

	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, errors.Wrapf(err, "record %d", rows+1)
		}

		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, errors.Wrapf(err, "record %d", rows+1)
			}

			key, ok := tok.(string)
			if !ok {
				return nil, errors.Errorf("record %d: expected object key, got %v", rows+1, tok)
			}

			var raw any
			if err := dec.Decode(&raw); err != nil {
				return nil, errors.Wrapf(err, "record %d: failed to decode %q", rows+1, key)
			}

			i, seen := index[key]
			if !seen {
				i = len(cols)
				index[key] = i
				cols = append(cols, Column{Name: key, Values: make([]any, rows, rows+1)})
			}

			// duplicate keys within a record keep the last value
			if len(cols[i].Values) > rows {
				cols[i].Values[rows] = jsonValue(raw)
				continue
			}
			cols[i].Values = append(cols[i].Values, jsonValue(raw))
		}

		if err := expectDelim(dec, '}'); err != nil {
			return nil, errors.Wrapf(err, "record %d", rows+1)
		}

		rows++
		for i := range cols {
			if len(cols[i].Values) < rows {
				cols[i].Values = append(cols[i].Values, nil)
			}
		}
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}

	return New(cols...)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "failed to read JSON")
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.Errorf("expected %q in JSON input, got %v", want, tok)
	}

	return nil
}

func jsonValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}

	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i
	}

	if f, err := n.Float64(); err == nil {
		return f
	}

	return n.String()
}
