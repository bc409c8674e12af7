package frame_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	f := frame.MustNew(
		frame.Column{Name: "name", Values: []any{"a", "b,c", nil}},
		frame.Column{Name: "score", Values: []any{1.5, 2.0, int64(3)}},
	)

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, frame.Write(&buf, f, frame.FormatCSV))
		require.Equal(t, "name,score\na,1.5\n\"b,c\",2\n,3\n", buf.String())
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, frame.Write(&buf, f, frame.FormatTable))
		require.Equal(t, "name  score\na     1.5\nb,c   2\nNULL  3\n", buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		require.Error(t, frame.Write(&bytes.Buffer{}, f, frame.Format("xml")))
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]frame.Format{"": frame.FormatTable, "CSV": frame.FormatCSV, " table ": frame.FormatTable} {
		got, err := frame.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := frame.ParseFormat("xml")
	require.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	require.Equal(t, "", frame.FormatValue(nil))
	require.Equal(t, "2024-03-01 12:30:00", frame.FormatValue(ts))
	require.Equal(t, "0.1", frame.FormatValue(float32(0.1)))
	require.Equal(t, "42", frame.FormatValue(uint8(42)))
	require.Equal(t, "raw", frame.FormatValue([]byte("raw")))
}
