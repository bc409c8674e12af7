package frame_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	input := `[
		{"name": "a", "score": 1},
		{"name": "b", "score": 2.5, "extra": true},
		{"score": 3, "name": null}
	]`

	f, err := frame.ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"name", "score", "extra"}, f.Names())
	require.Equal(t, 3, f.Len())

	name, _ := f.Column("name")
	require.Equal(t, []any{"a", "b", nil}, name.Values)

	score, _ := f.Column("score")
	require.Equal(t, []any{int64(1), 2.5, int64(3)}, score.Values)

	extra, _ := f.Column("extra")
	require.Equal(t, []any{nil, true, nil}, extra.Values)
}

func TestReadJSON_DuplicateKeyKeepsLast(t *testing.T) {
	f, err := frame.ReadJSON(strings.NewReader(`[{"a": 1, "a": 2}]`))
	require.NoError(t, err)
	require.Equal(t, []any{int64(2)}, f.Row(0))
}

func TestReadJSON_Empty(t *testing.T) {
	f, err := frame.ReadJSON(strings.NewReader(`[]`))
	require.NoError(t, err)
	require.Zero(t, f.Width())
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not an array", input: `{"a": 1}`},
		{name: "array of scalars", input: `[1, 2]`},
		{name: "truncated", input: `[{"a": 1}`},
		{name: "empty input", input: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := frame.ReadJSON(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}
