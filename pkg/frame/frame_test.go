package frame_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f, err := frame.New(
			frame.Column{Name: "name", Values: []any{"a", "b", "c"}},
			frame.Column{Name: "score", Values: []any{1, 2.5, 3}},
		)
		require.NoError(t, err)
		require.Equal(t, 3, f.Len())
		require.Equal(t, 2, f.Width())
		require.Equal(t, []string{"name", "score"}, f.Names())
		require.Equal(t, []any{"b", 2.5}, f.Row(1))
	})

	t.Run("empty", func(t *testing.T) {
		f, err := frame.New()
		require.NoError(t, err)
		require.Zero(t, f.Len())
		require.Zero(t, f.Width())
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := frame.New(
			frame.Column{Name: "a", Values: []any{1, 2}},
			frame.Column{Name: "b", Values: []any{1}},
		)
		require.Error(t, err)
		require.True(t, errors.Is(err, frame.ErrRaggedFrame))
		require.Contains(t, err.Error(), `column "b" has 1 values, expected 2`)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := frame.New(
			frame.Column{Name: "a", Values: []any{1}},
			frame.Column{Name: "a", Values: []any{2}},
		)
		require.True(t, errors.Is(err, frame.ErrDuplicateColumn))
	})
}

func TestFrame_Column(t *testing.T) {
	f := frame.MustNew(frame.Column{Name: "a", Values: []any{1, 2}})

	col, ok := f.Column("a")
	require.True(t, ok)
	require.Equal(t, []any{1, 2}, col.Values)
	require.True(t, f.Has("a"))

	_, ok = f.Column("missing")
	require.False(t, ok)
	require.False(t, f.Has("missing"))
}

func TestFrame_RowOutOfRange(t *testing.T) {
	f := frame.MustNew(frame.Column{Name: "a", Values: []any{1}})
	require.Panics(t, func() { f.Row(1) })
	require.Panics(t, func() { f.Row(-1) })
}

func TestFrame_Without(t *testing.T) {
	f := frame.MustNew(
		frame.Column{Name: "id", Values: []any{9, 8}},
		frame.Column{Name: "name", Values: []any{"a", "b"}},
	)

	out := f.Without("id", "unknown")
	require.Equal(t, []string{"name"}, out.Names())
	require.Equal(t, 2, out.Len())
	require.False(t, out.Has("id"))

	// the input frame is untouched
	require.Equal(t, []string{"id", "name"}, f.Names())
	require.True(t, f.Has("id"))
}

func TestFrame_WithoutAllColumnsKeepsRowCount(t *testing.T) {
	f := frame.MustNew(frame.Column{Name: "id", Values: []any{1, 2, 3}})
	require.Equal(t, 3, f.Without("id").Len())
}
