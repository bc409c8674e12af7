package schema_test

import (
	"testing"

	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/pseudomuto/chsync/pkg/schema"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestColumnClause(t *testing.T) {
	tests := []struct {
		name     string
		cols     []schema.Column
		expected string
	}{
		{
			name: "no comments",
			cols: []schema.Column{
				{Name: "name", Kind: schema.Text},
				{Name: "score", Kind: schema.Float64},
			},
			expected: "`name` String, `score` Float64",
		},
		{
			name: "comment only where supplied",
			cols: []schema.Column{
				{Name: "name", Kind: schema.Text},
				{Name: "n", Kind: schema.Int64, Comment: "it's a count"},
			},
			expected: "`name` String, `n` Int64 COMMENT 'it\\'s a count'",
		},
		{
			name:     "no columns",
			cols:     nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, schema.ColumnClause(tt.cols))
		})
	}
}

func TestCreateTable(t *testing.T) {
	f := frame.MustNew(
		frame.Column{Name: "name", Values: []any{"a", "b", "c"}},
		frame.Column{Name: "score", Values: []any{1, 2.5, 3}},
		frame.Column{Name: "update_time", Values: []any{"x", "x", "x"}},
	)

	cols, err := schema.Infer(f, schema.Comments{"score": "final score"})
	require.NoError(t, err)

	golden.Assert(t, schema.CreateTable("analytics", "scores", cols, false), "create_table.sql.golden")
	golden.Assert(t, schema.CreateTable("analytics", "scores", cols, true), "create_table_if_not_exists.sql.golden")
}

func TestCreateTable_IDOnly(t *testing.T) {
	require.Equal(
		t,
		"CREATE TABLE `db`.`t` (`id` UInt64) ENGINE = MergeTree() ORDER BY (id)",
		schema.CreateTable("db", "t", nil, false),
	)
}

func TestDropAndTruncate(t *testing.T) {
	require.Equal(t, "DROP TABLE IF EXISTS `db`.`t`", schema.DropTable("db", "t"))
	require.Equal(t, "TRUNCATE TABLE IF EXISTS `db`.`t`", schema.TruncateTable("db", "t"))
}
