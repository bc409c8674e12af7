package utils_test

import (
	"testing"

	"github.com/pseudomuto/chsync/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestSQLBuilder(t *testing.T) {
	tests := []struct {
		name     string
		builder  func() *utils.SQLBuilder
		expected string
	}{
		{
			name:     "CREATE DATABASE IF NOT EXISTS",
			builder:  func() *utils.SQLBuilder { return utils.NewSQLBuilder().Create("DATABASE").IfNotExists().Name("test") },
			expected: "CREATE DATABASE IF NOT EXISTS `test`",
		},
		{
			name: "CREATE DATABASE with engine and comment",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Create("DATABASE").Name("analytics").Engine("Atomic").Comment("Analytics database")
			},
			expected: "CREATE DATABASE `analytics` ENGINE = Atomic COMMENT 'Analytics database'",
		},
		{
			name: "CREATE TABLE with columns",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().
					Create("TABLE").
					QualifiedName("db", "events").
					Columns("`id` UInt64", "`name` String").
					Engine("MergeTree()").
					OrderBy("id")
			},
			expected: "CREATE TABLE `db`.`events` (`id` UInt64, `name` String) ENGINE = MergeTree() ORDER BY (id)",
		},
		{
			name:     "DROP TABLE IF EXISTS",
			builder:  func() *utils.SQLBuilder { return utils.NewSQLBuilder().Drop("TABLE").IfExists().QualifiedName("db", "t") },
			expected: "DROP TABLE IF EXISTS `db`.`t`",
		},
		{
			name:     "TRUNCATE TABLE IF EXISTS",
			builder:  func() *utils.SQLBuilder { return utils.NewSQLBuilder().Truncate("TABLE").IfExists().QualifiedName("db", "t") },
			expected: "TRUNCATE TABLE IF EXISTS `db`.`t`",
		},
		{
			name: "empty optional clauses are skipped",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Create("DATABASE").Name("x").Engine("").Comment("").Columns().OrderBy("")
			},
			expected: "CREATE DATABASE `x`",
		},
		{
			name:     "comment is escaped",
			builder:  func() *utils.SQLBuilder { return utils.NewSQLBuilder().Create("DATABASE").Name("x").Comment("user's db") },
			expected: `CREATE DATABASE ` + "`x`" + ` COMMENT 'user\'s db'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.builder().String())
		})
	}
}

func TestSQLBuilder_Empty(t *testing.T) {
	require.Empty(t, utils.NewSQLBuilder().String())
}
