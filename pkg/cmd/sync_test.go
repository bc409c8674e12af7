package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/chsync/pkg/consts"
	"github.com/pseudomuto/chsync/pkg/schema"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))
	return path
}

func TestSyncCommand_Replace(t *testing.T) {
	h := newHarness(t, &fakeDB{})
	path := writeFile(t, "scores.csv", "name,score\na,1\nb,2.5\nc,3\n")

	out, err := h.run(t, syncCmd(h.env), "--server", "analytics", "--comment", "score=final score", path)
	require.NoError(t, err)

	execs := h.db.execs
	require.Len(t, execs, 4)
	require.Equal(t, "DROP TABLE IF EXISTS `analytics`.`scores`", execs[0])
	require.Equal(t,
		"CREATE TABLE `analytics`.`scores` (`id` UInt64, `name` String, `score` Float64 COMMENT 'final score', `update_time` String) "+
			"ENGINE = MergeTree() ORDER BY (id)",
		execs[1],
	)

	prefix := "INSERT INTO `analytics`.`scores` (`id`, `name`, `score`, `update_time`) VALUES "
	require.True(t, strings.HasPrefix(execs[2], prefix+"(1, 'a', 1, '"), execs[2])
	require.Contains(t, execs[2], "), (2, 'b', 2.5, '")
	require.True(t, strings.HasPrefix(execs[3], prefix+"(3, 'c', 3, '"), execs[3])

	require.Contains(t, out, "Synced 3 row(s) into `analytics`.`scores` (replace)")
	require.Contains(t, out, "- ids 1 to 3")
	require.Contains(t, out, "- 2 batch(es)")
	require.True(t, h.db.closed)
}

func TestSyncCommand_Append(t *testing.T) {
	h := newHarness(t, &fakeDB{
		rowCount: 3,
		columns: []schema.Column{
			{Name: "id", Kind: schema.Int64},
			{Name: "name", Kind: schema.Text},
			{Name: "score", Kind: schema.Float64},
			{Name: "update_time", Kind: schema.Text},
		},
	})
	path := writeFile(t, "batch.json", `[{"name":"d","score":4.5}]`)

	out, err := h.run(t, syncCmd(h.env),
		"--server", "analytics",
		"--db", "scratch",
		"--table", "scores",
		"--mode", "APPEND",
		"--batch-size", "10",
		path,
	)
	require.NoError(t, err)

	require.Len(t, h.db.execs, 2)
	require.True(t, strings.HasPrefix(h.db.execs[0], "CREATE TABLE IF NOT EXISTS `scratch`.`scores`"))
	require.True(t, strings.HasPrefix(h.db.execs[1], "INSERT INTO `scratch`.`scores` (`id`, `name`, `score`, `update_time`) VALUES (4, 'd', 4.5, '"))
	require.Contains(t, h.db.calls, "describe scratch.scores")
	require.Contains(t, h.db.calls, "count scratch.scores")
	require.Contains(t, out, "(append)")
	require.Contains(t, out, "- ids 4 to 4")
}

func TestSyncCommand_Stdin(t *testing.T) {
	h := newHarness(t, &fakeDB{})
	h.stdin = `[{"v":1},{"v":2}]`

	out, err := h.run(t, syncCmd(h.env), "--server", "local", "--table", "events", "--format", "json", "-")
	require.NoError(t, err)
	require.Len(t, h.db.execs, 3)
	require.Equal(t, "DROP TABLE IF EXISTS `events`", h.db.execs[0])
	require.True(t, strings.HasPrefix(h.db.execs[2], "INSERT INTO `events` (`id`, `v`, `update_time`) VALUES (1, 1, '"))
	require.Contains(t, out, "Synced 2 row(s) into `events` (replace)")

	h.db.execs = nil
	_, err = h.run(t, syncCmd(h.env), "--server", "local", "-")
	require.EqualError(t, err, "--table is required when reading from stdin")
	require.Empty(t, h.db.execs)
}

func TestSyncCommand_Errors(t *testing.T) {
	csv := writeFile(t, "scores.csv", "name,score\na,1\n")
	nested := writeFile(t, "nested.json", `[{"tags":["a","b"]}]`)

	tests := []struct {
		name string
		args []string
		err  string
	}{
		{name: "missing file argument", args: []string{"--server", "local"}, err: "missing required argument <file>"},
		{name: "invalid mode", args: []string{"--server", "local", "--mode", "upsert", csv}, err: "invalid sync mode"},
		{name: "invalid comment", args: []string{"--server", "local", "--comment", "score", csv}, err: `invalid comment "score"`},
		{name: "unknown format", args: []string{"--server", "local", "--format", "xml", csv}, err: `unknown input format "xml"`},
		{name: "missing file", args: []string{"--server", "local", "missing.csv"}, err: "failed to open file: missing.csv"},
		{name: "uninferable column", args: []string{"--server", "local", nested}, err: "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &fakeDB{})

			_, err := h.run(t, syncCmd(h.env), tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.err)
			require.Empty(t, h.db.execs)
		})
	}
}
