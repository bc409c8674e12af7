package tablesync_test

import (
	"context"
	"math"
	"testing"
	"time"

	chgo "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/pseudomuto/chsync/pkg/clickhouse"
	"github.com/pseudomuto/chsync/pkg/docker"
	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/pseudomuto/chsync/pkg/tablesync"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSync_Integration(t *testing.T) {
	docker.SkipIfUnavailable(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container := docker.New(docker.Options{})
	require.NoError(t, container.Start(ctx))
	defer func() { _ = container.Stop(ctx) }()

	dsn, err := container.DSN(ctx)
	require.NoError(t, err)

	client, err := clickhouse.NewClientWithOptions(ctx, dsn, clickhouse.ClientOptions{Compression: true})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.CreateDatabase(ctx, "chsync_test", "", ""))

	syncer := tablesync.New(tablesync.Config{
		Store:     client,
		Logger:    zaptest.NewLogger(t),
		BatchSize: 2,
		Clock:     fixedClock,
	})
	ref := tablesync.TableRef{Database: "chsync_test", Table: "scores"}

	t.Run("replace is idempotent", func(t *testing.T) {
		var snapshots []*frame.Frame
		for range 2 {
			res, err := syncer.Sync(ctx, ref, scoresFrame(), tablesync.Replace)
			require.NoError(t, err)
			require.Equal(t, []int{2, 1}, res.BatchSizes)

			f, err := client.Query(ctx, "SELECT * FROM chsync_test.scores ORDER BY id")
			require.NoError(t, err)
			snapshots = append(snapshots, f)
		}

		require.Equal(t, snapshots[0], snapshots[1])
		require.Equal(t, []string{"id", "name", "score", "update_time"}, snapshots[0].Names())
		require.Equal(t, []any{uint64(2), "b", 2.5, "2024-01-02 03:04:05"}, snapshots[0].Row(1))
	})

	t.Run("append continues ids", func(t *testing.T) {
		res, err := syncer.Sync(ctx, ref, scoresFrame(), tablesync.Append)
		require.NoError(t, err)
		require.Equal(t, uint64(3), res.Offset)

		n, err := client.RowCount(ctx, "chsync_test", "scores")
		require.NoError(t, err)
		require.Equal(t, uint64(6), n)

		f, err := client.Query(ctx, "SELECT id FROM chsync_test.scores ORDER BY id")
		require.NoError(t, err)
		ids, _ := f.Column("id")
		require.Equal(t, []any{uint64(1), uint64(2), uint64(3), uint64(4), uint64(5), uint64(6)}, ids.Values)
	})

	t.Run("float64 round trip", func(t *testing.T) {
		values := []any{0.1, -2.5e-300, 123456.789, math.MaxFloat64, math.SmallestNonzeroFloat64, 1.0}
		input := frame.MustNew(frame.Column{Name: "v", Values: values})

		// literals are parsed with the exact algorithm rather than the fast one
		precise := chgo.Context(ctx, chgo.WithSettings(chgo.Settings{"precise_float_parsing": 1}))

		_, err := syncer.Sync(precise, tablesync.TableRef{Database: "chsync_test", Table: "floats"}, input, tablesync.Replace)
		require.NoError(t, err)

		f, err := client.Query(ctx, "SELECT v FROM chsync_test.floats ORDER BY id")
		require.NoError(t, err)
		got, _ := f.Column("v")
		require.Equal(t, values, got.Values)
	})

	t.Run("missing tables count as empty", func(t *testing.T) {
		n, err := client.RowCount(ctx, "chsync_test", "nope")
		require.NoError(t, err)
		require.Zero(t, n)

		n, err = client.RowCount(ctx, "no_such_db", "nope")
		require.NoError(t, err)
		require.Zero(t, n)
	})
}
