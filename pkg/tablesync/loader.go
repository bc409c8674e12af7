package tablesync

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/consts"
	"github.com/pseudomuto/chsync/pkg/utils"
	"go.uber.org/zap"
)

// DefaultBatchSize is the number of rows per INSERT when none is configured.
const DefaultBatchSize = consts.DefaultBatchSize

type (
	// Loader inserts rows in batches of at most BatchSize rows, one INSERT statement per
	// batch, sequentially. At most one batch is held in memory. Failed batches are not
	// retried. Logger is used as given, so it should already carry the table.
	Loader struct {
		Store     Store
		BatchSize int
		Logger    *zap.Logger
	}

	// LoadStats describes what a load committed.
	LoadStats struct {
		Rows       int
		Batches    int
		BatchSizes []int
	}
)

// Load streams every row of src into the table. A source with no rows issues no
// statements.
//
// When a batch fails after earlier batches were committed, the returned error is a
// *PartialWriteError. When the first batch fails the error is the store's, wrapped
// with context (errors.Cause returns it unchanged). The returned stats always reflect
// what was committed.
func (l *Loader) Load(ctx context.Context, ref TableRef, src RowSource) (*LoadStats, error) {
	size := l.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	prefix := "INSERT INTO " + ref.String() + " (" + utils.QuoteIdentifiers(src.Columns()) + ") VALUES "

	var (
		stats = &LoadStats{BatchSizes: []int{}}
		sb    strings.Builder
		n     int
	)

	flush := func() error {
		if err := l.Store.Exec(ctx, sb.String()); err != nil {
			return err
		}

		stats.Rows += n
		stats.Batches++
		stats.BatchSizes = append(stats.BatchSizes, n)
		logger.Debug("inserted batch",
			zap.Int("batch", stats.Batches),
			zap.Int("rows", n),
			zap.Int("total", stats.Rows),
		)

		sb.Reset()
		n = 0
		return nil
	}

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, l.fail(ref, stats, err)
		}

		if n == 0 {
			sb.WriteString(prefix)
		} else {
			sb.WriteString(", ")
		}

		if err := appendTuple(&sb, row); err != nil {
			return stats, l.fail(ref, stats, err)
		}
		n++

		if n == size {
			if err := flush(); err != nil {
				return stats, l.fail(ref, stats, err)
			}
		}
	}

	if n > 0 {
		if err := flush(); err != nil {
			return stats, l.fail(ref, stats, err)
		}
	}

	return stats, nil
}

func (l *Loader) fail(ref TableRef, stats *LoadStats, err error) error {
	if stats.Batches == 0 {
		return errors.Wrapf(err, "failed to insert batch 1 into %s", ref)
	}

	return &PartialWriteError{
		Table:            ref,
		BatchesCommitted: stats.Batches,
		RowsCommitted:    stats.Rows,
		Err:              err,
	}
}
