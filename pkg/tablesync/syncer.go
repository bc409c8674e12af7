package tablesync

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/consts"
	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/pseudomuto/chsync/pkg/schema"
	"go.uber.org/zap"
)

type (
	// Syncer loads frames into ClickHouse tables.
	//
	// Every synced table is laid out as `id UInt64`, the inferred columns and an
	// update_time column, stored in a MergeTree ordered by id. The id column belongs to
	// the syncer: an input column named id is discarded and replaced by keys allocated
	// from 1 (Replace) or from the current row count plus one (Append).
	//
	// A Syncer performs one store call at a time. Appends derive their first key from
	// a row count, so two concurrent appends into the same table would allocate the
	// same keys. Callers must serialize syncs per table.
	Syncer struct {
		store     Store
		logger    *zap.Logger
		batchSize int
		clock     func() time.Time
	}

	// Config contains configuration options for creating a new Syncer.
	Config struct {
		// Store executes statements. Required.
		Store Store

		// Logger receives progress logs. Defaults to a no-op logger.
		Logger *zap.Logger

		// BatchSize is the default number of rows per INSERT (DefaultBatchSize when <= 0).
		BatchSize int

		// Clock stamps update_time. Defaults to time.Now.
		Clock func() time.Time
	}

	// Option customizes a single Sync call.
	Option func(*options)

	options struct {
		comments  schema.Comments
		batchSize int
		clock     func() time.Time
	}

	// Result summarizes a completed sync.
	Result struct {
		Table   TableRef
		Mode    Mode
		Columns []schema.Column

		// Offset is the row count the ids were allocated after. Rows received ids
		// Offset+1 through Offset+Rows; FirstID and LastID are zero when no rows were
		// loaded.
		Offset  uint64
		FirstID uint64
		LastID  uint64

		Rows       int
		Batches    int
		BatchSizes []int
	}
)

// WithComments attaches column comments by column name.
func WithComments(comments map[string]string) Option {
	return func(o *options) { o.comments = comments }
}

// WithBatchSize overrides the number of rows per INSERT.
func WithBatchSize(n int) Option {
	return func(o *options) { o.batchSize = n }
}

// WithClock overrides the clock used to stamp update_time.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// New creates a new Syncer with the provided configuration.
//
// Example usage:
//
//	syncer := tablesync.New(tablesync.Config{
//		Store:  client,
//		Logger: logger,
//	})
func New(config Config) *Syncer {
	s := &Syncer{
		store:     config.Store,
		logger:    config.Logger,
		batchSize: config.BatchSize,
		clock:     config.Clock,
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.batchSize <= 0 {
		s.batchSize = DefaultBatchSize
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	return s
}

// Sync loads input into the table.
//
// The steps are:
//   - drop any input column named id and infer the remaining column kinds
//   - add an update_time column stamped with the current time (identical for every
//     row) unless the input already has one
//   - Replace: drop and recreate the table; Append: create it if it doesn't exist and
//     check the existing columns can hold the input
//   - allocate ids after the offset (0 for Replace, the row count for Append)
//   - insert the rows in batches
//
// Inference failures (*schema.TypeInferenceError) are reported before the table is
// touched. An insert failing after some batches committed yields a *PartialWriteError.
//
// Example usage:
//
//	res, err := syncer.Sync(ctx, tablesync.TableRef{Database: "analytics", Table: "scores"}, f, tablesync.Replace,
//		tablesync.WithComments(map[string]string{"score": "final score"}),
//	)
func (s *Syncer) Sync(ctx context.Context, ref TableRef, input *frame.Frame, mode Mode, opts ...Option) (*Result, error) {
	if !mode.Valid() {
		return nil, errors.Wrapf(ErrInvalidMode, "%q", mode)
	}
	if ref.Table == "" {
		return nil, errors.New("table name is required")
	}
	if input == nil {
		return nil, errors.New("input frame is required")
	}

	o := options{batchSize: s.batchSize, clock: s.clock}
	for _, opt := range opts {
		opt(&o)
	}

	data := input.Without(consts.IDColumn)
	cols, err := schema.Infer(data, o.comments)
	if err != nil {
		return nil, err
	}

	tableCols := cols
	var stamp *string
	if !data.Has(consts.UpdateTimeColumn) {
		now := o.clock().Format(consts.TimestampLayout)
		stamp = &now
		tableCols = append(append([]schema.Column{}, cols...), schema.Column{
			Name:    consts.UpdateTimeColumn,
			Kind:    schema.Text,
			Comment: o.comments[consts.UpdateTimeColumn],
		})
	}

	logger := s.logger.With(zap.String("table", ref.String()), zap.String("mode", string(mode)))
	logger.Info("syncing table", zap.Int("rows", data.Len()), zap.Int("columns", len(tableCols)))

	if err := s.prepare(ctx, ref, mode, tableCols); err != nil {
		return nil, err
	}

	var offset uint64
	if mode == Append {
		if offset, err = s.store.RowCount(ctx, ref.Database, ref.Table); err != nil {
			return nil, errors.Wrapf(err, "failed to count rows of %s", ref)
		}
	}
	logger.Debug("allocating ids", zap.Uint64("offset", offset))

	loader := &Loader{Store: s.store, BatchSize: o.batchSize, Logger: logger}
	src := newFrameSource(data, cols, offset, stamp)
	stats, err := loader.Load(ctx, ref, src)
	if err != nil {
		logger.Error("sync failed", zap.Error(err), zap.Int("rows_committed", stats.Rows))
		return nil, err
	}

	res := &Result{
		Table:      ref,
		Mode:       mode,
		Columns:    tableCols,
		Offset:     offset,
		Rows:       stats.Rows,
		Batches:    stats.Batches,
		BatchSizes: stats.BatchSizes,
	}
	if stats.Rows > 0 {
		res.FirstID = offset + 1
		res.LastID = src.keys.Last()
	}

	logger.Info("synced table",
		zap.Int("rows", res.Rows),
		zap.Int("batches", res.Batches),
		zap.Uint64("first_id", res.FirstID),
		zap.Uint64("last_id", res.LastID),
	)

	return res, nil
}

// prepare brings the table into shape for the insert.
func (s *Syncer) prepare(ctx context.Context, ref TableRef, mode Mode, cols []schema.Column) error {
	if mode == Replace {
		if err := s.store.Exec(ctx, schema.DropTable(ref.Database, ref.Table)); err != nil {
			return errors.Wrapf(err, "failed to drop table %s", ref)
		}

		if err := s.store.Exec(ctx, schema.CreateTable(ref.Database, ref.Table, cols, false)); err != nil {
			return errors.Wrapf(err, "failed to create table %s", ref)
		}

		return nil
	}

	if err := s.store.Exec(ctx, schema.CreateTable(ref.Database, ref.Table, cols, true)); err != nil {
		return errors.Wrapf(err, "failed to create table %s", ref)
	}

	describer, ok := s.store.(Describer)
	if !ok {
		return nil
	}

	existing, err := describer.DescribeTable(ctx, ref.Database, ref.Table)
	if err != nil {
		return errors.Wrapf(err, "failed to describe table %s", ref)
	}

	return checkCompatible(ref, existing, cols)
}

// checkCompatible verifies every column exists in the target table and that text is
// never appended to a numeric column. Numbers may go into text columns, and integers
// into float columns, since the server converts those literals.
func checkCompatible(ref TableRef, existing, cols []schema.Column) error {
	kinds := make(map[string]schema.Kind, len(existing))
	for _, c := range existing {
		kinds[c.Name] = c.Kind
	}

	for _, c := range cols {
		have, ok := kinds[c.Name]
		if !ok {
			return &SchemaMismatchError{Table: ref, Column: c.Name, Want: c.Kind, Missing: true}
		}

		if (c.Kind == schema.Text && have.Numeric()) || (c.Kind == schema.Float64 && have == schema.Int64) {
			return &SchemaMismatchError{Table: ref, Column: c.Name, Want: c.Kind, Have: have}
		}
	}

	return nil
}
